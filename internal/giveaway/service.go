package giveaway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/exile7/ExileBot_Go/internal/domain"
	"github.com/exile7/ExileBot_Go/internal/logger"
	"github.com/exile7/ExileBot_Go/internal/repository"
)

// StartInput is the validated input to Start.
type StartInput struct {
	Prize     string        `validate:"required,max=200"`
	HostID    string        `validate:"required"`
	HostName  string        `validate:"required"`
	Winners   int           `validate:"min=1,max=3"`
	Duration  time.Duration `validate:"gt=0"`
	ChannelID string        `validate:"required"`
	Mention   bool
	Message   string `validate:"max=500"`
}

// Service defines the interface for giveaway operations
type Service interface {
	// Start creates and persists a new active giveaway. Rejected with
	// domain.ErrGiveawayActive while another giveaway is running.
	Start(ctx context.Context, input StartInput) (*domain.Giveaway, error)
	// SetMessageID records the announcement message after it is posted.
	SetMessageID(ctx context.Context, id, channelID, messageID string) error
	// Enter records a participant entry.
	Enter(ctx context.Context, id, userID string) error
	// End concludes a giveaway and draws winners from its participants.
	// Idempotent: a concluded giveaway returns its winners unchanged.
	End(ctx context.Context, id string) ([]string, error)
	// EndWithPool concludes a giveaway drawing from an externally harvested
	// candidate pool (reaction entries) instead of recorded participants.
	EndWithPool(ctx context.Context, id string, pool []string) ([]string, error)
	// Reroll replaces the winners of a concluded giveaway, excluding the
	// given ids. Fails with domain.ErrNotEnoughEntrants without mutating
	// winners when the remaining pool is too small.
	Reroll(ctx context.Context, id string, exclude []string) ([]string, error)
	// RerollWithPool is Reroll drawing from an external candidate pool.
	RerollWithPool(ctx context.Context, id string, pool, exclude []string) ([]string, error)
	// GetActive returns the currently running giveaway, or nil.
	GetActive(ctx context.Context) (*domain.Giveaway, error)
	// GetByID returns one giveaway record.
	GetByID(ctx context.Context, id string) (*domain.Giveaway, error)
	// CheckJobs is the periodic sweep: it concludes overdue giveaways and
	// removes concluded records past the retention window.
	CheckJobs(ctx context.Context) error
}

type service struct {
	repo      repository.Giveaway
	retention time.Duration

	// Injectable clock and randomness for tests
	now func() time.Time
	rnd *rand.Rand

	// Serializes every check-then-write cycle over the giveaway document,
	// including the at-most-one-active check in Start.
	mu sync.Mutex
}

var validate = validator.New()

// NewService creates a new giveaway service. retention controls how long a
// concluded record stays available for reroll before the sweep removes it.
func NewService(repo repository.Giveaway, retention time.Duration) Service {
	return &service{
		repo:      repo,
		retention: retention,
		now:       time.Now,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *service) Start(ctx context.Context, input StartInput) (*domain.Giveaway, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	giveaways, err := s.repo.LoadGiveaways(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	for i := range giveaways {
		if giveaways[i].Active && giveaways[i].EndTime.After(now) {
			return nil, fmt.Errorf("%w: %s", domain.ErrGiveawayActive, giveaways[i].ID)
		}
	}

	g := domain.Giveaway{
		ID:              uuid.NewString(),
		Prize:           input.Prize,
		HostID:          input.HostID,
		HostName:        input.HostName,
		Winners:         input.Winners,
		DurationSeconds: int64(input.Duration / time.Second),
		StartTime:       now,
		EndTime:         now.Add(input.Duration),
		Message:         input.Message,
		Mention:         input.Mention,
		ChannelID:       input.ChannelID,
		Active:          true,
		Participants:    []string{},
		WinnerIDs:       []string{},
	}

	giveaways = append(giveaways, g)
	if err := s.repo.SaveGiveaways(ctx, giveaways); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgGiveawayStarted,
		"giveaway_id", g.ID, "prize", g.Prize, "winners", g.Winners, "end_time", g.EndTime)

	return &g, nil
}

func (s *service) SetMessageID(ctx context.Context, id, channelID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(ctx, id, func(g *domain.Giveaway) error {
		g.ChannelID = channelID
		g.MessageID = messageID
		return nil
	})
}

func (s *service) Enter(ctx context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(ctx, id, func(g *domain.Giveaway) error {
		if !g.Active {
			return fmt.Errorf("%w: %s", domain.ErrGiveawayEnded, id)
		}
		g.Participants = append(g.Participants, userID)
		return nil
	})
}

func (s *service) End(ctx context.Context, id string) ([]string, error) {
	return s.EndWithPool(ctx, id, nil)
}

func (s *service) EndWithPool(ctx context.Context, id string, pool []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var winners []string
	err := s.update(ctx, id, func(g *domain.Giveaway) error {
		// Already concluded with winners: return them, never re-roll
		if !g.Active && len(g.WinnerIDs) > 0 {
			winners = g.WinnerIDs
			return nil
		}

		g.Active = false

		eligible := dedupe(g.Participants)
		if len(eligible) == 0 && pool != nil {
			eligible = dedupe(pool)
		}

		if len(eligible) < g.Winners {
			// Not enough entrants: conclude with no winners, not an error
			g.WinnerIDs = []string{}
			winners = g.WinnerIDs
			return nil
		}

		g.WinnerIDs = s.draw(eligible, g.Winners)
		winners = g.WinnerIDs
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgGiveawayEnded, "giveaway_id", id, "winners", winners)
	return winners, nil
}

func (s *service) Reroll(ctx context.Context, id string, exclude []string) ([]string, error) {
	return s.RerollWithPool(ctx, id, nil, exclude)
}

func (s *service) RerollWithPool(ctx context.Context, id string, pool, exclude []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var winners []string
	err := s.update(ctx, id, func(g *domain.Giveaway) error {
		if g.Active {
			return fmt.Errorf("%w: cannot reroll a running giveaway", domain.ErrGiveawayActive)
		}

		source := g.Participants
		if len(source) == 0 && pool != nil {
			source = pool
		}

		excluded := make(map[string]struct{}, len(exclude))
		for _, id := range exclude {
			excluded[id] = struct{}{}
		}

		var eligible []string
		for _, userID := range dedupe(source) {
			if _, skip := excluded[userID]; !skip {
				eligible = append(eligible, userID)
			}
		}

		if len(eligible) < g.Winners {
			// Leave the recorded winners untouched
			return fmt.Errorf("%w: need %d, have %d", domain.ErrNotEnoughEntrants, g.Winners, len(eligible))
		}

		g.WinnerIDs = s.draw(eligible, g.Winners)
		winners = g.WinnerIDs
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgGiveawayRerolled, "giveaway_id", id, "winners", winners)
	return winners, nil
}

func (s *service) GetActive(ctx context.Context) (*domain.Giveaway, error) {
	giveaways, err := s.repo.LoadGiveaways(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	for i := range giveaways {
		if giveaways[i].Active && giveaways[i].EndTime.After(now) {
			g := giveaways[i]
			return &g, nil
		}
	}
	return nil, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Giveaway, error) {
	giveaways, err := s.repo.LoadGiveaways(ctx)
	if err != nil {
		return nil, err
	}

	for i := range giveaways {
		if giveaways[i].ID == id {
			g := giveaways[i]
			return &g, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrGiveawayNotFound, id)
}

// CheckJobs runs one sweep tick. The scheduler guarantees ticks never
// overlap; each End call below takes the service mutex, so manual
// operations cannot interleave with a single conclusion.
func (s *service) CheckJobs(ctx context.Context) error {
	log := logger.FromContext(ctx)

	giveaways, err := s.repo.LoadGiveaways(ctx)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	for i := range giveaways {
		if giveaways[i].Active && giveaways[i].Expired(now) {
			log.Info(LogMsgSweepEndedOverdue, "giveaway_id", giveaways[i].ID)
			if _, err := s.End(ctx, giveaways[i].ID); err != nil {
				log.Error("Failed to end overdue giveaway", "giveaway_id", giveaways[i].ID, "error", err)
			}
		}
	}

	return s.deleteExpired(ctx)
}

// deleteExpired removes concluded records whose end time passed the
// retention window. Active records are never deleted, nor is anything
// before its end time.
func (s *service) deleteExpired(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	giveaways, err := s.repo.LoadGiveaways(ctx)
	if err != nil {
		return err
	}

	cutoff := s.now().UTC().Add(-s.retention)
	kept := giveaways[:0]
	removed := 0
	for _, g := range giveaways {
		if !g.Active && g.EndTime.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, g)
	}

	if removed == 0 {
		return nil
	}

	if err := s.repo.SaveGiveaways(ctx, kept); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSweepDeleted, "count", removed)
	return nil
}

// update loads the giveaway list, applies fn to the record with the given
// id, and saves the whole list. The caller holds the service mutex.
func (s *service) update(ctx context.Context, id string, fn func(*domain.Giveaway) error) error {
	giveaways, err := s.repo.LoadGiveaways(ctx)
	if err != nil {
		return err
	}

	for i := range giveaways {
		if giveaways[i].ID != id {
			continue
		}
		if err := fn(&giveaways[i]); err != nil {
			return err
		}
		return s.repo.SaveGiveaways(ctx, giveaways)
	}

	return fmt.Errorf("%w: %s", domain.ErrGiveawayNotFound, id)
}

// draw samples count distinct entries uniformly without replacement.
func (s *service) draw(eligible []string, count int) []string {
	idx := s.rnd.Perm(len(eligible))
	winners := make([]string, count)
	for i := 0; i < count; i++ {
		winners[i] = eligible[idx[i]]
	}
	return winners
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
