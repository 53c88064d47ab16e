package leveling

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/exile7/ExileBot_Go/internal/domain"
	"github.com/exile7/ExileBot_Go/internal/logger"
	"github.com/exile7/ExileBot_Go/internal/repository"
)

// Service defines the interface for leveling operations
type Service interface {
	// ComputeMessageXP runs the XP pipeline for one message against the
	// configured tables. Pure; no ledger access.
	ComputeMessageXP(roleIDs []string, channelID string, currentLevel int) (int, domain.XPBreakdown)
	// AwardXP applies a non-negative XP delta to a user's ledger record,
	// creating the record on first award.
	AwardXP(ctx context.Context, userID, username string, delta int) (*domain.XPAwardResult, error)
	// Progress returns a user's level info with progress toward the next level.
	Progress(ctx context.Context, userID string) (*domain.UserLevelInfo, error)
	// CurrentLevel returns a user's level, 0 for unknown users.
	CurrentLevel(ctx context.Context, userID string) (int, error)
	// TopUsers returns up to n ledger records ordered by lifetime XP descending.
	TopUsers(ctx context.Context, n int) ([]domain.UserLevel, error)
	// Costs returns the level cost table loaded at startup.
	Costs() domain.LevelCosts
}

type service struct {
	repo   repository.Leveling
	costs  domain.LevelCosts
	tables domain.XPTables
	baseXP int
	cache  *infoCache

	// Serializes ledger read-modify-write cycles; without it two concurrent
	// awards for the same user could clobber each other's totals.
	mu sync.Mutex
}

// NewService creates a new leveling service. The cost table is loaded once
// here and treated as immutable afterwards.
func NewService(ctx context.Context, repo repository.Leveling, tables domain.XPTables, baseXP int) (Service, error) {
	costs, err := repo.LoadLevelCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load level costs: %w", err)
	}

	return &service{
		repo:   repo,
		costs:  costs,
		tables: tables,
		baseXP: baseXP,
		cache:  newInfoCache(CacheSize, CacheTTL),
	}, nil
}

func (s *service) ComputeMessageXP(roleIDs []string, channelID string, currentLevel int) (int, domain.XPBreakdown) {
	return ComputeXP(s.baseXP, roleIDs, channelID, currentLevel, s.tables)
}

func (s *service) AwardXP(ctx context.Context, userID, username string, delta int) (*domain.XPAwardResult, error) {
	if delta < 0 {
		return nil, fmt.Errorf("%w: negative xp delta %d", domain.ErrInvalidInput, delta)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.repo.LoadUserLevels(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := ledger[userID]
	if !ok {
		record = domain.UserLevel{UserID: userID, Username: username}
	}

	oldLevel := record.Level
	record.XP += int64(delta)
	record.Level = LevelForXP(record.XP, s.costs)
	record.Username = username // display cache, refreshed on every award
	ledger[userID] = record

	if err := s.repo.SaveUserLevels(ctx, ledger); err != nil {
		return nil, err
	}

	s.cache.Invalidate(userID)

	result := &domain.XPAwardResult{
		LeveledUp: record.Level > oldLevel,
		NewLevel:  record.Level,
		OldLevel:  oldLevel,
		NewXP:     record.XP,
	}

	if result.LeveledUp {
		logger.FromContext(ctx).Info("User leveled up",
			"user_id", userID, "old_level", oldLevel, "new_level", record.Level)
	}

	return result, nil
}

func (s *service) Progress(ctx context.Context, userID string) (*domain.UserLevelInfo, error) {
	if info, ok := s.cache.Get(userID); ok {
		return info, nil
	}

	ledger, err := s.repo.LoadUserLevels(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := ledger[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}

	info := &domain.UserLevelInfo{UserLevel: record}

	currentCost, _ := XPForLevel(record.Level, s.costs)
	info.XPProgress = record.XP - currentCost
	if _, nextCost, ok := NextLevel(record.Level, s.costs); ok {
		info.XPForNextLevel = nextCost - currentCost
	}

	s.cache.Set(userID, info)
	return info, nil
}

func (s *service) CurrentLevel(ctx context.Context, userID string) (int, error) {
	ledger, err := s.repo.LoadUserLevels(ctx)
	if err != nil {
		return 0, err
	}
	return ledger[userID].Level, nil
}

func (s *service) TopUsers(ctx context.Context, n int) ([]domain.UserLevel, error) {
	ledger, err := s.repo.LoadUserLevels(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.UserLevel, 0, len(ledger))
	for _, record := range ledger {
		users = append(users, record)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].XP != users[j].XP {
			return users[i].XP > users[j].XP
		}
		return users[i].UserID < users[j].UserID
	})

	if n > 0 && len(users) > n {
		users = users[:n]
	}
	return users, nil
}

func (s *service) Costs() domain.LevelCosts {
	return s.costs
}
