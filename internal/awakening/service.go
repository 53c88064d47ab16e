// Package awakening simulates hero awakening pulls against the configured
// probability pool and tracks which pool is active.
package awakening

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/exile7/ExileBot_Go/internal/domain"
	"github.com/exile7/ExileBot_Go/internal/logger"
	"github.com/exile7/ExileBot_Go/internal/repository"
)

// OutcomeCount pairs a pool outcome with how often it was rolled.
type OutcomeCount struct {
	Outcome domain.AwakeningOutcome
	Count   int
}

// Simulation summarizes a batch of awakening pulls.
type Simulation struct {
	PoolName      string
	Pulls         int
	Outcomes      []OutcomeCount
	CrystalsSpent int64
	RetireTotal   int64
	GalaPoints    int64
}

// ReturnPercent is the retire value recovered relative to crystals spent.
func (s *Simulation) ReturnPercent() float64 {
	if s.CrystalsSpent == 0 {
		return 0
	}
	return float64(s.RetireTotal) / float64(s.CrystalsSpent) * 100
}

// Service simulates awakenings and manages the active pool.
type Service interface {
	// Simulate performs the given number of pulls against the active pool.
	Simulate(ctx context.Context, pulls int) (*Simulation, error)
	// SwitchPool sets the active pool and returns its name.
	SwitchPool(ctx context.Context, normal bool) (string, error)
	// CurrentPool reports the active pool name and its outcomes.
	CurrentPool(ctx context.Context) (string, []domain.AwakeningOutcome, error)
}

type service struct {
	repo repository.Awakening

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewService(repo repository.Awakening) Service {
	return &service{
		repo: repo,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *service) Simulate(ctx context.Context, pulls int) (*Simulation, error) {
	if pulls < 1 {
		return nil, fmt.Errorf("%w: pulls must be at least 1", domain.ErrInvalidInput)
	}

	state, err := s.repo.LoadPoolState(ctx)
	if err != nil {
		return nil, err
	}
	name, pool := poolFor(state)

	counts := make([]int, len(pool))
	s.mu.Lock()
	for i := 0; i < pulls; i++ {
		counts[s.roll(pool)]++
	}
	s.mu.Unlock()

	sim := &Simulation{
		PoolName:      name,
		Pulls:         pulls,
		CrystalsSpent: int64(pulls) * CrystalsPerPull,
	}
	for i, outcome := range pool {
		if counts[i] == 0 {
			continue
		}
		sim.Outcomes = append(sim.Outcomes, OutcomeCount{Outcome: outcome, Count: counts[i]})
		sim.RetireTotal += int64(outcome.Retire) * int64(counts[i])
		sim.GalaPoints += int64(outcome.Points) * int64(counts[i])
	}

	return sim, nil
}

func (s *service) SwitchPool(ctx context.Context, normal bool) (string, error) {
	if err := s.repo.SavePoolState(ctx, domain.AwakeningPoolState{Normal: normal}); err != nil {
		return "", err
	}

	name, _ := poolFor(domain.AwakeningPoolState{Normal: normal})
	logger.FromContext(ctx).Info("Awakening pool switched", "pool", name)
	return name, nil
}

func (s *service) CurrentPool(ctx context.Context) (string, []domain.AwakeningOutcome, error) {
	state, err := s.repo.LoadPoolState(ctx)
	if err != nil {
		return "", nil, err
	}

	name, pool := poolFor(state)
	out := make([]domain.AwakeningOutcome, len(pool))
	copy(out, pool)
	return name, out, nil
}

// roll walks the cumulative probability of the pool. The caller holds the
// mutex guarding rnd.
func (s *service) roll(pool []domain.AwakeningOutcome) int {
	v := s.rnd.Float64()
	var cumulative float64
	for i, outcome := range pool {
		cumulative += outcome.Probability
		if v < cumulative {
			return i
		}
	}
	return len(pool) - 1
}
