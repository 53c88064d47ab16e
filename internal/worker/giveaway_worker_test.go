package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exile7/ExileBot_Go/internal/domain"
	"github.com/exile7/ExileBot_Go/internal/giveaway"
)

// stubService satisfies giveaway.Service; only GetActive and End matter here.
type stubService struct {
	giveaway.Service

	mu     sync.Mutex
	active *domain.Giveaway
	ended  []string
}

func (s *stubService) GetActive(ctx context.Context) (*domain.Giveaway, error) {
	return s.active, nil
}

func (s *stubService) End(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = append(s.ended, id)
	return nil, nil
}

func (s *stubService) endedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ended))
	copy(out, s.ended)
	return out
}

func TestGiveawayWorkerSchedulesAndConcludes(t *testing.T) {
	concluded := make(chan string, 1)
	w := NewGiveawayWorker(&stubService{}, func(ctx context.Context, id string) {
		concluded <- id
	})

	w.Schedule(&domain.Giveaway{
		ID:      "g1",
		EndTime: time.Now().Add(20 * time.Millisecond),
	})

	select {
	case id := <-concluded:
		assert.Equal(t, "g1", id)
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}

func TestGiveawayWorkerPastDeadlineRunsImmediately(t *testing.T) {
	concluded := make(chan string, 1)
	w := NewGiveawayWorker(&stubService{}, func(ctx context.Context, id string) {
		concluded <- id
	})

	w.Schedule(&domain.Giveaway{
		ID:      "overdue",
		EndTime: time.Now().Add(-time.Minute),
	})

	select {
	case id := <-concluded:
		assert.Equal(t, "overdue", id)
	case <-time.After(time.Second):
		t.Fatal("overdue giveaway never concluded")
	}
}

func TestGiveawayWorkerCancel(t *testing.T) {
	concluded := make(chan string, 1)
	w := NewGiveawayWorker(&stubService{}, func(ctx context.Context, id string) {
		concluded <- id
	})

	w.Schedule(&domain.Giveaway{
		ID:      "g1",
		EndTime: time.Now().Add(30 * time.Millisecond),
	})
	w.Cancel("g1")

	select {
	case <-concluded:
		t.Fatal("cancelled timer still fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestGiveawayWorkerStartReschedulesActive(t *testing.T) {
	svc := &stubService{active: &domain.Giveaway{
		ID:      "boot",
		Active:  true,
		EndTime: time.Now().Add(-time.Minute),
	}}

	// Default conclude path ends through the service
	w := NewGiveawayWorker(svc, nil)
	w.Start()

	require.Eventually(t, func() bool {
		ids := svc.endedIDs()
		return len(ids) == 1 && ids[0] == "boot"
	}, time.Second, 10*time.Millisecond)
}

func TestGiveawayWorkerShutdownCancelsTimers(t *testing.T) {
	concluded := make(chan string, 1)
	w := NewGiveawayWorker(&stubService{}, func(ctx context.Context, id string) {
		concluded <- id
	})

	w.Schedule(&domain.Giveaway{
		ID:      "g1",
		EndTime: time.Now().Add(50 * time.Millisecond),
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))

	select {
	case <-concluded:
		t.Fatal("timer fired after shutdown")
	case <-time.After(120 * time.Millisecond):
	}
}
