package worker

import (
	"context"
	"sync"
	"time"

	"github.com/exile7/ExileBot_Go/internal/domain"
	"github.com/exile7/ExileBot_Go/internal/giveaway"
	"github.com/exile7/ExileBot_Go/internal/logger"
)

// ConcludeFunc ends a giveaway once its deadline passes. The Discord layer
// supplies one that harvests the reaction pool and announces winners.
type ConcludeFunc func(ctx context.Context, giveawayID string)

// GiveawayWorker schedules one-shot timers that conclude giveaways when
// their end time arrives.
type GiveawayWorker struct {
	service  giveaway.Service
	conclude ConcludeFunc
	mu       sync.Mutex
	timers   map[string]*time.Timer // giveawayID -> timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewGiveawayWorker creates a new GiveawayWorker. A nil conclude falls back
// to ending through the service directly.
func NewGiveawayWorker(service giveaway.Service, conclude ConcludeFunc) *GiveawayWorker {
	w := &GiveawayWorker{
		service:  service,
		conclude: conclude,
		timers:   make(map[string]*time.Timer),
		shutdown: make(chan struct{}),
	}
	if w.conclude == nil {
		w.conclude = func(ctx context.Context, id string) {
			if _, err := service.End(ctx, id); err != nil {
				logger.FromContext(ctx).Error(LogMsgFailedToConcludeGiveaway, "giveaway_id", id, "error", err)
			}
		}
	}
	return w
}

// Start checks for an existing active giveaway on startup and schedules it
func (w *GiveawayWorker) Start() {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	active, err := w.service.GetActive(ctx)
	if err != nil {
		log.Error(LogMsgFailedToCheckActiveGiveawayOnStartup, "error", err)
		return
	}

	if active != nil {
		w.Schedule(active)
	}
}

// Schedule arms a timer for the giveaway's end time. An already-passed end
// time concludes immediately.
func (w *GiveawayWorker) Schedule(g *domain.Giveaway) {
	duration := time.Until(g.EndTime)

	log := logger.FromContext(context.Background())
	log.Info(LogMsgSchedulingGiveawayConclusion, "giveaway_id", g.ID, "duration", duration)

	if duration <= 0 {
		w.run(g.ID)
		return
	}

	w.mu.Lock()
	if existing, ok := w.timers[g.ID]; ok {
		existing.Stop()
		delete(w.timers, g.ID)
	}

	id := g.ID
	timer := time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		w.run(id)

		w.mu.Lock()
		delete(w.timers, id)
		w.mu.Unlock()
	})

	w.timers[id] = timer
	w.mu.Unlock()
}

// Cancel stops a pending timer, if any. Used when a giveaway is ended
// manually before its deadline.
func (w *GiveawayWorker) Cancel(giveawayID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[giveawayID]; ok {
		timer.Stop()
		delete(w.timers, giveawayID)
	}
}

// run concludes a giveaway in a tracked goroutine
func (w *GiveawayWorker) run(giveawayID string) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		logger.FromContext(ctx).Info(LogMsgConcludingScheduledGiveaway, "giveaway_id", giveawayID)
		w.conclude(ctx, giveawayID)
	}()
}

// Shutdown gracefully shuts down the worker, canceling all pending timers
// and waiting for any in-flight conclusions to complete
func (w *GiveawayWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down giveaway worker")

	close(w.shutdown)

	w.mu.Lock()
	for id, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending giveaway conclusion", "giveaway_id", id)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Giveaway worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Giveaway worker shutdown timeout, some conclusions may still be running")
		return ctx.Err()
	}
}
