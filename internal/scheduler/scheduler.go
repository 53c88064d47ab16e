package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/exile7/ExileBot_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A tick whose previous
// run is still executing is dropped, so runs of the same job never overlap
// even on a multi-worker pool.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	guarded := &singleFlightJob{job: job}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(guarded)
			case <-s.quit:
				return
			}
		}
	}()
}

// singleFlightJob drops invocations while a previous run is still executing.
type singleFlightJob struct {
	job     worker.Job
	running atomic.Bool
}

func (j *singleFlightJob) Process(ctx context.Context) error {
	if !j.running.CompareAndSwap(false, true) {
		return nil
	}
	defer j.running.Store(false)
	return j.job.Process(ctx)
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
