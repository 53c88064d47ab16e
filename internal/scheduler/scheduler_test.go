package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/exile7/ExileBot_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	// Wait for at least 2 runs
	timeout := time.After(time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

// SlowJob sleeps long enough to span several ticks and records how many
// instances of itself ever ran at once.
type SlowJob struct {
	mu      sync.Mutex
	active  int
	maxSeen int
	runs    int
}

func (j *SlowJob) Process(ctx context.Context) error {
	j.mu.Lock()
	j.active++
	if j.active > j.maxSeen {
		j.maxSeen = j.active
	}
	j.runs++
	j.mu.Unlock()

	time.Sleep(80 * time.Millisecond)

	j.mu.Lock()
	j.active--
	j.mu.Unlock()
	return nil
}

func TestSchedulerNeverOverlapsRuns(t *testing.T) {
	// Multiple workers so overlap is possible if nothing prevents it
	pool := worker.NewPool(2, 16)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)

	job := &SlowJob{}
	sched.Schedule(20*time.Millisecond, job)

	time.Sleep(300 * time.Millisecond)
	sched.Stop()

	job.mu.Lock()
	defer job.mu.Unlock()
	assert.Equal(t, 1, job.maxSeen, "runs of the same job must never overlap")
	assert.GreaterOrEqual(t, job.runs, 2)
}
