package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// countJob counts executions and optionally fails
type countJob struct {
	executed *atomic.Int64
	fail     bool
	delay    time.Duration
}

type countResult struct {
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	if j.delay > 0 {
		select {
		case <-ctx.Done():
			return &countResult{err: ctx.Err()}
		case <-time.After(j.delay):
		}
	}
	j.executed.Add(1)
	if j.fail {
		return &countResult{err: errors.New("job failed")}
	}
	return &countResult{}
}

func TestPool_AllJobsComplete(t *testing.T) {
	pool := NewPool(context.Background(), 3)
	pool.Start()

	var executed atomic.Int64
	const jobs = 10

	go func() {
		for i := 0; i < jobs; i++ {
			pool.Submit(&countJob{executed: &executed})
		}
		pool.Close()
	}()

	count := 0
	for result := range pool.Results() {
		if err := result.GetError(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		count++
	}

	if count != jobs {
		t.Errorf("expected %d results, got %d", jobs, count)
	}
	if executed.Load() != jobs {
		t.Errorf("expected %d executions, got %d", jobs, executed.Load())
	}
}

func TestPool_SingleWorker(t *testing.T) {
	pool := NewPool(context.Background(), 1)
	pool.Start()

	var executed atomic.Int64
	go func() {
		for i := 0; i < 5; i++ {
			pool.Submit(&countJob{executed: &executed})
		}
		pool.Close()
	}()

	count := 0
	for range pool.Results() {
		count++
	}
	if count != 5 {
		t.Errorf("expected 5 results, got %d", count)
	}
}

func TestPool_CancelStopsQueuedJobs(t *testing.T) {
	pool := NewPool(context.Background(), 1)
	pool.Start()

	var executed atomic.Int64
	const jobs = 20

	go func() {
		for i := 0; i < jobs; i++ {
			pool.Submit(&countJob{executed: &executed, delay: 5 * time.Millisecond})
		}
		pool.Close()
	}()

	// Take one result then cancel; queued jobs must never start
	<-pool.Results()
	pool.Cancel()

	for range pool.Results() {
	}

	if executed.Load() >= jobs {
		t.Errorf("expected cancellation to skip queued jobs, all %d ran", jobs)
	}
}

func TestPool_ZeroWorkersClampedToOne(t *testing.T) {
	pool := NewPool(context.Background(), 0)
	pool.Start()

	var executed atomic.Int64
	go func() {
		pool.Submit(&countJob{executed: &executed})
		pool.Close()
	}()

	for range pool.Results() {
	}

	if executed.Load() != 1 {
		t.Errorf("expected 1 execution, got %d", executed.Load())
	}
}
