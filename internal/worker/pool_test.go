package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type mockResult struct {
	id  int
	err error
}

func (r *mockResult) Err() error { return r.err }

type mockJob struct {
	id    int
	err   error
	delay time.Duration
	runs  *atomic.Int32
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.runs != nil {
		j.runs.Add(1)
	}
	if j.delay > 0 {
		select {
		case <-time.After(j.delay):
		case <-ctx.Done():
			return &mockResult{id: j.id, err: ctx.Err()}
		}
	}
	return &mockResult{id: j.id, err: j.err}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var runs atomic.Int32
	pool := NewPool(3)
	pool.Start()

	const n = 20
	for i := 0; i < n; i++ {
		pool.Submit(&mockJob{id: i, runs: &runs})
	}
	results := pool.Wait()

	if len(results) != n {
		t.Fatalf("got %d results, want %d", len(results), n)
	}
	if got := runs.Load(); got != n {
		t.Errorf("jobs executed %d times, want %d", got, n)
	}

	seen := make(map[int]bool)
	for _, r := range results {
		mr := r.(*mockResult)
		if mr.err != nil {
			t.Errorf("job %d: unexpected error %v", mr.id, mr.err)
		}
		if seen[mr.id] {
			t.Errorf("job %d ran twice", mr.id)
		}
		seen[mr.id] = true
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	boom := errors.New("job failed")
	pool.Submit(&mockJob{id: 0})
	pool.Submit(&mockJob{id: 1, err: boom})
	pool.Submit(&mockJob{id: 2})

	failures := 0
	for _, r := range pool.Wait() {
		if r.Err() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("got %d failed results, want 1", failures)
	}
}

func TestPool_MinimumOneWorker(t *testing.T) {
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&mockJob{id: 0})

	if results := pool.Wait(); len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestPool_ShutdownCancelsJobs(t *testing.T) {
	pool := NewPool(1)
	pool.Start()
	pool.Submit(&mockJob{id: 0, delay: 5 * time.Second})

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not cancel the in-flight job")
	}
}
