package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(ctx context.Context, job Job) Result {
		return Result{Index: job.Index, FEN: job.FEN}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(ctx context.Context, job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Index: job.Index, FEN: job.FEN}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func submitAll(t *testing.T, pool *Pool, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := pool.Submit(context.Background(), Job{Index: i}); err != nil {
			t.Fatalf("Submit(%d): %v", i, err)
		}
	}
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start(context.Background())

	const numItems = 10
	submitAll(t, pool, numItems)
	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32
	slow := func(ctx context.Context, job Job) Result {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return Result{Index: job.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start(context.Background())

	const numItems = 50
	submitAll(t, pool, numItems)

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	release := make(chan struct{})
	blocked := func(ctx context.Context, job Job) Result {
		<-release
		return Result{Index: job.Index}
	}

	pool := NewPool(blocked, WithWorkers(1), WithBufferSize(2))
	pool.Start(context.Background())

	if !pool.TrySubmit(Job{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(Job{Index: 1}) {
		t.Error("second TrySubmit should succeed")
	}
	// The third depends on whether the worker has taken a job yet.
	pool.TrySubmit(Job{Index: 2})

	pool.Stop()
	if pool.TrySubmit(Job{Index: 3}) {
		t.Error("TrySubmit after Stop should return false")
	}

	close(release)
	go pool.Close()
	collectResults(pool)
}

// TestPoolSubmitCancelled tests that Submit gives up on a done context.
func TestPoolSubmitCancelled(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithBufferSize(1))
	// Not started: the buffer fills after one job.
	if err := pool.Submit(context.Background(), Job{}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := pool.Submit(ctx, Job{Index: 1}); err != context.Canceled {
		t.Errorf("Submit on full pool = %v; want context.Canceled", err)
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelay := func(ctx context.Context, job Job) Result {
		if job.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return Result{Index: job.Index}
	}

	pool := NewPool(variableDelay, WithWorkers(4), WithBufferSize(20))
	pool.Start(context.Background())

	const numItems = 10
	submitAll(t, pool, numItems)
	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start(context.Background())

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(context.Background(), Job{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
