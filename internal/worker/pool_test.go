package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// echoProcessFunc scores each item by its index.
func echoProcessFunc() ProcessFunc {
	return func(_ context.Context, _ int, item WorkItem) ProcessResult {
		return ProcessResult{Move: item.Move, Index: item.Index, Score: item.Index * 10}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(_ context.Context, _ int, item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: 1}
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

func items(n int) []WorkItem {
	out := make([]WorkItem, n)
	for i := range out {
		out[i] = WorkItem{
			Move:  chess.Move{Piece: chess.W(chess.Pawn), From: chess.Sq(i%8, 6), To: chess.Sq(i%8, 5)},
			Index: i,
		}
	}
	return out
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start(context.Background())

	const numItems = 10
	for _, item := range items(numItems) {
		pool.Submit(item)
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolRunOrdered tests that Run returns results in generation order
// however the workers interleave.
func TestPoolRunOrdered(t *testing.T) {
	variableDelay := func(_ context.Context, _ int, item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Move: item.Move, Index: item.Index, Score: -item.Index}
	}

	pool := NewPool(variableDelay, WithWorkers(4), WithBufferSize(4))
	const numItems = 12
	in := items(numItems)
	results := pool.Run(context.Background(), in)

	if len(results) != numItems {
		t.Fatalf("Run() returned %d results; want %d", len(results), numItems)
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d; want %d", i, r.Index, i)
		}
		if r.Score != -i {
			t.Errorf("results[%d].Score = %d; want %d", i, r.Score, -i)
		}
		if r.Move != in[i].Move {
			t.Errorf("results[%d].Move = %v; want %v", i, r.Move, in[i].Move)
		}
	}
}

// TestPoolWorkerIDs tests that worker ids stay within [0, workers).
func TestPoolWorkerIDs(t *testing.T) {
	const workers = 3
	var bad int32
	check := func(_ context.Context, id int, item WorkItem) ProcessResult {
		if id < 0 || id >= workers {
			atomic.AddInt32(&bad, 1)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(check, WithWorkers(workers))
	pool.Run(context.Background(), items(30))

	if got := atomic.LoadInt32(&bad); got != 0 {
		t.Errorf("%d items saw an out-of-range worker id", got)
	}
}

// TestPoolCancelled tests that a cancelled context skips queued work.
func TestPoolCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(2))
	results := pool.Run(ctx, items(20))

	if len(results) != 0 {
		t.Errorf("Run() with cancelled context returned %d results; want 0", len(results))
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed = %d; want 0", got)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32
	slow := func(_ context.Context, _ int, item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start(context.Background())

	const numItems = 50
	for _, item := range items(numItems) {
		pool.Submit(item)
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(echoProcessFunc(), WithWorkers(2))
	pool.Start(context.Background())

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []PoolOption
		wantWork   int
		wantBuffer int
	}{
		{"defaults", nil, 1, 64},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 64},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 64},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pool := NewPool(echoProcessFunc(), tt.opts...)
			if pool.numWorkers != tt.wantWork {
				t.Errorf("numWorkers = %d; want %d", pool.numWorkers, tt.wantWork)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	results := pool.Run(context.Background(), items(100))

	if len(results) != 100 {
		t.Errorf("results = %d; want 100", len(results))
	}
	if got := atomic.LoadInt32(&counter); got != 100 {
		t.Errorf("processed = %d; want 100", got)
	}
}
