package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ppiankov/fnoltriage/internal/model"
)

func TestPool_ProcessesAllPaths(t *testing.T) {
	var calls atomic.Int64
	pool := NewPool(4, func(ctx context.Context, path string) (*model.Result, error) {
		calls.Add(1)
		return &model.Result{RecommendedRoute: model.RouteStandard}, nil
	})

	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("doc-%02d.txt", i)
	}

	results := pool.Run(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	if calls.Load() != int64(len(paths)) {
		t.Errorf("expected %d calls, got %d", len(paths), calls.Load())
	}
	// Results keep input order regardless of completion order.
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d: expected path %s, got %s", i, paths[i], res.Path)
		}
		if res.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, res.Err)
		}
	}
}

func TestPool_ErrorsDoNotStopTheBatch(t *testing.T) {
	pool := NewPool(2, func(ctx context.Context, path string) (*model.Result, error) {
		if path == "bad.txt" {
			return nil, fmt.Errorf("unreadable")
		}
		return &model.Result{RecommendedRoute: model.RouteStandard}, nil
	})

	results := pool.Run(context.Background(), []string{"a.txt", "bad.txt", "b.txt"})

	if results[1].Err == nil {
		t.Error("expected error for bad.txt")
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("expected other documents to succeed: %v, %v", results[0].Err, results[2].Err)
	}
}

func TestPool_ClampsWorkerCount(t *testing.T) {
	for _, workers := range []int{0, -1} {
		pool := NewPool(workers, func(ctx context.Context, path string) (*model.Result, error) {
			return &model.Result{}, nil
		})
		if pool.workers != 1 {
			t.Errorf("NewPool(%d): expected 1 worker, got %d", workers, pool.workers)
		}
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	workers := 3
	var current, peak atomic.Int64

	pool := NewPool(workers, func(ctx context.Context, path string) (*model.Result, error) {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		defer current.Add(-1)
		return &model.Result{}, nil
	})

	paths := make([]string, 50)
	for i := range paths {
		paths[i] = fmt.Sprintf("doc-%02d.txt", i)
	}
	pool.Run(context.Background(), paths)

	if p := peak.Load(); p > int64(workers) {
		t.Errorf("peak concurrency %d exceeded %d workers", p, workers)
	}
}

func TestPool_CanceledContextStopsFeeding(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(2, func(ctx context.Context, path string) (*model.Result, error) {
		return &model.Result{}, nil
	})

	paths := make([]string, 64)
	for i := range paths {
		paths[i] = fmt.Sprintf("doc-%02d.txt", i)
	}
	results := pool.Run(ctx, paths)

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	canceled := 0
	for _, res := range results {
		if res.Err == context.Canceled {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("expected canceled context to surface errors for unstarted documents")
	}
}
