package worker

import (
	"context"
	"sync"

	"github.com/ppiankov/fnoltriage/internal/model"
)

// ProcessFunc converts one document file into a triage result. Implemented
// by the CLI over the doc converter and the pipeline.
type ProcessFunc func(ctx context.Context, path string) (*model.Result, error)

// FileResult pairs a document path with its triage outcome.
type FileResult struct {
	Path   string
	Result *model.Result
	Err    error
}

// Pool processes document files concurrently with a bounded number of
// workers. Each document is independent, so workers share nothing.
type Pool struct {
	workers int
	fn      ProcessFunc
}

// NewPool creates a pool. Worker counts below one are clamped to one.
func NewPool(workers int, fn ProcessFunc) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers, fn: fn}
}

// Run processes all paths and returns results in input order. A canceled
// context stops feeding new jobs; in-flight documents finish and documents
// never started are reported with the context error.
func (p *Pool) Run(ctx context.Context, paths []string) []FileResult {
	results := make([]FileResult, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := p.fn(ctx, paths[i])
				results[i] = FileResult{Path: paths[i], Result: res, Err: err}
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case <-ctx.Done():
			results[i] = FileResult{Path: paths[i], Err: ctx.Err()}
			for j := i + 1; j < len(paths); j++ {
				results[j] = FileResult{Path: paths[j], Err: ctx.Err()}
			}
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
