package sweep

import (
	"context"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// minChunk is the smallest per-worker slice worth spawning a goroutine for;
// closed-form evaluations are cheap, so tiny grids run inline.
const minChunk = 16

// Linspace returns n evenly spaced values over [start, end], endpoints
// included.
func Linspace(start, end float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, end)
}

// ParallelFor splits [0, n) into contiguous chunks and runs fn on each from
// a fixed pool of workers. workers <= 0 selects GOMAXPROCS. Chunks started
// after ctx is canceled are skipped; callers should check ctx.Err() to tell
// a truncated result apart from a complete one.
func ParallelFor(ctx context.Context, n, workers int, fn func(start, end int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n <= minChunk || workers == 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Batch evaluates several models over the same grid concurrently, one
// runner per model. Results are index-aligned with models.
func Batch(ctx context.Context, models []Model, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(models))
	errs := make([]error, len(models))

	var wg sync.WaitGroup
	for i, m := range models {
		wg.Add(1)
		go func(idx int, model Model) {
			defer wg.Done()
			results[idx], errs[idx] = New(model).Run(ctx, cfg)
		}(i, m)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
