package sweep

import (
	"context"
	"fmt"
)

// Runner evaluates a model over a sweep grid and feeds metrics and
// observers. A Runner is not safe for concurrent use; the parallelism is
// internal, across grid points.
type Runner struct {
	model     Model
	metrics   []Metric
	observers []Observer
}

func New(model Model) *Runner {
	return &Runner{
		model:     model,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run evaluates the model at every grid point. Points are independent, so
// evaluation is distributed over a fixed worker pool; output ordering
// always matches the grid. Evaluation failures are recorded per point and
// do not abort the sweep.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	grid := cfg.Grid()
	result := &Result{
		X:       grid,
		K:       make([]float64, len(grid)),
		G:       make([]float64, len(grid)),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	pointErrs := make([]error, len(grid))
	ParallelFor(ctx, len(grid), cfg.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			k, g, err := r.model.Eval(grid[i])
			if err != nil {
				pointErrs[i] = PointError{Index: i, X: grid[i], Err: err}
				continue
			}
			result.K[i] = k
			result.G[i] = g
		}
	})

	if err := ctx.Err(); err != nil {
		return result, err
	}

	for i := range grid {
		if pointErrs[i] != nil {
			result.Errors = append(result.Errors, pointErrs[i])
			continue
		}
		for _, m := range r.metrics {
			m.Observe(grid[i], result.K[i], result.G[i])
		}
		for _, obs := range r.observers {
			obs.OnPoint(i, grid[i], result.K[i], result.G[i])
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Points < 2 {
		return fmt.Errorf("points must be at least 2, got %d", cfg.Points)
	}
	if cfg.End <= cfg.Start {
		return fmt.Errorf("end must exceed start, got [%f, %f]", cfg.Start, cfg.End)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", cfg.Workers)
	}
	return nil
}
