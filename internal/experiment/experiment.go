package experiment

import (
	"context"
	"fmt"

	"github.com/befriko/rockphypy/internal/sweep"
)

// Config describes one sweep experiment.
type Config struct {
	Model   string
	Start   float64
	End     float64
	Points  int
	Workers int
	Params  map[string]float64
}

// Experiment couples a model with a sweep configuration.
type Experiment struct {
	cfg    Config
	runner *sweep.Runner
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(model sweep.Model, metrics []sweep.Metric) error {
	if err := ApplyParams(model, e.cfg.Params); err != nil {
		return err
	}
	e.runner = sweep.New(model)
	for _, m := range metrics {
		e.runner.AddMetric(m)
	}
	return nil
}

// ApplyParams sets every parameter the model exposes, skipping keys the
// model does not know. Param bags are shared across model families, so
// foreign keys are expected; a failing set on a known key is not.
func ApplyParams(model sweep.Model, params map[string]float64) error {
	c, ok := model.(sweep.Configurable)
	if !ok {
		return nil
	}
	known := c.GetParams()
	for name, val := range params {
		if _, ok := known[name]; !ok {
			continue
		}
		if err := c.SetParam(name, val); err != nil {
			return err
		}
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sweep.Result, error) {
	if e.runner == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	cfg := sweep.Config{
		Start:   e.cfg.Start,
		End:     e.cfg.End,
		Points:  e.cfg.Points,
		Workers: e.cfg.Workers,
	}
	return e.runner.Run(ctx, cfg)
}

// GetRunner returns the underlying runner for adding observers
func (e *Experiment) GetRunner() *sweep.Runner {
	return e.runner
}
