package sweep

import (
	"fmt"
	"math"
)

// Model is a rock-physics model evaluated point-wise along a single sweep
// axis (porosity, pressure or crack density).
type Model interface {
	Name() string
	Axis() string
	Eval(x float64) (k, g float64, err error)
}

// Configurable is implemented by models whose parameters can be adjusted at
// runtime, e.g. by the live explorer.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Metric accumulates a scalar diagnostic over the points of a sweep.
type Metric interface {
	Name() string
	Observe(x, k, g float64)
	Value() float64
	Reset()
}

// Observer is notified after each evaluated point, in grid order.
type Observer interface {
	OnPoint(i int, x, k, g float64)
}

// Config describes the sweep grid.
type Config struct {
	Start   float64
	End     float64
	Points  int
	Workers int
}

// DefaultConfig returns a porosity sweep over [0, 0.5) with 100 points.
func DefaultConfig() Config {
	return Config{
		Start:  0,
		End:    0.5,
		Points: 100,
	}
}

// Grid returns the evenly spaced sample points of the sweep, endpoints
// included.
func (c Config) Grid() []float64 {
	return Linspace(c.Start, c.End, c.Points)
}

// Result holds the moduli curves of one sweep, index-aligned with X.
type Result struct {
	X       []float64
	K       []float64
	G       []float64
	Metrics map[string]float64
	Errors  []error
}

// IsValid reports whether every sampled modulus is finite.
func (r *Result) IsValid() bool {
	for i := range r.K {
		if math.IsNaN(r.K[i]) || math.IsInf(r.K[i], 0) ||
			math.IsNaN(r.G[i]) || math.IsInf(r.G[i], 0) {
			return false
		}
	}
	return true
}

// PointError records a model evaluation failure at one grid point.
type PointError struct {
	Index int
	X     float64
	Err   error
}

func (e PointError) Error() string {
	return fmt.Sprintf("point %d (x=%.4f): %v", e.Index, e.X, e.Err)
}

func (e PointError) Unwrap() error {
	return e.Err
}
