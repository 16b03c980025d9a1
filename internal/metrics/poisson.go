package metrics

import (
	"math"

	"github.com/befriko/rockphypy/internal/rockphys"
)

// PoissonRange tracks the spread of the effective Poisson ratio across a
// sweep. Non-physical points are skipped.
type PoissonRange struct {
	name    string
	min     float64
	max     float64
	samples int
}

func NewPoissonRange() *PoissonRange {
	return &PoissonRange{name: "poisson_range", min: math.Inf(1), max: math.Inf(-1)}
}

func (m *PoissonRange) Name() string { return m.name }

func (m *PoissonRange) Observe(x, k, g float64) {
	if k <= 0 || g <= 0 {
		return
	}
	nu := rockphys.PoissonRatio(k, g)
	if math.IsNaN(nu) {
		return
	}
	m.min = math.Min(m.min, nu)
	m.max = math.Max(m.max, nu)
	m.samples++
}

func (m *PoissonRange) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.max - m.min
}

func (m *PoissonRange) Reset() {
	m.min = math.Inf(1)
	m.max = math.Inf(-1)
	m.samples = 0
}
