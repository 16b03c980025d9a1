package metrics

import (
	"github.com/befriko/rockphypy/internal/rockphys"
)

// NonPhysical counts sweep points whose effective moduli are negative or
// non-finite. Self-consistent models produce such values beyond the
// critical porosity without reporting an error; this metric surfaces them.
type NonPhysical struct {
	name       string
	violations int
}

func NewNonPhysical() *NonPhysical {
	return &NonPhysical{name: "non_physical"}
}

func (m *NonPhysical) Name() string { return m.name }

func (m *NonPhysical) Observe(x, k, g float64) {
	if !(rockphys.Moduli{K: k, G: g}).IsPhysical() {
		m.violations++
	}
}

func (m *NonPhysical) Value() float64 {
	return float64(m.violations)
}

func (m *NonPhysical) Reset() {
	m.violations = 0
}
