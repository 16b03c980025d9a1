package models

import (
	"github.com/befriko/rockphypy/internal/em"
)

// SwissCheese sweeps the non-interacting spherical-pore model over
// porosity.
type SwissCheese struct {
	Bulk  float64
	Shear float64
}

func NewSwissCheese() *SwissCheese {
	return &SwissCheese{Bulk: DefaultBulk, Shear: DefaultShear}
}

func (m *SwissCheese) Name() string { return "swiss_cheese" }
func (m *SwissCheese) Axis() string { return AxisPorosity }

func (m *SwissCheese) Eval(phi float64) (float64, float64, error) {
	return em.SwissCheesePoint(m.Bulk, m.Shear, phi)
}

func (m *SwissCheese) GetParams() map[string]float64 {
	return map[string]float64{"bulk": m.Bulk, "shear": m.Shear}
}

func (m *SwissCheese) SetParam(name string, value float64) error {
	switch name {
	case "bulk":
		m.Bulk = value
	case "shear":
		m.Shear = value
	default:
		return errUnknownParam(name)
	}
	return nil
}
