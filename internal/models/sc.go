package models

import (
	"github.com/befriko/rockphypy/internal/em"
)

// SC sweeps the self-consistent spherical-pore model over porosity.
type SC struct {
	Bulk       float64
	Shear      float64
	Iterations int
}

func NewSC() *SC {
	return &SC{
		Bulk:       DefaultBulk,
		Shear:      DefaultShear,
		Iterations: DefaultIterations,
	}
}

func (m *SC) Name() string { return "sc" }
func (m *SC) Axis() string { return AxisPorosity }

func (m *SC) Eval(phi float64) (float64, float64, error) {
	return em.SCPoint(phi, m.Bulk, m.Shear, m.Iterations)
}

func (m *SC) GetParams() map[string]float64 {
	return map[string]float64{
		"bulk":       m.Bulk,
		"shear":      m.Shear,
		"iterations": float64(m.Iterations),
	}
}

func (m *SC) SetParam(name string, value float64) error {
	switch name {
	case "bulk":
		m.Bulk = value
	case "shear":
		m.Shear = value
	case "iterations":
		m.Iterations = int(value)
	default:
		return errUnknownParam(name)
	}
	return nil
}
