package models

import (
	"github.com/befriko/rockphypy/internal/gm"
)

// CriticalPorosity sweeps Nur's modified Voigt trend over porosity.
type CriticalPorosity struct {
	Bulk     float64
	Shear    float64
	Critical float64
}

func NewCriticalPorosity() *CriticalPorosity {
	return &CriticalPorosity{
		Bulk:     DefaultBulk,
		Shear:    DefaultShear,
		Critical: DefaultCritical,
	}
}

func (m *CriticalPorosity) Name() string { return "critical_porosity" }
func (m *CriticalPorosity) Axis() string { return AxisPorosity }

func (m *CriticalPorosity) Eval(phi float64) (float64, float64, error) {
	k, g, err := gm.CriticalPorosity(m.Bulk, m.Shear, m.Critical, []float64{phi})
	if err != nil {
		return 0, 0, err
	}
	return k[0], g[0], nil
}

func (m *CriticalPorosity) GetParams() map[string]float64 {
	return map[string]float64{
		"bulk":     m.Bulk,
		"shear":    m.Shear,
		"critical": m.Critical,
	}
}

func (m *CriticalPorosity) SetParam(name string, value float64) error {
	switch name {
	case "bulk":
		m.Bulk = value
	case "shear":
		m.Shear = value
	case "critical":
		m.Critical = value
	default:
		return errUnknownParam(name)
	}
	return nil
}
