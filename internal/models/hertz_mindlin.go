package models

import (
	"github.com/befriko/rockphypy/internal/gm"
)

// HertzMindlin sweeps the Hertz-Mindlin grain-pack model over confining
// pressure.
type HertzMindlin struct {
	Bulk         float64 // grain bulk modulus
	Shear        float64 // grain shear modulus
	Critical     float64 // critical porosity of the pack
	Coordination float64 // average contacts per grain
	Slip         float64 // no-slip contact fraction in [0, 1]
}

func NewHertzMindlin() *HertzMindlin {
	return &HertzMindlin{
		Bulk:         QuartzBulk,
		Shear:        QuartzShear,
		Critical:     DefaultCritical,
		Coordination: DefaultCoordNumber,
		Slip:         1.0,
	}
}

func (m *HertzMindlin) Name() string { return "hertz_mindlin" }
func (m *HertzMindlin) Axis() string { return AxisPressure }

func (m *HertzMindlin) Eval(p float64) (float64, float64, error) {
	return gm.HertzMindlin(m.Bulk, m.Shear, m.Critical, m.Coordination, p, m.Slip)
}

func (m *HertzMindlin) GetParams() map[string]float64 {
	return map[string]float64{
		"bulk":         m.Bulk,
		"shear":        m.Shear,
		"critical":     m.Critical,
		"coordination": m.Coordination,
		"slip":         m.Slip,
	}
}

func (m *HertzMindlin) SetParam(name string, value float64) error {
	switch name {
	case "bulk":
		m.Bulk = value
	case "shear":
		m.Shear = value
	case "critical":
		m.Critical = value
	case "coordination":
		m.Coordination = value
	case "slip":
		m.Slip = value
	default:
		return errUnknownParam(name)
	}
	return nil
}

// Walton sweeps Walton's grain-pack model over confining pressure. With
// equal parameters it matches [HertzMindlin] exactly.
type Walton struct {
	Bulk         float64
	Shear        float64
	Critical     float64
	Coordination float64
	Slip         float64
}

func NewWalton() *Walton {
	return &Walton{
		Bulk:         QuartzBulk,
		Shear:        QuartzShear,
		Critical:     DefaultCritical,
		Coordination: DefaultCoordNumber,
		Slip:         1.0,
	}
}

func (m *Walton) Name() string { return "walton" }
func (m *Walton) Axis() string { return AxisPressure }

func (m *Walton) Eval(p float64) (float64, float64, error) {
	return gm.Walton(m.Bulk, m.Shear, m.Critical, m.Coordination, p, m.Slip)
}

func (m *Walton) GetParams() map[string]float64 {
	return map[string]float64{
		"bulk":         m.Bulk,
		"shear":        m.Shear,
		"critical":     m.Critical,
		"coordination": m.Coordination,
		"slip":         m.Slip,
	}
}

func (m *Walton) SetParam(name string, value float64) error {
	switch name {
	case "bulk":
		m.Bulk = value
	case "shear":
		m.Shear = value
	case "critical":
		m.Critical = value
	case "coordination":
		m.Coordination = value
	case "slip":
		m.Slip = value
	default:
		return errUnknownParam(name)
	}
	return nil
}
