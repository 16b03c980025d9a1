package models

import (
	"fmt"

	"github.com/befriko/rockphypy/internal/fluid"
	"github.com/befriko/rockphypy/internal/sweep"
)

// Saturated wraps a dry porosity-axis model and applies Gassmann fluid
// substitution at every grid point. Isolated-pore models saturated this way
// represent the low-frequency limit; the high-frequency alternative is to
// set the inclusion shear modulus to zero inside the dry model itself.
type Saturated struct {
	Dry     sweep.Model
	Mineral float64 // mineral bulk modulus, GPa
	Fluid   float64 // pore-fluid bulk modulus, GPa
}

func NewSaturated(dry sweep.Model, mineral, kf float64) (*Saturated, error) {
	if dry.Axis() != AxisPorosity {
		return nil, fmt.Errorf("saturated: dry model %s sweeps %s, want %s",
			dry.Name(), dry.Axis(), AxisPorosity)
	}
	return &Saturated{Dry: dry, Mineral: mineral, Fluid: kf}, nil
}

func (m *Saturated) Name() string { return m.Dry.Name() + "_sat" }
func (m *Saturated) Axis() string { return AxisPorosity }

func (m *Saturated) Eval(phi float64) (float64, float64, error) {
	kdry, gdry, err := m.Dry.Eval(phi)
	if err != nil {
		return 0, 0, err
	}
	return fluid.Gassmann(kdry, gdry, m.Mineral, m.Fluid, phi)
}

func (m *Saturated) GetParams() map[string]float64 {
	params := map[string]float64{
		"mineral": m.Mineral,
		"fluid":   m.Fluid,
	}
	if c, ok := m.Dry.(sweep.Configurable); ok {
		for k, v := range c.GetParams() {
			params[k] = v
		}
	}
	return params
}

func (m *Saturated) SetParam(name string, value float64) error {
	switch name {
	case "mineral":
		m.Mineral = value
	case "fluid":
		m.Fluid = value
	default:
		if c, ok := m.Dry.(sweep.Configurable); ok {
			return c.SetParam(name, value)
		}
		return errUnknownParam(name)
	}
	return nil
}
