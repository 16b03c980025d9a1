package models

import (
	"github.com/befriko/rockphypy/internal/em"
)

// Voigt sweeps the Voigt bound for a solid-void mixture over porosity.
type Voigt struct {
	Bulk  float64
	Shear float64
}

func NewVoigt() *Voigt {
	return &Voigt{Bulk: DefaultBulk, Shear: DefaultShear}
}

func (m *Voigt) Name() string { return "voigt" }
func (m *Voigt) Axis() string { return AxisPorosity }

func (m *Voigt) Eval(phi float64) (float64, float64, error) {
	k, err := em.Voigt(1-phi, m.Bulk, 0)
	if err != nil {
		return 0, 0, err
	}
	g, err := em.Voigt(1-phi, m.Shear, 0)
	if err != nil {
		return 0, 0, err
	}
	return k, g, nil
}

func (m *Voigt) GetParams() map[string]float64 {
	return map[string]float64{"bulk": m.Bulk, "shear": m.Shear}
}

func (m *Voigt) SetParam(name string, value float64) error {
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

// HSBound sweeps a Hashin-Shtrikman bound for a dry porous solid over
// porosity.
type HSBound struct {
	Bulk  float64
	Shear float64
	Upper bool
}

func NewHSUpper() *HSBound {
	return &HSBound{Bulk: DefaultBulk, Shear: DefaultShear, Upper: true}
}

func NewHSLower() *HSBound {
	return &HSBound{Bulk: DefaultBulk, Shear: DefaultShear}
}

func (m *HSBound) Name() string {
	if m.Upper {
		return "hs_upper"
	}
	return "hs_lower"
}

func (m *HSBound) Axis() string { return AxisPorosity }

func (m *HSBound) Eval(phi float64) (float64, float64, error) {
	bound := em.Lower
	if m.Upper {
		bound = em.Upper
	}
	return em.HS(1-phi, m.Bulk, 0, m.Shear, 0, bound)
}

func (m *HSBound) GetParams() map[string]float64 {
	return map[string]float64{"bulk": m.Bulk, "shear": m.Shear}
}

func (m *HSBound) SetParam(name string, value float64) error {
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
