package models

import (
	"github.com/befriko/rockphypy/internal/em"
)

// DiluteCrack sweeps the non-interacting randomly oriented crack model over
// crack density.
type DiluteCrack struct {
	Bulk  float64
	Shear float64
}

func NewDiluteCrack() *DiluteCrack {
	return &DiluteCrack{Bulk: DefaultBulk, Shear: DefaultShear}
}

func (m *DiluteCrack) Name() string { return "dilute_crack" }
func (m *DiluteCrack) Axis() string { return AxisCrackDensity }

func (m *DiluteCrack) Eval(crd float64) (float64, float64, error) {
	k, g, err := em.DiluteCrack(m.Bulk, m.Shear, []float64{crd})
	if err != nil {
		return 0, 0, err
	}
	return k[0], g[0], nil
}

func (m *DiluteCrack) GetParams() map[string]float64 {
	return map[string]float64{"bulk": m.Bulk, "shear": m.Shear}
}

func (m *DiluteCrack) SetParam(name string, value float64) error {
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

// OConnellBudiansky sweeps the self-consistent crack model over crack
// density.
type OConnellBudiansky struct {
	Bulk  float64
	Shear float64
}

func NewOConnellBudiansky() *OConnellBudiansky {
	return &OConnellBudiansky{Bulk: DefaultBulk, Shear: DefaultShear}
}

func (m *OConnellBudiansky) Name() string { return "oconnell_budiansky" }
func (m *OConnellBudiansky) Axis() string { return AxisCrackDensity }

func (m *OConnellBudiansky) Eval(crd float64) (float64, float64, error) {
	k, g, err := em.OConnellBudiansky(m.Bulk, m.Shear, []float64{crd})
	if err != nil {
		return 0, 0, err
	}
	return k[0], g[0], nil
}

func (m *OConnellBudiansky) GetParams() map[string]float64 {
	return map[string]float64{"bulk": m.Bulk, "shear": m.Shear}
}

func (m *OConnellBudiansky) SetParam(name string, value float64) error {
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
