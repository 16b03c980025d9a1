package em

import (
	"math"

	"github.com/befriko/rockphypy/internal/rockphys"
)

// SwissCheese computes dry-rock moduli for a dilute suspension of spherical
// pores in an unbounded solid (the non-interacting "Swiss cheese" model):
//
//	1/K* = 1/Ks (1 + (1 + 3 Ks/(4 Gs)) phi)
//	1/G* = 1/Gs (1 + (15 Ks + 20 Gs)/(9 Ks + 8 Gs) phi)
//
// Output slices are index-aligned with phi.
func SwissCheese(ks, gs float64, phi []float64) ([]float64, []float64, error) {
	if err := rockphys.CheckSolid(ks, gs); err != nil {
		return nil, nil, err
	}
	if err := rockphys.CheckPorosities(phi); err != nil {
		return nil, nil, err
	}

	kdry := make([]float64, len(phi))
	gdry := make([]float64, len(phi))
	for i, p := range phi {
		kdry[i], gdry[i] = swissCheesePoint(ks, gs, p)
	}
	return kdry, gdry, nil
}

// SwissCheesePoint evaluates the non-interacting spherical-pore model at a
// single porosity.
func SwissCheesePoint(ks, gs, phi float64) (float64, float64, error) {
	if err := rockphys.CheckSolid(ks, gs); err != nil {
		return 0, 0, err
	}
	if err := rockphys.CheckPorosity(phi); err != nil {
		return 0, 0, err
	}
	k, g := swissCheesePoint(ks, gs, phi)
	return k, g, nil
}

func swissCheesePoint(ks, gs, phi float64) (float64, float64) {
	k := ks / (1 + (1+3*ks/(4*gs))*phi)
	g := gs / (1 + (15*ks+20*gs)/(9*ks+8*gs)*phi)
	return k, g
}

// DiluteCrack computes dry-rock moduli for a non-interacting distribution
// of randomly oriented penny-shaped cracks with crack density crd:
//
//	1/K* = 1/Ks (1 + 16/9 (1-v^2)/(1-2v) crd)
//	1/G* = 1/Gs (1 + 32 (1-v)(5-v)/(45 (2-v)) crd)
//
// where v is the solid Poisson ratio.
func DiluteCrack(ks, gs float64, crd []float64) ([]float64, []float64, error) {
	if err := rockphys.CheckSolid(ks, gs); err != nil {
		return nil, nil, err
	}
	for _, e := range crd {
		if e < 0 || math.IsNaN(e) {
			return nil, nil, rockphys.ErrCrackDensity
		}
	}

	nu := rockphys.PoissonRatio(ks, gs)
	keff := make([]float64, len(crd))
	geff := make([]float64, len(crd))
	for i, e := range crd {
		keff[i] = ks / (1 + 16*(1-nu*nu)*e/(9*(1-2*nu)))
		geff[i] = gs / (1 + 32*(1-nu)*(5-nu)*e/(45*(2-nu)))
	}
	return keff, geff, nil
}

// OConnellBudiansky computes effective moduli of a medium with randomly
// oriented dry penny-shaped cracks after O'Connell and Budiansky (1974),
// the self-consistent counterpart of [DiluteCrack]. The effective Poisson
// ratio is approximated as v* = v (1 - 16 crd / 9).
func OConnellBudiansky(ks, gs float64, crd []float64) ([]float64, []float64, error) {
	if err := rockphys.CheckSolid(ks, gs); err != nil {
		return nil, nil, err
	}
	for _, e := range crd {
		if e < 0 || math.IsNaN(e) {
			return nil, nil, rockphys.ErrCrackDensity
		}
	}

	nu := rockphys.PoissonRatio(ks, gs)
	keff := make([]float64, len(crd))
	geff := make([]float64, len(crd))
	for i, e := range crd {
		nuEff := nu * (1 - 16*e/9)
		keff[i] = ks * (1 - 16*(1-nuEff*nuEff)*e/(9*(1-2*nuEff)))
		geff[i] = gs * (1 - 32*(1-nuEff)*(5-nuEff)*e/(45*(2-nuEff)))
	}
	return keff, geff, nil
}
