// Package gm provides granular-contact models for unconsolidated grain
// packs. Moduli are in GPa, confining pressure in MPa.
package gm

import (
	"math"

	"github.com/befriko/rockphypy/internal/rockphys"
)

// HertzMindlin computes the effective dry moduli of a random identical-
// sphere pack at critical porosity phic under hydrostatic confining
// pressure p (MPa). cn is the coordination number (average contacts per
// grain). f in [0, 1] is the no-slip contact fraction of Bachrach and
// Avseth (2008): f=1 recovers the Mindlin no-slip shear modulus, f=0 the
// frictionless (perfect slip) limit. The bulk modulus does not depend on f.
func HertzMindlin(k0, g0, phic, cn, p, f float64) (float64, float64, error) {
	if err := checkPack(k0, g0, phic, cn, p, f); err != nil {
		return 0, 0, err
	}

	sigma := p / 1e3 // MPa to GPa
	nu := rockphys.PoissonRatio(k0, g0)
	c2 := cn * cn * (1 - phic) * (1 - phic) * g0 * g0

	khm := math.Cbrt(sigma * c2 / (18 * math.Pi * math.Pi * (1 - nu) * (1 - nu)))
	shear := (2 + 3*f - nu*(1+3*f)) / (5 * (2 - nu))
	ghm := shear * math.Cbrt(sigma*3*c2/(2*math.Pi*math.Pi*(1-nu)*(1-nu)))
	return khm, ghm, nil
}

// Walton computes the effective dry moduli of a random sphere pack after
// Walton (1987), written in terms of the grain Lame parameters. The shear
// modulus mixes the infinitely rough and infinitely smooth limits linearly
// with the no-slip fraction f, which makes Walton and [HertzMindlin] agree
// exactly for equal inputs.
func Walton(k0, g0, phic, cn, p, f float64) (float64, float64, error) {
	if err := checkPack(k0, g0, phic, cn, p, f); err != nil {
		return 0, 0, err
	}

	sigma := p / 1e3
	lam := k0 - 2*g0/3
	b := (1/g0 + 1/(g0+lam)) / (4 * math.Pi)
	c := (1/g0 - 1/(g0+lam)) / (4 * math.Pi)

	kw := math.Cbrt(3*(1-phic)*(1-phic)*cn*cn*sigma/(math.Pi*math.Pi*math.Pi*math.Pi*b*b)) / 6
	gRough := 3 * kw / 5 * (5*b + c) / (2*b + c)
	gSmooth := 3 * kw / 5
	gw := f*gRough + (1-f)*gSmooth
	return kw, gw, nil
}

// CriticalPorosity returns the dry-rock trend of Nur's critical-porosity
// model, a modified Voigt average between the mineral point at phi=0 and
// zero stiffness at phi=phic. Porosities at or above phic return zero.
func CriticalPorosity(k0, g0, phic float64, phi []float64) ([]float64, []float64, error) {
	if err := rockphys.CheckSolid(k0, g0); err != nil {
		return nil, nil, err
	}
	if phic <= 0 || phic >= 1 || math.IsNaN(phic) {
		return nil, nil, rockphys.ErrPorosityRange
	}
	if err := rockphys.CheckPorosities(phi); err != nil {
		return nil, nil, err
	}

	kdry := make([]float64, len(phi))
	gdry := make([]float64, len(phi))
	for i, p := range phi {
		if p >= phic {
			continue
		}
		kdry[i] = k0 * (1 - p/phic)
		gdry[i] = g0 * (1 - p/phic)
	}
	return kdry, gdry, nil
}

func checkPack(k0, g0, phic, cn, p, f float64) error {
	if err := rockphys.CheckSolid(k0, g0); err != nil {
		return err
	}
	if err := rockphys.CheckPorosity(phic); err != nil {
		return err
	}
	if p < 0 || math.IsNaN(p) {
		return rockphys.ErrPressure
	}
	if f < 0 || f > 1 || math.IsNaN(f) {
		return rockphys.ErrFractionRange
	}
	if cn <= 0 || math.IsNaN(cn) {
		return rockphys.ErrCoordination
	}
	return nil
}
