package em

import (
	"math"

	"github.com/befriko/rockphypy/internal/rockphys"
)

// Voigt returns the Voigt (isostrain) average modulus of a two-phase
// mixture. f is the volume fraction of phase 1.
func Voigt(f, m1, m2 float64) (float64, error) {
	if f < 0 || f > 1 || math.IsNaN(f) {
		return 0, rockphys.ErrFractionRange
	}
	return f*m1 + (1-f)*m2, nil
}

// Reuss returns the Reuss (isostress) average modulus of a two-phase
// mixture. A zero modulus in either phase gives zero, the suspension limit.
func Reuss(f, m1, m2 float64) (float64, error) {
	if f < 0 || f > 1 || math.IsNaN(f) {
		return 0, rockphys.ErrFractionRange
	}
	if m1 == 0 || m2 == 0 {
		return 0, nil
	}
	return 1 / (f/m1 + (1-f)/m2), nil
}

// VoigtReussHill returns the arithmetic mean of the Voigt and Reuss
// averages, a common single-value estimate for mineral mixtures.
func VoigtReussHill(f, m1, m2 float64) (float64, error) {
	v, err := Voigt(f, m1, m2)
	if err != nil {
		return 0, err
	}
	r, err := Reuss(f, m1, m2)
	if err != nil {
		return 0, err
	}
	return (v + r) / 2, nil
}

// Bound selects which Hashin-Shtrikman bound to evaluate.
type Bound string

const (
	Upper Bound = "upper"
	Lower Bound = "lower"
)

// HS returns the Hashin-Shtrikman bound on bulk and shear moduli of a
// two-phase mixture. f is the volume fraction of phase 1; for the upper
// bound phase 1 should be the stiff phase, for the lower bound the soft
// phase terms dominate. A pore phase is modeled with zero moduli.
func HS(f, k1, k2, g1, g2 float64, bound Bound) (float64, float64, error) {
	if f < 0 || f > 1 || math.IsNaN(f) {
		return 0, 0, rockphys.ErrFractionRange
	}
	switch bound {
	case Upper:
		k := k1 + (1-f)/(1/(k2-k1)+f/(k1+4*g1/3))
		zeta := g1 / 6 * (9*k1 + 8*g1) / (k1 + 2*g1)
		g := g1 + (1-f)/(1/(g2-g1)+f/(g1+zeta))
		return k, g, nil
	case Lower:
		if f == 1 {
			// pure phase 1; the general form hits 0/0 when phase 2 is empty
			return k1, g1, nil
		}
		k := k2 + f/(1/(k1-k2)+(1-f)/(k2+4*g2/3))
		var g float64
		if g2 == 0 {
			// dry-pore lower bound collapses to zero shear stiffness
			g = 0
		} else {
			zeta := g2 / 6 * (9*k2 + 8*g2) / (k2 + 2*g2)
			g = g2 + f/(1/(g1-g2)+(1-f)/(g2+zeta))
		}
		return k, g, nil
	default:
		return 0, 0, rockphys.ErrBound
	}
}
