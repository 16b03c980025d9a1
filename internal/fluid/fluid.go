// Package fluid provides low-frequency fluid-substitution relations.
package fluid

import (
	"math"

	"github.com/befriko/rockphypy/internal/rockphys"
)

// Gassmann computes the saturated bulk modulus from the dry-frame modulus
// kdry, mineral modulus k0, fluid modulus kf and porosity phi. The shear
// modulus is unaffected by saturation at low frequency and is returned
// unchanged.
func Gassmann(kdry, gdry, k0, kf, phi float64) (float64, float64, error) {
	if k0 <= 0 || math.IsNaN(k0) {
		return 0, 0, rockphys.ErrBulkModulus
	}
	if kdry < 0 || kdry > k0 || math.IsNaN(kdry) {
		return 0, 0, rockphys.ErrBulkModulus
	}
	if kf <= 0 || math.IsNaN(kf) {
		return 0, 0, rockphys.ErrBulkModulus
	}
	if err := rockphys.CheckPorosity(phi); err != nil {
		return 0, 0, err
	}
	if phi == 0 {
		return kdry, gdry, nil
	}

	a := (1 - kdry/k0) * (1 - kdry/k0)
	b := phi/kf + (1-phi)/k0 - kdry/(k0*k0)
	return kdry + a/b, gdry, nil
}

// Wood returns the Reuss (isostress) bulk modulus of a fluid mixture, the
// exact result for a suspension. fractions must sum to one and be aligned
// with k.
func Wood(fractions, k []float64) (float64, error) {
	if len(fractions) != len(k) || len(k) == 0 {
		return 0, rockphys.ErrFractionRange
	}
	sum := 0.0
	inv := 0.0
	for i, f := range fractions {
		if f < 0 || f > 1 || math.IsNaN(f) {
			return 0, rockphys.ErrFractionRange
		}
		if k[i] <= 0 || math.IsNaN(k[i]) {
			return 0, rockphys.ErrBulkModulus
		}
		sum += f
		inv += f / k[i]
	}
	if math.Abs(sum-1) > 1e-9 {
		return 0, rockphys.ErrFractionRange
	}
	return 1 / inv, nil
}
