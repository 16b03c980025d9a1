package rockphys

import "math"

// Moduli holds an isotropic elastic modulus pair in GPa.
type Moduli struct {
	K float64 // bulk modulus
	G float64 // shear modulus
}

// IsValid reports whether both moduli are finite.
func (m Moduli) IsValid() bool {
	return !math.IsNaN(m.K) && !math.IsInf(m.K, 0) &&
		!math.IsNaN(m.G) && !math.IsInf(m.G, 0)
}

// IsPhysical reports whether both moduli are finite and non-negative.
func (m Moduli) IsPhysical() bool {
	return m.IsValid() && m.K >= 0 && m.G >= 0
}

// Poisson returns the Poisson ratio implied by the modulus pair.
func (m Moduli) Poisson() float64 {
	return PoissonRatio(m.K, m.G)
}

// PoissonRatio computes the Poisson ratio of an isotropic solid from its
// bulk and shear moduli.
func PoissonRatio(k, g float64) float64 {
	return (3*k - 2*g) / (2 * (3*k + g))
}

// Vp returns the P-wave velocity in km/s for moduli in GPa and density rho
// in g/cm3.
func Vp(k, g, rho float64) float64 {
	return math.Sqrt((k + 4*g/3) / rho)
}

// Vs returns the S-wave velocity in km/s for shear modulus in GPa and
// density rho in g/cm3.
func Vs(g, rho float64) float64 {
	return math.Sqrt(g / rho)
}

// ImpedanceP returns the P-wave acoustic impedance (rho*Vp).
func ImpedanceP(k, g, rho float64) float64 {
	return rho * Vp(k, g, rho)
}

// CheckSolid validates a solid-phase modulus pair. The shear modulus must be
// strictly positive: the inclusion-model shear updates divide by it.
func CheckSolid(ks, gs float64) error {
	if ks <= 0 || math.IsNaN(ks) {
		return ErrBulkModulus
	}
	if gs <= 0 || math.IsNaN(gs) {
		return ErrShearModulus
	}
	return nil
}

// CheckDensity validates a bulk density for velocity conversion.
func CheckDensity(rho float64) error {
	if rho <= 0 || math.IsNaN(rho) {
		return ErrDensity
	}
	return nil
}

// CheckPorosity validates a single porosity value.
func CheckPorosity(phi float64) error {
	if phi < 0 || phi >= 1 || math.IsNaN(phi) {
		return ErrPorosityRange
	}
	return nil
}

// CheckPorosities validates every value of a porosity grid.
func CheckPorosities(phi []float64) error {
	for _, p := range phi {
		if err := CheckPorosity(p); err != nil {
			return err
		}
	}
	return nil
}
