package em

import (
	"github.com/befriko/rockphypy/internal/rockphys"
)

// SC computes effective bulk and shear moduli of a solid containing
// randomly distributed spherical pores using the self-consistent
// approximation. Each pore is assumed embedded in the yet-unknown effective
// medium, so the defining relations are implicit in K* and G* and are solved
// by fixed-point substitution:
//
//	1/K* = 1/Ks + (1/K* + 3/(4 G*)) phi
//	1/G* = 1/Gs + ((15 K* + 20 G*)/(9 K* + 8 G*)) phi/G*
//
// The iteration is seeded with (Ks, Gs) and runs exactly iterations passes;
// there is no convergence test. Within each pass K* is updated first from
// the previous pair, then G* from the fresh K* and the previous G*. Around
// 100 iterations is enough for practical convergence at any porosity below
// the critical value.
//
// The returned slices are index-aligned with phi. At phi=0 the result is
// (Ks, Gs) exactly.
func SC(phi []float64, ks, gs float64, iterations int) ([]float64, []float64, error) {
	if err := rockphys.CheckSolid(ks, gs); err != nil {
		return nil, nil, err
	}
	if err := rockphys.CheckPorosities(phi); err != nil {
		return nil, nil, err
	}
	if iterations < 1 {
		return nil, nil, rockphys.ErrIterations
	}

	keff := make([]float64, len(phi))
	geff := make([]float64, len(phi))
	for i, p := range phi {
		keff[i], geff[i] = scPoint(p, ks, gs, iterations)
	}
	return keff, geff, nil
}

// SCPoint evaluates the self-consistent model at a single porosity.
func SCPoint(phi, ks, gs float64, iterations int) (float64, float64, error) {
	if err := rockphys.CheckSolid(ks, gs); err != nil {
		return 0, 0, err
	}
	if err := rockphys.CheckPorosity(phi); err != nil {
		return 0, 0, err
	}
	if iterations < 1 {
		return 0, 0, rockphys.ErrIterations
	}
	k, g := scPoint(phi, ks, gs, iterations)
	return k, g, nil
}

func scPoint(phi, ks, gs float64, iterations int) (float64, float64) {
	k, g := ks, gs
	for i := 0; i < iterations; i++ {
		kNew := 1 / (1/ks + (1/k+3/(4*g))*phi)
		g = 1 / (1/gs + (15*kNew+20*g)/(9*kNew+8*g)*phi/g)
		k = kNew
	}
	return k, g
}
