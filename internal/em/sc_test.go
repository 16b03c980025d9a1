package em

import (
	"errors"
	"math"
	"testing"

	"github.com/befriko/rockphypy/internal/rockphys"
)

func TestSCZeroPorosity(t *testing.T) {
	for _, n := range []int{1, 10, 100} {
		k, g, err := SC([]float64{0.0}, 37.0, 44.0, n)
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}
		if k[0] != 37.0 {
			t.Errorf("iterations=%d: expected K=37 exactly, got %v", n, k[0])
		}
		if g[0] != 44.0 {
			t.Errorf("iterations=%d: expected G=44 exactly, got %v", n, g[0])
		}
	}
}

func TestSCDecreasingWithPorosity(t *testing.T) {
	phi := []float64{0.0, 0.1, 0.2, 0.3, 0.4}
	k, g, err := SC(phi, 40.0, 30.0, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if k[0] != 40.0 || g[0] != 30.0 {
		t.Errorf("expected mineral point (40, 30), got (%v, %v)", k[0], g[0])
	}
	for i := 1; i < len(phi); i++ {
		if k[i] >= k[i-1] {
			t.Errorf("K not strictly decreasing at phi=%v: %v >= %v", phi[i], k[i], k[i-1])
		}
		if g[i] >= g[i-1] {
			t.Errorf("G not strictly decreasing at phi=%v: %v >= %v", phi[i], g[i], g[i-1])
		}
	}
}

func TestSCConverged(t *testing.T) {
	phi := []float64{0.1, 0.25, 0.4}

	k1, g1, err := SC(phi, 40.0, 30.0, 50)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	k2, g2, err := SC(phi, 40.0, 30.0, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for i := range phi {
		if math.Abs(k1[i]-k2[i]) > 1e-6 {
			t.Errorf("K not converged at phi=%v: %v vs %v", phi[i], k1[i], k2[i])
		}
		if math.Abs(g1[i]-g2[i]) > 1e-6 {
			t.Errorf("G not converged at phi=%v: %v vs %v", phi[i], g1[i], g2[i])
		}
	}
}

func TestSCDiluteLimit(t *testing.T) {
	// At very low porosity the self-consistent and non-interacting models
	// share the same first-order behavior; they differ at second order in
	// phi, so the agreement is relative, not exact.
	phi := []float64{0.001}

	kSC, gSC, err := SC(phi, 40.0, 30.0, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	kNI, gNI, err := SwissCheese(40.0, 30.0, phi)
	if err != nil {
		t.Fatalf("swiss cheese failed: %v", err)
	}

	if math.Abs(kSC[0]-kNI[0]) > 1e-5*kNI[0] {
		t.Errorf("K mismatch at dilute limit: SC=%v, non-interacting=%v", kSC[0], kNI[0])
	}
	if math.Abs(gSC[0]-gNI[0]) > 1e-5*gNI[0] {
		t.Errorf("G mismatch at dilute limit: SC=%v, non-interacting=%v", gSC[0], gNI[0])
	}
}

func TestSCInvalidInputs(t *testing.T) {
	tests := []struct {
		name       string
		phi        []float64
		ks, gs     float64
		iterations int
		want       error
	}{
		{"zero shear", []float64{0.1}, 40, 0, 10, rockphys.ErrShearModulus},
		{"negative shear", []float64{0.1}, 40, -5, 10, rockphys.ErrShearModulus},
		{"zero bulk", []float64{0.1}, 0, 30, 10, rockphys.ErrBulkModulus},
		{"negative porosity", []float64{-0.1}, 40, 30, 10, rockphys.ErrPorosityRange},
		{"porosity one", []float64{1.0}, 40, 30, 10, rockphys.ErrPorosityRange},
		{"zero iterations", []float64{0.1}, 40, 30, 0, rockphys.ErrIterations},
	}

	for _, tt := range tests {
		_, _, err := SC(tt.phi, tt.ks, tt.gs, tt.iterations)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestSCOutputAlignment(t *testing.T) {
	phi := []float64{0.3, 0.0, 0.1}
	k, g, err := SC(phi, 40.0, 30.0, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if len(k) != len(phi) || len(g) != len(phi) {
		t.Fatalf("expected output length %d, got %d and %d", len(phi), len(k), len(g))
	}
	// order follows the input, not porosity
	if k[1] != 40.0 {
		t.Errorf("expected K=40 at the phi=0 position, got %v", k[1])
	}
	if k[0] >= k[2] {
		t.Errorf("expected K(0.3) < K(0.1), got %v >= %v", k[0], k[2])
	}
}

func TestSCPointMatchesSlice(t *testing.T) {
	ks, gs := 76.8, 32.0
	phi := 0.25

	kSlice, gSlice, err := SC([]float64{phi}, ks, gs, 80)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	k, g, err := SCPoint(phi, ks, gs, 80)
	if err != nil {
		t.Fatalf("point solve failed: %v", err)
	}

	if k != kSlice[0] || g != gSlice[0] {
		t.Errorf("point and slice evaluation differ: (%v, %v) vs (%v, %v)",
			k, g, kSlice[0], gSlice[0])
	}
}

func BenchmarkSC(b *testing.B) {
	phi := make([]float64, 100)
	for i := range phi {
		phi[i] = 0.005 * float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := SC(phi, 40.0, 30.0, 100); err != nil {
			b.Fatal(err)
		}
	}
}
