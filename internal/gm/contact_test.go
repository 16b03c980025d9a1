package gm

import (
	"errors"
	"math"
	"testing"

	"github.com/befriko/rockphypy/internal/rockphys"
)

const (
	quartzBulk  = 37.0
	quartzShear = 44.0
)

func TestHertzMindlinWaltonAgree(t *testing.T) {
	// The two parameterizations are the same physics; they must agree
	// for every slip fraction and pressure.
	for _, f := range []float64{0.0, 0.25, 0.5, 1.0} {
		for _, p := range []float64{1.0, 10.0, 20.0} {
			khm, ghm, err := HertzMindlin(quartzBulk, quartzShear, 0.4, 8.6, p, f)
			if err != nil {
				t.Fatalf("hertz-mindlin failed: %v", err)
			}
			kw, gw, err := Walton(quartzBulk, quartzShear, 0.4, 8.6, p, f)
			if err != nil {
				t.Fatalf("walton failed: %v", err)
			}

			if math.Abs(khm-kw) > 1e-9*khm {
				t.Errorf("f=%v p=%v: K mismatch, hertz-mindlin=%v walton=%v", f, p, khm, kw)
			}
			if math.Abs(ghm-gw) > 1e-9*ghm {
				t.Errorf("f=%v p=%v: G mismatch, hertz-mindlin=%v walton=%v", f, p, ghm, gw)
			}
		}
	}
}

func TestHertzMindlinPressureStiffening(t *testing.T) {
	var prevK, prevG float64
	for _, p := range []float64{1.0, 5.0, 10.0, 20.0} {
		k, g, err := HertzMindlin(quartzBulk, quartzShear, 0.4, 8.6, p, 1.0)
		if err != nil {
			t.Fatalf("eval failed at p=%v: %v", p, err)
		}
		if k <= prevK || g <= prevG {
			t.Errorf("moduli not increasing with pressure at p=%v", p)
		}
		prevK, prevG = k, g
	}
}

func TestHertzMindlinCubeRootScaling(t *testing.T) {
	k1, g1, err := HertzMindlin(quartzBulk, quartzShear, 0.4, 8.6, 5.0, 1.0)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	k8, g8, err := HertzMindlin(quartzBulk, quartzShear, 0.4, 8.6, 40.0, 1.0)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	// Contact stiffness grows with the cube root of pressure, so x8 the
	// pressure doubles the moduli.
	if math.Abs(k8-2*k1) > 1e-9*k8 {
		t.Errorf("expected K to double, got %v vs %v", k8, 2*k1)
	}
	if math.Abs(g8-2*g1) > 1e-9*g8 {
		t.Errorf("expected G to double, got %v vs %v", g8, 2*g1)
	}
}

func TestSlipFractionOrdering(t *testing.T) {
	kSlip, gSlip, err := HertzMindlin(quartzBulk, quartzShear, 0.4, 8.6, 10.0, 0.0)
	if err != nil {
		t.Fatalf("frictionless eval failed: %v", err)
	}
	kStick, gStick, err := HertzMindlin(quartzBulk, quartzShear, 0.4, 8.6, 10.0, 1.0)
	if err != nil {
		t.Fatalf("no-slip eval failed: %v", err)
	}

	if kSlip != kStick {
		t.Errorf("K should not depend on slip: %v vs %v", kSlip, kStick)
	}
	if gSlip >= gStick {
		t.Errorf("frictionless G %v should be below no-slip G %v", gSlip, gStick)
	}
}

func TestCriticalPorosityTrend(t *testing.T) {
	phi := []float64{0.0, 0.2, 0.4, 0.5}
	k, g, err := CriticalPorosity(quartzBulk, quartzShear, 0.4, phi)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	if k[0] != quartzBulk || g[0] != quartzShear {
		t.Errorf("expected mineral point at phi=0, got (%v, %v)", k[0], g[0])
	}
	if math.Abs(k[1]-quartzBulk/2) > 1e-12 {
		t.Errorf("expected half stiffness at phi=phic/2, got %v", k[1])
	}
	if k[2] != 0 || g[2] != 0 || k[3] != 0 || g[3] != 0 {
		t.Errorf("expected zero stiffness at or above critical porosity")
	}
}

func TestPackInvalid(t *testing.T) {
	tests := []struct {
		name string
		k0   float64
		g0   float64
		phic float64
		cn   float64
		p    float64
		f    float64
		want error
	}{
		{"zero shear", 37, 0, 0.4, 8.6, 10, 1, rockphys.ErrShearModulus},
		{"critical porosity out of range", 37, 44, 1.2, 8.6, 10, 1, rockphys.ErrPorosityRange},
		{"negative pressure", 37, 44, 0.4, 8.6, -1, 1, rockphys.ErrPressure},
		{"slip fraction above one", 37, 44, 0.4, 8.6, 10, 1.5, rockphys.ErrFractionRange},
		{"zero coordination", 37, 44, 0.4, 0, 10, 1, rockphys.ErrCoordination},
	}

	for _, tt := range tests {
		if _, _, err := HertzMindlin(tt.k0, tt.g0, tt.phic, tt.cn, tt.p, tt.f); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}
