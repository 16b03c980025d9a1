package rockphys

import (
	"errors"
	"math"
	"testing"
)

func TestPoissonRatio(t *testing.T) {
	tests := []struct {
		name string
		k    float64
		g    float64
		want float64
	}{
		{"quartz", 37.0, 44.0, (3*37.0 - 2*44.0) / (2 * (3*37.0 + 44.0))},
		{"incompressible limit", 1e6, 1.0, 0.4999995},
		{"zero poisson", 2.0 / 3.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		got := PoissonRatio(tt.k, tt.g)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestModuliPhysical(t *testing.T) {
	tests := []struct {
		name     string
		m        Moduli
		valid    bool
		physical bool
	}{
		{"quartz", Moduli{K: 37, G: 44}, true, true},
		{"zero", Moduli{}, true, true},
		{"negative shear", Moduli{K: 10, G: -1}, true, false},
		{"nan", Moduli{K: math.NaN(), G: 1}, false, false},
		{"inf", Moduli{K: 1, G: math.Inf(1)}, false, false},
	}

	for _, tt := range tests {
		if got := tt.m.IsValid(); got != tt.valid {
			t.Errorf("%s: IsValid = %v, want %v", tt.name, got, tt.valid)
		}
		if got := tt.m.IsPhysical(); got != tt.physical {
			t.Errorf("%s: IsPhysical = %v, want %v", tt.name, got, tt.physical)
		}
	}
}

func TestVelocities(t *testing.T) {
	// K=36, G=45 gives M=96, so with rho=2.65 the velocities come out in
	// round numbers squared.
	k, g, rho := 36.0, 45.0, 2.65

	vp := Vp(k, g, rho)
	vs := Vs(g, rho)
	if math.Abs(vp-math.Sqrt(96/2.65)) > 1e-12 {
		t.Errorf("vp: got %v", vp)
	}
	if math.Abs(vs-math.Sqrt(45/2.65)) > 1e-12 {
		t.Errorf("vs: got %v", vs)
	}
	if vp <= vs {
		t.Errorf("vp %v must exceed vs %v", vp, vs)
	}

	ip := ImpedanceP(k, g, rho)
	if math.Abs(ip-rho*vp) > 1e-12 {
		t.Errorf("impedance: expected %v, got %v", rho*vp, ip)
	}
}

func TestCheckSolid(t *testing.T) {
	if err := CheckSolid(37, 44); err != nil {
		t.Errorf("valid solid rejected: %v", err)
	}
	if err := CheckSolid(0, 44); !errors.Is(err, ErrBulkModulus) {
		t.Errorf("expected bulk modulus error, got %v", err)
	}
	if err := CheckSolid(37, 0); !errors.Is(err, ErrShearModulus) {
		t.Errorf("expected shear modulus error, got %v", err)
	}
}

func TestCheckPorosities(t *testing.T) {
	if err := CheckPorosities([]float64{0, 0.2, 0.99}); err != nil {
		t.Errorf("valid grid rejected: %v", err)
	}
	if err := CheckPorosities([]float64{0.1, 1.0}); !errors.Is(err, ErrPorosityRange) {
		t.Errorf("expected porosity error, got %v", err)
	}
	if err := CheckPorosity(math.NaN()); !errors.Is(err, ErrPorosityRange) {
		t.Errorf("expected porosity error for NaN, got %v", err)
	}
}
