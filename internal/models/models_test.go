package models

import (
	"math"
	"testing"

	"github.com/befriko/rockphypy/internal/sweep"
)

// every model must satisfy both interfaces
var (
	_ sweep.Model        = (*SC)(nil)
	_ sweep.Configurable = (*SC)(nil)
	_ sweep.Model        = (*Voigt)(nil)
	_ sweep.Model        = (*HSBound)(nil)
	_ sweep.Model        = (*SwissCheese)(nil)
	_ sweep.Model        = (*DiluteCrack)(nil)
	_ sweep.Model        = (*OConnellBudiansky)(nil)
	_ sweep.Model        = (*HertzMindlin)(nil)
	_ sweep.Model        = (*Walton)(nil)
	_ sweep.Model        = (*CriticalPorosity)(nil)
	_ sweep.Model        = (*Saturated)(nil)
	_ sweep.Configurable = (*Saturated)(nil)
)

func TestModelAxes(t *testing.T) {
	tests := []struct {
		m    sweep.Model
		axis string
	}{
		{NewSC(), AxisPorosity},
		{NewVoigt(), AxisPorosity},
		{NewHSUpper(), AxisPorosity},
		{NewHSLower(), AxisPorosity},
		{NewSwissCheese(), AxisPorosity},
		{NewCriticalPorosity(), AxisPorosity},
		{NewDiluteCrack(), AxisCrackDensity},
		{NewOConnellBudiansky(), AxisCrackDensity},
		{NewHertzMindlin(), AxisPressure},
		{NewWalton(), AxisPressure},
	}
	for _, tt := range tests {
		if got := tt.m.Axis(); got != tt.axis {
			t.Errorf("%s: axis %q, want %q", tt.m.Name(), got, tt.axis)
		}
	}
}

func TestPorosityModelsMineralPoint(t *testing.T) {
	for _, m := range []sweep.Model{
		NewSC(), NewVoigt(), NewHSUpper(), NewHSLower(),
		NewSwissCheese(), NewCriticalPorosity(),
	} {
		k, g, err := m.Eval(0.0)
		if err != nil {
			t.Errorf("%s: eval failed at phi=0: %v", m.Name(), err)
			continue
		}
		if k != DefaultBulk || g != DefaultShear {
			t.Errorf("%s: expected (%v, %v) at phi=0, got (%v, %v)",
				m.Name(), DefaultBulk, DefaultShear, k, g)
		}
	}
}

func TestHSBoundsBracket(t *testing.T) {
	up := NewHSUpper()
	lo := NewHSLower()
	for _, phi := range []float64{0.1, 0.25, 0.4} {
		upK, upG, err := up.Eval(phi)
		if err != nil {
			t.Fatalf("upper eval failed: %v", err)
		}
		loK, loG, err := lo.Eval(phi)
		if err != nil {
			t.Fatalf("lower eval failed: %v", err)
		}
		if loK > upK || loG > upG {
			t.Errorf("phi=%v: lower bound (%v, %v) above upper (%v, %v)",
				phi, loK, loG, upK, upG)
		}
		if loK != 0 || loG != 0 {
			t.Errorf("phi=%v: dry-pore lower bound should vanish, got (%v, %v)",
				phi, loK, loG)
		}
	}
}

func TestSetParamChangesEval(t *testing.T) {
	m := NewSC()
	k1, _, err := m.Eval(0.2)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	if err := m.SetParam("bulk", 76.8); err != nil {
		t.Fatalf("set param failed: %v", err)
	}
	k2, _, err := m.Eval(0.2)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if k2 <= k1 {
		t.Errorf("stiffer mineral should raise K: %v vs %v", k1, k2)
	}

	if err := m.SetParam("viscosity", 1.0); err == nil {
		t.Error("expected an error for an unknown parameter")
	}
}

func TestGetParamsRoundTrip(t *testing.T) {
	m := NewHertzMindlin()
	params := m.GetParams()

	for _, key := range []string{"bulk", "shear", "critical", "coordination", "slip"} {
		if _, ok := params[key]; !ok {
			t.Errorf("missing parameter %q", key)
		}
	}
	if params["coordination"] != DefaultCoordNumber {
		t.Errorf("coordination: expected %v, got %v",
			DefaultCoordNumber, params["coordination"])
	}
}

func TestSaturated(t *testing.T) {
	dry := NewSC()
	sat, err := NewSaturated(dry, dry.Bulk, WaterBulk)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if sat.Name() != "sc_sat" {
		t.Errorf("expected name sc_sat, got %q", sat.Name())
	}

	phi := 0.3
	kdry, gdry, err := dry.Eval(phi)
	if err != nil {
		t.Fatalf("dry eval failed: %v", err)
	}
	ksat, gsat, err := sat.Eval(phi)
	if err != nil {
		t.Fatalf("saturated eval failed: %v", err)
	}

	if ksat <= kdry {
		t.Errorf("saturation should stiffen K: dry %v, saturated %v", kdry, ksat)
	}
	if gsat != gdry {
		t.Errorf("saturation must not change G: dry %v, saturated %v", gdry, gsat)
	}
}

func TestSaturatedRejectsWrongAxis(t *testing.T) {
	if _, err := NewSaturated(NewHertzMindlin(), QuartzBulk, WaterBulk); err == nil {
		t.Error("expected an error for a pressure-axis dry model")
	}
}

func TestSaturatedParamDelegation(t *testing.T) {
	dry := NewSC()
	sat, err := NewSaturated(dry, dry.Bulk, WaterBulk)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	params := sat.GetParams()
	for _, key := range []string{"mineral", "fluid", "bulk", "shear", "iterations"} {
		if _, ok := params[key]; !ok {
			t.Errorf("missing parameter %q", key)
		}
	}

	if err := sat.SetParam("shear", 25.0); err != nil {
		t.Fatalf("delegated set failed: %v", err)
	}
	if dry.Shear != 25.0 {
		t.Errorf("set did not reach the dry model: %v", dry.Shear)
	}
}

func TestWaltonMatchesHertzMindlin(t *testing.T) {
	hm := NewHertzMindlin()
	w := NewWalton()
	for _, p := range []float64{2.0, 10.0, 20.0} {
		k1, g1, err := hm.Eval(p)
		if err != nil {
			t.Fatalf("hertz-mindlin eval failed: %v", err)
		}
		k2, g2, err := w.Eval(p)
		if err != nil {
			t.Fatalf("walton eval failed: %v", err)
		}
		if math.Abs(k1-k2) > 1e-9*k1 || math.Abs(g1-g2) > 1e-9*g1 {
			t.Errorf("p=%v: models disagree: (%v, %v) vs (%v, %v)", p, k1, g1, k2, g2)
		}
	}
}
