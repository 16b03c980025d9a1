package viz

import (
	"strings"
	"testing"

	"github.com/befriko/rockphypy/internal/sweep"
)

func testResult() *sweep.Result {
	return &sweep.Result{
		X: []float64{0, 0.1, 0.2, 0.3},
		K: []float64{40, 35, 30, 26},
		G: []float64{30, 26, 22, 19},
	}
}

func TestPlotResult(t *testing.T) {
	out := PlotResult(testResult(), "porosity")

	if !strings.Contains(out, "bulk modulus K [GPa] vs porosity") {
		t.Error("missing bulk modulus caption")
	}
	if !strings.Contains(out, "shear modulus G [GPa] vs porosity") {
		t.Error("missing shear modulus caption")
	}
	if !strings.Contains(out, "40.00") {
		t.Errorf("missing peak value on the axis:\n%s", out)
	}
}

func TestPlotSeries(t *testing.T) {
	out := PlotSeries([]float64{1, 2, 3, 2, 1}, "test series")
	if !strings.Contains(out, "test series") {
		t.Error("missing caption")
	}
}

func TestCompareK(t *testing.T) {
	a := testResult()
	b := testResult()
	for i := range b.K {
		b.K[i] *= 0.8
	}

	out := CompareK([]*sweep.Result{a, b}, []string{"sc", "swiss_cheese"}, "porosity")
	if !strings.Contains(out, "series: sc, swiss_cheese") {
		t.Errorf("missing series legend:\n%s", out)
	}
}

func TestSeriesColorsCycle(t *testing.T) {
	colors := seriesColors(8)
	if len(colors) != 8 {
		t.Fatalf("expected 8 colors, got %d", len(colors))
	}
	if colors[0] != colors[6] {
		t.Error("palette should cycle after six series")
	}
}
