package export

import (
	"strings"
	"testing"

	"github.com/befriko/rockphypy/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	canvas := viz.NewCanvas(4, 2)
	canvas.Set(0, 0)
	canvas.Set(7, 7)

	out := CanvasToSVG(canvas, 4.0)

	if !strings.HasPrefix(out, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(out, `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32"`) {
		t.Errorf("unexpected dimensions:\n%s", out)
	}
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("missing closing tag")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if out := CanvasToSVG(nil, 4.0); out != "" {
		t.Errorf("expected empty output for a nil canvas, got %q", out)
	}
}

func TestCurvesToSVG(t *testing.T) {
	xs := []float64{0, 0.1, 0.2, 0.3}
	k := []float64{40, 35, 30, 26}
	g := []float64{30, 26, 22, 19}

	out := CurvesToSVG(xs, k, g, 4.0)
	if strings.Count(out, "<circle") == 0 {
		t.Error("curves drew no dots")
	}
}

func TestCurvesToSVGEmpty(t *testing.T) {
	out := CurvesToSVG(nil, nil, nil, 4.0)
	if strings.Count(out, "<circle") != 0 {
		t.Error("empty input should draw nothing")
	}
	if !strings.Contains(out, "<svg") {
		t.Error("still expects a valid SVG document")
	}
}
