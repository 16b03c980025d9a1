package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/befriko/rockphypy/internal/sweep"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// PlotResult renders the bulk and shear modulus curves of a sweep as two
// stacked asciigraph charts.
func PlotResult(result *sweep.Result, axis string) string {
	var sb strings.Builder

	sb.WriteString(asciigraph.Plot(result.K,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("bulk modulus K [GPa] vs %s", axis)),
	))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(result.G,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("shear modulus G [GPa] vs %s", axis)),
	))
	sb.WriteString("\n")
	return sb.String()
}

// PlotSeries renders a single curve.
func PlotSeries(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// CompareK overlays the bulk-modulus curves of several sweeps in one chart,
// one colored series per model.
func CompareK(results []*sweep.Result, names []string, axis string) string {
	data := make([][]float64, len(results))
	for i, r := range results {
		data[i] = r.K
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.PlotMany(data,
		asciigraph.Height(2*plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(seriesColors(len(results))...),
		asciigraph.Caption(fmt.Sprintf("bulk modulus K [GPa] vs %s", axis)),
	))
	sb.WriteString("\n\nseries: ")
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
	}
	sb.WriteString("\n")
	return sb.String()
}

func seriesColors(n int) []asciigraph.AnsiColor {
	palette := []asciigraph.AnsiColor{
		asciigraph.Red,
		asciigraph.Green,
		asciigraph.Yellow,
		asciigraph.Blue,
		asciigraph.Magenta,
		asciigraph.Cyan,
	}
	colors := make([]asciigraph.AnsiColor, n)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
