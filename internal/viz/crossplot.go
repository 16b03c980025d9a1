package viz

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Crossplot renders ys against xs on a framed Braille canvas with min/max
// axis labels.
func Crossplot(xs, ys []float64, width, height int, xLabel, yLabel string) string {
	if len(xs) == 0 || len(xs) != len(ys) {
		return ""
	}

	xMin, xMax := floats.Min(xs), floats.Max(xs)
	yMin, yMax := floats.Min(ys), floats.Max(ys)
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	canvas := NewCanvas(width, height)
	canvas.DrawSeries(xs, ys, xMin, xMax, yMin, yMax)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s vs %s\n", yLabel, xLabel))
	sb.WriteString(fmt.Sprintf("%8.2f ┌%s┐\n", yMax, strings.Repeat("─", width)))
	for _, row := range canvas.Grid {
		sb.WriteString("         │" + string(row) + "│\n")
	}
	sb.WriteString(fmt.Sprintf("%8.2f └%s┘\n", yMin, strings.Repeat("─", width)))
	sb.WriteString(fmt.Sprintf("          %-8.3f%s%8.3f\n",
		xMin, strings.Repeat(" ", maxInt(width-16, 0)), xMax))
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
