package export

import (
	"fmt"
	"strings"

	"github.com/befriko/rockphypy/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	// Convert each braille character to dots
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// CurvesToSVG rasterizes moduli curves onto a canvas and renders it as SVG.
func CurvesToSVG(xs, k, g []float64, scale float64) string {
	canvas := viz.NewCanvas(80, 24)
	bounds := func(vals []float64) (float64, float64) {
		lo, hi := vals[0], vals[0]
		for _, v := range vals {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi == lo {
			hi = lo + 1
		}
		return lo, hi
	}

	if len(xs) == 0 {
		return CanvasToSVG(canvas, scale)
	}

	xLo, xHi := bounds(xs)
	kLo, kHi := bounds(k)
	gLo, gHi := bounds(g)
	yLo, yHi := kLo, kHi
	if gLo < yLo {
		yLo = gLo
	}
	if gHi > yHi {
		yHi = gHi
	}

	canvas.DrawSeries(xs, k, xLo, xHi, yLo, yHi)
	canvas.DrawSeries(xs, g, xLo, xHi, yLo, yHi)
	return CanvasToSVG(canvas, scale)
}
