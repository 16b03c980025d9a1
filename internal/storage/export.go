package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the flat JSON layout consumed by downstream plotting
// scripts.
type ExportData struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Axis    string             `json:"axis"`
	Start   float64            `json:"start"`
	End     float64            `json:"end"`
	Points  int                `json:"points"`
	X       []float64          `json:"x"`
	K       []float64          `json:"k"`
	G       []float64          `json:"g"`
	Metrics map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, x, k, g []float64) error {
	// metadata-only exports carry no curves; keep the recorded point count
	points := len(x)
	if points == 0 {
		points = meta.Points
	}

	data := ExportData{
		ID:      meta.ID,
		Model:   meta.Model,
		Axis:    meta.Axis,
		Start:   meta.Start,
		End:     meta.End,
		Points:  points,
		X:       x,
		K:       k,
		G:       g,
		Metrics: meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONStdout(meta *RunMetadata, x, k, g []float64) error {
	return ExportJSON(os.Stdout, meta, x, k, g)
}
