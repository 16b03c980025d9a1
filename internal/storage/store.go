package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/befriko/rockphypy/internal/sweep"
)

// Store persists sweep runs under a base directory, one subdirectory per
// run holding metadata.json and curves.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Axis      string             `json:"axis"`
	Timestamp time.Time          `json:"timestamp"`
	Start     float64            `json:"start"`
	End       float64            `json:"end"`
	Points    int                `json:"points"`
	Params    map[string]float64 `json:"params,omitempty"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(model, axis string, start, end float64, params map[string]float64, result *sweep.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     model,
		Axis:      axis,
		Timestamp: time.Now(),
		Start:     start,
		End:       end,
		Points:    len(result.X),
		Params:    params,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "curves.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "k", "g"}); err != nil {
		return "", err
	}
	for i := range result.X {
		row := []string{
			strconv.FormatFloat(result.X[i], 'f', 6, 64),
			strconv.FormatFloat(result.K[i], 'f', 6, 64),
			strconv.FormatFloat(result.G[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCurves reads back the x, K and G columns of a saved run.
func (s *Store) LoadCurves(runID string) ([]float64, []float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "curves.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, []float64{}, nil
	}

	n := len(records) - 1
	x := make([]float64, 0, n)
	k := make([]float64, 0, n)
	g := make([]float64, 0, n)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		xv, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		kv, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		gv, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		x = append(x, xv)
		k = append(k, kv)
		g = append(g, gv)
	}

	return x, k, g, nil
}
