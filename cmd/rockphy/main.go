package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/befriko/rockphypy/internal/config"
	"github.com/befriko/rockphypy/internal/experiment"
	"github.com/befriko/rockphypy/internal/export"
	"github.com/befriko/rockphypy/internal/rockphys"
	"github.com/befriko/rockphypy/internal/storage"
	"github.com/befriko/rockphypy/internal/sweep"
	"github.com/befriko/rockphypy/internal/viz"
)

var (
	dataDir string
	start   float64
	end     float64
	points  int
	workers int
	// Mineral parameters
	bulk       float64
	shear      float64
	iterations int
	// Grain pack parameters
	critical     float64
	coordination float64
	slip         float64
	// Crossplot y column and density for velocity conversion
	yColumn string
	density float64
	// Config file
	configFile string
	// Preset name
	preset string
)

// main is the entry point for the rockphy CLI; it registers commands and
// flags and executes the root command. It exits the process with status 1
// if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rockphy",
		Short: "rock physics modeling lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rockphy", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a parameter sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addSweepFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	crossplotCmd := &cobra.Command{
		Use:   "crossplot [run_id]",
		Short: "crossplot a modulus or derived property against the sweep axis",
		Args:  cobra.ExactArgs(1),
		RunE:  crossplotRun,
	}
	crossplotCmd.Flags().StringVar(&yColumn, "y", "k", "y column: k, g, vp, vs or poisson")
	crossplotCmd.Flags().Float64Var(&density, "density", 2.65, "bulk density [g/cm3] for velocities")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run curves to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run curves to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run curves to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [model1] [model2] ...",
		Short: "compare models over the same sweep",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareModels,
	}
	addSweepFlags(compareCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark model evaluation",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "interactive sweep explorer",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addSweepFlags(liveCmd)

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		Run: func(cmd *cobra.Command, args []string) {
			registry := experiment.NewRegistry()
			for _, name := range registry.ListModels() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, crossplotCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, compareCmd, benchCmd,
		liveCmd, modelsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&start, "start", 0.0, "sweep start")
	cmd.Flags().Float64Var(&end, "end", -1, "sweep end (default per model axis)")
	cmd.Flags().IntVar(&points, "points", 100, "grid points")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (0 = GOMAXPROCS)")
	cmd.Flags().Float64Var(&bulk, "bulk", 40.0, "solid bulk modulus [GPa]")
	cmd.Flags().Float64Var(&shear, "shear", 30.0, "solid shear modulus [GPa]")
	cmd.Flags().IntVar(&iterations, "iterations", 100, "fixed-point iterations (sc)")
	cmd.Flags().Float64Var(&critical, "critical", 0.4, "critical porosity (grain packs)")
	cmd.Flags().Float64Var(&coordination, "coordination", 8.6, "coordination number (grain packs)")
	cmd.Flags().Float64Var(&slip, "slip", 1.0, "no-slip contact fraction (grain packs)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	model := args[0]

	// Load preset if specified
	if preset != "" {
		cfg := config.GetPreset(model, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		start = cfg.Start
		end = cfg.End
		points = cfg.Points
		bulk = cfg.Mineral.Bulk
		shear = cfg.Mineral.Shear
		if cfg.Mineral.Iterations != 0 {
			iterations = cfg.Mineral.Iterations
		}
		critical = cfg.Pack.Critical
		coordination = cfg.Pack.Coordination
		slip = cfg.Pack.Slip
	}

	// Load config file if specified (CLI flags override config)
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("start") {
			start = cfg.Start
		}
		if !cmd.Flags().Changed("end") {
			end = cfg.End
		}
		if !cmd.Flags().Changed("points") {
			points = cfg.Points
		}
		if !cmd.Flags().Changed("workers") {
			workers = cfg.Workers
		}
		if !cmd.Flags().Changed("bulk") {
			bulk = cfg.Mineral.Bulk
		}
		if !cmd.Flags().Changed("shear") {
			shear = cfg.Mineral.Shear
		}
		if !cmd.Flags().Changed("iterations") && cfg.Mineral.Iterations != 0 {
			iterations = cfg.Mineral.Iterations
		}
		if !cmd.Flags().Changed("critical") {
			critical = cfg.Pack.Critical
		}
		if !cmd.Flags().Changed("coordination") {
			coordination = cfg.Pack.Coordination
		}
		if !cmd.Flags().Changed("slip") {
			slip = cfg.Pack.Slip
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	m, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	if end < 0 {
		start, end = registry.DefaultAxis(m)
	}

	params := modelParams()
	cfg := experiment.Config{
		Model:   model,
		Start:   start,
		End:     end,
		Points:  points,
		Workers: workers,
		Params:  params,
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(m, registry.DefaultMetrics(model)); err != nil {
		return err
	}

	fmt.Printf("sweeping %s over %s...\n", model, m.Axis())
	t0 := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(t0)

	runID, err := st.Save(model, m.Axis(), start, end, params, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("points: %d\n", len(result.X))
	if len(result.Errors) > 0 {
		fmt.Printf("failed points: %d\n", len(result.Errors))
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func modelParams() map[string]float64 {
	return map[string]float64{
		"bulk":         bulk,
		"shear":        shear,
		"iterations":   float64(iterations),
		"critical":     critical,
		"coordination": coordination,
		"slip":         slip,
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tAXIS\tRANGE\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.3f-%.3f\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Axis,
			run.Start,
			run.End,
			run.Points,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	x, k, g, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}

	if len(x) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(x))

	result := &sweep.Result{X: x, K: k, G: g}
	fmt.Println(viz.PlotResult(result, meta.Axis))
	return nil
}

func crossplotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	x, k, g, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}
	if len(x) == 0 {
		return fmt.Errorf("no data to plot")
	}

	ys, label, err := crossplotColumn(k, g)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n\n", meta.ID)
	fmt.Println(viz.Crossplot(x, ys, 70, 20, meta.Axis, label))
	return nil
}

// crossplotColumn maps the --y flag to a data series, deriving velocities
// and the Poisson ratio from the stored moduli where requested.
func crossplotColumn(k, g []float64) ([]float64, string, error) {
	switch yColumn {
	case "k":
		return k, "K [GPa]", nil
	case "g":
		return g, "G [GPa]", nil
	case "vp", "vs":
		if err := rockphys.CheckDensity(density); err != nil {
			return nil, "", err
		}
		ys := make([]float64, len(k))
		if yColumn == "vp" {
			for i := range k {
				ys[i] = rockphys.Vp(k[i], g[i], density)
			}
			return ys, "Vp [km/s]", nil
		}
		for i := range g {
			ys[i] = rockphys.Vs(g[i], density)
		}
		return ys, "Vs [km/s]", nil
	case "poisson":
		ys := make([]float64, len(k))
		for i := range k {
			ys[i] = rockphys.PoissonRatio(k[i], g[i])
		}
		return ys, "Poisson ratio", nil
	default:
		return nil, "", fmt.Errorf("unknown y column: %s (want k, g, vp, vs or poisson)", yColumn)
	}
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, nil, nil, nil)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	x, k, g, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}

	if len(x) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "k", "g"}); err != nil {
		return err
	}
	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'f', 6, 64),
			strconv.FormatFloat(k[i], 'f', 6, 64),
			strconv.FormatFloat(g[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	x, k, g, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, x, k, g)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	x, k, g, err := st.LoadCurves(runID)
	if err != nil {
		return err
	}
	if len(x) == 0 {
		return fmt.Errorf("no data to export")
	}

	fmt.Print(export.CurvesToSVG(x, k, g, 4))
	return nil
}

func compareModels(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	models := make([]sweep.Model, 0, len(args))
	names := make([]string, 0, len(args))
	axis := ""
	for _, name := range args {
		m, err := registry.GetModel(name)
		if err != nil {
			return err
		}
		if axis == "" {
			axis = m.Axis()
		} else if m.Axis() != axis {
			return fmt.Errorf("model %s sweeps %s, others sweep %s", name, m.Axis(), axis)
		}
		if err := experiment.ApplyParams(m, modelParams()); err != nil {
			return err
		}
		models = append(models, m)
		names = append(names, name)
	}

	if end < 0 {
		start, end = registry.DefaultAxis(models[0])
	}

	cfg := sweep.Config{Start: start, End: end, Points: points, Workers: workers}

	fmt.Printf("comparing %d models over %s [%.3f, %.3f]\n\n", len(models), axis, start, end)

	results, err := sweep.Batch(context.Background(), models, cfg)
	if err != nil {
		return err
	}

	fmt.Println(viz.CompareK(results, names, axis))
	return nil
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]

	registry := experiment.NewRegistry()
	m, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	lo, hi := registry.DefaultAxis(m)
	gridSizes := []int{100, 1000, 10000}
	workerCounts := []int{1, 0}

	fmt.Printf("benchmarking %s\n\n", model)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINTS\tWORKERS\tTIME\tPOINTS/SEC")

	for _, n := range gridSizes {
		for _, wk := range workerCounts {
			cfg := sweep.Config{Start: lo, End: hi, Points: n, Workers: wk}
			runner := sweep.New(m)

			t0 := time.Now()
			result, err := runner.Run(context.Background(), cfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(t0)

			pointsPerSec := float64(len(result.X)) / elapsed.Seconds()
			workerLabel := strconv.Itoa(wk)
			if wk == 0 {
				workerLabel = "auto"
			}
			fmt.Fprintf(w, "%d\t%s\t%v\t%.0f\n", n, workerLabel, elapsed, pointsPerSec)
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	model := args[0]

	registry := experiment.NewRegistry()
	m, err := registry.GetModel(model)
	if err != nil {
		return err
	}

	if err := experiment.ApplyParams(m, modelParams()); err != nil {
		return err
	}

	if end < 0 {
		start, end = registry.DefaultAxis(m)
	}
	cfg := sweep.Config{Start: start, End: end, Points: points, Workers: workers}

	e := viz.NewExplorer(m, cfg)
	p := tea.NewProgram(e)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
