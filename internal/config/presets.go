package config

// Presets bundle mineral and sweep settings for common modeling scenarios.
// Moduli in GPa, densities in g/cm3.
var Presets = map[string]map[string]*Config{
	"sc": {
		"calcite": {
			Model: "sc", Start: 0, End: 0.5, Points: 100,
			Mineral: MineralConfig{Bulk: 76.8, Shear: 32.0, Density: 2.71, Iterations: 100},
		},
		"quartz": {
			Model: "sc", Start: 0, End: 0.5, Points: 100,
			Mineral: MineralConfig{Bulk: 37.0, Shear: 44.0, Density: 2.65, Iterations: 100},
		},
		"dolomite": {
			Model: "sc", Start: 0, End: 0.5, Points: 100,
			Mineral: MineralConfig{Bulk: 94.9, Shear: 45.0, Density: 2.87, Iterations: 100},
		},
		"generic": {
			Model: "sc", Start: 0, End: 0.5, Points: 100,
			Mineral: MineralConfig{Bulk: 40.0, Shear: 30.0, Density: 2.65, Iterations: 100},
		},
	},
	"swiss_cheese": {
		"quartz": {
			Model: "swiss_cheese", Start: 0, End: 0.6, Points: 100,
			Mineral: MineralConfig{Bulk: 37.0, Shear: 44.0, Density: 2.65},
		},
		"generic": {
			Model: "swiss_cheese", Start: 0, End: 0.6, Points: 100,
			Mineral: MineralConfig{Bulk: 40.0, Shear: 30.0, Density: 2.65},
		},
	},
	"hertz_mindlin": {
		"loose_sand": {
			Model: "hertz_mindlin", Start: 0, End: 20, Points: 100,
			Mineral: MineralConfig{Bulk: 37.0, Shear: 44.0, Density: 2.65},
			Pack:    PackConfig{Critical: 0.4, Coordination: 8.6, Slip: 1.0},
		},
		"frictionless": {
			Model: "hertz_mindlin", Start: 0, End: 20, Points: 100,
			Mineral: MineralConfig{Bulk: 37.0, Shear: 44.0, Density: 2.65},
			Pack:    PackConfig{Critical: 0.4, Coordination: 8.6, Slip: 0.0},
		},
		"dense_pack": {
			Model: "hertz_mindlin", Start: 0, End: 50, Points: 100,
			Mineral: MineralConfig{Bulk: 37.0, Shear: 44.0, Density: 2.65},
			Pack:    PackConfig{Critical: 0.36, Coordination: 9.0, Slip: 1.0},
		},
	},
	"walton": {
		"loose_sand": {
			Model: "walton", Start: 0, End: 20, Points: 100,
			Mineral: MineralConfig{Bulk: 37.0, Shear: 44.0, Density: 2.65},
			Pack:    PackConfig{Critical: 0.4, Coordination: 8.6, Slip: 1.0},
		},
	},
	"oconnell_budiansky": {
		"granite": {
			Model: "oconnell_budiansky", Start: 0, End: 0.1, Points: 100,
			Mineral: MineralConfig{Bulk: 40.0, Shear: 30.0, Density: 2.65},
		},
	},
	"dilute_crack": {
		"granite": {
			Model: "dilute_crack", Start: 0, End: 0.1, Points: 100,
			Mineral: MineralConfig{Bulk: 40.0, Shear: 30.0, Density: 2.65},
		},
	},
	"sc_sat": {
		"brine": {
			Model: "sc_sat", Start: 0, End: 0.5, Points: 100,
			Mineral: MineralConfig{Bulk: 40.0, Shear: 30.0, Density: 2.65, Iterations: 100},
			Fluid:   FluidConfig{Bulk: 2.2, Density: 1.0},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
