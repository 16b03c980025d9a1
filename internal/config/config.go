package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPoints       = 100
	DefaultStart        = 0.0
	DefaultEnd          = 0.5
	DefaultBulk         = 40.0
	DefaultShear        = 30.0
	DefaultIterations   = 100
	DefaultCritical     = 0.4
	DefaultCoordination = 8.6
	DefaultFluidBulk    = 2.2
)

type Config struct {
	Model   string        `yaml:"model"`
	Start   float64       `yaml:"start"`
	End     float64       `yaml:"end"`
	Points  int           `yaml:"points"`
	Workers int           `yaml:"workers"`
	Mineral MineralConfig `yaml:"mineral"`
	Pack    PackConfig    `yaml:"pack"`
	Fluid   FluidConfig   `yaml:"fluid"`
}

type MineralConfig struct {
	Bulk       float64 `yaml:"bulk"`
	Shear      float64 `yaml:"shear"`
	Density    float64 `yaml:"density"`
	Iterations int     `yaml:"iterations"`
}

type PackConfig struct {
	Critical     float64 `yaml:"critical"`
	Coordination float64 `yaml:"coordination"`
	Slip         float64 `yaml:"slip"`
}

type FluidConfig struct {
	Bulk    float64 `yaml:"bulk"`
	Density float64 `yaml:"density"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  "sc",
		Start:  DefaultStart,
		End:    DefaultEnd,
		Points: DefaultPoints,
		Mineral: MineralConfig{
			Bulk:       DefaultBulk,
			Shear:      DefaultShear,
			Density:    2.65,
			Iterations: DefaultIterations,
		},
		Pack: PackConfig{
			Critical:     DefaultCritical,
			Coordination: DefaultCoordination,
			Slip:         1.0,
		},
		Fluid: FluidConfig{
			Bulk:    DefaultFluidBulk,
			Density: 1.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetModelParams flattens the config into the param bag consumed by model
// constructors through the registry.
func (c *Config) GetModelParams() map[string]float64 {
	return map[string]float64{
		"bulk":         c.Mineral.Bulk,
		"shear":        c.Mineral.Shear,
		"iterations":   float64(c.Mineral.Iterations),
		"critical":     c.Pack.Critical,
		"coordination": c.Pack.Coordination,
		"slip":         c.Pack.Slip,
	}
}
