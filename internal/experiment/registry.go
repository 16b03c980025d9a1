package experiment

import (
	"fmt"
	"sort"

	"github.com/befriko/rockphypy/internal/metrics"
	"github.com/befriko/rockphypy/internal/models"
	"github.com/befriko/rockphypy/internal/sweep"
)

type Registry struct {
	models map[string]func() sweep.Model
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]func() sweep.Model),
	}

	r.models["voigt"] = func() sweep.Model { return models.NewVoigt() }
	r.models["hs_upper"] = func() sweep.Model { return models.NewHSUpper() }
	r.models["hs_lower"] = func() sweep.Model { return models.NewHSLower() }
	r.models["swiss_cheese"] = func() sweep.Model { return models.NewSwissCheese() }
	r.models["sc"] = func() sweep.Model { return models.NewSC() }
	r.models["dilute_crack"] = func() sweep.Model { return models.NewDiluteCrack() }
	r.models["oconnell_budiansky"] = func() sweep.Model { return models.NewOConnellBudiansky() }
	r.models["hertz_mindlin"] = func() sweep.Model { return models.NewHertzMindlin() }
	r.models["walton"] = func() sweep.Model { return models.NewWalton() }
	r.models["critical_porosity"] = func() sweep.Model { return models.NewCriticalPorosity() }
	r.models["swiss_cheese_sat"] = func() sweep.Model {
		m, _ := models.NewSaturated(models.NewSwissCheese(), models.DefaultBulk, models.WaterBulk)
		return m
	}
	r.models["sc_sat"] = func() sweep.Model {
		m, _ := models.NewSaturated(models.NewSC(), models.DefaultBulk, models.WaterBulk)
		return m
	}

	return r
}

func (r *Registry) GetModel(name string) (sweep.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultAxis returns the sweep range conventionally used for a model's
// axis: [0, 0.5) porosity for effective-medium models, 0-20 MPa for grain
// packs, 0-0.1 for crack densities.
func (r *Registry) DefaultAxis(model sweep.Model) (float64, float64) {
	switch model.Axis() {
	case models.AxisPressure:
		return 0, 20
	case models.AxisCrackDensity:
		return 0, 0.1
	default:
		return 0, 0.5
	}
}

func (r *Registry) DefaultMetrics(model string) []sweep.Metric {
	return []sweep.Metric{
		metrics.NewModulusDrop(),
		metrics.NewNonPhysical(),
		metrics.NewPoissonRange(),
	}
}
