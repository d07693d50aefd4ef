package ecosystem

import (
	"strconv"

	"ecosystem/internal/core"
)

const (
	groupGeneration = "Generation"
	groupHumidity   = "Humidity"
	groupParticles  = "Particles"
	groupPlants     = "Plants"
)

var groupOrder = []string{groupGeneration, groupHumidity, groupParticles, groupPlants}

// Parameters returns every tunable grouped for presentation.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			intParam("w", "Width", w.cfg.Width),
			intParam("h", "Height", w.cfg.Height),
			int64Param("seed", "Seed", w.cfg.Seed),
		},
	}}
	for _, name := range groupOrder {
		group := core.ParameterGroup{Name: name}
		for _, spec := range intSpecs {
			if spec.group == name {
				group.Params = append(group.Params, intParam(spec.key, spec.label, *spec.field(&w.cfg.Params)))
			}
		}
		for _, spec := range floatSpecs {
			if spec.group == name {
				group.Params = append(group.Params, floatParam(spec.key, spec.label, *spec.field(&w.cfg.Params)))
			}
		}
		groups = append(groups, group)
	}
	return core.ParameterSnapshot{Groups: groups}
}

var ecosystemControls = []core.ParameterControl{
	{Key: "evaporation_rate", Label: "Evaporation", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 2, HasMin: true, HasMax: true},
	{Key: "spring_rate", Label: "Spring rate", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 5, HasMin: true, HasMax: true},
	{Key: "water_lateral_damping", Label: "Water spread", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "soil_transfer_rate", Label: "Soil seepage", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
	{Key: "droplet_water", Label: "Droplet water", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "germination_chance", Label: "Germination", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "dying_rate", Label: "Dying rate", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(ecosystemControls))
	copy(out, ecosystemControls)
	return out
}

// SetFloatParameter updates a HUD-adjustable float, clamped to its control
// bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range ecosystemControls {
		if ctrl.Key != key || ctrl.Type != core.ParamTypeFloat {
			continue
		}
		for _, spec := range floatSpecs {
			if spec.key == key {
				*spec.field(&w.cfg.Params) = ctrl.Clamp(value)
				return true
			}
		}
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
