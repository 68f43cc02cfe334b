package wave

import (
	"strconv"

	"ripple/internal/core"
)

func (f *Field) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("samples", "Samples", f.cfg.Samples),
				floatParam("width", "Width", f.cfg.Width),
				floatParam("height", "Height", f.cfg.Height),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				floatParam("decay_rate", "Decay rate", f.cfg.DecayRate),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (f *Field) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "samples",
			Label: "Samples",
			Type:  core.ParamTypeInt,
			Step:  8,
			Min:   2, Max: 512,
			HasMin: true, HasMax: true,
		},
		{
			Key:   "decay_rate",
			Label: "Decay rate",
			Type:  core.ParamTypeFloat,
			Step:  0.01,
			Min:   0, Max: 0.3,
			HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter applies a HUD adjustment. Changing the sample count
// reconfigures the field, which discards the current wave state.
func (f *Field) SetIntParameter(key string, value int) bool {
	switch key {
	case "samples":
		if value < 2 {
			value = 2
		}
		if value > 512 {
			value = 512
		}
		cfg := f.cfg
		cfg.Samples = value
		return f.Configure(cfg) == nil
	}
	return false
}

// SetFloatParameter applies a HUD adjustment. The decay rate is the one
// tunable that takes effect without resetting the surface.
func (f *Field) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "decay_rate":
		if value < 0 {
			value = 0
		}
		if value > 0.3 {
			value = 0.3
		}
		f.cfg.DecayRate = value
		return true
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

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
