package config

import "sort"

// Presets are ready-made studies over the interesting regions of each map,
// keyed by map name then preset name.
var Presets = map[string]map[string]*Config{
	"logistic": {
		"fixed-point": {
			Map:             "logistic",
			ParameterRanges: []Range{{Start: 1.0, Stop: 3.0, Step: 0.1}},
			InitialStates:   []float64{DefaultInitialState},
		},
		"period-doubling": {
			Map:             "logistic",
			ParameterRanges: []Range{{Start: 2.9, Stop: 3.57, Step: 0.005}},
			InitialStates:   []float64{DefaultInitialState},
		},
		"chaos": {
			Map:             "logistic",
			ParameterRanges: []Range{{Start: 3.5, Stop: 4.0, Step: 0.002}},
			InitialStates:   []float64{DefaultInitialState},
			MaxPeriod:       16,
		},
		"sweep": {
			Map:             "logistic",
			ParameterRanges: []Range{{Start: 0.1, Stop: 4.0, Step: 0.01}},
			InitialStates:   []float64{DefaultInitialState},
		},
	},
	"sine": {
		"fixed-point": {
			Map:             "sine",
			ParameterRanges: []Range{{Start: 0.35, Stop: 0.72, Step: 0.005}},
			InitialStates:   []float64{DefaultInitialState},
		},
		"period-doubling": {
			Map:             "sine",
			ParameterRanges: []Range{{Start: 0.72, Stop: 0.87, Step: 0.002}},
			InitialStates:   []float64{DefaultInitialState},
		},
		"sweep": {
			Map:             "sine",
			ParameterRanges: []Range{{Start: 0.1, Stop: 1.0, Step: 0.005}},
			InitialStates:   []float64{DefaultInitialState},
		},
	},
}

// GetPreset returns a copy of the named preset with unset bounds filled
// from the defaults, or nil when the map or preset is unknown.
func GetPreset(mapName, preset string) *Config {
	mapPresets, ok := Presets[mapName]
	if !ok {
		return nil
	}
	base, ok := mapPresets[preset]
	if !ok {
		return nil
	}

	cfg := *base
	if cfg.MaxPeriod == 0 {
		cfg.MaxPeriod = DefaultMaxPeriod
	}
	if cfg.MaxIteration == 0 {
		cfg.MaxIteration = DefaultMaxIteration
	}
	if cfg.RelativeTolerance == 0 {
		cfg.RelativeTolerance = DefaultRelativeTolerance
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	return &cfg
}

// ListPresets returns the preset names for one map.
func ListPresets(mapName string) []string {
	mapPresets, ok := Presets[mapName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(mapPresets))
	for name := range mapPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
