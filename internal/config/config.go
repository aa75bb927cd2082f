// Package config loads and saves study configurations.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kyle-brindley/chaos/internal/study"
)

const (
	DefaultInitialState      = 0.25
	DefaultMaxPeriod         = study.DefaultMaxPeriod
	DefaultMaxIteration      = study.DefaultMaxIteration
	DefaultRelativeTolerance = 1e-6
)

// Config describes one parameter study: the map, the parameter grid, the
// initial states, and the stopping bounds. Parameters may be given as an
// explicit list, one or more arithmetic ranges, or both.
type Config struct {
	Map               string    `yaml:"map"`
	Parameters        []float64 `yaml:"parameters"`
	ParameterRanges   []Range   `yaml:"parameter_ranges"`
	InitialStates     []float64 `yaml:"initial_states"`
	MaxPeriod         int       `yaml:"max_period"`
	MaxIteration      int       `yaml:"max_iteration"`
	RelativeTolerance float64   `yaml:"relative_tolerance"`
	Workers           int       `yaml:"workers"`
}

// Range is a stop-exclusive arithmetic parameter range.
type Range struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Map:               "logistic",
		InitialStates:     []float64{DefaultInitialState},
		MaxPeriod:         DefaultMaxPeriod,
		MaxIteration:      DefaultMaxIteration,
		RelativeTolerance: DefaultRelativeTolerance,
		Workers:           1,
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

// StudyConfig converts the file-level configuration into the engine's.
func (c *Config) StudyConfig() study.Config {
	return study.Config{
		Map:               c.Map,
		MaxPeriod:         c.MaxPeriod,
		MaxIteration:      c.MaxIteration,
		RelativeTolerance: c.RelativeTolerance,
		Workers:           c.Workers,
	}
}

// BuildParameters unions the explicit parameter list with every arithmetic
// range, then deduplicates and sorts ascending. The engine itself neither
// sorts nor deduplicates, so grid construction happens here.
func (c *Config) BuildParameters() []float64 {
	params := append([]float64(nil), c.Parameters...)
	for _, r := range c.ParameterRanges {
		params = append(params, Arange(r.Start, r.Stop, r.Step)...)
	}
	return Unique(params)
}
