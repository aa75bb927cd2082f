package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Map != "logistic" {
		t.Errorf("expected map logistic, got %s", cfg.Map)
	}
	if len(cfg.InitialStates) != 1 || cfg.InitialStates[0] != 0.25 {
		t.Errorf("expected initial states [0.25], got %v", cfg.InitialStates)
	}
	if cfg.MaxPeriod != 12 {
		t.Errorf("expected max period 12, got %d", cfg.MaxPeriod)
	}
	if cfg.MaxIteration != 1000 {
		t.Errorf("expected max iteration 1000, got %d", cfg.MaxIteration)
	}
	if cfg.RelativeTolerance != 1e-6 {
		t.Errorf("expected tolerance 1e-6, got %g", cfg.RelativeTolerance)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.yaml")

	cfg := DefaultConfig()
	cfg.Map = "sine"
	cfg.Parameters = []float64{0.5, 0.75}
	cfg.ParameterRanges = []Range{{Start: 0.8, Stop: 0.9, Step: 0.01}}
	cfg.InitialStates = []float64{0.1, 0.25}
	cfg.MaxPeriod = 16
	cfg.Workers = 4

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Map != cfg.Map {
		t.Errorf("map = %q, want %q", loaded.Map, cfg.Map)
	}
	if !floatsEqual(loaded.Parameters, cfg.Parameters) {
		t.Errorf("parameters = %v, want %v", loaded.Parameters, cfg.Parameters)
	}
	if len(loaded.ParameterRanges) != 1 || loaded.ParameterRanges[0] != cfg.ParameterRanges[0] {
		t.Errorf("ranges = %v, want %v", loaded.ParameterRanges, cfg.ParameterRanges)
	}
	if !floatsEqual(loaded.InitialStates, cfg.InitialStates) {
		t.Errorf("initial states = %v, want %v", loaded.InitialStates, cfg.InitialStates)
	}
	if loaded.MaxPeriod != 16 || loaded.Workers != 4 {
		t.Errorf("bounds not preserved: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestArange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step float64
		want              []float64
	}{
		{"unit steps", 0, 3, 1, []float64{0, 1, 2}},
		{"fractional steps", 0, 0.3, 0.1, []float64{0, 0.1, 0.2}},
		{"stop excluded", 1, 2, 0.5, []float64{1, 1.5}},
		{"single value", 0, 0.1, 1, []float64{0}},
		{"empty range", 3, 3, 1, nil},
		{"backwards", 3, 1, 1, nil},
		{"zero step", 1, 2, 0, nil},
		{"negative step", 3, 1, -1, []float64{3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Arange(tt.start, tt.stop, tt.step)
			if len(got) != len(tt.want) {
				t.Fatalf("Arange(%v, %v, %v) = %v, want %v", tt.start, tt.stop, tt.step, got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("value %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildParameters(t *testing.T) {
	cfg := &Config{
		Parameters:      []float64{3.5, 2.0, 3.5},
		ParameterRanges: []Range{{Start: 2.0, Stop: 2.3, Step: 0.1}},
	}

	got := cfg.BuildParameters()
	// Union of explicit values and the range, deduplicated and ascending.
	want := []float64{2.0, 2.1, 2.2, 3.5}
	if len(got) != len(want) {
		t.Fatalf("BuildParameters() = %v, want %v", got, want)
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildParametersDoesNotMutate(t *testing.T) {
	cfg := &Config{Parameters: []float64{3.0, 1.0, 2.0}}
	cfg.BuildParameters()
	if cfg.Parameters[0] != 3.0 || cfg.Parameters[1] != 1.0 {
		t.Errorf("explicit parameter list was mutated: %v", cfg.Parameters)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("logistic", "period-doubling")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.MaxPeriod != DefaultMaxPeriod {
		t.Errorf("expected defaults filled in, max period = %d", cfg.MaxPeriod)
	}
	if len(cfg.BuildParameters()) == 0 {
		t.Error("preset should produce a non-empty parameter grid")
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("logistic", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "sweep"); cfg != nil {
		t.Error("expected nil for nonexistent map")
	}
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
