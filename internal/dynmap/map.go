// Package dynmap defines the one-dimensional discrete maps under study.
//
// A map is the update rule x_{n+1} = f(x_n, r) where r is the control
// parameter. Maps are pure functions, total for all finite inputs; NaN and
// Inf propagate through the arithmetic naturally.
package dynmap

import (
	"fmt"
	"math"
	"sort"
)

// Func advances a trajectory by one step: x_{next} = f(x, r).
type Func func(x, r float64) float64

// Logistic is the logistic map x_{next} = r * x * (1 - x).
func Logistic(x, r float64) float64 {
	return r * x * (1 - x)
}

// Sine is the sine map x_{next} = r * sin(pi * x).
func Sine(x, r float64) float64 {
	return r * math.Sin(math.Pi*x)
}

var registry = map[string]Func{
	"logistic": Logistic,
	"sine":     Sine,
}

// Get returns the map registered under name.
func Get(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown map: %s (available: %v)", name, Names())
	}
	return fn, nil
}

// Names lists the registered map names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
