package study

import (
	"errors"
	"fmt"
	"math"

	"github.com/kyle-brindley/chaos/internal/dynmap"
	"github.com/kyle-brindley/chaos/internal/stability"
)

// Default study bounds, matching the CLI defaults.
const (
	DefaultMaxPeriod    = 12
	DefaultMaxIteration = 1000
)

// ErrInvalidConfig indicates a study configuration that fails validation
// before any computation starts.
var ErrInvalidConfig = errors.New("study: invalid configuration")

// Config bounds a parameter study.
type Config struct {
	// Map names the update rule, resolved through dynmap.Get.
	Map string
	// MaxPeriod is the largest cycle length searched for.
	MaxPeriod int
	// MaxIteration is the trajectory length ceiling, counting the seed.
	MaxIteration int
	// RelativeTolerance is the float equality tolerance for period checks.
	RelativeTolerance float64
	// Workers sets the parameter-level parallelism. Values below 2 run
	// the study sequentially; the output is identical either way.
	Workers int
}

// DefaultConfig returns the logistic map with the standard study bounds.
func DefaultConfig() Config {
	return Config{
		Map:               "logistic",
		MaxPeriod:         DefaultMaxPeriod,
		MaxIteration:      DefaultMaxIteration,
		RelativeTolerance: stability.DefaultRelativeTolerance,
		Workers:           1,
	}
}

func (c Config) validate() (dynmap.Func, error) {
	fn, err := dynmap.Get(c.Map)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.MaxPeriod < 1 {
		return nil, fmt.Errorf("%w: max period must be at least 1, got %d", ErrInvalidConfig, c.MaxPeriod)
	}
	if c.MaxIteration < 1 {
		return nil, fmt.Errorf("%w: max iteration must be at least 1, got %d", ErrInvalidConfig, c.MaxIteration)
	}
	if c.RelativeTolerance <= 0 {
		return nil, fmt.Errorf("%w: relative tolerance must be positive, got %g", ErrInvalidConfig, c.RelativeTolerance)
	}
	return fn, nil
}

// Run computes a trajectory for every (parameter, initial state) pair and
// classifies each parameter by the common period its trajectories settle
// into, if any. Inputs are copied, never mutated or aliased; the parameter
// list is used in the order given.
func Run(initialStates, parameters []float64, cfg Config) (*Result, error) {
	fn, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	if len(initialStates) == 0 {
		return nil, fmt.Errorf("%w: no initial states", ErrInvalidConfig)
	}
	if len(parameters) == 0 {
		return nil, fmt.Errorf("%w: no parameters", ErrInvalidConfig)
	}

	res := newResult(cfg.Map, parameters, initialStates, cfg.MaxIteration)
	forEachParameter(len(parameters), cfg.Workers, func(start, end int) {
		for p := start; p < end; p++ {
			res.Steps[p], res.Periods[p] = runParameter(fn, parameters[p], res.Values[p], cfg)
		}
	})
	return res, nil
}

// runParameter advances every row of one parameter batch in lock-step.
// Rows are seeded at iteration 0; the batch stops as soon as every row
// agrees on a common period or any row's newest value goes negative,
// leaving later iteration slots unset. Returns the number of computed
// iterations and the period classification.
func runParameter(fn dynmap.Func, r float64, rows [][]float64, cfg Config) (int, Period) {
	for i := 1; i < cfg.MaxIteration; i++ {
		negative := false
		for _, row := range rows {
			row[i] = fn(row[i-1], r)
			if row[i] < 0 {
				negative = true
			}
		}
		period := commonPeriod(rows, i+1, cfg)
		if negative || period.Found {
			return i + 1, period
		}
	}
	return cfg.MaxIteration, Period{}
}

// commonPeriod classifies a parameter batch from its first n iterations.
// The batch has a period only when every row individually stabilized at
// the same cycle length; rows that disagree, or have not stabilized,
// leave the batch undetermined even though some rows may have settled.
func commonPeriod(rows [][]float64, n int, cfg Config) Period {
	common := 0
	for _, row := range rows {
		p, ok := stability.FindStablePeriod(row[:n], cfg.MaxPeriod, cfg.RelativeTolerance)
		if !ok {
			return Period{}
		}
		if common == 0 {
			common = p
		} else if p != common {
			return Period{}
		}
	}
	return Period{Value: common, Found: true}
}

func newResult(mapName string, parameters, initialStates []float64, maxIteration int) *Result {
	res := &Result{
		MapName:       mapName,
		Parameters:    append([]float64(nil), parameters...),
		InitialStates: append([]float64(nil), initialStates...),
		MaxIteration:  maxIteration,
		Values:        make([][][]float64, len(parameters)),
		Steps:         make([]int, len(parameters)),
		Periods:       make([]Period, len(parameters)),
	}
	for p := range res.Values {
		res.Values[p] = make([][]float64, len(initialStates))
		for row := range res.Values[p] {
			values := make([]float64, maxIteration)
			for i := range values {
				values[i] = math.NaN()
			}
			values[0] = initialStates[row]
			res.Values[p][row] = values
		}
		res.Steps[p] = 1
	}
	return res
}
