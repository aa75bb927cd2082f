// Package stability detects periodic convergence in trajectory prefixes.
//
// A trajectory is stable at period p when its last p values repeat the p
// values immediately before them within a relative tolerance. The smallest
// such p is the period of the trajectory in the usual mathematical sense.
package stability

import (
	"errors"
	"math"
)

// DefaultRelativeTolerance is the relative tolerance on float equality
// comparisons when the caller does not supply one.
const DefaultRelativeTolerance = 1e-6

// ErrInsufficientData indicates a trajectory prefix too short for the
// requested period check. Callers treat this as "not yet stable", never as
// a hard failure.
var ErrInsufficientData = errors.New("stability: curve does not have enough points for period")

// SplitPeriods returns the last two windows of length period from curve:
// first holds the trailing period values, second the period values
// immediately preceding them. A check at period p needs 2p points;
// shorter curves return ErrInsufficientData.
func SplitPeriods(curve []float64, period int) (first, second []float64, err error) {
	if period < 1 || len(curve) < 2*period {
		return nil, nil, ErrInsufficientData
	}
	n := len(curve)
	return curve[n-period:], curve[n-2*period : n-period], nil
}

// IsPeriodStable reports whether curve ends in a repeating cycle of the
// given length. The comparison is elementwise |a-b| <= relTol*|b| between
// the last window and the one before it. Returns false when the curve is
// too short for the check.
func IsPeriodStable(curve []float64, period int, relTol float64) bool {
	first, second, err := SplitPeriods(curve, period)
	if err != nil {
		return false
	}
	for i := range first {
		// Positive form so a NaN difference reads as unstable.
		if !(math.Abs(first[i]-second[i]) <= relTol*math.Abs(second[i])) {
			return false
		}
	}
	return true
}

// FindStablePeriod returns the smallest period in 1..maxPeriod at which
// curve is stable, or false when no period qualifies. Searching in
// increasing order guarantees the minimal period wins: a fixed point is
// reported as period 1, never as a multiple.
func FindStablePeriod(curve []float64, maxPeriod int, relTol float64) (int, bool) {
	for period := 1; period <= maxPeriod; period++ {
		if IsPeriodStable(curve, period, relTol) {
			return period, true
		}
	}
	return 0, false
}
