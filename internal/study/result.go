package study

import "strconv"

// Period classifies one parameter's batch of trajectories. Found is false
// when no common cycle of length at most MaxPeriod was detected before
// iteration stopped.
type Period struct {
	Value int  `json:"value"`
	Found bool `json:"found"`
}

func (p Period) String() string {
	if !p.Found {
		return "undetermined"
	}
	return strconv.Itoa(p.Value)
}

// Result holds a completed parameter study. The value array is indexed by
// (parameter, initial state, iteration) and carries its own coordinate
// labels, so a Result round-trips through storage without external
// context. Iteration slots at or past Steps[p] were never computed and
// hold NaN padding; Steps is the authority on validity, the padding is
// never consulted for control flow. A Result is immutable once returned.
type Result struct {
	MapName       string
	Parameters    []float64
	InitialStates []float64
	MaxIteration  int
	Values        [][][]float64
	Steps         []int
	Periods       []Period
}

// At returns the trajectory value at (parameter, row, iteration) and
// whether that slot was ever computed.
func (r *Result) At(p, row, i int) (float64, bool) {
	if i >= r.Steps[p] {
		return 0, false
	}
	return r.Values[p][row][i], true
}

// Prefix returns the computed portion of one trajectory. The slice
// aliases the result array and must not be modified.
func (r *Result) Prefix(p, row int) []float64 {
	return r.Values[p][row][:r.Steps[p]]
}

// Tail returns the last detected cycle of one trajectory: the final
// period's worth of computed values. Nil when the parameter's period is
// undetermined.
func (r *Result) Tail(p, row int) []float64 {
	if !r.Periods[p].Found {
		return nil
	}
	prefix := r.Prefix(p, row)
	return prefix[len(prefix)-r.Periods[p].Value:]
}
