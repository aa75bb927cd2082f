// Package study runs parameter studies of one-dimensional discrete maps.
//
// A study iterates a map from every initial state under every control
// parameter, watching each trajectory for periodic convergence or
// divergence. Each parameter's batch of trajectories advances in lock-step
// and stops early as soon as every initial state agrees on a common period
// or any trajectory goes negative; iteration slots past the stopping point
// are never computed.
//
//	res, err := study.Run([]float64{0.25}, []float64{2.9, 3.3}, study.DefaultConfig())
//
// # Thread safety
//
// A [Result] is immutable once returned. Parameters share no mutable state
// during a run, so setting Config.Workers > 1 fans them out to a fixed pool
// of goroutines that own disjoint slices of the output; results are
// identical to a sequential run.
package study
