// Package tsp - validation performed once, before a run starts.
//
// Design principles:
//   - Fail fast at the boundary; the annealing loop itself never validates.
//   - Deterministic, side-effect free functions.
//   - Sentinels from types.go, wrapped with detail so errors.Is keeps working.
package tsp

import (
	"fmt"
	"math"
)

// Validate checks the schedule contract:
//   - all parameters finite,
//   - MinimalTemperature > 0 (Metropolis needs T > 0),
//   - MinimalTemperature < InitialTemperature,
//   - 0 < CoolingFactor < 1 (guarantees termination).
//
// Complexity: O(1).
func (s Schedule) Validate() error {
	if !finite(s.InitialTemperature) || !finite(s.MinimalTemperature) || !finite(s.CoolingFactor) {
		return fmt.Errorf("%w: parameters must be finite", ErrInvalidSchedule)
	}
	if s.MinimalTemperature <= 0 {
		return fmt.Errorf("%w: minimal temperature %g must be positive", ErrInvalidSchedule, s.MinimalTemperature)
	}
	if s.MinimalTemperature >= s.InitialTemperature {
		return fmt.Errorf("%w: minimal temperature %g must be below initial temperature %g",
			ErrInvalidSchedule, s.MinimalTemperature, s.InitialTemperature)
	}
	if s.CoolingFactor <= 0 || s.CoolingFactor >= 1 {
		return fmt.Errorf("%w: cooling factor %g must lie in (0,1)", ErrInvalidSchedule, s.CoolingFactor)
	}

	return nil
}

// Epochs returns the number of epochs a run of s performs. It replays the
// controller's exact multiplication sequence instead of evaluating
// ceil(log(min/initial)/log(factor)), so floating-point rounding can never
// make the prediction disagree with the run. Invalid schedules yield 0.
//
// Complexity: O(epochs).
func (s Schedule) Epochs() int {
	if s.Validate() != nil {
		return 0
	}

	var (
		t     = s.InitialTemperature
		count int
	)
	for t > s.MinimalTemperature {
		count++
		t *= s.CoolingFactor
	}

	return count
}

// validateOptions checks Options consistency without touching tours.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}
	if opts.TwoOptMaxIters < 0 {
		return ErrNegativeIterations
	}

	return nil
}

// validateTour checks the initial tour's coordinates.
//
// Complexity: O(n).
func validateTour(t Tour) error {
	var k int
	for k = range t.points {
		if !finite(t.points[k].X) || !finite(t.points[k].Y) {
			return ErrInvalidPoint
		}
	}
	if math.IsNaN(t.length) || math.IsInf(t.length, 0) {
		return ErrInvalidPoint
	}

	return nil
}
