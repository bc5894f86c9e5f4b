// Package tsp - shared types, options and sentinel errors of the annealer.
//
// Everything a caller needs to configure a run lives here:
//   - Schedule: geometric cooling parameters (initial, minimal, factor).
//   - Options:  randomness, observer, time budget and post-pass policy.
//   - Result:   best tour, per-epoch distance trace and timing.
//
// Design:
//   - Sentinels only; boundary validation wraps them with detail (errors.Is works).
//   - Plain value types; nothing here holds hidden global state.
package tsp

import (
	"errors"
	"time"
)

// Sentinel errors returned by the tsp package.
var (
	// ErrInvalidSchedule indicates a cooling schedule that cannot terminate
	// or that would evaluate the Metropolis rule at a non-positive temperature.
	ErrInvalidSchedule = errors.New("tsp: invalid cooling schedule")

	// ErrDegenerateInput indicates fewer than two points: such a tour has no
	// neighbor structure. Solve still returns the trivial tour in Result.Best.
	ErrDegenerateInput = errors.New("tsp: fewer than two points")

	// ErrIndexOutOfRange indicates SwapAt indices outside 0 ≤ i < j < n.
	ErrIndexOutOfRange = errors.New("tsp: swap index out of range")

	// ErrUnknownLabel indicates that no point in the tour carries the label.
	ErrUnknownLabel = errors.New("tsp: label not found in tour")

	// ErrInvalidPoint indicates a point with a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("tsp: point coordinate is not finite")

	// ErrNegativeIterations indicates a negative TwoOptMaxIters option.
	ErrNegativeIterations = errors.New("tsp: negative iteration bound")

	// ErrNegativeTimeLimit indicates a negative TimeLimit option.
	ErrNegativeTimeLimit = errors.New("tsp: negative time limit")
)

// Schedule holds the geometric cooling parameters of one solve.
//
// Contract (enforced by Validate):
//   - 0 < MinimalTemperature < InitialTemperature, both finite.
//   - 0 < CoolingFactor < 1.
type Schedule struct {
	InitialTemperature float64 // starting temperature T₀
	MinimalTemperature float64 // the run stops once T ≤ MinimalTemperature
	CoolingFactor      float64 // T ← T·CoolingFactor after every epoch
}

// DefaultSchedule returns a slow schedule that comfortably solves small
// instances: T₀=1000, Tmin=0.01, factor 0.98 (≈570 epochs).
func DefaultSchedule() Schedule {
	return Schedule{
		InitialTemperature: 1000,
		MinimalTemperature: 0.01,
		CoolingFactor:      0.98,
	}
}

// Uniform is the randomness boundary of the acceptance rule: a source of
// uniform draws in [0,1). *math/rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// EpochReport is the snapshot handed to an Observer at an epoch boundary.
// Tours are immutable values, so holding on to them is safe.
type EpochReport struct {
	Epoch       int     // 1-based epoch number
	Temperature float64 // temperature the epoch was run at
	Current     Tour    // current tour after the full pass
	Best        Tour    // best tour seen so far
	Accepted    int     // moves accepted during this epoch
}

// Observer receives one EpochReport per completed epoch. It must not block
// for long: the controller is synchronous.
type Observer func(EpochReport)

// Options configures Solve.
//
// Rand        – acceptance draws; nil ⇒ a *rand.Rand seeded from Seed.
// Seed        – used only when Rand==nil; 0 ⇒ defaultRNGSeed.
// Observer    – optional per-epoch callback (nil ⇒ none).
// TimeLimit   – soft wall-clock budget checked between epochs (0 ⇒ unlimited).
// Polish      – run a 2-opt pass over the best tour after annealing.
// TwoOptMaxIters – bound on accepted 2-opt moves during polish (0 ⇒ until local optimum).
type Options struct {
	Rand           Uniform
	Seed           int64
	Observer       Observer
	TimeLimit      time.Duration
	Polish         bool
	TwoOptMaxIters int
}

// DefaultOptions returns deterministic defaults: seed 0 (fixed stream),
// no observer, no time limit, no polish.
func DefaultOptions() Options {
	return Options{
		Seed:           0,
		TimeLimit:      0,
		Polish:         false,
		TwoOptMaxIters: 0,
	}
}

// Result is the outcome of a single Solve call. It is never mutated after
// being returned.
type Result struct {
	// Best is the shortest tour observed across all epochs (post-polish when enabled).
	Best Tour

	// Trace holds the current tour length at the end of every epoch, in order.
	Trace []float64

	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration

	// Epochs is the number of completed epochs (len(Trace)).
	Epochs int

	// Accepted counts accepted moves (improving or not) over the whole run.
	Accepted int

	// Improved counts strict improvements of the best tour.
	Improved int
}
