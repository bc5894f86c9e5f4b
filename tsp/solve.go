// Package tsp - the annealing controller.
//
// Solve drives the geometric temperature schedule:
//
//	RUNNING (T > Tmin) ── epoch ──▶ T ← T·factor ──▶ RUNNING | DONE (T ≤ Tmin)
//
// One epoch is a full pass of the pair enumerator over the *current* tour:
// for every (i,j) a candidate current.swap(i,j) is built and judged by Accept.
// An accepted candidate replaces current immediately, so later pairs of the
// same epoch already see the updated tour. best is replaced on strict
// improvement only; ties keep the first tour found.
//
// Design principles:
//   - Deterministic: all randomness comes from Options.Rand / Options.Seed.
//   - Validation happens once, up front; the loop has no error paths.
//   - Cancellation is cooperative and only observed between epochs, the one
//     point where current, best and the trace are mutually consistent.
//   - No logging; progress is surfaced through Options.Observer.
//
// Complexity: O(E · n³) time for E epochs (n²/2 pairs, O(n) per candidate),
// O(n + E) space.
package tsp

import (
	"context"
	"time"
)

// Solve anneals from initial under sched and returns the best tour observed,
// the per-epoch trace of current lengths and the elapsed time.
//
// Contracts:
//   - sched must satisfy Schedule.Validate (ErrInvalidSchedule otherwise).
//   - initial must have finite coordinates (ErrInvalidPoint otherwise).
//   - initial.Len() < 2 ⇒ Result.Best == initial, no epochs, ErrDegenerateInput.
//   - initial.Len() == 2 ⇒ exactly one epoch; the only neighbor is the same cycle.
//   - ctx cancellation or Options.TimeLimit expiry ⇒ the partial Result up to
//     the last completed epoch plus ctx.Err().
//
// Errors: ErrInvalidSchedule, ErrInvalidPoint, ErrNegativeTimeLimit,
// ErrNegativeIterations, ErrDegenerateInput, context errors.
func Solve(ctx context.Context, initial Tour, sched Schedule, opts Options) (Result, error) {
	var start = time.Now()

	// Stage 1 - boundary validation (fail fast, never retried).
	if err := sched.Validate(); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateTour(initial); err != nil {
		return Result{}, err
	}

	// Stage 2 - trivial instances have no neighbors: return them as-is.
	var n = initial.Len()
	if n < 2 {
		return Result{Best: initial, Trace: []float64{}, Elapsed: time.Since(start)}, ErrDegenerateInput
	}

	// Stage 3 - wiring: randomness, time budget, enumerator.
	var rng = opts.Rand
	if rng == nil {
		rng = NewRand(opts.Seed)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}
	var pairs = NewPairs(n)

	// Stage 4 - the annealing loop.
	var (
		current     = initial
		best        = initial
		temperature = sched.InitialTemperature
		trace       = make([]float64, 0, sched.Epochs())
		accepted    int // run total
		improved    int // strict best improvements
		epochAcc    int // accepted within the current epoch
		candidate   Tour
		i, j        int
		ok          bool
	)
	finish := func() Result {
		return Result{
			Best:     best,
			Trace:    trace,
			Elapsed:  time.Since(start),
			Epochs:   len(trace),
			Accepted: accepted,
			Improved: improved,
		}
	}

	for temperature > sched.MinimalTemperature {
		// Epoch boundary: the only safe suspension point.
		if err := ctx.Err(); err != nil {
			return finish(), err
		}

		pairs.Reset()
		epochAcc = 0
		for i, j, ok = pairs.Next(); ok; i, j, ok = pairs.Next() {
			candidate = current.swap(i, j)
			if !Accept(current.length, candidate.length, temperature, rng) {
				continue
			}
			current = candidate
			epochAcc++
			if current.length < best.length {
				best = current
				improved++
			}
		}
		accepted += epochAcc

		trace = append(trace, current.length)
		if opts.Observer != nil {
			opts.Observer(EpochReport{
				Epoch:       len(trace),
				Temperature: temperature,
				Current:     current,
				Best:        best,
				Accepted:    epochAcc,
			})
		}

		// A two-point tour has a single cycle: further epochs cannot move it.
		if n == 2 {
			break
		}

		temperature *= sched.CoolingFactor
	}

	// Stage 5 - optional local-search polish of the best tour.
	if opts.Polish && n >= 4 {
		best = TwoOpt(best, opts.TwoOptMaxIters)
	}

	return finish(), nil
}
