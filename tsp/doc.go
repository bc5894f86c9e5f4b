// Package tsp approximates a shortest closed tour through a fixed set of 2-D
// points (the Travelling Salesman Problem) with Simulated Annealing.
//
// Building blocks:
//
//   - Point, Distance: labelled coordinates and the Euclidean metric.
//
//   - Tour: immutable cyclic order with a cached length; SwapAt builds neighbors.
//
//   - Pairs: restartable lazy enumeration of all (i,j), 0 ≤ i < j < n.
//
//   - Accept: Metropolis criterion exp(Δ/T) ≥ u for non-improving moves.
//
//   - Solve: geometric cooling controller; returns Result{Best, Trace, Elapsed}.
//
//   - TwoOpt: optional deterministic 2-opt post-pass over the best tour.
//
//   - Complexity per epoch: O(n³) (n²/2 candidates, O(n) each).
//
//   - Epochs: Schedule.Epochs() replays the T ← T·factor decay, so it always
//     matches the number of epochs Solve runs (two-point tours stop after one).
//
// Determinism: a run is fully reproducible from (initial tour, schedule, seed).
// Use RandomTour with a seeded *rand.Rand to build the initial tour.
//
// Errors are sentinels (ErrInvalidSchedule, ErrDegenerateInput, …); test them
// with errors.Is.
package tsp
