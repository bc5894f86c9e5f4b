package tsp

import "math"

// Accept is the Metropolis criterion. With delta = current − candidate:
//   - delta > 0 (candidate strictly shorter): accept without drawing;
//   - otherwise draw r from u and accept iff exp(delta/temperature) ≥ r.
//
// temperature must be positive; the controller never calls Accept once the
// schedule has reached its floor.
//
// Complexity: O(1), at most one draw.
func Accept(current, candidate, temperature float64, u Uniform) bool {
	var delta = current - candidate
	if delta > 0 {
		return true
	}

	return math.Exp(delta/temperature) >= u.Float64()
}

// AcceptanceProbability returns the probability Accept would say yes:
// 1 for strict improvements, exp(delta/temperature) ∈ (0,1] otherwise.
func AcceptanceProbability(current, candidate, temperature float64) float64 {
	var delta = current - candidate
	if delta > 0 {
		return 1
	}

	return math.Exp(delta / temperature)
}
