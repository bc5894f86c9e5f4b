// Package tsp - 2-opt local search used as an optional post-pass.
//
// TwoOpt performs deterministic first-improvement 2-opt on a Euclidean tour.
// For positions i < k it considers replacing edges (a,b) and (c,d), with
// a=T[i], b=T[i+1], c=T[k], d=T[k+1 mod n], by (a,c) and (b,d), i.e. reversing
// the segment T[i+1..k]:
//
//	Δ = dist(a,c) + dist(b,d) − dist(a,b) − dist(c,d)
//
// A move is applied when Δ < −twoOptEps, and the scan restarts.
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - Works on a private copy; the input Tour is never touched.
//   - The returned length is recomputed from scratch, not accumulated from Δs.
//
// Complexity:
//   - One pass: O(n²) candidate checks, O(n) per accepted reversal.
//   - Overall: O(iter·n²) time; O(n) extra space.
package tsp

// twoOptEps is the strict improvement threshold; it keeps the search from
// cycling on moves whose gain is pure floating-point noise.
const twoOptEps = 1e-12

// TwoOpt returns a 2-opt local optimum reachable from t. maxIters bounds the
// number of accepted moves (0 ⇒ until no improving move remains).
// Tours with fewer than 4 points have no non-trivial 2-opt move and are
// returned unchanged.
//
// Guarantees: the result is a permutation of t and its length is ≤ t.Length().
func TwoOpt(t Tour, maxIters int) Tour {
	var n = t.Len()
	if n < 4 {
		return t
	}

	cur := t.Points()

	var (
		moves    int
		improved = true
		i, k     int
		a, b     Point
		c, d     Point
		delta    float64
	)
	for improved {
		improved = false

	scan:
		for i = 0; i < n-2; i++ {
			a, b = cur[i], cur[i+1]
			for k = i + 2; k < n; k++ {
				// Edges (n-1,0) and (0,1) share a vertex: nothing to exchange.
				if i == 0 && k == n-1 {
					continue
				}
				c, d = cur[k], cur[(k+1)%n]
				delta = Distance(a, c) + Distance(b, d) - Distance(a, b) - Distance(c, d)
				if delta < -twoOptEps {
					reversePoints(cur, i+1, k)
					moves++
					improved = true

					break scan
				}
			}
		}

		if maxIters > 0 && moves >= maxIters {
			break
		}
	}

	return Tour{points: cur, length: cycleLength(cur)}
}

// reversePoints reverses the inclusive segment p[i..k] in place.
//
// Complexity: O(k-i) time, O(1) space.
func reversePoints(p []Point, i, k int) {
	for i < k {
		p[i], p[k] = p[k], p[i]
		i++
		k--
	}
}
