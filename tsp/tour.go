// Package tsp - the Tour value and its structural helpers.
//
// A Tour is an ordered cyclic sequence of Points with a cached cycle length.
// Provided helpers:
//   - NewTour: copy a point sequence and compute its length eagerly.
//   - SwapAt: build a neighbor tour with two positions exchanged.
//   - IsPermutationOf: multiset equality against a point set.
//   - EqualModuloRotation: same cyclic order, any starting position.
//   - RotateToLabel: canonical rotation for printing.
//   - String: compact printable representation for tests/debug.
//
// Design:
//   - Value semantics: a Tour is never mutated after construction; every
//     neighbor is a fresh Tour. current and candidate can never alias.
//   - The cached length is recomputed from scratch (O(n)) whenever a new
//     Tour is built; it never drifts along long acceptance chains.
package tsp

import (
	"strings"
)

// Tour is an immutable cyclic visiting order. The zero value is the empty tour.
type Tour struct {
	points []Point
	length float64
}

// NewTour stores a copy of points in the given order and computes the cycle length.
//
// Complexity: O(n) time, O(n) space.
func NewTour(points []Point) Tour {
	cp := make([]Point, len(points))
	copy(cp, points)

	return Tour{points: cp, length: cycleLength(cp)}
}

// Len returns the number of points in the tour.
func (t Tour) Len() int { return len(t.points) }

// At returns the point at position k. It panics if k is out of range,
// like a slice index.
func (t Tour) At(k int) Point { return t.points[k] }

// Length returns the cached closed-cycle length.
func (t Tour) Length() float64 { return t.length }

// Points returns an independent copy of the visiting order.
//
// Complexity: O(n).
func (t Tour) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)

	return out
}

// Labels returns the point labels in visiting order.
//
// Complexity: O(n).
func (t Tour) Labels() []string {
	out := make([]string, len(t.points))

	var k int
	for k = range t.points {
		out[k] = t.points[k].Label
	}

	return out
}

// SwapAt returns a new Tour identical to t except that positions i and j are
// exchanged. The receiver is left untouched.
//
// Contract: 0 ≤ i < j < n, otherwise ErrIndexOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) SwapAt(i, j int) (Tour, error) {
	if i < 0 || j >= len(t.points) || i >= j {
		return Tour{}, ErrIndexOutOfRange
	}

	return t.swap(i, j), nil
}

// swap is SwapAt without the range check; the pair enumerator guarantees
// 0 ≤ i < j < n for every pair it yields.
func (t Tour) swap(i, j int) Tour {
	next := make([]Point, len(t.points))
	copy(next, t.points)
	next[i], next[j] = next[j], next[i]

	return Tour{points: next, length: cycleLength(next)}
}

// cycleLength sums Distance(p[k], p[k+1]) for k∈[0,n-2] plus the closing
// edge p[n-1]→p[0]. n ≤ 1 ⇒ 0; n == 2 ⇒ twice the single distance.
//
// Complexity: O(n).
func cycleLength(p []Point) float64 {
	var n = len(p)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += Distance(p[k], p[k+1])
	}
	sum += Distance(p[n-1], p[0])

	return sum
}

// IsPermutationOf reports whether t visits exactly the points of set: same
// length, same multiset (coordinates and labels), no omissions.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) IsPermutationOf(set []Point) bool {
	if len(t.points) != len(set) {
		return false
	}
	count := make(map[Point]int, len(set))

	var k int
	for k = range set {
		count[set[k]]++
	}
	for k = range t.points {
		if count[t.points[k]] == 0 {
			return false
		}
		count[t.points[k]]--
	}

	return true
}

// EqualModuloRotation reports whether a and b describe the same cyclic order
// in the same direction, possibly starting at different positions.
//
// Complexity: O(n²) worst case with repeated points, O(n) otherwise.
func EqualModuloRotation(a, b Tour) bool {
	if a.Len() != b.Len() {
		return false
	}
	var n = a.Len()
	if n == 0 {
		return true
	}

	var (
		p int // candidate offset of a[0] inside b
		k int
	)
	for p = 0; p < n; p++ {
		if b.points[p] != a.points[0] {
			continue
		}
		for k = 1; k < n; k++ {
			if a.points[k] != b.points[(p+k)%n] {
				break
			}
		}
		if k == n {
			return true
		}
	}

	return false
}

// RotateToLabel returns the same cycle rotated so that the first point with
// the given label is at position 0.
//
// Complexity: O(n).
func (t Tour) RotateToLabel(label string) (Tour, error) {
	var (
		n     = t.Len()
		pivot = -1
		k     int
	)
	for k = 0; k < n; k++ {
		if t.points[k].Label == label {
			pivot = k
			break
		}
	}
	if pivot == -1 {
		return Tour{}, ErrUnknownLabel
	}

	out := make([]Point, n)
	for k = 0; k < n; k++ {
		out[k] = t.points[(pivot+k)%n]
	}

	// Rotation preserves every edge, so the cached length carries over.
	return Tour{points: out, length: t.length}, nil
}

// String returns a compact representation such as "[A B C | A]", where the
// vertical bar marks the closing edge back to the first point.
func (t Tour) String() string {
	if len(t.points) == 0 {
		return "[]"
	}

	var (
		b strings.Builder
		k int
	)
	b.WriteByte('[')
	for k = range t.points {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.points[k].Label)
	}
	b.WriteString(" | ")
	b.WriteString(t.points[0].Label)
	b.WriteByte(']')

	return b.String()
}
