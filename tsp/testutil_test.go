// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/annealtsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for exact-by-construction lengths (unit square).
	epsTiny = 1e-6

	// epsFP absorbs summation-order noise when comparing recomputed lengths.
	epsFP = 1e-9

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)
)

// fixedUniform is a Uniform that always draws the same value.
type fixedUniform float64

func (u fixedUniform) Float64() float64 { return float64(u) }

// countingUniform records how many draws were taken.
type countingUniform struct {
	value float64
	draws int
}

func (u *countingUniform) Float64() float64 {
	u.draws++
	return u.value
}

// unitSquare returns the four corners of the unit square, labelled A..D in
// counter-clockwise order: the identity order is the optimal tour (length 4).
func unitSquare() []tsp.Point {
	return []tsp.Point{
		{X: 0, Y: 0, Label: "A"},
		{X: 0, Y: 1, Label: "B"},
		{X: 1, Y: 1, Label: "C"},
		{X: 1, Y: 0, Label: "D"},
	}
}

// crossedSquare is the unit square visited along both diagonals (A C B D),
// length 2 + 2√2.
func crossedSquare() []tsp.Point {
	sq := unitSquare()
	return []tsp.Point{sq[0], sq[2], sq[1], sq[3]}
}

// crossedSquareStuck lists the unit-square orders whose first two cities are
// diagonal opposites. From these every swap is improving-or-equal, so it is
// always accepted, and the lexicographic pass only ever visits crossed tours.
var crossedSquareStuck = map[string]bool{
	"ACBD": true, "ACDB": true, "BDAC": true, "BDCA": true,
	"CABD": true, "CADB": true, "DBAC": true, "DBCA": true,
}

// crossedSquareFree lists the remaining crossed orders; the first epoch
// already walks them onto the square.
var crossedSquareFree = []string{"ABDC", "ADBC", "BACD", "BCAD", "CBDA", "CDBA", "DACB", "DCAB"}

// squareOrder returns the unit-square points in the order spelled by labels.
func squareOrder(labels string) []tsp.Point {
	byLabel := make(map[string]tsp.Point, 4)
	for _, p := range unitSquare() {
		byLabel[p.Label] = p
	}

	out := make([]tsp.Point, 0, len(labels))
	for _, r := range labels {
		out = append(out, byLabel[string(r)])
	}

	return out
}

// orderKey concatenates the labels of t, e.g. "ACBD".
func orderKey(t tsp.Tour) string {
	return strings.Join(t.Labels(), "")
}

// circle returns n points on a slightly rippled circle of radius r, labelled
// "p0".."p{n-1}" in angular order; the angular order is the optimal tour.
func circle(n int, r float64) []tsp.Point {
	pts := make([]tsp.Point, n)

	var (
		i  int
		th float64
		rr float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		rr = r * (1.0 + 0.01*float64(i%3))
		pts[i] = tsp.Point{X: rr * math.Cos(th), Y: rr * math.Sin(th), Label: "p" + strconv.Itoa(i)}
	}

	return pts
}

// reversed returns a reversed copy of pts.
func reversed(pts []tsp.Point) []tsp.Point {
	out := make([]tsp.Point, len(pts))

	var i int
	for i = range pts {
		out[len(pts)-1-i] = pts[i]
	}

	return out
}

// interleaved returns pts reordered as evens then odds: a badly tangled tour.
func interleaved(pts []tsp.Point) []tsp.Point {
	out := make([]tsp.Point, 0, len(pts))

	var i int
	for i = 0; i < len(pts); i += 2 {
		out = append(out, pts[i])
	}
	for i = 1; i < len(pts); i += 2 {
		out = append(out, pts[i])
	}

	return out
}
