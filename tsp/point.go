package tsp

import "math"

// Point is an immutable 2-D coordinate with an identifying label.
type Point struct {
	X     float64
	Y     float64
	Label string
}

// Distance returns the Euclidean distance between a and b.
// It is symmetric, non-negative and zero iff the coordinates coincide.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SameCoords reports whether a and b share coordinates (labels ignored).
func SameCoords(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

// ValidatePoints rejects NaN and infinite coordinates.
//
// Complexity: O(n).
func ValidatePoints(points []Point) error {
	var i int
	for i = range points {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return ErrInvalidPoint
		}
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
