// Package cities supplies point sets for the annealer: random cities on an
// integer grid, or labelled points built from explicit coordinates.
//
// Random generation draws each coordinate from a continuous uniform
// distribution (gonum distuv) over [0, side+1) and floors it, which yields
// every integer in [0, side] with equal probability.
//
// Design:
//   - Deterministic: a run is reproducible from (width, height, count, seed).
//   - No package-level random state; each call owns its source.
//   - Sentinel errors only.
package cities

import (
	"errors"
	"math"
	"strconv"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/annealtsp/tsp"
)

// Sentinel errors returned by the cities package.
var (
	// ErrBadDimensions indicates a negative map width or height.
	ErrBadDimensions = errors.New("cities: map dimensions must be non-negative")

	// ErrBadCount indicates a negative number of cities.
	ErrBadCount = errors.New("cities: count must be non-negative")

	// ErrDuplicateLabel indicates two points sharing a label.
	ErrDuplicateLabel = errors.New("cities: duplicate label")

	// ErrEmptyLabel indicates a point without a label.
	ErrEmptyLabel = errors.New("cities: empty label")

	// ErrLengthMismatch indicates len(labels) != len(coords).
	ErrLengthMismatch = errors.New("cities: labels and coordinates differ in length")
)

// Generate returns count cities with integer coordinates in [0,width]×[0,height],
// labelled "1".."count" in generation order.
//
// Complexity: O(count).
func Generate(width, height, count int, seed int64) ([]tsp.Point, error) {
	if width < 0 || height < 0 {
		return nil, ErrBadDimensions
	}
	if count < 0 {
		return nil, ErrBadCount
	}

	var (
		src = rand.NewSource(uint64(seed))
		xs  = distuv.Uniform{Min: 0, Max: float64(width) + 1, Src: src}
		ys  = distuv.Uniform{Min: 0, Max: float64(height) + 1, Src: src}
		out = make([]tsp.Point, count)
		i   int
	)
	for i = 0; i < count; i++ {
		out[i] = tsp.Point{
			X:     gridCoord(xs.Rand(), width),
			Y:     gridCoord(ys.Rand(), height),
			Label: strconv.Itoa(i + 1),
		}
	}

	return out, nil
}

// gridCoord floors a draw from [0, side+1) and clamps it to side.
func gridCoord(v float64, side int) float64 {
	return math.Min(math.Floor(v), float64(side))
}

// FromCoords labels explicit coordinates "1".."n" in order.
//
// Complexity: O(n).
func FromCoords(coords [][2]float64) ([]tsp.Point, error) {
	labels := make([]string, len(coords))

	var i int
	for i = range coords {
		labels[i] = strconv.Itoa(i + 1)
	}

	return Named(labels, coords)
}

// Named pairs labels with coordinates and validates the result.
//
// Complexity: O(n).
func Named(labels []string, coords [][2]float64) ([]tsp.Point, error) {
	if len(labels) != len(coords) {
		return nil, ErrLengthMismatch
	}
	out := make([]tsp.Point, len(coords))

	var i int
	for i = range coords {
		out[i] = tsp.Point{X: coords[i][0], Y: coords[i][1], Label: labels[i]}
	}
	if err := Validate(out); err != nil {
		return nil, err
	}

	return out, nil
}

// Validate checks that every point has a finite position and a unique,
// non-empty label.
//
// Complexity: O(n) time, O(n) space.
func Validate(points []tsp.Point) error {
	if err := tsp.ValidatePoints(points); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(points))

	var (
		i  int
		ok bool
	)
	for i = range points {
		if points[i].Label == "" {
			return ErrEmptyLabel
		}
		if _, ok = seen[points[i].Label]; ok {
			return ErrDuplicateLabel
		}
		seen[points[i].Label] = struct{}{}
	}

	return nil
}
