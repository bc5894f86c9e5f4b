package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/tsp"
)

func TestTwoOpt_UntanglesSquare(t *testing.T) {
	out := tsp.TwoOpt(tsp.NewTour(crossedSquare()), 0)

	require.InDelta(t, 4.0, out.Length(), epsFP)
	require.True(t, out.IsPermutationOf(unitSquare()))
}

func TestTwoOpt_ReachesCircleOrder(t *testing.T) {
	pts := circle(16, 10)
	in := tsp.NewTour(interleaved(pts))

	out := tsp.TwoOpt(in, 0)
	require.True(t, out.IsPermutationOf(pts))
	require.Less(t, out.Length(), in.Length())

	// On a convex position set the only 2-opt optimum is the hull order.
	opt := tsp.NewTour(pts)
	require.InDelta(t, opt.Length(), out.Length(), 1e-6)
	require.True(t,
		tsp.EqualModuloRotation(out, opt) || tsp.EqualModuloRotation(out, tsp.NewTour(reversed(pts))),
		"got %s", out)
}

func TestTwoOpt_InputUntouched(t *testing.T) {
	in := tsp.NewTour(crossedSquare())
	before := in.Labels()

	_ = tsp.TwoOpt(in, 0)
	require.Equal(t, before, in.Labels())
}

func TestTwoOpt_MaxIters(t *testing.T) {
	pts := circle(20, 10)
	in := tsp.NewTour(interleaved(pts))

	one := tsp.TwoOpt(in, 1)
	full := tsp.TwoOpt(in, 0)

	require.Less(t, one.Length(), in.Length())
	require.LessOrEqual(t, full.Length(), one.Length()+epsFP)
}

func TestTwoOpt_SmallToursUnchanged(t *testing.T) {
	tri := tsp.NewTour(unitSquare()[:3])
	require.Equal(t, tri.Labels(), tsp.TwoOpt(tri, 0).Labels())
	require.Zero(t, tsp.TwoOpt(tsp.Tour{}, 0).Len())
}
