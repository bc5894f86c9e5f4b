package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/tsp"
)

func TestAccept_StrictImprovementNeverDraws(t *testing.T) {
	u := &countingUniform{value: 1.0}

	for _, temp := range []float64{1e-9, 1, 1e9} {
		require.True(t, tsp.Accept(10, 5, temp, u))
	}
	require.Zero(t, u.draws)
}

func TestAccept_WorseMoveRejectedAtUnitDraw(t *testing.T) {
	for _, temp := range []float64{1e-3, 1, 100, 1e12} {
		require.False(t, tsp.Accept(5, 10, temp, fixedUniform(1.0)), "T=%g", temp)
	}
}

func TestAccept_EqualLength(t *testing.T) {
	u := &countingUniform{value: 0.999999}
	require.True(t, tsp.Accept(5, 5, 1, u))
	require.Equal(t, 1, u.draws)

	// exp(0) == 1 ≥ 1 holds as well.
	require.True(t, tsp.Accept(5, 5, 1, fixedUniform(1.0)))
}

func TestAccept_MetropolisThreshold(t *testing.T) {
	const temp = 2.0
	p := math.Exp(-3 / temp) // delta = -3

	require.True(t, tsp.Accept(7, 10, temp, fixedUniform(p)))
	require.True(t, tsp.Accept(7, 10, temp, fixedUniform(p*0.5)))
	require.False(t, tsp.Accept(7, 10, temp, fixedUniform(math.Nextafter(p, 1))))
}

func TestAcceptanceProbability(t *testing.T) {
	require.Equal(t, 1.0, tsp.AcceptanceProbability(10, 5, 1))
	require.Equal(t, 1.0, tsp.AcceptanceProbability(5, 5, 1))
	require.InDelta(t, math.Exp(-5), tsp.AcceptanceProbability(5, 10, 1), 1e-15)

	// Falls with temperature and with the size of the degradation.
	require.Less(t, tsp.AcceptanceProbability(5, 10, 1), tsp.AcceptanceProbability(5, 10, 10))
	require.Less(t, tsp.AcceptanceProbability(5, 20, 10), tsp.AcceptanceProbability(5, 10, 10))
}
