package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/report"
	"github.com/katalvlaran/annealtsp/tsp"
)

func square() []tsp.Point {
	return []tsp.Point{
		{X: 0, Y: 0, Label: "A"},
		{X: 0, Y: 1, Label: "B"},
		{X: 1, Y: 1, Label: "C"},
		{X: 1, Y: 0, Label: "D"},
	}
}

func TestSummarize_TraceStats(t *testing.T) {
	res := tsp.Result{
		Best:     tsp.NewTour(square()),
		Trace:    []float64{8, 6, 4, 4, 4},
		Elapsed:  1500 * time.Millisecond,
		Epochs:   5,
		Accepted: 1234,
		Improved: 3,
	}

	s, err := report.Summarize(res)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, s.Route)
	assert.Equal(t, 4.0, s.Length)
	assert.Equal(t, 5, s.Epochs)
	assert.Equal(t, 4.0, s.Trace.Min)
	assert.Equal(t, 8.0, s.Trace.Max)
	assert.InDelta(t, 5.2, s.Trace.Mean, 1e-12)
	assert.InDelta(t, 1.6, s.Trace.StdDev, 1e-12)
	assert.Equal(t, 4.0, s.Trace.Median)
	assert.True(t, s.Trace.P90 >= s.Trace.Median && s.Trace.P90 <= s.Trace.Max)
	assert.Equal(t, 8.0, s.FirstEpoch)
	assert.InDelta(t, 0.5, s.Improvement, 1e-12)

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	out := buf.String()
	assert.Contains(t, out, "Shortest route: A B C D\n")
	assert.Contains(t, out, "Total distance: 4\n")
	assert.Contains(t, out, "Time taken:     1.5s\n")
	assert.Contains(t, out, "Epochs:         5 (accepted 1,234 moves, 3 improvements)\n")
	assert.Contains(t, out, "Improvement:    50% vs first epoch\n")
}

func TestSummarize_NoEpochs(t *testing.T) {
	res := tsp.Result{Best: tsp.NewTour(square()[:1]), Trace: []float64{}}

	s, err := report.Summarize(res)
	require.NoError(t, err)
	assert.Zero(t, s.Epochs)
	assert.Zero(t, s.Improvement)

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf))
	assert.NotContains(t, buf.String(), "Trace:")
}

func TestSummarize_RealRun(t *testing.T) {
	pts := square()
	initial := tsp.NewTour([]tsp.Point{pts[0], pts[2], pts[1], pts[3]})

	res, err := tsp.Solve(context.Background(), initial, tsp.DefaultSchedule(), tsp.DefaultOptions())
	require.NoError(t, err)

	s, err := report.Summarize(res)
	require.NoError(t, err)
	assert.Equal(t, tsp.DefaultSchedule().Epochs(), s.Epochs)
	assert.LessOrEqual(t, s.Length, s.Trace.Min)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, "4", report.Distance(4))
	assert.Equal(t, "1,234,567.89", report.Distance(1234567.891))
	assert.Equal(t, "0.5", report.Distance(0.499999))
}

func TestCompare(t *testing.T) {
	mk := func(pts []tsp.Point) tsp.Result { return tsp.Result{Best: tsp.NewTour(pts)} }
	sq := square()
	crossed := []tsp.Point{sq[0], sq[2], sq[1], sq[3]}

	c, err := report.Compare([]tsp.Result{mk(crossed), mk(sq), mk(sq)})
	require.NoError(t, err)
	assert.Equal(t, 1, c.BestIndex, "first shortest wins ties")
	assert.Equal(t, 4.0, c.Best)
	assert.Greater(t, c.Mean, 4.0)
	assert.Positive(t, c.StdDev)

	_, err = report.Compare(nil)
	require.ErrorIs(t, err, report.ErrNoResults)
}
