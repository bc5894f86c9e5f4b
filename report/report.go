// Package report turns annealing results into human-readable summaries:
// the shortest route, its length, timing, and statistics over the per-epoch
// distance trace.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/annealtsp/tsp"
)

// ErrNoResults is returned by Compare when given no results.
var ErrNoResults = errors.New("report: no results")

// TraceStats summarizes a distance trace.
type TraceStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
}

// Summary describes a single solve.
type Summary struct {
	Route       []string
	Length      float64
	Elapsed     time.Duration
	Epochs      int
	Accepted    int
	Improved    int
	FirstEpoch  float64 // current length after the first epoch (0 when no epoch ran)
	Improvement float64 // 1 − Length/FirstEpoch (0 when no epoch ran)
	Trace       TraceStats
}

// Summarize computes a Summary for res.
func Summarize(res tsp.Result) (Summary, error) {
	s := Summary{
		Route:    res.Best.Labels(),
		Length:   res.Best.Length(),
		Elapsed:  res.Elapsed,
		Epochs:   len(res.Trace),
		Accepted: res.Accepted,
		Improved: res.Improved,
	}
	if len(res.Trace) == 0 {
		return s, nil
	}

	ts, err := traceStats(res.Trace)
	if err != nil {
		return Summary{}, err
	}
	s.Trace = ts
	s.FirstEpoch = res.Trace[0]
	if s.FirstEpoch > 0 {
		s.Improvement = 1 - s.Length/s.FirstEpoch
	}

	return s, nil
}

func traceStats(trace []float64) (TraceStats, error) {
	var (
		ts  TraceStats
		err error
	)
	data := stats.Float64Data(trace)

	if ts.Min, err = stats.Min(data); err != nil {
		return TraceStats{}, fmt.Errorf("trace min: %w", err)
	}
	if ts.Max, err = stats.Max(data); err != nil {
		return TraceStats{}, fmt.Errorf("trace max: %w", err)
	}
	if ts.Mean, err = stats.Mean(data); err != nil {
		return TraceStats{}, fmt.Errorf("trace mean: %w", err)
	}
	if ts.StdDev, err = stats.StandardDeviation(data); err != nil {
		return TraceStats{}, fmt.Errorf("trace stddev: %w", err)
	}
	if ts.Median, err = stats.Median(data); err != nil {
		return TraceStats{}, fmt.Errorf("trace median: %w", err)
	}
	if ts.P90, err = stats.Percentile(data, 90); err != nil {
		return TraceStats{}, fmt.Errorf("trace p90: %w", err)
	}

	return ts, nil
}

// Write renders s as the classic console summary.
func (s Summary) Write(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Shortest route: %s\n", strings.Join(s.Route, " "))
	fmt.Fprintf(&b, "Total distance: %s\n", Distance(s.Length))
	fmt.Fprintf(&b, "Time taken:     %s\n", s.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(&b, "Epochs:         %s (accepted %s moves, %s improvements)\n",
		humanize.Comma(int64(s.Epochs)), humanize.Comma(int64(s.Accepted)), humanize.Comma(int64(s.Improved)))
	if s.Epochs > 0 {
		fmt.Fprintf(&b, "Trace:          min %s, median %s, p90 %s, max %s, mean %s ± %s\n",
			Distance(s.Trace.Min), Distance(s.Trace.Median), Distance(s.Trace.P90),
			Distance(s.Trace.Max), Distance(s.Trace.Mean), Distance(s.Trace.StdDev))
		fmt.Fprintf(&b, "Improvement:    %s%% vs first epoch\n", humanize.Ftoa(round2(100*s.Improvement)))
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Distance formats a length with two decimals and thousands separators.
func Distance(x float64) string {
	return humanize.Commaf(round2(x))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Comparison summarizes several independent runs of the same instance.
type Comparison struct {
	BestIndex int     // index of the run with the shortest best tour (first on ties)
	Best      float64 // its length
	Mean      float64 // mean best length across runs
	StdDev    float64 // population standard deviation of best lengths
}

// Compare picks the shortest of results and aggregates their best lengths.
func Compare(results []tsp.Result) (Comparison, error) {
	if len(results) == 0 {
		return Comparison{}, ErrNoResults
	}

	var (
		lengths = make(stats.Float64Data, len(results))
		c       Comparison
		i       int
		err     error
	)
	for i = range results {
		lengths[i] = results[i].Best.Length()
		if lengths[i] < lengths[c.BestIndex] {
			c.BestIndex = i
		}
	}
	c.Best = lengths[c.BestIndex]

	if c.Mean, err = stats.Mean(lengths); err != nil {
		return Comparison{}, fmt.Errorf("runs mean: %w", err)
	}
	if c.StdDev, err = stats.StandardDeviation(lengths); err != nil {
		return Comparison{}, fmt.Errorf("runs stddev: %w", err)
	}

	return c, nil
}
