// Command annealtsp solves a random or configured TSP instance with simulated
// annealing and prints the shortest route found.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/annealtsp/config"
	"github.com/katalvlaran/annealtsp/internal/logger"
	"github.com/katalvlaran/annealtsp/report"
	"github.com/katalvlaran/annealtsp/tsp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "annealtsp: %v\n", err)
		os.Exit(1)
	}
}

// flags holds the command-line overrides. Only flags that were set on the
// command line replace config values.
type flags struct {
	configPath string
	seed       int64
	count      int
	width      int
	height     int
	initial    float64
	minimal    float64
	cooling    float64
	runs       int
	polish     bool
	timeLimit  time.Duration
	logLevel   string
	logFormat  string
}

func parseFlags(args []string, stderr io.Writer) (*flags, *flag.FlagSet, error) {
	var (
		def = config.Default()
		f   = &flags{}
		fs  = flag.NewFlagSet("annealtsp", flag.ContinueOnError)
	)
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fs.Int64Var(&f.seed, "seed", def.Seed, "random seed for map generation and annealing")
	fs.IntVar(&f.count, "count", def.Map.Count, "number of random cities")
	fs.IntVar(&f.width, "width", def.Map.Width, "map width")
	fs.IntVar(&f.height, "height", def.Map.Height, "map height")
	fs.Float64Var(&f.initial, "initial", def.Schedule.InitialTemperature, "initial temperature")
	fs.Float64Var(&f.minimal, "minimal", def.Schedule.MinimalTemperature, "minimal temperature")
	fs.Float64Var(&f.cooling, "cooling", def.Schedule.CoolingFactor, "cooling factor in (0,1)")
	fs.IntVar(&f.runs, "runs", def.Runs, "independent restarts, each from a fresh shuffle")
	fs.BoolVar(&f.polish, "polish", def.Polish, "2-opt polish of the best tour")
	fs.DurationVar(&f.timeLimit, "time-limit", time.Duration(def.TimeLimit), "wall-clock budget per run (0 = none)")
	fs.StringVar(&f.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", def.LogFormat, "text or json")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs, nil
}

// loadConfig reads the optional config file and applies explicitly set flags on top.
func loadConfig(f *flags, fs *flag.FlagSet) (*config.Config, error) {
	var (
		cfg = config.Default()
		err error
	)
	if f.configPath != "" {
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Seed = f.seed
		case "count":
			cfg.Map.Count = f.count
			cfg.Points = nil
		case "width":
			cfg.Map.Width = f.width
		case "height":
			cfg.Map.Height = f.height
		case "initial":
			cfg.Schedule.InitialTemperature = f.initial
		case "minimal":
			cfg.Schedule.MinimalTemperature = f.minimal
		case "cooling":
			cfg.Schedule.CoolingFactor = f.cooling
		case "runs":
			cfg.Runs = f.runs
		case "polish":
			cfg.Polish = f.polish
		case "time-limit":
			cfg.TimeLimit = config.Duration(f.timeLimit)
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "log-format":
			cfg.LogFormat = f.logFormat
		}
	})

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f, fs)
	if err != nil {
		return err
	}

	log := logger.ForFormat(cfg.LogFormat, cfg.LogLevel, stderr).With("run_id", uuid.NewString())

	points, err := cfg.Cities()
	if err != nil {
		return fmt.Errorf("failed to build cities: %w", err)
	}
	var (
		sched   = cfg.TSPSchedule()
		shuffle = tsp.NewRand(cfg.Seed)
	)
	log.Info("annealing started",
		"cities", len(points),
		"epochs", sched.Epochs(),
		"runs", cfg.Runs,
	)

	results := make([]tsp.Result, 0, cfg.Runs)
	for r := 0; r < cfg.Runs; r++ {
		// Each restart shuffles its own starting order.
		initial := tsp.RandomTour(points, shuffle)
		res, err := solveOnce(ctx, log.With("run", r), cfg, initial, uint64(r))
		results = append(results, res)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn("interrupted, reporting partial results", "completed_runs", r)
				break
			}
			return err
		}
	}

	return printResults(stdout, log, results)
}

// solveOnce runs one restart. Degenerate input and time-limit expiry are not
// failures: the returned result is still reported.
func solveOnce(ctx context.Context, log *slog.Logger, cfg *config.Config, initial tsp.Tour, stream uint64) (tsp.Result, error) {
	opts := tsp.DefaultOptions()
	opts.Seed = tsp.DeriveSeed(cfg.Seed, stream)
	opts.TimeLimit = time.Duration(cfg.TimeLimit)
	opts.Polish = cfg.Polish
	opts.Observer = func(rep tsp.EpochReport) {
		log.Debug("epoch",
			"epoch", rep.Epoch,
			"temperature", rep.Temperature,
			"current", rep.Current.Length(),
			"best", rep.Best.Length(),
			"accepted", rep.Accepted,
		)
	}

	log.Debug("initial tour", "route", initial.String(), "length", initial.Length())

	res, err := tsp.Solve(ctx, initial, cfg.TSPSchedule(), opts)
	switch {
	case err == nil:
		log.Info("run finished", "best_length", res.Best.Length(), "epochs", res.Epochs, "elapsed", res.Elapsed)
		return res, nil
	case errors.Is(err, tsp.ErrDegenerateInput):
		log.Warn("fewer than two cities, nothing to anneal", "cities", initial.Len())
		return res, nil
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("time limit reached", "epochs", res.Epochs, "best_length", res.Best.Length())
		return res, nil
	case errors.Is(err, context.Canceled):
		return res, err
	default:
		return res, fmt.Errorf("run %d: %w", stream, err)
	}
}

func printResults(w io.Writer, log *slog.Logger, results []tsp.Result) error {
	cmp, err := report.Compare(results)
	if err != nil {
		return err
	}
	sum, err := report.Summarize(results[cmp.BestIndex])
	if err != nil {
		return fmt.Errorf("failed to summarize run %d: %w", cmp.BestIndex, err)
	}
	if err = sum.Write(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if len(results) > 1 {
		log.Info("restarts compared",
			"best_run", cmp.BestIndex,
			"best_length", cmp.Best,
			"mean_length", cmp.Mean,
			"stddev", cmp.StdDev,
		)
		_, err = fmt.Fprintf(w, "Runs:           %d (best #%d, mean %s ± %s)\n",
			len(results), cmp.BestIndex, report.Distance(cmp.Mean), report.Distance(cmp.StdDev))
	}

	return err
}
