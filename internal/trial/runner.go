package trial

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/lattice.report/internal/lattice"
	"github.com/banshee-data/lattice.report/internal/monitoring"
)

// Runner drives the trial loop: sample an empty cell, place a point, run
// detection, and on success record statistics and reset the grid. It owns
// the grid and the accumulator exclusively; a Runner is single-threaded
// and good for one Run call.
type Runner struct {
	runID       string
	grid        *lattice.Grid
	stats       *Stats
	trials      int64
	reportEvery int64
	renderBelow int
	seed        int64
}

// Result holds the aggregates of a completed run.
type Result struct {
	RunID         string
	GridSize      int
	Seed          int64
	Trials        int64
	TotalPoints   int64
	AvgPoints     float64
	AvgSide       float64
	AvgPointsPerN float64
	Elapsed       time.Duration
	TrialsPerSec  float64

	// Stats exposes the accumulator, including retained history when the
	// run was configured to keep it.
	Stats *Stats
}

// NewRunner validates cfg and builds a runner. A zero seed is replaced by
// the current time so unseeded runs still vary; the effective seed is kept
// on the runner and reported so any run can be reproduced.
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		cfg = EmptyConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	seed := cfg.GetSeed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := lattice.NewGrid(cfg.GetGridSize(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	return &Runner{
		runID:       uuid.NewString(),
		grid:        grid,
		stats:       NewStats(cfg.GetKeepHistory()),
		trials:      cfg.GetTrials(),
		reportEvery: cfg.GetReportEvery(),
		renderBelow: cfg.GetRenderBelow(),
		seed:        seed,
	}, nil
}

// RunID returns the identifier assigned to this run.
func (r *Runner) RunID() string { return r.runID }

// Run executes the configured number of trials and returns the aggregate
// result. The only error paths are invariant violations (a saturated grid
// with no square found); there is no partial result on error.
func (r *Runner) Run() (*Result, error) {
	start := time.Now()
	monitoring.Logf("run %s: %d trials on %dx%d lattice (seed %d)",
		r.runID, r.trials, r.grid.Size(), r.grid.Size(), r.seed)

	for trial := int64(1); trial <= r.trials; trial++ {
		r.grid.Reset()

		for {
			pt, err := r.grid.SampleEmpty()
			if err != nil {
				// Saturation before a square is geometrically unreachable
				// for any grid this engine accepts; treat it as fatal.
				return nil, fmt.Errorf("trial %d: %w", trial, err)
			}
			r.grid.Insert(pt)

			sq, ok := lattice.Detect(r.grid, pt)
			if !ok {
				continue
			}

			r.stats.Record(r.grid.Count(), sq.Side())
			if trial%r.reportEvery == 0 {
				r.report(trial, start, sq)
			}
			break
		}
	}

	elapsed := time.Since(start)
	res := &Result{
		RunID:         r.runID,
		GridSize:      r.grid.Size(),
		Seed:          r.seed,
		Trials:        r.stats.Trials(),
		TotalPoints:   r.stats.TotalPoints(),
		AvgPoints:     r.stats.AvgPoints(),
		AvgSide:       r.stats.AvgSide(),
		AvgPointsPerN: r.stats.AvgPoints() / float64(r.grid.Size()),
		Elapsed:       elapsed,
		TrialsPerSec:  float64(r.stats.Trials()) / elapsed.Seconds(),
		Stats:         r.stats,
	}

	monitoring.Logf("run %s complete: trials=%d avg_points=%.4f avg_side=%.4f avg_points_per_n=%.4f elapsed=%s rate=%.1f/s",
		res.RunID, res.Trials, res.AvgPoints, res.AvgSide, res.AvgPointsPerN, res.Elapsed.Round(time.Millisecond), res.TrialsPerSec)

	return res, nil
}

// report emits one progress line at the configured cadence, plus an ASCII
// render of the finished grid for small lattices.
func (r *Runner) report(trial int64, start time.Time, sq lattice.Square) {
	elapsed := time.Since(start)
	rate := float64(trial) / elapsed.Seconds()
	monitoring.Logf("trial %d: elapsed=%s rate=%.1f/s avg_points=%.4f avg_side=%.4f avg_points_per_n=%.4f",
		trial, elapsed.Round(time.Millisecond), rate,
		r.stats.AvgPoints(), r.stats.AvgSide(),
		r.stats.AvgPoints()/float64(r.grid.Size()))

	if r.grid.Size() < r.renderBelow {
		monitoring.Logf("grid:\n%s", lattice.Render(r.grid, sq))
	}
}
