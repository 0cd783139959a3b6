// Command sweep runs the square-trial engine across a range of grid sizes
// and writes a summary CSV, with an optional HTML comparison chart.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/lattice.report/internal/monitoring"
	"github.com/banshee-data/lattice.report/internal/trial"
)

// sizeResult holds one grid size's aggregates for the CSV and chart.
type sizeResult struct {
	GridSize     int
	Trials       int64
	MeanPoints   float64
	StdDevPoints float64
	MeanSide     float64
	StdDevSide   float64
	PointsPerN   float64
	TrialsPerSec float64
	RunID        string
}

func main() {
	start := flag.Int("start", 4, "First grid size to sweep")
	end := flag.Int("end", 20, "Last grid size to sweep (inclusive)")
	step := flag.Int("step", 2, "Grid size increment")
	trialsPer := flag.Int64("trials-per", 1000, "Trials to run per grid size")
	seed := flag.Int64("seed", 0, "Random seed per run (0 = time-based)")
	output := flag.String("output", "", "Output CSV filename (defaults to sweep-<timestamp>.csv)")
	htmlOut := flag.String("html", "", "Optional HTML comparison chart filename")
	quietFlag := flag.Bool("quiet", true, "Suppress per-trial progress logging")
	flag.Parse()

	if *start < 2 || *end < *start || *step <= 0 {
		fmt.Fprintf(os.Stderr, "invalid sweep range: start=%d end=%d step=%d\n", *start, *end, *step)
		os.Exit(1)
	}
	if *trialsPer <= 0 {
		fmt.Fprintf(os.Stderr, "trials-per must be positive, got %d\n", *trialsPer)
		os.Exit(1)
	}

	if *quietFlag {
		monitoring.SetLogger(nil)
	}

	filename := *output
	if filename == "" {
		filename = fmt.Sprintf("sweep-%s.csv", time.Now().Format("20060102-150405"))
	}
	f, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create output file %s: %v\n", filename, err)
		os.Exit(1)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"grid_size", "trials", "mean_points", "stddev_points",
		"mean_side", "stddev_side", "mean_points_per_n", "trials_per_sec", "run_id",
	}
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write header: %v\n", err)
		os.Exit(1)
	}

	var results []sizeResult
	for size := *start; size <= *end; size += *step {
		r, err := runSize(size, *trialsPer, *seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "grid size %d: %v\n", size, err)
			os.Exit(1)
		}
		results = append(results, r)

		fmt.Printf("Summary: size=%d trials=%d mean_points=%.4f stddev_points=%.4f mean_side=%.4f rate=%.1f/s\n",
			r.GridSize, r.Trials, r.MeanPoints, r.StdDevPoints, r.MeanSide, r.TrialsPerSec)

		line := []string{
			fmt.Sprintf("%d", r.GridSize),
			fmt.Sprintf("%d", r.Trials),
			fmt.Sprintf("%.6f", r.MeanPoints),
			fmt.Sprintf("%.6f", r.StdDevPoints),
			fmt.Sprintf("%.6f", r.MeanSide),
			fmt.Sprintf("%.6f", r.StdDevSide),
			fmt.Sprintf("%.6f", r.PointsPerN),
			fmt.Sprintf("%.1f", r.TrialsPerSec),
			r.RunID,
		}
		if err := w.Write(line); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write csv line: %v\n", err)
			os.Exit(1)
		}
		w.Flush()
	}

	if *htmlOut != "" {
		if err := writeComparisonChart(results, *htmlOut); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write html chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("comparison chart written to %s\n", *htmlOut)
	}

	fmt.Printf("sweep complete, results written to %s\n", filename)
}

// runSize runs one engine configuration and reduces its retained history
// to per-size aggregates.
func runSize(size int, trialsPer, seed int64) (sizeResult, error) {
	retain := true
	cfg := &trial.Config{
		GridSize:    &size,
		Trials:      &trialsPer,
		Seed:        &seed,
		KeepHistory: &retain,
	}

	runner, err := trial.NewRunner(cfg)
	if err != nil {
		return sizeResult{}, err
	}
	res, err := runner.Run()
	if err != nil {
		return sizeResult{}, err
	}

	points := res.Stats.PointsHistory()
	sides := res.Stats.SideHistory()

	return sizeResult{
		GridSize:     size,
		Trials:       res.Trials,
		MeanPoints:   stat.Mean(points, nil),
		StdDevPoints: stat.StdDev(points, nil),
		MeanSide:     stat.Mean(sides, nil),
		StdDevSide:   stat.StdDev(sides, nil),
		PointsPerN:   res.AvgPointsPerN,
		TrialsPerSec: res.TrialsPerSec,
		RunID:        res.RunID,
	}, nil
}

// writeComparisonChart renders mean points-per-square against grid size.
func writeComparisonChart(results []sizeResult, path string) error {
	labels := make([]string, len(results))
	points := make([]opts.LineData, len(results))
	perN := make([]opts.LineData, len(results))
	for i, r := range results {
		labels[i] = fmt.Sprintf("%d", r.GridSize)
		points[i] = opts.LineData{Value: r.MeanPoints}
		perN[i] = opts.LineData{Value: r.PointsPerN}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Square Trial Sweep", Theme: "dark", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Points per Square vs Grid Size", Subtitle: fmt.Sprintf("%d sizes", len(results))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "N"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "points"}),
	)
	line.SetXAxis(labels).
		AddSeries("mean points", points).
		AddSeries("mean points / N", perN)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}
