// Package main is the lattice square-trial engine: it runs repeated
// randomized trials that place points on an N×N lattice until four of
// them form a (possibly tilted) square, and reports aggregate statistics
// across the run.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/banshee-data/lattice.report/internal/monitoring"
	"github.com/banshee-data/lattice.report/internal/report"
	"github.com/banshee-data/lattice.report/internal/trial"
)

var (
	size        = flag.Int("size", 10, "Lattice side length N (minimum 2)")
	trials      = flag.Int64("trials", 100000, "Total number of trials to run")
	reportEvery = flag.Int64("report-every", 100, "Trials between progress reports")
	renderBelow = flag.Int("render-below", 10, "Render the reported grid as ASCII when N is below this")
	seed        = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	keepHistory = flag.Bool("keep-history", false, "Retain per-trial samples for summary statistics")
	configPath  = flag.String("config", "", "Optional JSON config file; explicit flags override it")
	plotsDir    = flag.String("plots", "", "Directory for PNG charts (implies -keep-history)")
	htmlPath    = flag.String("html", "", "Output path for an HTML report (implies -keep-history)")
	quiet       = flag.Bool("quiet", false, "Suppress progress logging")
)

// buildConfig merges the optional config file with explicitly set flags.
// Flags named in set win over file values; unset fields keep defaults.
func buildConfig(set map[string]bool) (*trial.Config, error) {
	cfg := trial.EmptyConfig()
	if *configPath != "" {
		loaded, err := trial.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if set["size"] || cfg.GridSize == nil {
		cfg.GridSize = size
	}
	if set["trials"] || cfg.Trials == nil {
		cfg.Trials = trials
	}
	if set["report-every"] || cfg.ReportEvery == nil {
		cfg.ReportEvery = reportEvery
	}
	if set["render-below"] || cfg.RenderBelow == nil {
		cfg.RenderBelow = renderBelow
	}
	if set["seed"] || cfg.Seed == nil {
		cfg.Seed = seed
	}
	if set["keep-history"] || cfg.KeepHistory == nil {
		cfg.KeepHistory = keepHistory
	}
	if *plotsDir != "" || *htmlPath != "" {
		retain := true
		cfg.KeepHistory = &retain
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := buildConfig(set)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *quiet {
		monitoring.SetLogger(nil)
	}

	runner, err := trial.NewRunner(cfg)
	if err != nil {
		log.Fatalf("Failed to build runner: %v", err)
	}

	result, err := runner.Run()
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	printSummary(result)

	if *plotsDir != "" {
		n, err := report.SavePlots(result, *plotsDir)
		if err != nil {
			log.Printf("Warning: failed to write plots: %v", err)
		} else {
			log.Printf("Wrote %d plots to %s", n, *plotsDir)
		}
	}
	if *htmlPath != "" {
		if err := report.SaveHTML(result, *htmlPath); err != nil {
			log.Printf("Warning: failed to write HTML report: %v", err)
		} else {
			log.Printf("Wrote HTML report to %s", *htmlPath)
		}
	}
}

func printSummary(res *trial.Result) {
	fmt.Println("\n=== Square Trial Results ===")
	fmt.Printf("Run ID: %s\n", res.RunID)
	fmt.Printf("Grid: %dx%d (seed %d)\n", res.GridSize, res.GridSize, res.Seed)
	fmt.Printf("Trials: %d\n", res.Trials)
	fmt.Printf("Elapsed: %s (%.1f trials/sec)\n", res.Elapsed.Round(time.Millisecond), res.TrialsPerSec)
	fmt.Printf("Average points per square: %.6f\n", res.AvgPoints)
	fmt.Printf("Average side length: %.6f\n", res.AvgSide)
	fmt.Printf("Average points per square / N: %.6f\n", res.AvgPointsPerN)

	if sum, ok := res.Stats.Summarize(); ok {
		fmt.Println("\n--- Distribution (retained history) ---")
		fmt.Printf("Points: mean=%.4f stddev=%.4f median=%.1f p90=%.1f\n",
			sum.PointsMean, sum.PointsStdDev, sum.PointsMedian, sum.PointsP90)
		fmt.Printf("Side:   mean=%.4f stddev=%.4f\n", sum.SideMean, sum.SideStdDev)
	}
}
