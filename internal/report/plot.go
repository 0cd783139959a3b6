// Package report renders run results as PNG charts and HTML pages.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/lattice.report/internal/trial"
)

// histBins is the bucket count for the points-needed histogram.
const histBins = 16

// SavePlots writes PNG charts for a completed run into outputDir: the
// running points-per-square average over trials and a histogram of the
// points-needed distribution. Requires a run with history retention.
// Returns the number of plots written.
func SavePlots(res *trial.Result, outputDir string) (int, error) {
	hist := res.Stats.PointsHistory()
	if len(hist) == 0 {
		return 0, fmt.Errorf("no retained history to plot; run with history retention enabled")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := saveRunningAverage(res, hist, filepath.Join(outputDir, "running_avg_points.png")); err != nil {
		return 0, fmt.Errorf("running average plot: %w", err)
	}
	if err := saveHistogram(res, hist, filepath.Join(outputDir, "points_histogram.png")); err != nil {
		return 1, fmt.Errorf("histogram plot: %w", err)
	}
	return 2, nil
}

func saveRunningAverage(res *trial.Result, hist []float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Points per Square — Running Average (N=%d)", res.GridSize)
	p.X.Label.Text = "Trial"
	p.Y.Label.Text = "Points"

	pts := make(plotter.XYs, len(hist))
	var cum float64
	for i, v := range hist {
		cum += v
		pts[i] = plotter.XY{X: float64(i + 1), Y: cum / float64(i+1)}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("avg points", line)
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}

func saveHistogram(res *trial.Result, hist []float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Points Needed per Square (N=%d, %d trials)", res.GridSize, res.Trials)
	p.X.Label.Text = "Points"
	p.Y.Label.Text = "Trials"

	h, err := plotter.NewHist(plotter.Values(hist), histBins)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
