package report

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/lattice.report/internal/trial"
)

// maxLinePoints caps the running-average series so huge runs stay
// renderable in a browser; longer histories are strided down.
const maxLinePoints = 2000

// WriteHTML renders a self-contained HTML report for a completed run: a
// histogram of points needed per square and the running average over
// trials. Requires a run with history retention.
func WriteHTML(res *trial.Result, w io.Writer) error {
	hist := res.Stats.PointsHistory()
	if len(hist) == 0 {
		return fmt.Errorf("no retained history to report; run with history retention enabled")
	}

	subtitle := fmt.Sprintf("run=%s grid=%dx%d trials=%d seed=%d",
		res.RunID, res.GridSize, res.GridSize, res.Trials, res.Seed)

	page := components.NewPage()
	page.AddCharts(
		pointsHistogramChart(hist, subtitle),
		runningAverageChart(hist, subtitle),
	)
	return page.Render(w)
}

// SaveHTML writes the report to a file.
func SaveHTML(res *trial.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	return WriteHTML(res, f)
}

func pointsHistogramChart(hist []float64, subtitle string) *charts.Bar {
	// Integer point counts bucket directly.
	min, max := int(hist[0]), int(hist[0])
	for _, v := range hist {
		if int(v) < min {
			min = int(v)
		}
		if int(v) > max {
			max = int(v)
		}
	}
	counts := make([]int, max-min+1)
	for _, v := range hist {
		counts[int(v)-min]++
	}

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = fmt.Sprintf("%d", min+i)
		data[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Lattice Square Trials", Theme: "dark", Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Points Needed per Square", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "points"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "trials"}),
	)
	bar.SetXAxis(labels).AddSeries("trials", data)
	return bar
}

func runningAverageChart(hist []float64, subtitle string) *charts.Line {
	stride := 1
	if len(hist) > maxLinePoints {
		stride = int(math.Ceil(float64(len(hist)) / float64(maxLinePoints)))
	}

	var labels []string
	var data []opts.LineData
	var cum float64
	for i, v := range hist {
		cum += v
		if i%stride != 0 && i != len(hist)-1 {
			continue
		}
		labels = append(labels, fmt.Sprintf("%d", i+1))
		data = append(data, opts.LineData{Value: cum / float64(i+1)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Running Average — Points per Square", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "trial"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "avg points"}),
	)
	line.SetXAxis(labels).AddSeries("avg points", data)
	return line
}
