package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/lattice.report/internal/monitoring"
	"github.com/banshee-data/lattice.report/internal/trial"
)

func ptrInt(v int) *int       { return &v }
func ptrInt64(v int64) *int64 { return &v }
func ptrBool(v bool) *bool    { return &v }

func runForReport(t *testing.T, keepHistory bool) *trial.Result {
	t.Helper()
	restore := monitoring.Silence()
	defer restore()

	r, err := trial.NewRunner(&trial.Config{
		GridSize:    ptrInt(5),
		Trials:      ptrInt64(50),
		ReportEvery: ptrInt64(1000),
		RenderBelow: ptrInt(0),
		Seed:        ptrInt64(31),
		KeepHistory: ptrBool(keepHistory),
	})
	require.NoError(t, err)
	res, err := r.Run()
	require.NoError(t, err)
	return res
}

func TestSavePlots(t *testing.T) {
	res := runForReport(t, true)
	dir := filepath.Join(t.TempDir(), "plots")

	n, err := SavePlots(res, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, name := range []string{"running_avg_points.png", "points_histogram.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestSavePlots_RequiresHistory(t *testing.T) {
	res := runForReport(t, false)
	_, err := SavePlots(res, t.TempDir())
	assert.Error(t, err)
}

func TestWriteHTML(t *testing.T) {
	res := runForReport(t, true)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(res, &buf))

	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, res.RunID)
	assert.Contains(t, out, "Points Needed per Square")
}

func TestWriteHTML_RequiresHistory(t *testing.T) {
	res := runForReport(t, false)
	assert.Error(t, WriteHTML(res, &bytes.Buffer{}))
}

func TestSaveHTML(t *testing.T) {
	res := runForReport(t, true)
	path := filepath.Join(t.TempDir(), "report.html")

	require.NoError(t, SaveHTML(res, path))
	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(0))
}
