package trial

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(v int) *int       { return &v }
func ptrInt64(v int64) *int64 { return &v }
func ptrBool(v bool) *bool    { return &v }

func TestConfigDefaults(t *testing.T) {
	cfg := EmptyConfig()

	assert.Equal(t, 10, cfg.GetGridSize())
	assert.Equal(t, int64(100000), cfg.GetTrials())
	assert.Equal(t, int64(100), cfg.GetReportEvery())
	assert.Equal(t, 10, cfg.GetRenderBelow())
	assert.Equal(t, int64(0), cfg.GetSeed())
	assert.False(t, cfg.GetKeepHistory())
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts empty config", func(t *testing.T) {
		assert.NoError(t, EmptyConfig().Validate())
	})

	t.Run("rejects grid size below 2", func(t *testing.T) {
		cfg := &Config{GridSize: ptrInt(1)}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive trials", func(t *testing.T) {
		cfg := &Config{Trials: ptrInt64(0)}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive report cadence", func(t *testing.T) {
		cfg := &Config{ReportEvery: ptrInt64(-5)}
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects negative render threshold", func(t *testing.T) {
		cfg := &Config{RenderBelow: ptrInt(-1)}
		assert.Error(t, cfg.Validate())
	})

	t.Run("accepts full valid config", func(t *testing.T) {
		cfg := &Config{
			GridSize:    ptrInt(4),
			Trials:      ptrInt64(1),
			ReportEvery: ptrInt64(1),
			RenderBelow: ptrInt(10),
			Seed:        ptrInt64(42),
			KeepHistory: ptrBool(true),
		}
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads partial config and keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"grid_size": 6, "seed": 7}`), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.GetGridSize())
		assert.Equal(t, int64(7), cfg.GetSeed())
		// untouched fields fall back to defaults
		assert.Equal(t, int64(100000), cfg.GetTrials())
	})

	t.Run("rejects non-json extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"grid_size": 1}`), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}
