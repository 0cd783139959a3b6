package trial

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the runtime parameters of the trial engine. Fields are
// pointers so a JSON file can set any subset; the Get* accessors supply
// defaults for everything left nil, which makes partial configs safe.
type Config struct {
	// Lattice params
	GridSize *int `json:"grid_size,omitempty"`

	// Run params
	Trials      *int64 `json:"trials,omitempty"`
	ReportEvery *int64 `json:"report_every,omitempty"`
	RenderBelow *int   `json:"render_below,omitempty"`
	Seed        *int64 `json:"seed,omitempty"` // 0 means time-based

	// History retention for summary statistics and report generation.
	// Off by default so long runs keep constant memory.
	KeepHistory *bool `json:"keep_history,omitempty"`
}

// EmptyConfig returns a Config with all fields set to nil.
func EmptyConfig() *Config {
	return &Config{}
}

// LoadConfig loads a Config from a JSON file. The file must have a .json
// extension and stay under the max file size. Fields omitted from the
// JSON retain their defaults.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid. It rejects any
// configuration that would let the trial loop start in a broken state.
func (c *Config) Validate() error {
	if c.GridSize != nil && *c.GridSize < 2 {
		return fmt.Errorf("grid_size must be >= 2, got %d", *c.GridSize)
	}
	if c.Trials != nil && *c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", *c.Trials)
	}
	if c.ReportEvery != nil && *c.ReportEvery <= 0 {
		return fmt.Errorf("report_every must be positive, got %d", *c.ReportEvery)
	}
	if c.RenderBelow != nil && *c.RenderBelow < 0 {
		return fmt.Errorf("render_below must be non-negative, got %d", *c.RenderBelow)
	}
	return nil
}

// GetGridSize returns the lattice side length or the default.
func (c *Config) GetGridSize() int {
	if c.GridSize == nil {
		return 10 // default
	}
	return *c.GridSize
}

// GetTrials returns the total trial count or the default.
func (c *Config) GetTrials() int64 {
	if c.Trials == nil {
		return 100000 // default
	}
	return *c.Trials
}

// GetReportEvery returns the progress reporting cadence or the default.
func (c *Config) GetReportEvery() int64 {
	if c.ReportEvery == nil {
		return 100 // default
	}
	return *c.ReportEvery
}

// GetRenderBelow returns the grid-size threshold under which the final
// grid of a reported trial is rendered as ASCII.
func (c *Config) GetRenderBelow() int {
	if c.RenderBelow == nil {
		return 10 // default
	}
	return *c.RenderBelow
}

// GetSeed returns the configured seed, or 0 meaning time-based.
func (c *Config) GetSeed() int64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

// GetKeepHistory returns whether per-trial samples are retained.
func (c *Config) GetKeepHistory() bool {
	if c.KeepHistory == nil {
		return false // default: running totals only
	}
	return *c.KeepHistory
}
