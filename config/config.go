// Package config provides configuration loading and access for the benchmark.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all benchmark configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Points    PointsConfig    `yaml:"points"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// PointsConfig holds the point buffer dimensions.
type PointsConfig struct {
	Count     int `yaml:"count"`      // total points in the buffer
	BatchSize int `yaml:"batch_size"` // points rewritten per frame
}

// BenchmarkConfig holds the loop behavior switches.
type BenchmarkConfig struct {
	// Enabled rewrites one window per frame and stops once the whole
	// buffer has been rewritten. Disabled renders the static cloud
	// until the window is closed.
	Enabled bool `yaml:"enabled"`
	// Fence waits for device completion before stopping each frame's
	// clock. Off by default: the benchmark measures CPU submission
	// time, racing the sub-buffer update against in-flight draws.
	Fence bool `yaml:"fence"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogEvery int `yaml:"log_every"` // frames between progress log lines (0 = off)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TotalBatches int // full windows that fit in the buffer
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Points.Count < 0 {
		return fmt.Errorf("points.count must not be negative, got %d", c.Points.Count)
	}
	if c.Points.BatchSize <= 0 {
		return fmt.Errorf("points.batch_size must be positive, got %d", c.Points.BatchSize)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TotalBatches = c.Points.Count / c.Points.BatchSize
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
