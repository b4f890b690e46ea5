package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Screen.Width != 2560 || cfg.Screen.Height != 1440 {
		t.Errorf("expected default screen 2560x1440, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Points.Count != 67108864 {
		t.Errorf("expected default point count 67108864, got %d", cfg.Points.Count)
	}
	if cfg.Points.BatchSize != 16384 {
		t.Errorf("expected default batch size 16384, got %d", cfg.Points.BatchSize)
	}
	if !cfg.Benchmark.Enabled {
		t.Error("expected benchmark enabled by default")
	}
	if cfg.Benchmark.Fence {
		t.Error("expected fence disabled by default")
	}
}

func TestLoad_UserOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "points:\n  count: 1024\n  batch_size: 256\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	// Overridden fields
	if cfg.Points.Count != 1024 {
		t.Errorf("expected overridden count 1024, got %d", cfg.Points.Count)
	}
	if cfg.Points.BatchSize != 256 {
		t.Errorf("expected overridden batch size 256, got %d", cfg.Points.BatchSize)
	}

	// Untouched fields keep defaults
	if cfg.Screen.Width != 2560 {
		t.Errorf("expected default width 2560, got %d", cfg.Screen.Width)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero batch size", "points:\n  batch_size: 0\n"},
		{"negative count", "points:\n  count: -1\n"},
		{"zero width", "screen:\n  width: 0\n"},
	}

	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
			t.Fatalf("%s: writing config file: %v", tc.name, err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoad_ZeroPointCountAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("points:\n  count: 0\n"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected empty buffer config to load, got: %v", err)
	}
	if cfg.Derived.TotalBatches != 0 {
		t.Errorf("expected zero total batches, got %d", cfg.Derived.TotalBatches)
	}
}

func TestComputeDerived_TotalBatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "points:\n  count: 1000\n  batch_size: 256\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	// 1000 / 256 floors to 3 full windows
	if cfg.Derived.TotalBatches != 3 {
		t.Errorf("expected 3 total batches, got %d", cfg.Derived.TotalBatches)
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Points.Count = 4096

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if loaded.Points.Count != 4096 {
		t.Errorf("expected reloaded count 4096, got %d", loaded.Points.Count)
	}
}
