package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/gokalpates/pointbench/bench"
	"github.com/gokalpates/pointbench/config"
	"github.com/gokalpates/pointbench/points"
	"github.com/gokalpates/pointbench/renderer"
	"github.com/gokalpates/pointbench/telemetry"
)

func init() {
	// The GL context is bound to the thread that created it.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("output-dir", "", "Directory for per-frame CSV log and config snapshot")
	benchmarkMode := flag.Bool("benchmark", true, "Rewrite one window per frame and exit once the buffer is fully rewritten")
	flag.Parse()

	// stdout carries the two-line result; logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "benchmark" {
			cfg.Benchmark.Enabled = *benchmarkMode
		}
	})

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	ctx, err := renderer.NewContext(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Title, cfg.Screen.VSync)
	if err != nil {
		slog.Error("failed to create graphics context", "error", err)
		os.Exit(1)
	}
	defer ctx.Destroy()

	program := renderer.NewProgram()
	defer program.Unload()

	buffer := renderer.NewPointBuffer(cfg.Points.Count, points.InitialFill(cfg.Points.Count))
	defer buffer.Unload()

	slog.Info("benchmark starting",
		"points", cfg.Points.Count,
		"batch_size", cfg.Points.BatchSize,
		"total_batches", cfg.Derived.TotalBatches,
		"buffer_bytes", buffer.SizeBytes(),
		"benchmark", cfg.Benchmark.Enabled,
		"fence", cfg.Benchmark.Fence,
	)

	driver := bench.New(cfg, renderer.NewDevice(ctx, program, buffer), out)
	summary := driver.Run()

	slog.Info("benchmark finished", "stats", summary)
	summary.Report(os.Stdout)
}
