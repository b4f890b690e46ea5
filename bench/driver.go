// Package bench runs the timed render loop that measures the cost of
// partial vertex-buffer updates.
package bench

import (
	"log/slog"
	"time"

	"github.com/gokalpates/pointbench/config"
	"github.com/gokalpates/pointbench/telemetry"
)

// Device is the graphics surface the driver renders through. The GL
// implementation lives in package renderer; tests substitute an in-memory
// fake.
type Device interface {
	// PollEvents pumps window events; it may observe a close request.
	PollEvents()
	// CloseRequested reports whether the surface wants the loop to stop.
	CloseRequested() bool
	// RequestClose signals the loop to stop on its next iteration.
	RequestClose()
	// WriteWindow overwrites batchSize points starting at offset with
	// fresh samples generated from seed.
	WriteWindow(offset, batchSize int, seed int64)
	// RenderFrame clears, draws the full buffer and presents.
	RenderFrame()
	// Finish blocks until the device has completed all submitted work.
	Finish()
}

// LoopState is the loop's lifecycle state.
type LoopState int

const (
	// StateRunning means the loop is still iterating.
	StateRunning LoopState = iota
	// StateTerminating means the cursor is exhausted and loop exit has
	// been requested.
	StateTerminating
)

// Driver owns the benchmark loop state: the window cursor, the frame
// counter and the accumulated timings. The cursor only moves forward, by
// exactly one batch per successful mutation.
type Driver struct {
	dev   Device
	out   *telemetry.OutputManager
	stats *telemetry.FrameCollector

	pointCount int
	batchSize  int
	enabled    bool
	fence      bool
	logEvery   int

	state  LoopState
	offset int
	frame  int
}

// New creates a driver over dev using cfg's point and benchmark settings.
// out may be nil to disable per-frame CSV output.
func New(cfg *config.Config, dev Device, out *telemetry.OutputManager) *Driver {
	return &Driver{
		dev:        dev,
		out:        out,
		stats:      telemetry.NewFrameCollector(),
		pointCount: cfg.Points.Count,
		batchSize:  cfg.Points.BatchSize,
		enabled:    cfg.Benchmark.Enabled,
		fence:      cfg.Benchmark.Fence,
		logEvery:   cfg.Telemetry.LogEvery,
	}
}

// Run executes the loop until the cursor is exhausted or the surface
// requests close, then returns the collected frame statistics.
func (d *Driver) Run() telemetry.Summary {
	for !d.dev.CloseRequested() {
		d.dev.PollEvents()
		d.Step()
	}
	return d.stats.Summary()
}

// Step runs one loop iteration: the optional window mutation, the draw and
// the presentation. Everything but event polling lands in the timed
// section, so the measurement covers CPU submission of the mutation and
// the frame.
func (d *Driver) Step() {
	start := time.Now()

	if d.enabled {
		if d.offset+d.batchSize > d.pointCount {
			// Cursor exhausted. Normal termination, not an error;
			// this frame still draws, with no mutation.
			d.state = StateTerminating
			d.dev.RequestClose()
		} else {
			d.dev.WriteWindow(d.offset, d.batchSize, int64(d.frame))
			d.offset += d.batchSize
		}
	}

	d.dev.RenderFrame()
	if d.fence {
		d.dev.Finish()
	}

	elapsed := time.Since(start)
	d.stats.Record(elapsed)
	if err := d.out.WriteFrame(telemetry.FrameRecord{
		Frame:     d.frame,
		Offset:    d.offset,
		ElapsedUS: elapsed.Microseconds(),
	}); err != nil {
		slog.Warn("failed to write frame record", "frame", d.frame, "error", err)
	}
	d.frame++

	if d.logEvery > 0 && d.frame%d.logEvery == 0 {
		slog.Info("benchmark progress",
			"frame", d.frame,
			"offset", d.offset,
			"stats", d.stats.Summary(),
		)
	}
}

// State returns the loop's lifecycle state.
func (d *Driver) State() LoopState { return d.state }

// Offset returns the index of the first point not yet rewritten.
func (d *Driver) Offset() int { return d.offset }

// Frames returns the number of executed frames.
func (d *Driver) Frames() int { return d.frame }
