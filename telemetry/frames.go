// Package telemetry collects per-frame timings and reports them at the
// end of a run.
package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// sampleWindow bounds the per-frame samples retained for distribution
// statistics. The render-until-closed mode runs indefinitely, so only the
// most recent window feeds min/max/percentiles; the running sum and frame
// counter stay exact regardless.
const sampleWindow = 1 << 16

// FrameCollector accumulates per-frame elapsed times. The running sum and
// frame counter only grow; Summary reduces them once the loop is done.
type FrameCollector struct {
	sum        time.Duration
	count      int
	samples    []float64 // most recent frame times in ms
	writeIndex int
}

// NewFrameCollector creates an empty collector.
func NewFrameCollector() *FrameCollector {
	return &FrameCollector{}
}

// Record adds one frame's elapsed time. Once sampleWindow frames are
// retained, the oldest sample is overwritten.
func (c *FrameCollector) Record(d time.Duration) {
	c.sum += d
	c.count++

	ms := float64(d) / float64(time.Millisecond)
	if len(c.samples) < sampleWindow {
		c.samples = append(c.samples, ms)
		return
	}
	c.samples[c.writeIndex] = ms
	c.writeIndex = (c.writeIndex + 1) % sampleWindow
}

// Frames returns the number of recorded frames.
func (c *FrameCollector) Frames() int { return c.count }

// Summary reduces the collected timings to aggregate statistics. The mean
// covers every recorded frame; min/max/percentiles/stddev cover the
// retained sample window. With no recorded frames the mean is NaN rather
// than a division failure.
func (c *FrameCollector) Summary() Summary {
	s := Summary{Frames: c.count, MeanMS: math.NaN()}
	if c.count == 0 {
		return s
	}

	s.MeanMS = float64(c.sum) / float64(time.Millisecond) / float64(c.count)

	sorted := make([]float64, len(c.samples))
	copy(sorted, c.samples)
	sort.Float64s(sorted)

	s.MinMS = sorted[0]
	s.MaxMS = sorted[len(sorted)-1]
	s.P50MS = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P99MS = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	if c.count > 1 {
		s.StdDevMS = stat.StdDev(c.samples, nil)
	}

	return s
}

// Summary holds the reduced statistics for a finished run. All times are
// milliseconds.
type Summary struct {
	MeanMS   float64
	Frames   int
	MinMS    float64
	MaxMS    float64
	StdDevMS float64
	P50MS    float64
	P99MS    float64
}

// Report writes the two-line result: mean frame time in milliseconds,
// then total frame count.
func (s Summary) Report(w io.Writer) {
	fmt.Fprintf(w, "%g\n", s.MeanMS)
	fmt.Fprintf(w, "%d\n", s.Frames)
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("mean_ms", s.MeanMS),
		slog.Int("frames", s.Frames),
		slog.Float64("min_ms", s.MinMS),
		slog.Float64("max_ms", s.MaxMS),
		slog.Float64("stddev_ms", s.StdDevMS),
		slog.Float64("p50_ms", s.P50MS),
		slog.Float64("p99_ms", s.P99MS),
	)
}
