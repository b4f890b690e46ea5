package renderer

import "github.com/gokalpates/pointbench/points"

// Device ties the context, program and point buffer together into the
// surface the benchmark loop drives.
type Device struct {
	ctx     *Context
	program *Program
	buffer  *PointBuffer
}

// NewDevice wraps an already-initialized context, program and buffer.
func NewDevice(ctx *Context, program *Program, buffer *PointBuffer) *Device {
	return &Device{ctx: ctx, program: program, buffer: buffer}
}

// PollEvents pumps window events.
func (d *Device) PollEvents() { d.ctx.PollEvents() }

// CloseRequested reports whether the window wants the loop to stop.
func (d *Device) CloseRequested() bool { return d.ctx.CloseRequested() }

// RequestClose signals the loop to stop on its next iteration.
func (d *Device) RequestClose() { d.ctx.RequestClose() }

// WriteWindow generates batchSize fresh samples from seed and overwrites
// the buffer range starting at offset.
func (d *Device) WriteWindow(offset, batchSize int, seed int64) {
	d.buffer.WriteRange(offset, points.Window(batchSize, seed))
}

// RenderFrame clears, draws the whole buffer and presents.
func (d *Device) RenderFrame() {
	d.ctx.Clear()
	d.program.Use()
	d.buffer.Draw()
	d.ctx.SwapBuffers()
}

// Finish blocks until the device has completed all submitted work.
func (d *Device) Finish() { d.ctx.Finish() }
