package renderer

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gokalpates/pointbench/points"
)

// PointBuffer owns a GPU-resident vertex buffer of 2D points and the
// vertex array describing its layout. Capacity is fixed at creation; only
// contents change, window by window.
type PointBuffer struct {
	vbo   uint32
	vao   uint32
	count int
}

// NewPointBuffer allocates a buffer for count points and uploads data as
// its initial contents. The usage hint favors frequent partial rewrites.
func NewPointBuffer(count int, data []float32) *PointBuffer {
	b := &PointBuffer{count: count}

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if count > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, count*points.Stride, gl.Ptr(data), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, points.CoordsPerPoint, gl.FLOAT, false, points.Stride, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return b
}

// WriteRange overwrites the points starting at index offset with data, in
// place. No bytes outside the written range are touched and the buffer is
// never reallocated. No synchronization is performed against draws already
// in flight; command ordering is left to the driver.
func (b *PointBuffer) WriteRange(offset int, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*points.Stride, len(data)*4, gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues one draw call over the entire buffer as independent points.
func (b *PointBuffer) Draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(b.count))
}

// Count returns the buffer's fixed point capacity.
func (b *PointBuffer) Count() int { return b.count }

// SizeBytes returns the buffer's byte size.
func (b *PointBuffer) SizeBytes() int { return b.count * points.Stride }

// Unload deletes the vertex array and buffer objects.
func (b *PointBuffer) Unload() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
}
