// Package renderer owns the OpenGL context, the point pipeline and the
// GPU-resident point buffer driven by the benchmark loop.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context is a window with a current OpenGL 4.6 core profile context.
// All GL calls in this package assume the context is current on the
// calling thread; the creating goroutine must stay locked to its thread.
type Context struct {
	window *glfw.Window
}

// NewContext creates the window, makes its context current for the calling
// thread and loads the GL function pointers. Any failure here is
// unrecoverable for the caller.
func NewContext(width, height int, title string, vsync bool) (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("loading GL functions: %w", err)
	}

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Enable(gl.DEPTH_TEST)

	return &Context{window: window}, nil
}

// PollEvents pumps the window event queue.
func (c *Context) PollEvents() { glfw.PollEvents() }

// CloseRequested reports whether the window close signal was observed.
func (c *Context) CloseRequested() bool { return c.window.ShouldClose() }

// RequestClose asks the event loop to stop on its next iteration.
func (c *Context) RequestClose() { c.window.SetShouldClose(true) }

// SwapBuffers presents the current frame.
func (c *Context) SwapBuffers() { c.window.SwapBuffers() }

// Clear clears the color and depth buffers.
func (c *Context) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

// Finish blocks until the device has executed all submitted commands.
func (c *Context) Finish() { gl.Finish() }

// Destroy tears down the window and the glfw library.
func (c *Context) Destroy() {
	c.window.Destroy()
	glfw.Terminate()
}
