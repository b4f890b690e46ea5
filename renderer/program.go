package renderer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

const vertexShaderSource = `#version 460 core
layout(location = 0) in vec2 aPosition;
void main()
{
    gl_Position = vec4(aPosition.x, aPosition.y, 0.0, 1.0);
}
`

const fragmentShaderSource = `#version 460 core
out vec4 fragColor;
void main()
{
    fragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`

// Program is the pass-through point pipeline: 2D position in, solid white
// out. No uniforms, no attributes beyond position.
type Program struct {
	handle uint32
}

// NewProgram compiles and links the point pipeline. Compile and link
// failures are logged as warnings rather than returned: a broken program
// renders nothing but does not invalidate the timing measurement.
func NewProgram() *Program {
	vertex, err := compileShader(gl.VERTEX_SHADER, vertexShaderSource)
	if err != nil {
		slog.Warn("vertex shader failed to compile", "error", err)
	}
	fragment, err := compileShader(gl.FRAGMENT_SHADER, fragmentShaderSource)
	if err != nil {
		slog.Warn("fragment shader failed to compile", "error", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		slog.Warn("point program failed to link", "log", strings.TrimRight(log, "\x00"))
	}

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return &Program{handle: program}
}

// Use makes the program current.
func (p *Program) Use() { gl.UseProgram(p.handle) }

// Unload deletes the program object.
func (p *Program) Unload() { gl.DeleteProgram(p.handle) }

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return shader, fmt.Errorf("compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
