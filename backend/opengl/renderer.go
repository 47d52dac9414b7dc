// Package opengl provides an OpenGL 4.1 backend for the colorcube package.
package opengl

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/colorcube"
	"github.com/go-theft-auto/colorcube/shaders"
)

const floatSize = 4

// Renderer implements colorcube.Renderer using OpenGL.
type Renderer struct {
	program        uint32
	vao            uint32
	positionBuffer uint32
	colorBuffer    uint32
	mvpLoc         int32

	logger *slog.Logger
}

var _ colorcube.Renderer = (*Renderer)(nil)

// NewRenderer compiles the shader program and sets the fixed GL state.
// A GL context must be current.
func NewRenderer(src shaders.Sources, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Renderer{logger: logger}

	var err error
	r.program, err = createShaderProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	// A missing uniform yields -1; updates to it are ignored by GL.
	r.mvpLoc = gl.GetUniformLocation(r.program, gl.Str(shaders.MVPUniform+"\x00"))
	if r.mvpLoc < 0 {
		logger.Warn("uniform not found, transform updates will be ignored", "uniform", shaders.MVPUniform)
	}

	// Core profiles draw nothing without a bound vertex array object.
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.Enable(gl.DEPTH_TEST)
	// Accept a fragment if it is closer to the camera than the former one.
	gl.DepthFunc(gl.LESS)

	logger.Debug("shader program ready", "program", r.program, "mvp_location", r.mvpLoc)
	return r, nil
}

// Upload creates the position and color buffers.
func (r *Renderer) Upload(mesh colorcube.Mesh) error {
	if err := mesh.Validate(); err != nil {
		return err
	}
	if r.positionBuffer != 0 || r.colorBuffer != 0 {
		return colorcube.ErrAlreadyUploaded
	}

	r.positionBuffer = createStaticBuffer(mesh.Positions)
	r.colorBuffer = createStaticBuffer(mesh.Colors)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("buffer upload: %s", errorString(code))
	}
	r.logger.Debug("mesh uploaded", "vertices", mesh.VertexCount())
	return nil
}

// Render draws the mesh with frame's transform. The caller presents the frame.
func (r *Renderer) Render(frame colorcube.Frame) error {
	c := frame.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &frame.MVP[0])

	gl.BindVertexArray(r.vao)

	gl.EnableVertexAttribArray(colorcube.PositionAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionBuffer)
	gl.VertexAttribPointerWithOffset(colorcube.PositionAttrib, colorcube.PositionComponents, gl.FLOAT, false, 0, 0)

	gl.EnableVertexAttribArray(colorcube.ColorAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorBuffer)
	gl.VertexAttribPointerWithOffset(colorcube.ColorAttrib, colorcube.ColorComponents, gl.FLOAT, false, 0, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, frame.VertexCount)

	gl.DisableVertexAttribArray(colorcube.PositionAttrib)
	gl.DisableVertexAttribArray(colorcube.ColorAttrib)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw: %s", errorString(code))
	}
	return nil
}

// Resize updates the viewport to the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.colorBuffer != 0 {
		gl.DeleteBuffers(1, &r.colorBuffer)
	}
	if r.positionBuffer != 0 {
		gl.DeleteBuffers(1, &r.positionBuffer)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func createStaticBuffer(data []float32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)
	return buf
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", trimLog(log))
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", trimLog(log))
	}
	return shader, nil
}

func trimLog(log []byte) string {
	return strings.TrimSpace(strings.TrimRight(string(log), "\x00"))
}

func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return fmt.Sprintf("gl error 0x%x", code)
	}
}
