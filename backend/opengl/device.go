// Package opengl provides an OpenGL 4.1 + GLFW backend for package colors.
package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/colors"
)

// Device implements colors.Device on the current OpenGL context.
type Device struct{}

var _ colors.Device = Device{}

// glStage maps a shader stage to its GL enum.
func glStage(stage colors.Stage) uint32 {
	if stage == colors.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (Device) CreateShader(stage colors.Stage) uint32 {
	return gl.CreateShader(glStage(stage))
}

func (Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (Device) ShaderInfoLog(shader uint32, maxLen int) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	return readInfoLog(logLength, maxLen, func(n int32, buf *uint8) {
		gl.GetShaderInfoLog(shader, n, nil, buf)
	})
}

func (Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Device) BindFragDataLocation(program, colorNumber uint32, name string) {
	gl.BindFragDataLocation(program, colorNumber, gl.Str(name+"\x00"))
}

func (Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (Device) ProgramInfoLog(program uint32, maxLen int) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	return readInfoLog(logLength, maxLen, func(n int32, buf *uint8) {
		gl.GetProgramInfoLog(program, n, nil, buf)
	})
}

func (Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (Device) CreateBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (Device) BufferVertices(buf uint32, vertices []colors.Vertex) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(colors.VertexStride),
		gl.Ptr(vertices), gl.STATIC_DRAW)
}

func (Device) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (Device) VertexAttribFloats(loc uint32, size int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, colors.VertexStride, offset)
	gl.EnableVertexAttribArray(loc)
}

func (Device) ClearColor(c colors.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (Device) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// readInfoLog reads a driver info log of logLength bytes (terminator
// included), capped at maxLen.
func readInfoLog(logLength int32, maxLen int, read func(n int32, buf *uint8)) string {
	n := int(logLength)
	if n > maxLen {
		n = maxLen
	}
	if n <= 1 {
		return ""
	}
	buf := make([]byte, n)
	read(int32(n), &buf[0])
	return trimNUL(buf)
}

// trimNUL cuts a C string at its first NUL byte.
func trimNUL(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
