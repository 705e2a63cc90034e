package colors

import (
	"errors"
	"fmt"
	"strings"
)

// MaxInfoLogLength bounds the diagnostics read back from the driver.
const MaxInfoLogLength = 512

// VertexShaderSource passes the vertex color through to the fragment stage.
const VertexShaderSource = `#version 410 core

in vec2 position;
in vec3 color;
out vec3 fragColor;

void main() {
    fragColor = color;
    gl_Position = vec4(position, 0.0, 1.0);
}
`

// FragmentShaderSource tints the interpolated color with the time uniform.
// Each channel oscillates a third of a period apart, scaled by the inverse
// of the interpolated vertex color.
const FragmentShaderSource = `#version 410 core

uniform float time;
in vec3 fragColor;
out vec4 outColor;

void main() {
    outColor.x = (1 + sin(time)) / 2.0 * (1 - fragColor.x);
    outColor.y = (1 + sin(time + 1.047)) / 2.0 * (1 - fragColor.y);
    outColor.z = (1 + sin(time + 2.094)) / 2.0 * (1 - fragColor.z);
    outColor.w = 1.0;
}
`

var (
	// ErrReleased is returned when a handle is used after Delete.
	ErrReleased = errors.New("colors: handle already released")
	// ErrStageMismatch is returned when a program is linked from anything
	// other than one vertex and one fragment shader.
	ErrStageMismatch = errors.New("colors: program needs one vertex and one fragment shader")
)

// CompileError reports a shader that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// Shader is a compiled shader stage owned by the caller.
type Shader struct {
	dev      Device
	id       uint32
	stage    Stage
	compiled bool
}

// ID returns the device object id, or 0 once released.
func (s *Shader) ID() uint32 { return s.id }

// Stage returns the shader's stage.
func (s *Shader) Stage() Stage { return s.stage }

// Compiled reports whether compilation succeeded.
func (s *Shader) Compiled() bool { return s.compiled }

// Delete releases the shader object. Further calls do nothing.
func (s *Shader) Delete() {
	if s == nil || s.id == 0 {
		return
	}
	s.dev.DeleteShader(s.id)
	Logger().Debug("shader deleted", "stage", s.stage, "id", s.id)
	s.id = 0
}

// CompileShader compiles source as the given stage.
//
// A compile failure does not withhold the handle: the shader is returned
// together with a *CompileError carrying the driver's diagnostic, and the
// caller remains responsible for deleting it.
func CompileShader(dev Device, stage Stage, source string) (*Shader, error) {
	s := &Shader{
		dev:   dev,
		id:    dev.CreateShader(stage),
		stage: stage,
	}
	dev.ShaderSource(s.id, source)
	dev.CompileShader(s.id)

	if dev.ShaderCompiled(s.id) {
		s.compiled = true
		Logger().Debug("shader compiled", "stage", stage, "id", s.id)
		return s, nil
	}

	msg := strings.TrimSpace(dev.ShaderInfoLog(s.id, MaxInfoLogLength))
	if msg == "" {
		msg = "no diagnostic reported by driver"
	}
	Logger().Warn("shader compilation failed", "stage", stage, "id", s.id, "log", msg)
	return s, &CompileError{Stage: stage, Log: msg}
}
