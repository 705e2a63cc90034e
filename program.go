package colors

import (
	"fmt"
	"strings"
)

// Names shared between the shader sources and the host.
const (
	AttribPosition = "position"
	AttribColor    = "color"
	UniformTime    = "time"
	FragOutput     = "outColor"
)

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// Program is a linked vertex+fragment pipeline.
type Program struct {
	dev     Device
	id      uint32
	timeLoc int32
}

// ID returns the device object id, or 0 once released.
func (p *Program) ID() uint32 { return p.id }

// TimeLocation returns the location of the time uniform, -1 if the driver
// did not keep it.
func (p *Program) TimeLocation() int32 { return p.timeLoc }

// Use makes p the active program.
func (p *Program) Use() error {
	if p.id == 0 {
		return ErrReleased
	}
	p.dev.UseProgram(p.id)
	return nil
}

// SetTime sends t to the time uniform of the active program.
func (p *Program) SetTime(t float32) {
	if p.id == 0 || p.timeLoc < 0 {
		return
	}
	p.dev.Uniform1f(p.timeLoc, t)
}

// AttribLocation looks up a vertex attribute by name.
func (p *Program) AttribLocation(name string) (uint32, error) {
	if p.id == 0 {
		return 0, ErrReleased
	}
	loc := p.dev.AttribLocation(p.id, name)
	if loc < 0 {
		return 0, fmt.Errorf("attribute %q not found in program %d", name, p.id)
	}
	return uint32(loc), nil
}

// Delete releases the program object. Further calls do nothing.
func (p *Program) Delete() {
	if p == nil || p.id == 0 {
		return
	}
	p.dev.DeleteProgram(p.id)
	Logger().Debug("program deleted", "id", p.id)
	p.id = 0
}

// LinkProgram links a vertex and a fragment shader into a program and
// resolves the time uniform. The shaders stay owned by the caller.
func LinkProgram(dev Device, vertex, fragment *Shader) (*Program, error) {
	if vertex == nil || fragment == nil ||
		vertex.stage != StageVertex || fragment.stage != StageFragment {
		return nil, ErrStageMismatch
	}
	if vertex.id == 0 || fragment.id == 0 {
		return nil, ErrReleased
	}

	p := &Program{dev: dev, id: dev.CreateProgram(), timeLoc: -1}
	dev.AttachShader(p.id, vertex.id)
	dev.AttachShader(p.id, fragment.id)
	dev.BindFragDataLocation(p.id, 0, FragOutput)
	dev.LinkProgram(p.id)

	if !dev.ProgramLinked(p.id) {
		msg := strings.TrimSpace(dev.ProgramInfoLog(p.id, MaxInfoLogLength))
		if msg == "" {
			msg = "no diagnostic reported by driver"
		}
		Logger().Warn("program link failed", "id", p.id, "log", msg)
		p.Delete()
		return nil, &LinkError{Log: msg}
	}

	p.timeLoc = dev.UniformLocation(p.id, UniformTime)
	if p.timeLoc < 0 {
		Logger().Warn("uniform not active", "name", UniformTime, "program", p.id)
	}
	Logger().Debug("program linked", "id", p.id, "time_location", p.timeLoc)
	return p, nil
}
