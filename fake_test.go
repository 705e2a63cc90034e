package colors_test

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/colors"
)

type fakeShader struct {
	stage    colors.Stage
	source   string
	compiled bool
	log      string
}

type fakeProgram struct {
	attached []uint32
	fragOut  map[string]uint32
	linked   bool
}

type fakeAttrib struct {
	size    int32
	offset  uintptr
	enabled bool
}

type uniformCall struct {
	loc int32
	v   float32
}

// fakeDevice is a colors.Device that records calls instead of rendering.
// A shader compiles when its source contains "void main".
type fakeDevice struct {
	next uint32
	live map[uint32]string // id -> kind, for objects not yet deleted

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	buffers  map[uint32][]colors.Vertex

	uploads    int
	boundVAO   uint32
	used       uint32
	attribs    map[uint32]fakeAttrib
	clearColor colors.Color
	clears     int
	uniforms   []uniformCall
	draws      int
	deletes    []string
	badDeletes int

	// Knobs
	compileLog  string
	rejectStage *colors.Stage
	failLink    bool
	linkLog     string
	hideAttrib  string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		live:       make(map[uint32]string),
		shaders:    make(map[uint32]*fakeShader),
		programs:   make(map[uint32]*fakeProgram),
		buffers:    make(map[uint32][]colors.Vertex),
		attribs:    make(map[uint32]fakeAttrib),
		compileLog: "0:1(1): error: syntax error, unexpected end of file",
		linkLog:    "error: linking with uncompiled/unspecialized shader",
	}
}

func (d *fakeDevice) alloc(kind string) uint32 {
	d.next++
	d.live[d.next] = kind
	return d.next
}

func (d *fakeDevice) release(kind string, id uint32) {
	if d.live[id] != kind {
		d.badDeletes++
		return
	}
	delete(d.live, id)
	d.deletes = append(d.deletes, kind)
}

func bounded(log string, maxLen int) string {
	if len(log) >= maxLen {
		return log[:maxLen-1]
	}
	return log
}

func (d *fakeDevice) CreateShader(stage colors.Stage) uint32 {
	id := d.alloc("shader")
	d.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	d.shaders[shader].source = source
}

func (d *fakeDevice) CompileShader(shader uint32) {
	s := d.shaders[shader]
	s.compiled = strings.Contains(s.source, "void main")
	if d.rejectStage != nil && *d.rejectStage == s.stage {
		s.compiled = false
	}
	if !s.compiled {
		s.log = d.compileLog
	}
}

func (d *fakeDevice) ShaderCompiled(shader uint32) bool {
	return d.shaders[shader].compiled
}

func (d *fakeDevice) ShaderInfoLog(shader uint32, maxLen int) string {
	return bounded(d.shaders[shader].log, maxLen)
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.release("shader", shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.alloc("program")
	d.programs[id] = &fakeProgram{fragOut: make(map[string]uint32)}
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.attached = append(p.attached, shader)
}

func (d *fakeDevice) BindFragDataLocation(program, colorNumber uint32, name string) {
	d.programs[program].fragOut[name] = colorNumber
}

func (d *fakeDevice) LinkProgram(program uint32) {
	p := d.programs[program]
	var stages [2]int
	ok := len(p.attached) == 2 && !d.failLink
	for _, id := range p.attached {
		s := d.shaders[id]
		if !s.compiled {
			ok = false
		}
		stages[s.stage]++
	}
	p.linked = ok && stages[colors.StageVertex] == 1 && stages[colors.StageFragment] == 1
}

func (d *fakeDevice) ProgramLinked(program uint32) bool {
	return d.programs[program].linked
}

func (d *fakeDevice) ProgramInfoLog(program uint32, maxLen int) string {
	if d.programs[program].linked {
		return ""
	}
	return bounded(d.linkLog, maxLen)
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.used = program
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	p := d.programs[program]
	if !p.linked {
		return -1
	}
	for _, id := range p.attached {
		if strings.Contains(d.shaders[id].source, "uniform float "+name+";") {
			return 7
		}
	}
	return -1
}

// AttribLocation numbers the vertex stage's "in" declarations in order.
func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	if name == d.hideAttrib {
		return -1
	}
	p := d.programs[program]
	for _, id := range p.attached {
		s := d.shaders[id]
		if s.stage != colors.StageVertex {
			continue
		}
		var loc int32
		for _, line := range strings.Split(s.source, "\n") {
			fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(fields) == 3 && fields[0] == "in" {
				if fields[2] == name {
					return loc
				}
				loc++
			}
		}
	}
	return -1
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.release("program", program)
}

func (d *fakeDevice) CreateVertexArray() uint32 { return d.alloc("vertex array") }

func (d *fakeDevice) BindVertexArray(vao uint32) { d.boundVAO = vao }

func (d *fakeDevice) DeleteVertexArray(vao uint32) { d.release("vertex array", vao) }

func (d *fakeDevice) CreateBuffer() uint32 { return d.alloc("buffer") }

func (d *fakeDevice) BufferVertices(buf uint32, vertices []colors.Vertex) {
	d.uploads++
	d.buffers[buf] = append([]colors.Vertex(nil), vertices...)
}

func (d *fakeDevice) DeleteBuffer(buf uint32) { d.release("buffer", buf) }

func (d *fakeDevice) VertexAttribFloats(loc uint32, size int32, offset uintptr) {
	d.attribs[loc] = fakeAttrib{size: size, offset: offset, enabled: true}
}

func (d *fakeDevice) ClearColor(c colors.Color) { d.clearColor = c }

func (d *fakeDevice) Clear() { d.clears++ }

func (d *fakeDevice) Uniform1f(location int32, v float32) {
	d.uniforms = append(d.uniforms, uniformCall{loc: location, v: v})
}

func (d *fakeDevice) DrawTriangles(first, count int32) {
	if first != 0 || count != 3 {
		panic(fmt.Sprintf("unexpected draw(%d, %d)", first, count))
	}
	d.draws++
}

// fakeWindow is a scripted colors.Window.
type fakeWindow struct {
	input       *colors.InputState
	shouldClose bool
	closeSet    int
	polls       int
	swaps       int

	// times are returned by successive Time calls; the last one repeats.
	times []float64
	calls int

	// onPoll runs inside PollEvents with the 1-based poll number.
	onPoll func(w *fakeWindow, poll int)
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{input: colors.NewInputState()}
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(v bool) {
	w.closeSet++
	w.shouldClose = v
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	w.input.Reset()
	if w.onPoll != nil {
		w.onPoll(w, w.polls)
	}
}

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) Input() *colors.InputState { return w.input }

func (w *fakeWindow) Time() float64 {
	if len(w.times) == 0 {
		w.calls++
		return float64(w.calls) / 60
	}
	i := w.calls
	if i >= len(w.times) {
		i = len(w.times) - 1
	}
	w.calls++
	return w.times[i]
}

// closeAfter asks the window to close on the given poll.
func closeAfter(poll int) func(*fakeWindow, int) {
	return func(w *fakeWindow, n int) {
		if n == poll {
			w.shouldClose = true
		}
	}
}
