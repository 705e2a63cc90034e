package colors

// Device is the graphics command surface of one context.
// Ids are the raw object names handed out by the graphics API; zero is never
// a valid object. Implementations are not safe for concurrent use and must be
// driven from the thread that owns the context.
type Device interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most maxLen bytes of the shader's info log.
	ShaderInfoLog(shader uint32, maxLen int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindFragDataLocation(program, colorNumber uint32, name string)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns at most maxLen bytes of the program's info log.
	ProgramInfoLog(program uint32, maxLen int) string
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32
	DeleteProgram(program uint32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	CreateBuffer() uint32
	// BufferVertices binds buf as the array buffer and uploads vertices
	// with static usage.
	BufferVertices(buf uint32, vertices []Vertex)
	DeleteBuffer(buf uint32)
	// VertexAttribFloats points attribute loc at size floats per vertex,
	// starting offset bytes into each VertexStride-sized record, and
	// enables it.
	VertexAttribFloats(loc uint32, size int32, offset uintptr)

	ClearColor(c Color)
	Clear()
	Uniform1f(location int32, v float32)
	DrawTriangles(first, count int32)
}

// Window is the presentation and event surface of one context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(v bool)
	PollEvents()
	SwapBuffers()
	// Input returns the key state collected by the last PollEvents.
	Input() *InputState
	// Time returns seconds elapsed since the context was created.
	Time() float64
}
