package colors

// VertexArray wraps a vertex array object.
type VertexArray struct {
	dev Device
	id  uint32
}

// NewVertexArray creates and binds a vertex array.
func NewVertexArray(dev Device) *VertexArray {
	va := &VertexArray{dev: dev, id: dev.CreateVertexArray()}
	dev.BindVertexArray(va.id)
	return va
}

// ID returns the device object id, or 0 once released.
func (va *VertexArray) ID() uint32 { return va.id }

// Delete releases the vertex array. Further calls do nothing.
func (va *VertexArray) Delete() {
	if va == nil || va.id == 0 {
		return
	}
	va.dev.DeleteVertexArray(va.id)
	va.id = 0
}

// Buffer wraps a static vertex buffer.
type Buffer struct {
	dev Device
	id  uint32
	n   int
}

// NewVertexBuffer creates a buffer and uploads vertices into it.
// The buffer takes its own copy of the data on the device side.
func NewVertexBuffer(dev Device, vertices []Vertex) *Buffer {
	b := &Buffer{dev: dev, id: dev.CreateBuffer(), n: len(vertices)}
	dev.BufferVertices(b.id, vertices)
	Logger().Debug("vertex buffer uploaded", "id", b.id, "vertices", b.n)
	return b
}

// ID returns the device object id, or 0 once released.
func (b *Buffer) ID() uint32 { return b.id }

// Len returns the number of vertices uploaded.
func (b *Buffer) Len() int { return b.n }

// Delete releases the buffer. Further calls do nothing.
func (b *Buffer) Delete() {
	if b == nil || b.id == 0 {
		return
	}
	b.dev.DeleteBuffer(b.id)
	b.id = 0
}
