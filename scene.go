package colors

import "fmt"

// Scene owns every device object needed to draw the triangle.
type Scene struct {
	dev      Device
	vao      *VertexArray
	vbo      *Buffer
	vertex   *Shader
	fragment *Shader
	program  *Program
	closed   bool
}

// NewScene runs the setup sequence: vertex array, vertex buffer, shader
// compilation, program linking and attribute wiring. On error every object
// acquired so far is released before returning.
func NewScene(dev Device) (*Scene, error) {
	s := &Scene{dev: dev}
	if err := s.setup(); err != nil {
		s.Close()
		return nil, err
	}
	Logger().Info("scene ready", "program", s.program.ID(), "vertices", s.vbo.Len())
	return s, nil
}

func (s *Scene) setup() error {
	s.vao = NewVertexArray(s.dev)
	s.vbo = NewVertexBuffer(s.dev, TriangleVertices[:])

	// Compile errors are logged by CompileShader and surface again as a
	// link failure below.
	s.vertex, _ = CompileShader(s.dev, StageVertex, VertexShaderSource)
	s.fragment, _ = CompileShader(s.dev, StageFragment, FragmentShaderSource)

	var err error
	s.program, err = LinkProgram(s.dev, s.vertex, s.fragment)
	if err != nil {
		return fmt.Errorf("link program: %w", err)
	}
	if err := s.program.Use(); err != nil {
		return err
	}

	pos, err := s.program.AttribLocation(AttribPosition)
	if err != nil {
		return err
	}
	s.dev.VertexAttribFloats(pos, 2, 0)

	col, err := s.program.AttribLocation(AttribColor)
	if err != nil {
		return err
	}
	s.dev.VertexAttribFloats(col, 3, VertexColorOffset)

	return nil
}

// Program returns the linked program.
func (s *Scene) Program() *Program { return s.program }

// VertexBuffer returns the buffer holding the triangle.
func (s *Scene) VertexBuffer() *Buffer { return s.vbo }

// Draw issues the triangle draw call.
func (s *Scene) Draw() {
	s.dev.DrawTriangles(0, int32(s.vbo.Len()))
}

// Closed reports whether Close has run.
func (s *Scene) Closed() bool { return s.closed }

// Close releases program, shaders, buffer and vertex array, in that order.
// Only the first call has any effect.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.program.Delete()
	s.fragment.Delete()
	s.vertex.Delete()
	s.vbo.Delete()
	s.vao.Delete()
	Logger().Info("scene released")
}
