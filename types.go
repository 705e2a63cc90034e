package colors

import "unsafe"

// Vertex is one triangle corner as uploaded to the vertex buffer.
// Memory layout matches the position/color attribute pointers.
type Vertex struct {
	Pos   [2]float32 // Position (x, y)
	Color [3]float32 // Color (r, g, b)
}

// Vertex layout, in bytes.
const (
	VertexStride      = int32(unsafe.Sizeof(Vertex{}))
	VertexColorOffset = unsafe.Offsetof(Vertex{}.Color)
)

// TriangleVertices is the fixed triangle: red top, green bottom-right,
// blue bottom-left.
var TriangleVertices = [3]Vertex{
	{Pos: [2]float32{0.0, 0.5}, Color: [3]float32{1, 0, 0}},
	{Pos: [2]float32{0.5, -0.5}, Color: [3]float32{0, 1, 0}},
	{Pos: [2]float32{-0.5, -0.5}, Color: [3]float32{0, 0, 1}},
}

// Stage identifies a shader stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Color is an RGBA color with float components in [0, 1].
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
	A float32 `yaml:"a"`
}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// valid reports whether every component lies in [0, 1].
func (c Color) valid() bool {
	for _, v := range [4]float32{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
