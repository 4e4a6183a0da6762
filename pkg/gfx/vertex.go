package gfx

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

const (
	coordsPerVertex = 2
	vertexCount     = 4
	// positionAttrib is the slot every program binds aVertexPosition to.
	positionAttrib Attrib = 0
	positionName          = "aVertexPosition"
)

// Vertex is a point in normalized device coordinates.
type Vertex struct {
	X, Y float32
}

// VertexSet is an ordered triangle-strip of vertices.
type VertexSet [vertexCount]Vertex

// QuadVertices is the rectangle drawn by every Renderer.
var QuadVertices = VertexSet{
	{-0.7, 0.5},
	{0.7, 0.5},
	{-0.7, -0.5},
	{0.7, -0.5},
}

// Bytes encodes the set as tightly packed little-endian float32 pairs.
func (vs VertexSet) Bytes() []byte {
	flat := make([]float32, 0, len(vs)*coordsPerVertex)
	for _, v := range vs {
		flat = append(flat, v.X, v.Y)
	}
	return f32.Bytes(binary.LittleEndian, flat...)
}

// Contains reports whether the NDC point (x, y) lies inside the set's
// axis-aligned bounds.
func (vs VertexSet) Contains(x, y float32) bool {
	minX, minY := vs[0].X, vs[0].Y
	maxX, maxY := minX, minY
	for _, v := range vs[1:] {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	return x >= minX && x <= maxX && y >= minY && y <= maxY
}
