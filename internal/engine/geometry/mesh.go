// Package geometry builds the shared meshes every instance batch draws.
package geometry

import (
	"github.com/Faultbox/dappled/pkg/math"
)

// FloatsPerVertex is the interleaved layout: position xyz, normal xyz.
const FloatsPerVertex = 6

// Mesh is an indexed triangle list with interleaved vertices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) math.Vec3 {
	v := m.Vertices[i*FloatsPerVertex:]
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math.Vec3 {
	v := m.Vertices[i*FloatsPerVertex+3:]
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func (m *Mesh) add(p, n math.Vec3) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	return idx
}

func (m *Mesh) tri(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// Translate shifts every vertex by d.
func (m *Mesh) Translate(d math.Vec3) *Mesh {
	for i := 0; i < m.VertexCount(); i++ {
		o := i * FloatsPerVertex
		m.Vertices[o] += d.X
		m.Vertices[o+1] += d.Y
		m.Vertices[o+2] += d.Z
	}
	return m
}
