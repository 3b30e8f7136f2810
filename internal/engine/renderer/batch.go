package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/dappled/internal/engine/geometry"
	"github.com/Faultbox/dappled/internal/engine/lighting"
	"github.com/Faultbox/dappled/pkg/math"
)

const (
	attrPosition = 0
	attrNormal   = 1
	attrInstance = 3 // mat4 occupies locations 3..6

	mat4Size = int(unsafe.Sizeof(math.Mat4{}))
)

// Material describes how a batch is shaded.
type Material struct {
	Color       lighting.Color
	Roughness   float32
	Opacity     float32
	DoubleSided bool
	CastShadow  bool
	// FollowPlant applies the plant sway transform before instance matrices.
	FollowPlant bool
}

// Batch draws one shared mesh many times with per-instance matrices.
type Batch struct {
	name       string
	vao        uint32
	vbo        uint32
	ebo        uint32
	instances  uint32
	indexCount int32
	capacity   int
	count      int
	material   Material
}

func newBatch(name string, mesh *geometry.Mesh, capacity int, dynamic bool, mat Material) *Batch {
	b := &Batch{
		name:       name,
		indexCount: int32(len(mesh.Indices)),
		capacity:   capacity,
		material:   mat,
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(attrPosition)
	gl.VertexAttribPointerWithOffset(attrPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attrNormal)
	gl.VertexAttribPointerWithOffset(attrNormal, 3, gl.FLOAT, false, stride, 3*4)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	usage := uint32(gl.STATIC_DRAW)
	if dynamic {
		usage = gl.DYNAMIC_DRAW
	}
	gl.GenBuffers(1, &b.instances)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instances)
	gl.BufferData(gl.ARRAY_BUFFER, max(capacity, 1)*mat4Size, nil, usage)
	for col := uint32(0); col < 4; col++ {
		loc := attrInstance + col
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, int32(mat4Size), uintptr(col*16))
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.BindVertexArray(0)
	return b
}

// Upload replaces the instance matrices. Extra matrices beyond capacity
// are dropped.
func (b *Batch) Upload(matrices []math.Mat4) {
	n := min(len(matrices), b.capacity)
	b.count = n
	if n == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instances)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*mat4Size, gl.Ptr(&matrices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Count returns the number of instances drawn.
func (b *Batch) Count() int {
	return b.count
}

func (b *Batch) draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil, int32(b.count))
	gl.BindVertexArray(0)
}

func (b *Batch) destroy() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	for _, buf := range []*uint32{&b.vbo, &b.ebo, &b.instances} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
}
