package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// FloatsPerVertex is the interleaved layout: position then normal
const FloatsPerVertex = 6

// Mesh is an indexed vertex array ready to draw
type Mesh struct {
	vao   *VertexArrayObject
	vbo   *BufferObject
	ebo   *BufferObject
	count int32
	mode  uint32
}

// NewMesh uploads interleaved vertices and their indices. mode is the GL
// primitive, e.g. gl.TRIANGLES or gl.LINE_LOOP.
func NewMesh(vertices []float32, indices []uint32, mode uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices)
	ebo := NewEBO(indices)

	stride := int32(FloatsPerVertex * 4)
	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)

	vao.Unbind()

	return &Mesh{
		vao:   vao,
		vbo:   vbo,
		ebo:   ebo,
		count: int32(len(indices)),
		mode:  mode,
	}
}

// Draw renders the mesh with whatever program is bound
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases the GPU buffers
func (m *Mesh) Delete() {
	m.ebo.Delete()
	m.vbo.Delete()
	m.vao.Delete()
}
