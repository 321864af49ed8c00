package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/surfview/pkg/geometry"
)

// mesh is the GPU copy of one geometry record.
type mesh struct {
	vao       uint32
	vbos      [3]uint32 // positions, normals, colors
	ebo       uint32
	count     int32
	hasColors bool
}

func uploadMesh(rec *geometry.Record) *mesh {
	m := &mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(3, &m.vbos[0])

	uploadAttrib(0, m.vbos[0], 3, rec.RenderPositions)
	uploadAttrib(1, m.vbos[1], 3, rec.FlatNormals())

	if len(rec.Colors) == len(rec.RenderPositions)/3*4 && len(rec.Colors) > 0 {
		uploadAttrib(2, m.vbos[2], 4, rec.Colors)
		m.hasColors = true
	}

	if rec.RenderIndices != nil {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(rec.RenderIndices)*4, gl.Ptr(rec.RenderIndices), gl.STATIC_DRAW)
		m.count = int32(len(rec.RenderIndices))
	} else {
		m.count = int32(len(rec.RenderPositions) / 3)
	}

	gl.BindVertexArray(0)
	return m
}

func uploadAttrib(loc, vbo uint32, size int32, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointerWithOffset(loc, size, gl.FLOAT, false, size*4, 0)
}

func (m *mesh) draw() {
	gl.BindVertexArray(m.vao)
	if !m.hasColors {
		gl.DisableVertexAttribArray(2)
		gl.VertexAttrib4f(2, 0.8, 0.8, 0.8, 1)
	}
	if m.ebo != 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

func (m *mesh) destroy() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(3, &m.vbos[0])
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
