package glhf

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// LineMesh draws up to maxLines world-space line segments with a flat shader
// whose uniforms are a view-projection matrix and a colour.
type LineMesh struct {
	vertices *VertexSlice[GlFloat]
	shader   *Shader
	flatData []GlFloat
	count    int
	maxLines int
}

func NewLineMesh(shader *Shader, maxLines int) *LineMesh {
	vertices := MakeVertexSlice(shader, 0, maxLines*2)
	vertices.SetPrimitiveType(gl.LINES)
	return &LineMesh{
		vertices: vertices,
		shader:   shader,
		flatData: make([]GlFloat, 0, maxLines*2*3),
		maxLines: maxLines,
	}
}

// SetLines replaces the segments. Segments beyond the capacity are ignored.
func (m *LineMesh) SetLines(lines [][2]mgl32.Vec3) {
	if len(lines) > m.maxLines {
		lines = lines[:m.maxLines]
	}
	m.flatData = m.flatData[:0]
	for _, line := range lines {
		m.flatData = append(m.flatData, GlFloat(line[0].X()), GlFloat(line[0].Y()), GlFloat(line[0].Z()))
		m.flatData = append(m.flatData, GlFloat(line[1].X()), GlFloat(line[1].Y()), GlFloat(line[1].Z()))
	}
	m.count = len(lines)
	if m.count == 0 {
		return
	}
	batch := m.vertices.Slice(0, m.count*2)
	batch.Begin()
	batch.SetVertexData(m.flatData)
	batch.End()
}

func (m *LineMesh) Draw(viewProjection mgl32.Mat4, color mgl32.Vec4) {
	if m.count == 0 {
		return
	}
	batch := m.vertices.Slice(0, m.count*2)
	m.shader.Begin()
	m.shader.SetUniformAttr(0, viewProjection)
	m.shader.SetUniformAttr(1, color)
	batch.Begin()
	batch.Draw()
	batch.End()
	m.shader.End()
}

func (m *LineMesh) Delete() {
	m.vertices.Delete()
}
