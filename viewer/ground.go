package viewer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/glhf"
)

var groundColor = mgl32.Vec4{0.25, 0.3, 0.35, 1}

// ground draws the collision square. The mesh is rebuilt when center or size change.
type ground struct {
	shader *glhf.Shader
	quad   *glhf.VertexSlice[glhf.GlFloat]
	center mgl32.Vec3
	size   float32
	built  bool
}

func newGround(shader *glhf.Shader) *ground {
	return &ground{
		shader: shader,
		quad:   glhf.MakeVertexSlice(shader, 6, 6),
	}
}

func (g *ground) update(center mgl32.Vec3, size float32) {
	if g.built && center == g.center && size == g.size {
		return
	}
	g.center, g.size, g.built = center, size, true
	if size <= 0 {
		return
	}
	half := size / 2
	x0, x1 := glhf.GlFloat(center.X()-half), glhf.GlFloat(center.X()+half)
	z0, z1 := glhf.GlFloat(center.Z()-half), glhf.GlFloat(center.Z()+half)
	// slightly below the collision plane so resting particles are not hidden
	y := glhf.GlFloat(center.Y() - 0.001)
	g.quad.Begin()
	g.quad.SetVertexData([]glhf.GlFloat{
		x0, y, z0,
		x1, y, z0,
		x1, y, z1,

		x0, y, z0,
		x1, y, z1,
		x0, y, z1,
	})
	g.quad.End()
}

func (g *ground) draw(viewProjection mgl32.Mat4) {
	if !g.built || g.size <= 0 {
		return
	}
	g.shader.Begin()
	g.shader.SetUniformAttr(0, viewProjection)
	g.shader.SetUniformAttr(1, groundColor)
	g.quad.Begin()
	g.quad.Draw()
	g.quad.End()
	g.shader.End()
}

func (g *ground) delete() {
	g.quad.Delete()
}
