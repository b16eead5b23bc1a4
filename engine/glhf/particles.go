package glhf

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/particles"
)

const SizeOfFloat32 = 4

// ParticleVertexFormat is the per-point layout expected by the particle shader.
var ParticleVertexFormat = AttrFormat{
	{Name: "position", Type: Vec3},
	{Name: "life", Type: Float},
}

// ParticleUniformFormat lists the uniforms of the particle shader, in the
// order of the particleUniform* indices.
var ParticleUniformFormat = AttrFormat{
	{Name: "viewProjection", Type: Mat4},
	{Name: "radius", Type: Float},
	{Name: "pointScale", Type: Float},
	{Name: "colorBegin", Type: Vec4},
	{Name: "colorEnd", Type: Vec4},
}

const (
	particleUniformViewProjection = iota
	particleUniformRadius
	particleUniformPointScale
	particleUniformColorBegin
	particleUniformColorEnd
)

// ParticleRenderer draws the live particles as point sprites. The vertex
// buffer is allocated once for capacity points and rewritten every frame.
type ParticleRenderer struct {
	shader     *Shader
	vertices   *VertexSlice[GlFloat]
	flatData   []GlFloat
	capacity   int
	pointScale float32
	colorBegin mgl32.Vec4
	colorEnd   mgl32.Vec4
	deleted    bool
}

// NewParticleRenderer must be called on the main thread. The shader has to use
// ParticleVertexFormat and ParticleUniformFormat.
func NewParticleRenderer(shader *Shader, capacity int) *ParticleRenderer {
	vertices := MakeVertexSlice(shader, 0, capacity)
	vertices.SetPrimitiveType(gl.POINTS)
	return &ParticleRenderer{
		shader:     shader,
		vertices:   vertices,
		flatData:   make([]GlFloat, 0, capacity*(ParticleVertexFormat.Size()/SizeOfFloat32)),
		capacity:   capacity,
		pointScale: 1,
		colorBegin: mgl32.Vec4{1, 0.9, 0.6, 1},
		colorEnd:   mgl32.Vec4{0.2, 0.4, 1, 0},
	}
}

// SetPointScale converts world radii to pixels: viewport height times the
// projection's vertical focal factor.
func (r *ParticleRenderer) SetPointScale(viewportHeight int, projection mgl32.Mat4) {
	r.pointScale = float32(viewportHeight) * projection.At(1, 1)
}

func (r *ParticleRenderer) Draw(live []particles.Particle, radius float32, viewProjection mgl32.Mat4) {
	if r.deleted {
		return
	}
	count := len(live)
	if count > r.capacity {
		count = r.capacity
	}
	if count == 0 {
		return
	}

	r.flatData = r.flatData[:0]
	for i := 0; i < count; i++ {
		p := &live[i]
		r.flatData = append(r.flatData,
			GlFloat(p.Position.X()),
			GlFloat(p.Position.Y()),
			GlFloat(p.Position.Z()),
			GlFloat(p.LifeFraction()),
		)
	}

	batch := r.vertices.Slice(0, count)

	r.shader.Begin()
	r.shader.SetUniformAttr(particleUniformViewProjection, viewProjection)
	r.shader.SetUniformAttr(particleUniformRadius, radius)
	r.shader.SetUniformAttr(particleUniformPointScale, r.pointScale)
	r.shader.SetUniformAttr(particleUniformColorBegin, r.colorBegin)
	r.shader.SetUniformAttr(particleUniformColorEnd, r.colorEnd)

	// additive glow, particles do not occlude each other
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	batch.Begin()
	batch.SetVertexData(r.flatData)
	batch.Draw()
	batch.End()

	gl.DepthMask(true)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.shader.End()
}

// Delete frees the vertex buffer. The shader is owned by the caller.
func (r *ParticleRenderer) Delete() {
	if r.deleted {
		return
	}
	r.deleted = true
	r.vertices.Delete()
	r.flatData = nil
}
