package viewer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/glhf"
	"github.com/memmaker/fountain/engine/particles"
)

const (
	gizmoMaxLines   = 16
	windArrowScale  = 0.5
	emitterMarkSize = 0.1
)

var (
	outlineColor = mgl32.Vec4{0.6, 0.7, 0.8, 1}
	windColor    = mgl32.Vec4{0.3, 1, 0.4, 1}
)

// gizmo outlines the ground, marks the emitter and shows the wind as an arrow.
type gizmo struct {
	outline *glhf.LineMesh
	wind    *glhf.LineMesh
	last    particles.Settings
	built   bool
}

func newGizmo(flatShader *glhf.Shader) *gizmo {
	return &gizmo{
		outline: glhf.NewLineMesh(flatShader, gizmoMaxLines),
		wind:    glhf.NewLineMesh(flatShader, gizmoMaxLines),
	}
}

func (g *gizmo) update(settings particles.Settings) {
	if g.built && settings == g.last {
		return
	}
	g.last, g.built = settings, true
	g.outline.SetLines(append(groundOutline(settings.GroundCenter, settings.GroundSize), emitterMark(settings.Position)...))
	g.wind.SetLines(windArrow(settings.Position, settings.WindSpeed))
}

func (g *gizmo) draw(viewProjection mgl32.Mat4) {
	g.outline.Draw(viewProjection, outlineColor)
	g.wind.Draw(viewProjection, windColor)
}

func (g *gizmo) delete() {
	g.outline.Delete()
	g.wind.Delete()
}

func groundOutline(center mgl32.Vec3, size float32) [][2]mgl32.Vec3 {
	if size <= 0 {
		return nil
	}
	half := size / 2
	corners := [4]mgl32.Vec3{
		center.Add(mgl32.Vec3{-half, 0, -half}),
		center.Add(mgl32.Vec3{half, 0, -half}),
		center.Add(mgl32.Vec3{half, 0, half}),
		center.Add(mgl32.Vec3{-half, 0, half}),
	}
	return [][2]mgl32.Vec3{
		{corners[0], corners[1]},
		{corners[1], corners[2]},
		{corners[2], corners[3]},
		{corners[3], corners[0]},
	}
}

func emitterMark(pos mgl32.Vec3) [][2]mgl32.Vec3 {
	return [][2]mgl32.Vec3{
		{pos.Sub(mgl32.Vec3{emitterMarkSize, 0, 0}), pos.Add(mgl32.Vec3{emitterMarkSize, 0, 0})},
		{pos.Sub(mgl32.Vec3{0, emitterMarkSize, 0}), pos.Add(mgl32.Vec3{0, emitterMarkSize, 0})},
		{pos.Sub(mgl32.Vec3{0, 0, emitterMarkSize}), pos.Add(mgl32.Vec3{0, 0, emitterMarkSize})},
	}
}

func windArrow(origin, wind mgl32.Vec3) [][2]mgl32.Vec3 {
	if wind.Len() < 1e-4 {
		return nil
	}
	tip := origin.Add(wind.Mul(windArrowScale))
	back := wind.Normalize().Mul(-0.15)
	side := wind.Cross(mgl32.Vec3{0, 1, 0})
	if side.Len() < 1e-4 {
		side = mgl32.Vec3{1, 0, 0}
	}
	side = side.Normalize().Mul(0.08)
	return [][2]mgl32.Vec3{
		{origin, tip},
		{tip, tip.Add(back).Add(side)},
		{tip, tip.Add(back).Sub(side)},
	}
}
