package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/util"
)

// integrate performs one semi-implicit Euler step: v += a*dt; p += v*dt.
func (p *ParticleSystem) integrate(particle *Particle, dt float32) {
	acceleration := p.gravityAcceleration().Add(p.dragAcceleration(particle.Velocity, dt))
	particle.Velocity = particle.Velocity.Add(acceleration.Mul(dt))
	particle.Position = particle.Position.Add(particle.Velocity.Mul(dt))
}

func (p *ParticleSystem) gravityAcceleration() mgl32.Vec3 {
	return mgl32.Vec3{0, -p.settings.Gravity, 0}
}

// crossSection is the area of the disc a particle presents to the air flow.
func crossSection(radius float32) float32 {
	if radius <= 0 {
		return 0
	}
	return math.Pi * radius * radius
}

// dragAcceleration returns -(½ρ·C_d·A·|v_rel|²/m)·v̂_rel with v_rel = v - wind.
// Drag is skipped for masses below MinMass. A drag step that would push the
// relative velocity past zero is limited to exactly cancelling it.
func (p *ParticleSystem) dragAcceleration(velocity mgl32.Vec3, dt float32) mgl32.Vec3 {
	s := &p.settings
	if !(s.Mass >= MinMass) {
		return mgl32.Vec3{}
	}
	area := crossSection(s.Radius)
	if area == 0 {
		return mgl32.Vec3{}
	}
	relative := velocity.Sub(s.WindSpeed)
	speed := relative.Len()
	if speed == 0 || !util.IsFinite32(speed) {
		return mgl32.Vec3{}
	}

	magnitude := 0.5 * s.AirDensity * s.DragConst * area * speed * speed / s.Mass
	if magnitude*dt > speed {
		magnitude = speed / dt
	}
	drag := relative.Mul(-magnitude / speed)
	if !util.IsFiniteVec3(drag) {
		return mgl32.Vec3{}
	}
	return drag
}
