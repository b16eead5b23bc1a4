package particles

import "github.com/go-gl/mathgl/mgl32"

// Particle is a simulated point mass. It is dead once Age reaches LifeSpan.
type Particle struct {
	id       uint64
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Age      float32
	LifeSpan float32
}

// GetID returns the spawn sequence number of the particle.
func (p Particle) GetID() uint64 {
	return p.id
}

func (p Particle) IsDead() bool {
	return p.Age >= p.LifeSpan
}

// LifeFraction is Age/LifeSpan clamped to 0..1.
func (p Particle) LifeFraction() float32 {
	if p.LifeSpan <= 0 {
		return 1
	}
	fraction := p.Age / p.LifeSpan
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// Renderer draws the live particle set. The slice is only valid for the duration of the call.
type Renderer interface {
	Draw(particles []Particle, radius float32, viewProjection mgl32.Mat4)
	Delete()
}
