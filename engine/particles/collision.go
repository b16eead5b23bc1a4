package particles

import "github.com/go-gl/mathgl/mgl32"

// overGround is true if pos lies inside the square ground extent, ignoring height.
func (s *Settings) overGround(pos mgl32.Vec3) bool {
	if !(s.GroundSize > 0) {
		return false
	}
	half := s.GroundSize / 2
	dx := pos.X() - s.GroundCenter.X()
	dz := pos.Z() - s.GroundCenter.Z()
	return dx >= -half && dx <= half && dz >= -half && dz <= half
}

// collideWithGround bounces a particle that crossed the ground plane during
// this step, coming from prevY. Particles already below the plane pass
// underneath untouched. The vertical velocity is reflected and scaled by the elasticity, the
// horizontal velocity loses the friction fraction, and the particle is put
// back onto the plane. Coefficients outside 0..1 are used unchanged.
func (p *ParticleSystem) collideWithGround(particle *Particle, prevY float32) {
	s := &p.settings
	groundHeight := s.GroundCenter.Y()
	if prevY < groundHeight || particle.Position.Y() >= groundHeight || !s.overGround(particle.Position) {
		return
	}
	keep := 1 - s.Friction
	particle.Velocity = mgl32.Vec3{
		particle.Velocity.X() * keep,
		-s.Elasticity * particle.Velocity.Y(),
		particle.Velocity.Z() * keep,
	}
	particle.Position[1] = groundHeight
}
