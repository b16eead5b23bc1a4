package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// maxSpawnPerTick bounds the count conversion for absurd rates.
const maxSpawnPerTick = math.MaxInt32

// emissionCount turns rate*dt into a whole number of spawns. The fractional
// remainder is carried into the next tick so the long run average matches the rate.
func (p *ParticleSystem) emissionCount(deltaTime float64) int {
	rate := float64(p.settings.CreationRate)
	if !(rate > 0) || math.IsInf(rate, 0) {
		p.emissionCarry = 0
		return 0
	}
	expected := rate*deltaTime + p.emissionCarry
	if expected >= maxSpawnPerTick {
		p.emissionCarry = 0
		return maxSpawnPerTick
	}
	whole := math.Floor(expected)
	p.emissionCarry = expected - whole
	return int(whole)
}

// Emit spawns count particles right away and returns how many fit into the buffer.
func (p *ParticleSystem) Emit(count int) int {
	if count <= 0 {
		return 0
	}
	free := cap(p.particles) - len(p.particles)
	if count > free {
		p.dropped += uint64(count - free)
		count = free
	}
	for i := 0; i < count; i++ {
		p.particles = append(p.particles, p.newParticle())
	}
	return count
}

func (p *ParticleSystem) newParticle() Particle {
	s := &p.settings
	particle := Particle{
		id:       p.nextID,
		Position: p.vary(s.Position, s.PositionVar),
		Velocity: p.vary(s.Velocity, s.VelocityVar),
		LifeSpan: s.LifeSpan + s.LifeSpanVar*p.offset(),
	}
	if !(particle.LifeSpan >= MinLifeSpan) {
		particle.LifeSpan = MinLifeSpan
	}
	p.nextID++
	return particle
}

// offset is uniform in [-0.5, 0.5).
func (p *ParticleSystem) offset() float32 {
	return p.rng.Float32() - 0.5
}

func (p *ParticleSystem) vary(mean, variance mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mean.X() + variance.X()*p.offset(),
		mean.Y() + variance.Y()*p.offset(),
		mean.Z() + variance.Z()*p.offset(),
	}
}
