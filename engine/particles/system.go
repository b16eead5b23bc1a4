package particles

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/util"
)

const (
	DefaultMaxParticles = 100000

	// MinLifeSpan is the floor applied to randomized lifespans.
	MinLifeSpan float32 = 0.01
	// MinMass is the smallest mass for which drag is applied.
	MinMass float32 = 1e-6
)

// ParticleSystem owns every live particle and the parameters that drive them.
// It is not safe for concurrent use; the host calls Update and Draw from the
// render thread once per frame.
type ParticleSystem struct {
	particles []Particle
	settings  Settings
	renderer  Renderer
	rng       *rand.Rand

	emissionCarry float64
	nextID        uint64
	dropped       uint64
	deleted       bool
}

// NewParticleSystem creates an empty system holding at most capacity particles.
// renderer may be nil for headless use.
func NewParticleSystem(renderer Renderer, capacity int, seed int64) *ParticleSystem {
	if capacity <= 0 {
		capacity = DefaultMaxParticles
	}
	return &ParticleSystem{
		particles: make([]Particle, 0, capacity),
		settings:  DefaultSettings(),
		renderer:  renderer,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Update advances the simulation by deltaTime seconds. Existing particles are
// integrated, collided, aged and culled before this tick's new particles are
// spawned, so a fresh particle always starts the next tick at age zero.
func (p *ParticleSystem) Update(deltaTime float64) {
	if !(deltaTime > 0) || math.IsInf(deltaTime, 0) {
		return
	}
	dt := float32(deltaTime)

	for i := 0; i < len(p.particles); {
		particle := &p.particles[i]
		prevY := particle.Position.Y()
		p.integrate(particle, dt)
		p.collideWithGround(particle, prevY)
		particle.Age += dt
		if particle.IsDead() {
			p.removeAt(i)
			continue // the swapped in particle still needs this tick
		}
		i++
	}

	p.Emit(p.emissionCount(deltaTime))
}

func (p *ParticleSystem) removeAt(index int) {
	last := len(p.particles) - 1
	p.particles[index] = p.particles[last]
	p.particles = p.particles[:last]
}

// Draw hands the live particles to the renderer. It never changes simulation state.
func (p *ParticleSystem) Draw(viewProjection mgl32.Mat4) {
	if p.renderer == nil || p.deleted {
		return
	}
	p.renderer.Draw(p.particles, p.settings.Radius, viewProjection)
}

// Delete drops all particles and releases the renderer. Calling it again has no effect.
func (p *ParticleSystem) Delete() {
	if p.deleted {
		return
	}
	p.deleted = true
	p.particles = nil
	if p.renderer != nil {
		p.renderer.Delete()
	}
	util.LogParticlesDebug(fmt.Sprintf("particle system deleted after %d spawns (%d dropped)", p.nextID, p.dropped))
}

// Reset removes every particle and the fractional emission carry. Settings are kept.
func (p *ParticleSystem) Reset() {
	p.particles = p.particles[:0]
	p.emissionCarry = 0
}

// Particles returns the live set. Callers must not keep the slice across ticks.
func (p *ParticleSystem) Particles() []Particle {
	return p.particles
}

// Positions copies the current particle positions.
func (p *ParticleSystem) Positions() []mgl32.Vec3 {
	positions := make([]mgl32.Vec3, len(p.particles))
	for i := range p.particles {
		positions[i] = p.particles[i].Position
	}
	return positions
}

func (p *ParticleSystem) Len() int {
	return len(p.particles)
}

func (p *ParticleSystem) Capacity() int {
	return cap(p.particles)
}

// Spawned is the total number of particles created so far.
func (p *ParticleSystem) Spawned() uint64 {
	return p.nextID
}

// Dropped counts spawns that were discarded because the buffer was full.
func (p *ParticleSystem) Dropped() uint64 {
	return p.dropped
}
