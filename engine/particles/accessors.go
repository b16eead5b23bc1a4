package particles

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/util"
)

// Setters store finite values verbatim and take effect on the next Update.
// NaN and infinite values are rejected and the previous value is kept.

func (p *ParticleSystem) setFloat(name string, field *float32, value float32) {
	if !util.IsFinite32(value) {
		util.LogParticlesWarning(fmt.Sprintf("ignoring non-finite %s: %v", name, value))
		return
	}
	*field = value
}

func (p *ParticleSystem) setVec3(name string, field *mgl32.Vec3, value mgl32.Vec3) {
	if !util.IsFiniteVec3(value) {
		util.LogParticlesWarning(fmt.Sprintf("ignoring non-finite %s: %v", name, value))
		return
	}
	*field = value
}

// GetSettings returns a copy of all parameters.
func (p *ParticleSystem) GetSettings() Settings {
	return p.settings
}

// SetSettings replaces all parameters at once. A preset with a non-finite field is rejected as a whole.
func (p *ParticleSystem) SetSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	p.settings = settings
	util.LogParticlesInfo(fmt.Sprintf("settings replaced, rate %.1f/s life %.2fs", settings.CreationRate, settings.LifeSpan))
	return nil
}

func (p *ParticleSystem) GetRadius() float32 {
	return p.settings.Radius
}

func (p *ParticleSystem) SetRadius(radius float32) {
	p.setFloat("radius", &p.settings.Radius, radius)
}

func (p *ParticleSystem) GetMass() float32 {
	return p.settings.Mass
}

func (p *ParticleSystem) SetMass(mass float32) {
	p.setFloat("mass", &p.settings.Mass, mass)
}

func (p *ParticleSystem) GetGravity() float32 {
	return p.settings.Gravity
}

func (p *ParticleSystem) SetGravity(gravity float32) {
	p.setFloat("gravity", &p.settings.Gravity, gravity)
}

func (p *ParticleSystem) GetCreationRate() float32 {
	return p.settings.CreationRate
}

func (p *ParticleSystem) SetCreationRate(rate float32) {
	p.setFloat("creation rate", &p.settings.CreationRate, rate)
}

func (p *ParticleSystem) GetInitialLifeSpan() float32 {
	return p.settings.LifeSpan
}

func (p *ParticleSystem) SetInitialLifeSpan(lifeSpan float32) {
	p.setFloat("life span", &p.settings.LifeSpan, lifeSpan)
}

func (p *ParticleSystem) GetInitialLifeSpanVar() float32 {
	return p.settings.LifeSpanVar
}

func (p *ParticleSystem) SetInitialLifeSpanVar(variance float32) {
	p.setFloat("life span variance", &p.settings.LifeSpanVar, variance)
}

func (p *ParticleSystem) GetInitialPos() mgl32.Vec3 {
	return p.settings.Position
}

func (p *ParticleSystem) SetInitialPos(pos mgl32.Vec3) {
	p.setVec3("position", &p.settings.Position, pos)
}

func (p *ParticleSystem) GetInitialPosVar() mgl32.Vec3 {
	return p.settings.PositionVar
}

func (p *ParticleSystem) SetInitialPosVar(variance mgl32.Vec3) {
	p.setVec3("position variance", &p.settings.PositionVar, variance)
}

func (p *ParticleSystem) GetInitialVelocity() mgl32.Vec3 {
	return p.settings.Velocity
}

func (p *ParticleSystem) SetInitialVelocity(velocity mgl32.Vec3) {
	p.setVec3("velocity", &p.settings.Velocity, velocity)
}

func (p *ParticleSystem) GetInitialVelocityVar() mgl32.Vec3 {
	return p.settings.VelocityVar
}

func (p *ParticleSystem) SetInitialVelocityVar(variance mgl32.Vec3) {
	p.setVec3("velocity variance", &p.settings.VelocityVar, variance)
}

func (p *ParticleSystem) GetAirDensity() float32 {
	return p.settings.AirDensity
}

func (p *ParticleSystem) SetAirDensity(rho float32) {
	p.setFloat("air density", &p.settings.AirDensity, rho)
}

func (p *ParticleSystem) GetDragConst() float32 {
	return p.settings.DragConst
}

func (p *ParticleSystem) SetDragConst(cd float32) {
	p.setFloat("drag constant", &p.settings.DragConst, cd)
}

func (p *ParticleSystem) GetWindSpeed() mgl32.Vec3 {
	return p.settings.WindSpeed
}

func (p *ParticleSystem) SetWindSpeed(wind mgl32.Vec3) {
	p.setVec3("wind speed", &p.settings.WindSpeed, wind)
}

func (p *ParticleSystem) GetGroundCenter() mgl32.Vec3 {
	return p.settings.GroundCenter
}

func (p *ParticleSystem) SetGroundCenter(center mgl32.Vec3) {
	p.setVec3("ground center", &p.settings.GroundCenter, center)
}

func (p *ParticleSystem) GetGroundSize() float32 {
	return p.settings.GroundSize
}

func (p *ParticleSystem) SetGroundSize(size float32) {
	p.setFloat("ground size", &p.settings.GroundSize, size)
}

func (p *ParticleSystem) GetElasticity() float32 {
	return p.settings.Elasticity
}

func (p *ParticleSystem) SetElasticity(elasticity float32) {
	p.setFloat("elasticity", &p.settings.Elasticity, elasticity)
}

func (p *ParticleSystem) GetFriction() float32 {
	return p.settings.Friction
}

func (p *ParticleSystem) SetFriction(friction float32) {
	p.setFloat("friction", &p.settings.Friction, friction)
}
