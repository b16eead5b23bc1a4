package gui

import "github.com/memmaker/fountain/engine/particles"

// NewParticlePanel binds a control to every parameter of the system,
// grouped the same way as the simulation's parameter blocks.
func NewParticlePanel(ps *particles.ParticleSystem) *Panel {
	return NewPanel(
		Group{
			Name: "Particle",
			Controls: []Control{
				NewFloatControl("Radius", 0.005, ps.GetRadius, ps.SetRadius),
				NewFloatControl("Mass", 0.001, ps.GetMass, ps.SetMass),
				NewFloatControl("g", 0.1, ps.GetGravity, ps.SetGravity),
			},
		},
		Group{
			Name: "Particle Creation",
			Controls: []Control{
				NewFloatControl("Rate", 50, ps.GetCreationRate, ps.SetCreationRate),
				NewFloatControl("Life", 0.1, ps.GetInitialLifeSpan, ps.SetInitialLifeSpan),
				NewFloatControl("Life Var", 0.1, ps.GetInitialLifeSpanVar, ps.SetInitialLifeSpanVar),
				NewVec3Control("Pos", 0.1, ps.GetInitialPos, ps.SetInitialPos),
				NewVec3Control("Pos Var", 0.1, ps.GetInitialPosVar, ps.SetInitialPosVar),
				NewVec3Control("V", 0.25, ps.GetInitialVelocity, ps.SetInitialVelocity),
				NewVec3Control("V_var", 0.25, ps.GetInitialVelocityVar, ps.SetInitialVelocityVar),
			},
		},
		Group{
			Name: "Aerodynamic Force",
			Controls: []Control{
				NewFloatControl("rho", 0.05, ps.GetAirDensity, ps.SetAirDensity),
				NewFloatControl("C_d", 0.05, ps.GetDragConst, ps.SetDragConst),
				NewVec3Control("V_wind", 0.25, ps.GetWindSpeed, ps.SetWindSpeed),
			},
		},
		Group{
			Name: "Ground",
			Controls: []Control{
				NewVec3Control("Center", 0.1, ps.GetGroundCenter, ps.SetGroundCenter),
				NewFloatControl("Size", 0.5, ps.GetGroundSize, ps.SetGroundSize),
				NewFloatControl("Elasticity", 0.05, ps.GetElasticity, ps.SetElasticity),
				NewFloatControl("Friction", 0.05, ps.GetFriction, ps.SetFriction),
			},
		},
	)
}
