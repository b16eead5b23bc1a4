package particles

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/util"
	"github.com/pkg/errors"
)

// Settings is the full set of tunable simulation parameters.
// Units are SI: seconds, metres, kilograms.
type Settings struct {
	CreationRate float32 `json:"creation_rate"`
	LifeSpan     float32 `json:"life_span"`
	LifeSpanVar  float32 `json:"life_span_var"`

	Position    mgl32.Vec3 `json:"position"`
	PositionVar mgl32.Vec3 `json:"position_var"`
	Velocity    mgl32.Vec3 `json:"velocity"`
	VelocityVar mgl32.Vec3 `json:"velocity_var"`

	Radius  float32 `json:"radius"`
	Mass    float32 `json:"mass"`
	Gravity float32 `json:"gravity"`

	AirDensity float32    `json:"air_density"`
	DragConst  float32    `json:"drag_const"`
	WindSpeed  mgl32.Vec3 `json:"wind_speed"`

	GroundCenter mgl32.Vec3 `json:"ground_center"`
	GroundSize   float32    `json:"ground_size"`
	Elasticity   float32    `json:"elasticity"`
	Friction     float32    `json:"friction"`
}

func DefaultSettings() Settings {
	return Settings{
		CreationRate: 1000,
		LifeSpan:     3,
		LifeSpanVar:  1,

		Position:    mgl32.Vec3{0, 0.5, 0},
		PositionVar: mgl32.Vec3{0.2, 0.2, 0.2},
		Velocity:    mgl32.Vec3{0, 6, 0},
		VelocityVar: mgl32.Vec3{2, 2, 2},

		Radius:  0.02,
		Mass:    0.01,
		Gravity: 9.8,

		AirDensity: 1.225,
		DragConst:  0.47,
		WindSpeed:  mgl32.Vec3{0, 0, 0},

		GroundCenter: mgl32.Vec3{0, 0, 0},
		GroundSize:   10,
		Elasticity:   0.5,
		Friction:     0.2,
	}
}

// Validate reports the first non-finite field.
func (s Settings) Validate() error {
	scalars := []struct {
		name  string
		value float32
	}{
		{"creation_rate", s.CreationRate},
		{"life_span", s.LifeSpan},
		{"life_span_var", s.LifeSpanVar},
		{"radius", s.Radius},
		{"mass", s.Mass},
		{"gravity", s.Gravity},
		{"air_density", s.AirDensity},
		{"drag_const", s.DragConst},
		{"ground_size", s.GroundSize},
		{"elasticity", s.Elasticity},
		{"friction", s.Friction},
	}
	for _, field := range scalars {
		if !util.IsFinite32(field.value) {
			return errors.Errorf("%s is not finite: %v", field.name, field.value)
		}
	}
	vectors := []struct {
		name  string
		value mgl32.Vec3
	}{
		{"position", s.Position},
		{"position_var", s.PositionVar},
		{"velocity", s.Velocity},
		{"velocity_var", s.VelocityVar},
		{"wind_speed", s.WindSpeed},
		{"ground_center", s.GroundCenter},
	}
	for _, field := range vectors {
		if !util.IsFiniteVec3(field.value) {
			return errors.Errorf("%s is not finite: %v", field.name, field.value)
		}
	}
	return nil
}

// LoadSettings reads a preset. Fields missing from the file keep their defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if err := util.ReadJsonFile(path, &settings); err != nil {
		return DefaultSettings(), errors.Wrap(err, "load settings")
	}
	if err := settings.Validate(); err != nil {
		return DefaultSettings(), errors.Wrapf(err, "load settings %s", path)
	}
	return settings, nil
}

func SaveSettings(path string, settings Settings) error {
	return errors.Wrap(util.WriteJsonFile(path, settings), "save settings")
}
