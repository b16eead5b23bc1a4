package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func ToRadian(angle float32) float32 {
	return mgl32.DegToRad(angle)
}

func Mix64(a, b float32, factor float64) float32 {
	return float32(float64(a)*(1.0-factor) + factor*float64(b))
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func Clamp32(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// IsFinite32 is false for NaN and both infinities.
func IsFinite32(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func IsFiniteVec3(v mgl32.Vec3) bool {
	return IsFinite32(v[0]) && IsFinite32(v[1]) && IsFinite32(v[2])
}

func Lerp3(one, two mgl32.Vec3, factor float64) mgl32.Vec3 {
	return mgl32.Vec3{Mix64(one.X(), two.X(), factor), Mix64(one.Y(), two.Y(), factor), Mix64(one.Z(), two.Z(), factor)}
}

func LerpFloat32(one, two float32, factor float64) float32 {
	return Mix64(one, two, factor)
}

// EaseInOut maps 0..1 to 0..1 with a smoothstep curve.
func EaseInOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Get2DPixelCoordOrthographicProjectionMatrix maps pixel coordinates with 0,0 at the top left.
func Get2DPixelCoordOrthographicProjectionMatrix(width, height int) mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(width), float32(height), 0)
}
