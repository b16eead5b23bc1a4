package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultOrbitFOV      = 45
	defaultOrbitDistance = 10
	defaultOrbitAzimuth  = 0
	defaultOrbitIncline  = 20
	orbitNearPlane       = 0.1
	orbitFarPlane        = 1000

	MinOrbitDistance = 0.01
	MaxOrbitDistance = 1000
	MaxOrbitIncline  = 90

	// MaxMouseDelta bounds a single cursor event so a jump cannot spin the camera.
	MaxMouseDelta  = 100
	orbitDragRate  = 1.0
	zoomDragRate   = 0.005
	ZoomStepFactor = 2.5
)

// OrbitCamera circles a look target. Azimuth rotates around the world Y axis,
// incline tilts towards the top view; both are in degrees.
type OrbitCamera struct {
	fov        float32
	aspect     float32
	distance   float32
	azimuth    float32
	incline    float32
	lookTarget mgl32.Vec3
}

func NewOrbitCamera(windowWidth, windowHeight int) *OrbitCamera {
	c := &OrbitCamera{}
	c.Reset()
	c.SetScreenSize(windowWidth, windowHeight)
	return c
}

// Reset restores distance and angles. The aspect ratio is kept.
func (c *OrbitCamera) Reset() {
	c.fov = defaultOrbitFOV
	c.distance = defaultOrbitDistance
	c.azimuth = defaultOrbitAzimuth
	c.incline = defaultOrbitIncline
	if c.aspect == 0 {
		c.aspect = 1.33
	}
}

// SetScreenSize updates the aspect ratio. A zero height is ignored.
func (c *OrbitCamera) SetScreenSize(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

func (c *OrbitCamera) GetAspect() float32 {
	return c.aspect
}

func (c *OrbitCamera) GetDistance() float32 {
	return c.distance
}

func (c *OrbitCamera) SetDistance(distance float32) {
	c.distance = Clamp32(distance, MinOrbitDistance, MaxOrbitDistance)
}

func (c *OrbitCamera) GetAzimuth() float32 {
	return c.azimuth
}

func (c *OrbitCamera) SetAzimuth(azimuth float32) {
	c.azimuth = azimuth
}

func (c *OrbitCamera) GetIncline() float32 {
	return c.incline
}

func (c *OrbitCamera) SetIncline(incline float32) {
	c.incline = Clamp32(incline, -MaxOrbitIncline, MaxOrbitIncline)
}

// Orbit turns the camera by a cursor delta in pixels. Positive dy means the cursor moved up.
func (c *OrbitCamera) Orbit(dx, dy int) {
	dx = ClampInt(dx, -MaxMouseDelta, MaxMouseDelta)
	dy = ClampInt(dy, -MaxMouseDelta, MaxMouseDelta)
	c.SetAzimuth(c.azimuth + float32(dx)*orbitDragRate)
	c.SetIncline(c.incline - float32(dy)*orbitDragRate)
}

// DragZoom moves the camera closer when the cursor moves right.
func (c *OrbitCamera) DragZoom(dx int) {
	dx = ClampInt(dx, -MaxMouseDelta, MaxMouseDelta)
	c.SetDistance(c.distance * (1 - float32(dx)*zoomDragRate))
}

// ZoomIn divides the distance by ZoomStepFactor, ZoomOut multiplies it.
func (c *OrbitCamera) ZoomIn() {
	c.SetDistance(c.distance / ZoomStepFactor)
}

func (c *OrbitCamera) ZoomOut() {
	c.SetDistance(c.distance * ZoomStepFactor)
}

func (c *OrbitCamera) SetLookTarget(target mgl32.Vec3) {
	c.lookTarget = target
}

func (c *OrbitCamera) GetLookTarget() mgl32.Vec3 {
	return c.lookTarget
}

func (c *OrbitCamera) getWorldMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.lookTarget.X(), c.lookTarget.Y(), c.lookTarget.Z()).
		Mul4(mgl32.HomogRotate3DY(ToRadian(-c.azimuth))).
		Mul4(mgl32.HomogRotate3DX(ToRadian(-c.incline))).
		Mul4(mgl32.Translate3D(0, 0, c.distance))
}

func (c *OrbitCamera) GetPosition() mgl32.Vec3 {
	return c.getWorldMatrix().Col(3).Vec3()
}

func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	return c.getWorldMatrix().Inv()
}

func (c *OrbitCamera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(ToRadian(c.fov), c.aspect, orbitNearPlane, orbitFarPlane)
}

func (c *OrbitCamera) GetProjectionViewMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

func (c *OrbitCamera) DebugAim() string {
	pos := c.GetPosition()
	return fmt.Sprintf("Pos: (%0.2f, %0.2f, %0.2f) Az: %0.1f Inc: %0.1f Dist: %0.2f", pos.X(), pos.Y(), pos.Z(), c.azimuth, c.incline, c.distance)
}
