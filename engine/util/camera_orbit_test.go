package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitCameraReset(t *testing.T) {
	camera := NewOrbitCamera(800, 600)
	camera.SetAzimuth(123)
	camera.SetIncline(-40)
	camera.SetDistance(42)
	camera.SetScreenSize(1000, 500)

	camera.Reset()
	if camera.GetAzimuth() != defaultOrbitAzimuth || camera.GetIncline() != defaultOrbitIncline || camera.GetDistance() != defaultOrbitDistance {
		t.Errorf("reset left %s", camera.DebugAim())
	}
	if camera.GetAspect() != 2 {
		t.Errorf("reset should keep the aspect ratio, got %f", camera.GetAspect())
	}
}

func TestOrbitCameraClamps(t *testing.T) {
	camera := NewOrbitCamera(800, 600)

	camera.Orbit(0, 1000)
	if camera.GetIncline() != defaultOrbitIncline-MaxMouseDelta*orbitDragRate {
		t.Errorf("mouse delta should be clamped to %d, incline %f", MaxMouseDelta, camera.GetIncline())
	}
	camera.Orbit(0, 100)
	if camera.GetIncline() != -MaxOrbitIncline {
		t.Errorf("incline should stop at %d, got %f", -MaxOrbitIncline, camera.GetIncline())
	}

	for i := 0; i < 20; i++ {
		camera.ZoomIn()
	}
	if camera.GetDistance() != MinOrbitDistance {
		t.Errorf("distance should stop at %f, got %f", MinOrbitDistance, camera.GetDistance())
	}
	for i := 0; i < 40; i++ {
		camera.DragZoom(-100)
	}
	if camera.GetDistance() != MaxOrbitDistance {
		t.Errorf("distance should stop at %d, got %f", MaxOrbitDistance, camera.GetDistance())
	}

	aspect := camera.GetAspect()
	camera.SetScreenSize(640, 0)
	if camera.GetAspect() != aspect {
		t.Errorf("zero height must not change the aspect ratio")
	}
}

func TestOrbitCameraPosition(t *testing.T) {
	camera := NewOrbitCamera(800, 600)
	camera.SetIncline(0)
	camera.SetAzimuth(0)
	camera.SetDistance(5)
	camera.SetLookTarget(mgl32.Vec3{0, 1, 0})
	if camera.GetLookTarget() != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("look target not stored: %v", camera.GetLookTarget())
	}

	if pos := camera.GetPosition(); !pos.ApproxEqualThreshold(mgl32.Vec3{0, 1, 5}, 1e-5) {
		t.Errorf("camera position %v, want (0, 1, 5)", pos)
	}

	// the look target projects to the center of the screen
	clip := camera.GetProjectionViewMatrix().Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	if !ndc.Vec2().ApproxEqualThreshold(mgl32.Vec2{}, 1e-5) {
		t.Errorf("look target at %v in NDC, want the center", ndc)
	}

	camera.SetIncline(90)
	if pos := camera.GetPosition(); pos.Y() < 5.99 {
		t.Errorf("incline 90 should look straight down from above, position %v", pos)
	}
}

func TestPixelProjection(t *testing.T) {
	projection := Get2DPixelCoordOrthographicProjectionMatrix(800, 600)
	topLeft := projection.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	bottomRight := projection.Mul4x1(mgl32.Vec4{800, 600, 0, 1})
	if !topLeft.Vec2().ApproxEqual(mgl32.Vec2{-1, 1}) || !bottomRight.Vec2().ApproxEqual(mgl32.Vec2{1, -1}) {
		t.Errorf("pixel corners map to %v and %v", topLeft, bottomRight)
	}
}
