package show

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/particles"
)

func newShowSystem() *particles.ParticleSystem {
	system := particles.NewParticleSystem(nil, 5000, 1)
	system.SetCreationRate(0)
	system.SetWindSpeed(mgl32.Vec3{0.5, 0, 0})
	return system
}

func TestShowRunsToCompletion(t *testing.T) {
	system := newShowSystem()
	wind := system.GetWindSpeed()
	gravity := system.GetGravity()

	show := NewShow(system)
	if err := show.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	var strongestWind float32
	weakestGravity := gravity
	for i := 0; i < 300 && show.Running(); i++ {
		show.Update(0.1)
		if l := system.GetWindSpeed().Len(); l > strongestWind {
			strongestWind = l
		}
		if g := system.GetGravity(); g < weakestGravity {
			weakestGravity = g
		}
	}

	if show.Running() {
		t.Fatalf("show still running after 30s of show time")
	}
	if strongestWind < 4 {
		t.Errorf("gust never reached full strength, max wind %f", strongestWind)
	}
	if weakestGravity > LowGravity+0.01 {
		t.Errorf("low gravity phase never happened, min gravity %f", weakestGravity)
	}
	if system.GetWindSpeed() != wind || system.GetGravity() != gravity {
		t.Errorf("parameters not restored: wind %v gravity %f", system.GetWindSpeed(), system.GetGravity())
	}
	if want := uint64(2*OpeningBurst + FinalBurst); system.Spawned() != want {
		t.Errorf("spawned %d particles, want %d", system.Spawned(), want)
	}
}

func TestShowStopRestores(t *testing.T) {
	system := newShowSystem()
	wind := system.GetWindSpeed()

	show := NewShow(system)
	if err := show.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 30; i++ {
		show.Update(0.1)
	}
	if system.GetWindSpeed() == wind {
		t.Fatalf("expected the gust to be blowing after 3s")
	}

	show.Stop()
	if show.Running() {
		t.Errorf("show still running after Stop")
	}
	if system.GetWindSpeed() != wind {
		t.Errorf("wind not restored: %v", system.GetWindSpeed())
	}

	spawned := system.Spawned()
	show.Update(0.1)
	if system.Spawned() != spawned {
		t.Errorf("stopped show kept emitting")
	}
}

func TestShowStopKeepsUserEdits(t *testing.T) {
	system := newShowSystem()
	gravity := system.GetGravity()

	show := NewShow(system)
	if err := show.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 30; i++ {
		show.Update(0.1)
	}
	edited := mgl32.Vec3{0, 0, -7}
	system.SetWindSpeed(edited)

	show.Stop()
	if system.GetWindSpeed() != edited {
		t.Errorf("edited wind was overwritten with %v", system.GetWindSpeed())
	}
	if system.GetGravity() != gravity {
		t.Errorf("untouched gravity not restored: %f", system.GetGravity())
	}
}

func TestShowRestart(t *testing.T) {
	system := newShowSystem()
	gravity := system.GetGravity()
	show := NewShow(system)

	if err := show.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 75; i++ {
		show.Update(0.1)
	}
	if err := show.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if system.GetGravity() != gravity {
		t.Errorf("restart did not restore gravity first, got %f", system.GetGravity())
	}
	for i := 0; i < 300 && show.Running(); i++ {
		show.Update(0.1)
	}
	if show.Running() || system.GetGravity() != gravity {
		t.Errorf("restarted show did not finish cleanly")
	}
}
