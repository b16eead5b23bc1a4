package particles

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNonFiniteSettersAreIgnored(t *testing.T) {
	system := NewParticleSystem(nil, 10, 1)
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	system.SetMass(0.5)
	system.SetMass(nan)
	if system.GetMass() != 0.5 {
		t.Errorf("NaN mass overwrote the previous value: %f", system.GetMass())
	}
	system.SetGravity(inf)
	if system.GetGravity() != DefaultSettings().Gravity {
		t.Errorf("infinite gravity was stored: %f", system.GetGravity())
	}
	system.SetWindSpeed(mgl32.Vec3{1, nan, 0})
	if system.GetWindSpeed() != (mgl32.Vec3{}) {
		t.Errorf("wind with a NaN component was stored: %v", system.GetWindSpeed())
	}

	settings := system.GetSettings()
	settings.Friction = nan
	if err := system.SetSettings(settings); err == nil {
		t.Errorf("expected an error for a NaN preset")
	}
}

func TestSettersStoreVerbatim(t *testing.T) {
	system := NewParticleSystem(nil, 10, 1)
	system.SetElasticity(-3)
	system.SetFriction(7)
	system.SetGroundSize(-1)
	system.SetInitialPosVar(mgl32.Vec3{-1, 0, 1e30})

	if system.GetElasticity() != -3 || system.GetFriction() != 7 || system.GetGroundSize() != -1 {
		t.Errorf("out of range coefficients were altered")
	}
	if system.GetInitialPosVar() != (mgl32.Vec3{-1, 0, 1e30}) {
		t.Errorf("position variance altered: %v", system.GetInitialPosVar())
	}
}

func TestLoadSettingsKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	if err := os.WriteFile(path, []byte(`{"gravity": 3.5, "wind_speed": [1, 0, -2]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := DefaultSettings()
	want.Gravity = 3.5
	want.WindSpeed = mgl32.Vec3{1, 0, -2}
	if settings != want {
		t.Errorf("got %+v, want %+v", settings, want)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"gravity": `), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{broken, filepath.Join(dir, "missing.json")} {
		settings, err := LoadSettings(path)
		if err == nil {
			t.Errorf("%s: expected an error", filepath.Base(path))
		}
		if settings != DefaultSettings() {
			t.Errorf("%s: failed load should return the defaults", filepath.Base(path))
		}
	}
}

func TestSaveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	settings := DefaultSettings()
	settings.CreationRate = 42
	settings.GroundCenter = mgl32.Vec3{0, -1, 0}
	if err := SaveSettings(path, settings); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != settings {
		t.Errorf("got %+v, want %+v", loaded, settings)
	}
}

type recordingRenderer struct {
	draws   int
	deletes int
	last    []Particle
	radius  float32
}

func (r *recordingRenderer) Draw(particles []Particle, radius float32, viewProjection mgl32.Mat4) {
	r.draws++
	r.last = append(r.last[:0], particles...)
	r.radius = radius
}

func (r *recordingRenderer) Delete() {
	r.deletes++
}

func TestDrawLeavesSimulationUntouched(t *testing.T) {
	renderer := &recordingRenderer{}
	system := NewParticleSystem(renderer, 100, 7)
	system.SetCreationRate(200)
	system.Update(0.1)
	system.Update(0.1)

	system.Draw(mgl32.Ident4())
	first := append([]Particle(nil), renderer.last...)
	system.Draw(mgl32.Ident4())

	if renderer.draws != 2 {
		t.Fatalf("expected two draws, got %d", renderer.draws)
	}
	if len(first) != system.Len() || len(renderer.last) != len(first) {
		t.Fatalf("renderer saw %d and %d particles, system has %d", len(first), len(renderer.last), system.Len())
	}
	for i := range first {
		if first[i] != renderer.last[i] {
			t.Fatalf("particle %d changed between draws", i)
		}
	}
	if renderer.radius != system.GetRadius() {
		t.Errorf("renderer got radius %f, want %f", renderer.radius, system.GetRadius())
	}
}

func TestDeleteReleasesRendererOnce(t *testing.T) {
	renderer := &recordingRenderer{}
	system := NewParticleSystem(renderer, 100, 7)
	system.Emit(10)

	system.Delete()
	system.Delete()
	system.Draw(mgl32.Ident4())

	if renderer.deletes != 1 {
		t.Errorf("renderer deleted %d times", renderer.deletes)
	}
	if renderer.draws != 0 {
		t.Errorf("draw after delete reached the renderer")
	}
	if system.Len() != 0 {
		t.Errorf("particles survived delete")
	}
}

func TestReset(t *testing.T) {
	system := NewParticleSystem(nil, 100, 7)
	system.SetCreationRate(15)
	system.Update(0.1)
	system.Reset()
	if system.Len() != 0 {
		t.Errorf("reset kept %d particles", system.Len())
	}
	if system.GetCreationRate() != 15 {
		t.Errorf("reset changed the settings")
	}
}
