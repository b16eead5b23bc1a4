package gui

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/particles"
)

func TestPanelSelectionWraps(t *testing.T) {
	var a, b float32
	panel := NewPanel(Group{Name: "G", Controls: []Control{
		NewFloatControl("a", 1, func() float32 { return a }, func(v float32) { a = v }),
		NewFloatControl("b", 1, func() float32 { return b }, func(v float32) { b = v }),
	}})

	panel.Select(-1)
	if panel.Selected().Label() != "b" {
		t.Errorf("select -1 from the top should wrap to the last control, got %s", panel.Selected().Label())
	}
	panel.Select(1)
	if panel.Selected().Label() != "a" {
		t.Errorf("select +1 from the bottom should wrap to the first control, got %s", panel.Selected().Label())
	}
	panel.Select(5)
	if panel.Selected().Label() != "b" {
		t.Errorf("select +5 on two controls should land on b, got %s", panel.Selected().Label())
	}
}

func TestPanelAdjustsVectorComponents(t *testing.T) {
	wind := mgl32.Vec3{}
	panel := NewPanel(Group{Name: "Wind", Controls: []Control{
		NewVec3Control("V_wind", 0.5, func() mgl32.Vec3 { return wind }, func(v mgl32.Vec3) { wind = v }),
	}})

	panel.Adjust(2)
	panel.NextComponent()
	panel.NextComponent()
	panel.Adjust(-1)
	if wind != (mgl32.Vec3{1, 0, -0.5}) {
		t.Errorf("wind after edits: %v", wind)
	}

	panel.NextComponent()
	if panel.SelectedComponent() != 0 {
		t.Errorf("component should wrap back to x, got %d", panel.SelectedComponent())
	}

	panel.ResetSelected()
	if wind != (mgl32.Vec3{}) {
		t.Errorf("reset should restore the initial value, got %v", wind)
	}
}

func TestEmptyPanel(t *testing.T) {
	panel := NewPanel()
	panel.Select(1)
	panel.Adjust(1)
	panel.NextComponent()
	panel.ResetSelected()
	if panel.Selected() != nil || len(panel.Lines()) != 0 {
		t.Errorf("empty panel should have no selection and no lines")
	}
}

func TestParticlePanelWritesThrough(t *testing.T) {
	system := particles.NewParticleSystem(nil, 10, 1)
	panel := NewParticlePanel(system)

	// Particle group: Radius, Mass, g
	panel.Select(2)
	if panel.Selected().Label() != "g" {
		t.Fatalf("expected g to be selected, got %s", panel.Selected().Label())
	}
	before := system.GetGravity()
	panel.Adjust(10)
	if got := system.GetGravity(); got != before+1 {
		t.Errorf("gravity: got %f, want %f", got, before+1)
	}

	panel.ResetAll()
	if system.GetGravity() != before {
		t.Errorf("reset all did not restore gravity")
	}

	lines := panel.Lines()
	headers := 0
	selected := 0
	for _, line := range lines {
		switch line.Kind {
		case LineHeader:
			headers++
		case LineSelected:
			selected++
			if !strings.Contains(line.Text, "g") {
				t.Errorf("selected line %q is not the gravity control", line.Text)
			}
		}
	}
	if headers != 4 || selected != 1 {
		t.Errorf("expected 4 group headers and 1 selected line, got %d and %d", headers, selected)
	}
	if len(lines) != 4+17 {
		t.Errorf("expected 21 lines for 17 parameters, got %d", len(lines))
	}
}

func TestRenderLines(t *testing.T) {
	block := NewTextBlock()
	lines := []Line{
		{Text: "Particle", Kind: LineHeader},
		{Text: "  Radius 0.020", Kind: LineSelected},
		{Text: "", Kind: LineText},
	}
	img := block.RenderLines(lines)

	width, height := block.Size(lines)
	if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
		t.Fatalf("image %v does not match size %dx%d", img.Bounds(), width, height)
	}
	wantWidth := len("  Radius 0.020")*7 + 2*textPadding
	if width != wantWidth {
		t.Errorf("width: got %d, want %d", width, wantWidth)
	}

	glyphPixels := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 255 {
			glyphPixels++
		}
	}
	if glyphPixels == 0 {
		t.Errorf("no glyph pixels were drawn")
	}
}
