package viewer

import (
	"fmt"

	"github.com/memmaker/fountain/engine/gui"
)

var helpLines = []string{
	"Up/Down select  Left/Right adjust (Shift x10)",
	"Tab component  Backspace reset",
	"Drag: left orbit, right zoom  I/O zoom  R camera",
	"Space pause  B burst  C clear  S show  H hide",
	"F5 save  F9 load  F12 snapshot  Esc quit",
}

func (v *ParticleViewer) hudLines() []gui.Line {
	status := "running"
	if v.paused {
		status = "paused"
	}
	if v.show.Running() {
		status += ", show"
	}

	lines := gui.PlainLines(
		fmt.Sprintf("FPS: %.0f (%s)", v.FramesPerSecond, status),
		fmt.Sprintf("Particles: %d / %d", v.system.Len(), v.system.Capacity()),
		fmt.Sprintf("Spawned: %d  Dropped: %d", v.system.Spawned(), v.system.Dropped()),
	)
	target := v.camera.GetLookTarget()
	lines = append(lines, gui.PlainLines(
		v.camera.DebugAim(),
		fmt.Sprintf("Target: (%0.2f, %0.2f, %0.2f)", target.X(), target.Y(), target.Z()),
	)...)
	lines = append(lines, gui.PlainLines(v.timer.Lines()...)...)
	lines = append(lines, gui.Line{})
	lines = append(lines, v.panel.Lines()...)
	lines = append(lines, gui.Line{})
	lines = append(lines, gui.PlainLines(helpLines...)...)
	return lines
}
