package viewer

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/memmaker/fountain/engine/util"
)

const (
	burstSize        = 500
	// one scroll notch zooms like a 20 pixel right drag
	scrollZoomPixels = 20
)

type inputState struct {
	mouseX, mouseY float64
	hasMouse       bool
	leftDown       bool
	rightDown      bool
}

func (v *ParticleViewer) handleKeyEvents(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	// panel keys repeat while held
	steps := float32(1)
	if mods&glfw.ModShift != 0 {
		steps = 10
	}
	switch key {
	case glfw.KeyUp:
		v.panel.Select(-1)
		return
	case glfw.KeyDown:
		v.panel.Select(1)
		return
	case glfw.KeyLeft:
		v.panel.Adjust(-steps)
		return
	case glfw.KeyRight:
		v.panel.Adjust(steps)
		return
	}

	if action != glfw.Press {
		return
	}
	util.LogInputDebug(fmt.Sprintf("key %d pressed (mods %d)", key, mods))

	switch key {
	case glfw.KeyEscape:
		v.Window.SetShouldClose(true)
	case glfw.KeyTab:
		v.panel.NextComponent()
	case glfw.KeyBackspace:
		v.panel.ResetSelected()
	case glfw.KeyI:
		v.camera.ZoomIn()
	case glfw.KeyO:
		v.camera.ZoomOut()
	case glfw.KeyR:
		v.camera.Reset()
	case glfw.KeySpace:
		v.paused = !v.paused
	case glfw.KeyB:
		v.system.Emit(burstSize)
	case glfw.KeyC:
		v.system.Reset()
	case glfw.KeyH:
		v.hudVisible = !v.hudVisible
	case glfw.KeyS:
		v.toggleShow()
	case glfw.KeyF5:
		v.savePreset()
	case glfw.KeyF9:
		v.loadPreset()
	case glfw.KeyF12:
		v.exportSnapshot()
	}
}

func (v *ParticleViewer) handleMouseButtonEvents(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	switch button {
	case glfw.MouseButtonLeft:
		v.input.leftDown = action == glfw.Press
	case glfw.MouseButtonRight:
		v.input.rightDown = action == glfw.Press
	}
}

func (v *ParticleViewer) handleMousePosEvents(xpos float64, ypos float64) {
	if !v.input.hasMouse {
		v.input.mouseX, v.input.mouseY = xpos, ypos
		v.input.hasMouse = true
		return
	}
	dx := int(xpos) - int(v.input.mouseX)
	dy := -(int(ypos) - int(v.input.mouseY))
	v.input.mouseX, v.input.mouseY = xpos, ypos

	if v.input.leftDown {
		v.camera.Orbit(dx, dy)
	}
	if v.input.rightDown {
		v.camera.DragZoom(dx)
	}
}

func (v *ParticleViewer) handleScrollEvents(xoff float64, yoff float64) {
	v.camera.DragZoom(int(yoff * scrollZoomPixels))
}
