package glhf

import (
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/util"
)

// MaxFrameTime caps the time step handed to UpdateFunc after a stall.
const MaxFrameTime = 0.1

type GlApplication struct {
	Window             *glfw.Window
	Title              string
	TerminateFunc      func()
	UpdateFunc         func(elapsed float64)
	DrawFunc           func(elapsed float64)
	KeyHandler         func(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	MousePosHandler    func(xpos float64, ypos float64)
	MouseButtonHandler func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)
	ScrollHandler      func(xoff float64, yoff float64)
	ResizeHandler      func(width, height int)
	WindowWidth        int
	WindowHeight       int
	ClearColor         mgl32.Vec4
	// FixedDeltaTime replaces the measured frame time when > 0.
	FixedDeltaTime  float64
	MaxFrameTime    float64
	FramesPerSecond float64

	previousTime float64
	fpsTime      float64
	fpsFrames    int
}

// NewGlApplication wraps a window created by InitOpenGL and routes its callbacks
// to the handler fields.
func NewGlApplication(title string, window *glfw.Window, terminateFunc func()) *GlApplication {
	width, height := window.GetFramebufferSize()
	a := &GlApplication{
		Window:        window,
		Title:         title,
		TerminateFunc: terminateFunc,
		WindowWidth:   width,
		WindowHeight:  height,
		MaxFrameTime:  MaxFrameTime,
	}
	window.SetKeyCallback(a.KeyCallback)
	window.SetCursorPosCallback(a.MousePosCallback)
	window.SetMouseButtonCallback(a.MouseButtonCallback)
	window.SetScrollCallback(a.ScrollCallback)
	window.SetFramebufferSizeCallback(a.FramebufferSizeCallback)
	return a
}

func (a *GlApplication) KeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if a.KeyHandler != nil {
		a.KeyHandler(key, scancode, action, mods)
	}
}

func (a *GlApplication) MousePosCallback(w *glfw.Window, xpos float64, ypos float64) {
	if a.MousePosHandler != nil {
		a.MousePosHandler(xpos, ypos)
	}
}

func (a *GlApplication) ScrollCallback(w *glfw.Window, xoff float64, yoff float64) {
	if a.ScrollHandler != nil {
		a.ScrollHandler(xoff, yoff)
	}
}

func (a *GlApplication) MouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if a.MouseButtonHandler != nil {
		a.MouseButtonHandler(button, action, mods)
	}
}

// FramebufferSizeCallback updates the viewport. A minimized window reports a
// zero height, which is ignored.
func (a *GlApplication) FramebufferSizeCallback(w *glfw.Window, width int, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.WindowWidth = width
	a.WindowHeight = height
	Viewport(width, height)
	if a.ResizeHandler != nil {
		a.ResizeHandler(width, height)
	}
}

// Run drives the frame loop until the window is closed. It must be called
// from the function passed to mainthread.Run; every frame executes on the main thread.
func (a *GlApplication) Run() {
	defer mainthread.Call(a.TerminateFunc)
	mainthread.Call(func() {
		a.previousTime = glfw.GetTime()
		a.fpsTime = a.previousTime
	})
	running := true
	for running {
		mainthread.Call(func() {
			running = a.frame()
		})
	}
}

func (a *GlApplication) frame() bool {
	glfw.PollEvents()
	if a.Window.ShouldClose() {
		return false
	}

	now := glfw.GetTime()
	elapsed := a.deltaTime(now - a.previousTime)
	a.previousTime = now
	a.countFrame(now)

	if a.UpdateFunc != nil {
		a.UpdateFunc(elapsed)
	}

	Clear(a.ClearColor[0], a.ClearColor[1], a.ClearColor[2], a.ClearColor[3])
	if a.DrawFunc != nil {
		a.DrawFunc(elapsed)
	}

	a.Window.SwapBuffers()
	return true
}

func (a *GlApplication) deltaTime(measured float64) float64 {
	if a.FixedDeltaTime > 0 {
		return a.FixedDeltaTime
	}
	if measured < 0 {
		return 0
	}
	if a.MaxFrameTime > 0 && measured > a.MaxFrameTime {
		return a.MaxFrameTime
	}
	return measured
}

func (a *GlApplication) countFrame(now float64) {
	a.fpsFrames++
	if now-a.fpsTime < 1 {
		return
	}
	a.FramesPerSecond = float64(a.fpsFrames) / (now - a.fpsTime)
	a.fpsFrames = 0
	a.fpsTime = now
	a.Window.SetTitle(fmt.Sprintf("%s | FPS: %.0f", a.Title, a.FramesPerSecond))
}

// InitOpenGL opens a window with a 3.3 core context and makes it current.
// It panics if no window can be created.
func InitOpenGL(title string, width, height int, vsync bool) (*glfw.Window, func()) {
	if err := glfw.Init(); err != nil {
		util.LogGlError(fmt.Sprintf("glfw: %v", err))
		panic(err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		panic(err)
	}
	win.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := Init(); err != nil {
		glfw.Terminate()
		panic(err)
	}

	util.LogGlInfo(fmt.Sprintf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION))))

	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)

	fbWidth, fbHeight := win.GetFramebufferSize()
	Viewport(fbWidth, fbHeight)

	return win, func() {
		win.Destroy()
		glfw.Terminate()
	}
}
