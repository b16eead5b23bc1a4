package viewer

import (
	"fmt"
	"os"

	"github.com/faiface/mainthread"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/glhf"
	"github.com/memmaker/fountain/engine/gui"
	"github.com/memmaker/fountain/engine/particles"
	"github.com/memmaker/fountain/engine/show"
	"github.com/memmaker/fountain/engine/util"
	"github.com/pkg/errors"
)

type Config struct {
	Title          string
	Width          int
	Height         int
	PresetPath     string
	Seed           int64
	MaxParticles   int
	FixedDeltaTime float64
	VSync          bool
	StartShow      bool
}

// ParticleViewer is the windowed host around a particle system: it feeds
// input into the parameter panel and camera, ticks the simulation and draws it.
type ParticleViewer struct {
	*glhf.GlApplication
	config Config

	camera *util.OrbitCamera
	system *particles.ParticleSystem
	show   *show.Show
	panel  *gui.Panel
	timer  *util.Timer

	renderer  *glhf.ParticleRenderer
	ground    *ground
	gizmo     *gizmo
	textBlock *gui.TextBlock
	hud       *glhf.ScreenImage

	particleShader *glhf.Shader
	flatShader     *glhf.Shader
	hudShader      *glhf.Shader

	input         inputState
	paused        bool
	hudVisible    bool
	snapshotCount int
	deleted       bool
}

// NewParticleViewer opens the window and creates every GPU resource. It must
// be called from inside mainthread.Run.
func NewParticleViewer(config Config) (*ParticleViewer, error) {
	v := &ParticleViewer{
		config:     config,
		timer:      util.NewTimer(),
		textBlock:  gui.NewTextBlock(),
		hudVisible: true,
	}

	err := mainthread.CallErr(func() error {
		window, terminateFunc := glhf.InitOpenGL(config.Title, config.Width, config.Height, config.VSync)
		v.GlApplication = glhf.NewGlApplication(config.Title, window, terminateFunc)
		if err := v.loadShaders(); err != nil {
			terminateFunc()
			return err
		}
		v.renderer = glhf.NewParticleRenderer(v.particleShader, capacityOf(config))
		v.ground = newGround(v.flatShader)
		v.gizmo = newGizmo(v.flatShader)
		v.hud = glhf.NewScreenImage(v.hudShader)
		v.hud.SetPosition(mgl32.Vec2{10, 10})
		glhf.CheckForGLError("create viewer resources")
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "create viewer")
	}

	v.camera = util.NewOrbitCamera(v.WindowWidth, v.WindowHeight)
	v.camera.SetLookTarget(mgl32.Vec3{0, 1, 0})
	v.renderer.SetPointScale(v.WindowHeight, v.camera.GetProjectionMatrix())

	v.system = particles.NewParticleSystem(v.renderer, capacityOf(config), config.Seed)
	if _, statErr := os.Stat(config.PresetPath); config.PresetPath != "" && statErr == nil {
		v.loadPreset()
	}
	v.panel = gui.NewParticlePanel(v.system)
	v.show = show.NewShow(v.system)
	if config.StartShow {
		v.toggleShow()
	}

	v.ClearColor = mgl32.Vec4{0.05, 0.05, 0.08, 1}
	v.FixedDeltaTime = config.FixedDeltaTime
	v.UpdateFunc = v.Update
	v.DrawFunc = v.Draw
	v.KeyHandler = v.handleKeyEvents
	v.MousePosHandler = v.handleMousePosEvents
	v.MouseButtonHandler = v.handleMouseButtonEvents
	v.ScrollHandler = v.handleScrollEvents
	v.ResizeHandler = v.handleResize

	terminate := v.TerminateFunc
	v.TerminateFunc = func() {
		v.Delete()
		terminate()
	}

	util.LogSystemInfo(fmt.Sprintf("viewer ready: %dx%d, capacity %d, seed %d", v.WindowWidth, v.WindowHeight, v.system.Capacity(), config.Seed))
	return v, nil
}

func capacityOf(config Config) int {
	if config.MaxParticles <= 0 {
		return particles.DefaultMaxParticles
	}
	return config.MaxParticles
}

func (v *ParticleViewer) loadShaders() error {
	var err error
	if v.particleShader, err = loadParticleShader(); err != nil {
		return err
	}
	if v.flatShader, err = loadFlatShader(); err != nil {
		return err
	}
	if v.hudShader, err = loadHudShader(); err != nil {
		return err
	}
	return nil
}

// Update runs after input was polled, so panel edits of this frame are already applied.
func (v *ParticleViewer) Update(elapsed float64) {
	stopUpdateTimer := v.timer.Start("update")
	if !v.paused {
		v.show.Update(elapsed)
		v.system.Update(elapsed)
	}
	v.ground.update(v.system.GetGroundCenter(), v.system.GetGroundSize())
	v.gizmo.update(v.system.GetSettings())
	stopUpdateTimer()
}

func (v *ParticleViewer) Draw(elapsed float64) {
	stopDrawTimer := v.timer.Start("draw")
	viewProjection := v.camera.GetProjectionViewMatrix()
	v.ground.draw(viewProjection)
	v.gizmo.draw(viewProjection)
	v.system.Draw(viewProjection)
	if v.hudVisible {
		v.hud.SetImage(v.textBlock.RenderLines(v.hudLines()))
		v.hud.Draw(v.WindowWidth, v.WindowHeight)
	}
	glhf.CheckForGLError("draw frame")
	stopDrawTimer()
}

func (v *ParticleViewer) handleResize(width, height int) {
	v.camera.SetScreenSize(width, height)
	v.renderer.SetPointScale(height, v.camera.GetProjectionMatrix())
}

// Delete releases the particle system and every GPU resource once.
// It runs on the main thread before the window is destroyed.
func (v *ParticleViewer) Delete() {
	if v.deleted {
		return
	}
	v.deleted = true
	v.show.Stop()
	v.system.Delete()
	v.ground.delete()
	v.gizmo.delete()
	v.hud.Delete()
	v.particleShader.Delete()
	v.flatShader.Delete()
	v.hudShader.Delete()
	util.LogSystemInfo("viewer resources released")
}
