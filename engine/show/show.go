package show

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/fountain/engine/particles"
	"github.com/memmaker/fountain/engine/util"
	"github.com/solarlune/gocoro"
)

const (
	OpeningBurst = 300
	FinalBurst   = 500
	LowGravity   = 1.6
)

var GustWind = mgl32.Vec3{4, 0, 1}

// Show plays a scripted sequence of parameter changes on a particle system.
// Time only advances through Update, so a paused simulation pauses the show.
type Show struct {
	system    *particles.ParticleSystem
	coroutine gocoro.Coroutine
	clock     float64
	stopped   bool

	windLerper    *util.Lerper[mgl32.Vec3]
	gravityLerper *util.Lerper[float32]

	savedWind    mgl32.Vec3
	savedGravity float32
	// last values the show itself wrote; a differing current value is a user edit
	shownWind    mgl32.Vec3
	shownGravity float32
}

func NewShow(system *particles.ParticleSystem) *Show {
	return &Show{
		system:    system,
		coroutine: gocoro.NewCoroutine(),
	}
}

// Start begins the show from the top. A running show is stopped first.
func (s *Show) Start() error {
	if s.Running() {
		s.Stop()
	}
	s.clock = 0
	s.stopped = false
	s.savedWind = s.system.GetWindSpeed()
	s.savedGravity = s.system.GetGravity()
	s.shownWind = s.savedWind
	s.shownGravity = s.savedGravity
	s.coroutine = gocoro.NewCoroutine()
	util.LogScriptDebug("show started")
	return s.coroutine.Run(s.script)
}

func (s *Show) Running() bool {
	return s.coroutine.Running()
}

// Update advances show time by deltaTime and lets the script continue.
func (s *Show) Update(deltaTime float64) {
	if !s.Running() {
		return
	}
	s.clock += deltaTime
	if s.windLerper != nil {
		s.windLerper.Update(deltaTime)
	}
	if s.gravityLerper != nil {
		s.gravityLerper.Update(deltaTime)
	}
	s.coroutine.Update()
}

// Stop abandons the script and restores the parameters it changed. A parameter
// edited by the user since the show last wrote it keeps the user's value.
func (s *Show) Stop() {
	if !s.Running() {
		return
	}
	s.stopped = true
	for s.coroutine.Running() {
		s.coroutine.Update()
	}
	s.restore()
	util.LogScriptDebug("show stopped")
}

func (s *Show) restore() {
	s.windLerper = nil
	s.gravityLerper = nil
	if s.system.GetWindSpeed() == s.shownWind {
		s.system.SetWindSpeed(s.savedWind)
	} else {
		util.LogScriptInfo("show: keeping the edited wind speed")
	}
	if s.system.GetGravity() == s.shownGravity {
		s.system.SetGravity(s.savedGravity)
	} else {
		util.LogScriptInfo("show: keeping the edited gravity")
	}
}

func (s *Show) setWind(wind mgl32.Vec3) {
	s.system.SetWindSpeed(wind)
	s.shownWind = s.system.GetWindSpeed()
}

func (s *Show) setGravity(gravity float32) {
	s.system.SetGravity(gravity)
	s.shownGravity = s.system.GetGravity()
}

// wait yields until seconds of show time have passed. It returns false once the show is stopped.
func (s *Show) wait(exe *gocoro.Execution, seconds float64) bool {
	until := s.clock + seconds
	return s.yieldUntil(exe, func() bool { return s.clock >= until })
}

func (s *Show) yieldUntil(exe *gocoro.Execution, done func() bool) bool {
	err := exe.YieldFunc(func() bool {
		return s.stopped || done()
	})
	if err != nil {
		util.LogScriptError(fmt.Sprintf("show: %v", err))
		return false
	}
	return !s.stopped
}

func (s *Show) burst(count int) {
	spawned := s.system.Emit(count)
	util.LogScriptDebug(fmt.Sprintf("show burst: %d of %d particles", spawned, count))
}

func (s *Show) blowWind(to mgl32.Vec3, duration float64) {
	s.windLerper = util.NewLerper(util.Lerp3, s.setWind, s.system.GetWindSpeed(), to, duration).WithEasing(util.EaseInOut)
}

func (s *Show) shiftGravity(to float32, duration float64) {
	s.gravityLerper = util.NewLerper(util.LerpFloat32, s.setGravity, s.system.GetGravity(), to, duration).WithEasing(util.EaseInOut)
}

func (s *Show) script(exe *gocoro.Execution) {
	s.burst(OpeningBurst)
	if !s.wait(exe, 1.5) {
		return
	}

	s.blowWind(s.savedWind.Add(GustWind), 2)
	if !s.yieldUntil(exe, s.windLerper.IsDone) || !s.wait(exe, 1) {
		return
	}
	s.blowWind(s.savedWind, 2)
	if !s.yieldUntil(exe, s.windLerper.IsDone) {
		return
	}

	s.shiftGravity(LowGravity, 2)
	if !s.yieldUntil(exe, s.gravityLerper.IsDone) {
		return
	}
	s.burst(OpeningBurst)
	if !s.wait(exe, 2) {
		return
	}
	s.shiftGravity(s.savedGravity, 1)
	if !s.yieldUntil(exe, s.gravityLerper.IsDone) {
		return
	}

	s.burst(FinalBurst)
	s.restore()
	util.LogScriptDebug("show finished")
}
