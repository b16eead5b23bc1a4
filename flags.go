package main

import (
	"flag"

	"github.com/memmaker/fountain/engine/particles"
)

var (
	windowWidth  = flag.Int("width", 1280, "window width in pixels")
	windowHeight = flag.Int("height", 720, "window height in pixels")
	presetPath   = flag.String("preset", "fountain.json", "preset file loaded at startup and by F9, written by F5")
	seed         = flag.Int64("seed", 1, "random seed of the particle emitter")
	maxParticles = flag.Int("max-particles", particles.DefaultMaxParticles, "capacity of the particle buffer")
	fixedDT      = flag.Float64("fixed-dt", 0, "fixed simulation step in seconds, 0 uses the measured frame time")
	vsync        = flag.Bool("vsync", true, "synchronize buffer swaps with the display")
	logLevel     = flag.String("log-level", "info", "error, warning, info or debug")
	startShow    = flag.Bool("show", false, "play the scripted show on startup")
)
