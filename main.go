package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/faiface/mainthread"
	"github.com/memmaker/fountain/engine/util"
	"github.com/memmaker/fountain/viewer"
)

func main() {
	flag.Parse()
	util.GLOBAL_LOG_LEVEL = util.ParseLogLevel(*logLevel)
	mainthread.Run(run)
}

func run() {
	config := viewer.Config{
		Title:          "Particle Fountain",
		Width:          *windowWidth,
		Height:         *windowHeight,
		PresetPath:     *presetPath,
		Seed:           *seed,
		MaxParticles:   *maxParticles,
		FixedDeltaTime: *fixedDT,
		VSync:          *vsync,
		StartShow:      *startShow,
	}
	app, err := viewer.NewParticleViewer(config)
	if err != nil {
		util.LogSystemError(fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
	app.Run()
}
