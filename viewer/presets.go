package viewer

import (
	"fmt"

	"github.com/memmaker/fountain/engine/particles"
	"github.com/memmaker/fountain/engine/util"
)

func (v *ParticleViewer) savePreset() {
	if v.config.PresetPath == "" {
		util.LogIOError("no preset path configured, use -preset")
		return
	}
	if err := particles.SaveSettings(v.config.PresetPath, v.system.GetSettings()); err != nil {
		util.LogIOError(fmt.Sprintf("%+v", err))
		return
	}
	util.LogIOInfo(fmt.Sprintf("preset saved to %s", v.config.PresetPath))
}

// loadPreset replaces all parameters with the preset file. A missing or
// broken file leaves the current parameters untouched.
func (v *ParticleViewer) loadPreset() {
	if v.config.PresetPath == "" {
		util.LogIOError("no preset path configured, use -preset")
		return
	}
	settings, err := particles.LoadSettings(v.config.PresetPath)
	if err != nil {
		util.LogIOError(err.Error())
		return
	}
	if err = v.system.SetSettings(settings); err != nil {
		util.LogIOError(err.Error())
		return
	}
	util.LogIOInfo(fmt.Sprintf("preset loaded from %s", v.config.PresetPath))
}

func (v *ParticleViewer) exportSnapshot() {
	if v.system.Len() == 0 {
		util.LogIOInfo("no particles alive, snapshot skipped")
		return
	}
	path := fmt.Sprintf("snapshot-%d.glb", v.snapshotCount)
	if err := util.ExportPointCloud(path, "fountain", v.system.Positions()); err != nil {
		util.LogIOError(err.Error())
		return
	}
	v.snapshotCount++
	util.LogIOInfo(fmt.Sprintf("%d particles written to %s", v.system.Len(), path))
}

func (v *ParticleViewer) toggleShow() {
	if v.show.Running() {
		v.show.Stop()
		return
	}
	if err := v.show.Start(); err != nil {
		util.LogScriptError(fmt.Sprintf("start show: %v", err))
	}
}
