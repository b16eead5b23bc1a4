package util

import (
	"log"
	"os"
	"strings"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogParticles | LogOpenGL | LogSystem | LogInput | LogIO | LogScript

var logger = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogParticles LogCategory = 1 << iota
	LogOpenGL
	LogSystem
	LogInput
	LogIO
	LogScript
)

var categoryNames = map[LogCategory]string{
	LogParticles: "particles",
	LogOpenGL:    "opengl",
	LogSystem:    "system",
	LogInput:     "input",
	LogIO:        "io",
	LogScript:    "script",
}

// ParseLogLevel maps a flag value to a level. Unknown names fall back to info.
func ParseLogLevel(name string) LogLevel {
	switch strings.ToLower(name) {
	case "error":
		return LogLevelError
	case "warning", "warn":
		return LogLevelWarning
	case "debug":
		return LogLevelDebug
	}
	return LogLevelInfo
}

func logf(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	logger.Printf("[%s] %s", categoryNames[cat], txt)
}

func LogParticlesInfo(txt string) {
	logf(LogParticles, LogLevelInfo, txt)
}

func LogParticlesDebug(txt string) {
	logf(LogParticles, LogLevelDebug, txt)
}

func LogParticlesWarning(txt string) {
	logf(LogParticles, LogLevelWarning, txt)
}

func LogSystemInfo(txt string) {
	logf(LogSystem, LogLevelInfo, txt)
}

func LogSystemError(txt string) {
	logf(LogSystem, LogLevelError, txt)
}

func LogInputDebug(txt string) {
	logf(LogInput, LogLevelDebug, txt)
}

func LogIOInfo(txt string) {
	logf(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	logf(LogIO, LogLevelError, txt)
}

func LogScriptDebug(txt string) {
	logf(LogScript, LogLevelDebug, txt)
}

func LogScriptInfo(txt string) {
	logf(LogScript, LogLevelInfo, txt)
}

func LogScriptError(txt string) {
	logf(LogScript, LogLevelError, txt)
}

func LogGlInfo(txt string) {
	logf(LogOpenGL, LogLevelInfo, txt)
}

func LogGlDebug(txt string) {
	logf(LogOpenGL, LogLevelDebug, txt)
}

func LogGlError(txt string) {
	logf(LogOpenGL, LogLevelError, txt)
}
