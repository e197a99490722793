// Package corelog is a minimal wrapper around the logrus fork
// gopkg.in/Sirupsen/logrus.v0, the same dependency arl-nestor's emu/log
// package wraps. It exists so the cpu package never imports logrus
// directly. Warnf output cannot be switched off through this package.
package corelog

import (
	"sync"

	logrus "gopkg.in/Sirupsen/logrus.v0"
)

// Level mirrors the subset of logrus levels the core actually emits.
type Level int

const (
	LevelWarn Level = iota
	LevelDebug
)

var (
	mu      sync.Mutex
	enabled = LevelWarn
)

// SetLevel controls which of Warnf/Debugf actually reach logrus; "debug"
// (per-step tracing) is opt-in via Config.TraceLevel.
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	if level == "debug" {
		enabled = LevelDebug
		// logrus's own standard logger drops Debug entries at its default
		// Info level.
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		enabled = LevelWarn
	}
}

func currentLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Warnf always logs — used for diagnostics the caller should not miss
// (StopUnsupported, NOP-with-warning on an undefined opcode).
func Warnf(format string, args ...interface{}) {
	logrus.WithField("_mod", "cpu").Warnf(format, args...)
}

// Debugf logs only when the trace level is "debug", keeping per-instruction
// tracing off the hot path otherwise.
func Debugf(format string, args ...interface{}) {
	if currentLevel() != LevelDebug {
		return
	}
	logrus.WithField("_mod", "cpu").Debugf(format, args...)
}
