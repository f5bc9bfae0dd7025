package kinetic

import (
	"log"
	"os"
	"time"
)

// debugStats holds per-frame timing and counts. Only populated when the
// stage is in debug mode.
type debugStats struct {
	tickTime    time.Duration
	stepTime    time.Duration
	bindings    int
	bodies      int
	constraints int
	listeners   int
}

func newDebugLogger() *log.Logger {
	return log.New(os.Stderr, "[kinetic] ", log.Lmicroseconds)
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and lifecycle events are logged to stderr and Draw adds the stats
// overlay.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled && s.logger == nil {
		s.logger = newDebugLogger()
	}
}

// DebugMode reports whether debug mode is on.
func (s *Stage) DebugMode() bool { return s.debug }

func (s *Stage) debugf(format string, args ...any) {
	if !s.debug || s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

// debugLog prints one frame's stats.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.debugf("tick: %v | step: %v | bindings: %d | bodies: %d | constraints: %d | listeners: %d",
		stats.tickTime, stats.stepTime, stats.bindings, stats.bodies, stats.constraints, stats.listeners)
}

// debugCheckTornDown logs every listener that survived teardown.
func (s *Stage) debugCheckTornDown() {
	if n := s.ListenerCount(); n != 0 {
		s.debugf("warning: %d listeners survived teardown", n)
	}
	if n := s.world.Constraints(); n != 0 {
		s.debugf("warning: %d pointer constraints survived teardown", n)
	}
}
