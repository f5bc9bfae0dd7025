package kinetic

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrBadScript is returned for scenario scripts that cannot be run.
var ErrBadScript = errors.New("kinetic: bad script")

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	W      float64 `yaml:"w,omitempty"`
	H      float64 `yaml:"h,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// scriptFile is the top-level YAML structure for a scenario script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"scroll": true, "resize": true,
	"press": true, "move": true, "release": true,
	"click": true, "drag": true, "wait": true,
}

// Script sequences injected input across frames for scripted scenarios and
// tests. Attach to a Stage via SetScript.
//
// Example:
//
//	steps:
//	  - {action: resize, w: 1280, h: 720}
//	  - {action: scroll, y: 4000}
//	  - {action: wait, frames: 90}
//	  - {action: drag, fromX: 600, fromY: 500, toX: 200, toY: 300, frames: 20}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML scenario script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w: no steps", ErrBadScript)
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: %w: step %d: unknown action %q", ErrBadScript, i, st.Action)
		}
		if st.Action == "resize" && (st.W <= 0 || st.H <= 0) {
			return nil, fmt.Errorf("parse script: %w: step %d: resize needs w and h", ErrBadScript, i)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the stage. Its steps run from the stage's
// frame hook, before injected input is consumed.
func (s *Stage) SetScript(script *Script) {
	if s.torn {
		return
	}
	s.script = script
}

// Done reports whether all steps have been executed and their input consumed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *Script) step(s *Stage) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "scroll":
		s.InjectScroll(st.Y)
	case "resize":
		s.InjectResize(st.W, st.H)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
