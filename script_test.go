package kinetic

import (
	"errors"
	"testing"
)

func TestLoadScript(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		bad     bool
	}{
		{"valid", "steps:\n  - {action: scroll, y: 100}\n  - {action: wait, frames: 3}\n", false, false},
		{"empty", "steps: []\n", true, true},
		{"unknown action", "steps:\n  - {action: jump}\n", true, true},
		{"resize without size", "steps:\n  - {action: resize, w: 100}\n", true, true},
		{"malformed", "steps: [\n", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %t", err, tt.wantErr)
			}
			if tt.bad && !errors.Is(err, ErrBadScript) {
				t.Errorf("err = %v, want ErrBadScript", err)
			}
		})
	}
}

func TestScriptRun(t *testing.T) {
	script, err := LoadScript([]byte(`
steps:
  - {action: scroll, y: 7920}
  - {action: wait, frames: 2}
  - {action: drag, fromX: 200, fromY: 200, toX: 400, toY: 200, frames: 6}
`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	s, q := newTestStage(t, circleAt(200, 200, 100))
	s.SetScript(script)

	for i := 0; i < 30 && !script.Done(); i++ {
		advance(q, 1)
	}
	if !script.Done() {
		t.Fatal("script did not finish")
	}
	if s.World().State() != WorldRunning {
		t.Errorf("world = %s", s.World().State())
	}
	if s.InteractionActive() {
		t.Error("drag left the gate active")
	}
	if x := s.World().Body(0).Position().X; x <= 200 {
		t.Errorf("body x = %v, want dragged right", x)
	}
}

func TestScriptIgnoredAfterTeardown(t *testing.T) {
	script, err := LoadScript([]byte("steps:\n  - {action: scroll, y: 10}\n"))
	if err != nil {
		t.Fatal(err)
	}
	s, q := newTestStage(t)
	s.Teardown()
	s.SetScript(script)
	advance(q, 3)
	if script.Done() || s.State().RawScroll != 0 {
		t.Error("script ran on a torn-down stage")
	}
}
