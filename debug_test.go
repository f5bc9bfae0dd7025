package kinetic

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func debugStage(t *testing.T) (*Stage, *FrameQueue, *bytes.Buffer) {
	t.Helper()
	s, q := newTestStage(t, circleAt(200, 200, 100))
	var buf bytes.Buffer
	s.SetDebugMode(true)
	s.logger = log.New(&buf, "[kinetic] ", 0)
	return s, q, &buf
}

func TestDebugMode_LogsFrameStats(t *testing.T) {
	s, q, buf := debugStage(t)
	s.Scroll(playgroundScroll)
	advance(q, 2)

	out := buf.String()
	if !strings.Contains(out, "world active: 1 bodies") {
		t.Errorf("missing activation line in:\n%s", out)
	}
	if !strings.Contains(out, "tick:") || !strings.Contains(out, "bodies: 1") {
		t.Errorf("missing frame stats in:\n%s", out)
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	s, q, buf := debugStage(t)
	s.SetDebugMode(false)
	s.Scroll(playgroundScroll)
	advance(q, 2)
	s.Teardown()
	if buf.Len() != 0 {
		t.Errorf("debug output with debug off:\n%s", buf.String())
	}
}

func TestDebugMode_TeardownClean(t *testing.T) {
	s, q, buf := debugStage(t)
	s.Scroll(playgroundScroll)
	advance(q, 1)
	s.PointerDown(200, 200)
	s.OnScroll(func(Event) {})
	buf.Reset()

	s.Teardown()

	out := buf.String()
	if strings.Contains(out, "warning") {
		t.Errorf("teardown left listeners behind:\n%s", out)
	}
	if !strings.Contains(out, "torn down after 1 frames") {
		t.Errorf("missing teardown line in:\n%s", out)
	}
}

func TestDebugMode_Toggle(t *testing.T) {
	s, _ := newTestStage(t)
	if s.DebugMode() {
		t.Fatal("debug on by default")
	}
	s.SetDebugMode(true)
	if !s.DebugMode() || s.logger == nil {
		t.Error("SetDebugMode(true) did not enable logging")
	}
}
