package kinetic

import (
	"errors"
	"math"
	"testing"
)

func TestParseOffsets(t *testing.T) {
	off, err := ParseOffsets("start end", "end start")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Offsets{
		Enter: Edge{Container: EdgeStart, Viewport: EdgeEnd},
		Exit:  Edge{Container: EdgeEnd, Viewport: EdgeStart},
	}
	if off != want {
		t.Errorf("got %+v, want %+v", off, want)
	}
	if off, _ := ParseOffsets("center center", "end end"); off.Enter.Container != EdgeCenter {
		t.Errorf("center = %v", off.Enter.Container)
	}
}

func TestParseOffsetsInvalid(t *testing.T) {
	for _, in := range [][2]string{
		{"start", "end start"},
		{"top end", "end start"},
		{"start end", "end bottom"},
		{"", ""},
	} {
		if _, err := ParseOffsets(in[0], in[1]); !errors.Is(err, ErrBadOffset) {
			t.Errorf("ParseOffsets(%q, %q) err = %v", in[0], in[1], err)
		}
	}
}

func TestTrackerRange(t *testing.T) {
	g := Geometry{Top: 1000, Height: 2000, ViewportWidth: 1280, ViewportHeight: 800, Laid: true}
	tests := []struct {
		name       string
		offsets    Offsets
		start, end float64
	}{
		{"pinned", PresetOffsets(SectionHero), 1000, 2200},
		{"through", PresetOffsets(SectionSpecialists), 200, 3000},
		{"enter", PresetOffsets(SectionAbout), 200, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker("c", tt.offsets)
			tr.Update(g, 0)
			start, end, ok := tr.Range()
			if !ok {
				t.Fatal("range not valid")
			}
			if start != tt.start || end != tt.end {
				t.Errorf("range = [%v, %v], want [%v, %v]", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestTrackerMonotonicAndClamped(t *testing.T) {
	g := Geometry{Top: 500, Height: 3000, ViewportWidth: 1000, ViewportHeight: 600, Laid: true}
	tr := NewTracker("c", PresetOffsets(SectionHero))
	prev := -1.0
	for y := -1000.0; y <= 5000; y += 37 {
		p := tr.Update(g, y)
		if p < prev {
			t.Fatalf("progress decreased at %v: %v < %v", y, p, prev)
		}
		if p < 0 || p > 1 {
			t.Fatalf("progress %v out of [0,1] at %v", p, y)
		}
		prev = p
	}
	if p := tr.Update(g, 100000); p != 1 {
		t.Errorf("far past end = %v, want 1", p)
	}
	if p := tr.Update(g, -100000); p != 0 {
		t.Errorf("far before start = %v, want 0", p)
	}
	// start 500, end 500+3000-600 = 2900; halfway is 1700.
	if p := tr.Update(g, 1700); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("midpoint = %v, want 0.5", p)
	}
}

func TestTrackerMissingGeometry(t *testing.T) {
	tr := NewTracker("c", PresetOffsets(SectionHero))
	tests := []struct {
		name string
		g    Geometry
	}{
		{"not laid", Geometry{Top: 0, Height: 1000, ViewportHeight: 500}},
		{"zero height", Geometry{Height: 0, ViewportHeight: 500, Laid: true}},
		{"zero viewport", Geometry{Height: 1000, Laid: true}},
		// Pinned container no taller than the viewport has an empty range.
		{"degenerate range", Geometry{Height: 500, ViewportHeight: 500, Laid: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := tr.Update(tt.g, 250); p != 0 {
				t.Errorf("progress = %v, want 0", p)
			}
			if _, _, ok := tr.Range(); ok {
				t.Error("range should be invalid")
			}
		})
	}
}

func TestSectionLayout(t *testing.T) {
	l := DefaultLayout()
	if _, ok := l.Geometry(SectionHero); ok {
		t.Fatal("geometry before viewport should be missing")
	}
	l.SetViewport(1280, 720)

	hero, ok := l.Geometry(SectionHero)
	if !ok || hero.Top != 0 || hero.Height != 4320 {
		t.Errorf("hero = %+v", hero)
	}
	trends, _ := l.Geometry(SectionTrends)
	if trends.Top != 7920 || trends.Height != 720 {
		t.Errorf("trends = %+v", trends)
	}
	pg, ok := l.Geometry(SectionPlayground)
	if !ok || pg != trends {
		t.Errorf("playground = %+v, want trends geometry", pg)
	}
	if _, ok := l.Geometry("nope"); ok {
		t.Error("unknown id should be missing")
	}
	if got := l.DocumentHeight(); got != 8640 {
		t.Errorf("DocumentHeight = %v", got)
	}
	if got := l.MaxScroll(); got != 7920 {
		t.Errorf("MaxScroll = %v", got)
	}
}
