package kinetic

import (
	"errors"
	"math"
	"testing"
)

func TestPanExtent(t *testing.T) {
	tests := []struct {
		name           string
		items, visible int
		span           float64
		want           float64
	}{
		{"six of three default span", 6, 3, 0, -100},
		{"six of three card span", 6, 3, HeroCardSpan, -75},
		{"fits", 3, 3, 0, 0},
		{"fewer than visible", 2, 3, 25, 0},
		{"ten of four", 10, 4, 0, -150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PanExtent(tt.items, tt.visible, tt.span)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PanExtent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPanExtentInvalid(t *testing.T) {
	if _, err := PanExtent(6, 0, 0); !errors.Is(err, ErrInvalidPan) {
		t.Errorf("err = %v, want ErrInvalidPan", err)
	}
}

func TestPanThresholdOrder(t *testing.T) {
	tl := NewTimeline("t")
	err := tl.Pan("x", PanSpec{Threshold: 0.5, End: 0.5, ItemCount: 6, VisibleCount: 3})
	if !errors.Is(err, ErrInvalidPan) {
		t.Errorf("err = %v, want ErrInvalidPan", err)
	}
}

func TestHeroGalleryPan(t *testing.T) {
	tl, err := HeroTimeline(6)
	if err != nil {
		t.Fatalf("HeroTimeline: %v", err)
	}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.3, 0},
		{0.65, -37.5},
		{1, -75},
	}
	for _, tt := range tests {
		v := tl.Evaluate(tt.p)["gallery.x"]
		if v.Unit != UnitPct {
			t.Fatalf("unit = %q, want %%", v.Unit)
		}
		if math.Abs(v.Num-tt.want) > 1e-9 {
			t.Errorf("gallery.x at %v = %v, want %v", tt.p, v.Num, tt.want)
		}
	}
}

func TestHeroBlocksHold(t *testing.T) {
	tl, err := HeroTimeline(6)
	if err != nil {
		t.Fatalf("HeroTimeline: %v", err)
	}
	vals := tl.Evaluate(0.075)
	if y := vals["blocks.y"]; y.Num != 10 || y.Unit != UnitVH {
		t.Errorf("blocks.y in hold = %v, want 10vh", y)
	}
	vals = tl.Evaluate(0.225)
	if y := vals["blocks.y"]; math.Abs(y.Num-(-2.5)) > 1e-9 {
		t.Errorf("blocks.y mid morph = %v, want -2.5vh", y)
	}
	if w := vals["blocks.width"]; math.Abs(w.Num-62.5) > 1e-9 || w.Unit != UnitVW {
		t.Errorf("blocks.width mid morph = %v, want 62.5vw", w)
	}
}

func TestHeroCardsPerPartner(t *testing.T) {
	tl, err := HeroTimeline(6)
	if err != nil {
		t.Fatalf("HeroTimeline: %v", err)
	}
	for _, name := range []string{"card0.width", "card5.height", "card5.color", "card3.label.opacity"} {
		if _, ok := tl.Value(name); !ok {
			t.Errorf("missing %s", name)
		}
	}
	if _, ok := tl.Value("card6.width"); ok {
		t.Error("unexpected card6")
	}
}

func TestTimelineDuplicateProperty(t *testing.T) {
	tl := NewTimeline("t")
	if err := tl.BindStrings("a", []float64{0, 1}, "0", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := tl.BindStrings("a", []float64{0, 1}, "0", "1")
	if !errors.Is(err, ErrDuplicateProperty) {
		t.Errorf("err = %v, want ErrDuplicateProperty", err)
	}
}

func TestTimelineEvaluateClamps(t *testing.T) {
	tl := NewTimeline("t")
	if err := tl.BindStrings("a", []float64{0, 1}, "0px", "100px"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tl.Evaluate(2)
	if tl.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", tl.Progress())
	}
	if v, _ := tl.Value("a"); v.Num != 100 {
		t.Errorf("a = %v", v)
	}
	tl.Evaluate(-1)
	if v, _ := tl.Value("a"); v.Num != 0 {
		t.Errorf("a = %v", v)
	}
}

func TestTimelineOrder(t *testing.T) {
	tl := NewTimeline("t")
	for _, n := range []string{"z", "a", "m"} {
		if err := tl.Bind(n, []float64{0}, Number(1)); err != nil {
			t.Fatal(err)
		}
	}
	got := tl.Properties()
	if len(got) != 3 || got[0] != "z" || got[1] != "a" || got[2] != "m" {
		t.Errorf("Properties = %v", got)
	}

	// Writes to the returned slice must not reorder the timeline.
	got[0] = "q"
	_ = append(got[:1], "x")
	if again := tl.Properties(); again[0] != "z" || again[1] != "a" {
		t.Errorf("Properties after caller writes = %v", again)
	}
}

func TestMorphSkipsUnsetFields(t *testing.T) {
	tl := NewTimeline("t")
	err := tl.Morph("box", MorphSpec{
		Start: 0.2, End: 0.4,
		Compact:  MorphState{Width: Length(10, UnitPx), Color: Hex("#000000")},
		Expanded: MorphState{Width: Length(20, UnitPx), Color: Hex("#FFFFFF")},
	})
	if err != nil {
		t.Fatalf("Morph: %v", err)
	}
	if n := len(tl.Properties()); n != 2 {
		t.Errorf("bound %d properties, want 2", n)
	}
}

func TestMorphOneSidedFails(t *testing.T) {
	tl := NewTimeline("t")
	err := tl.Morph("box", MorphSpec{
		Start: 0, End: 1,
		Compact: MorphState{X: Length(1, UnitPx)},
	})
	if !errors.Is(err, ErrMixedKinds) {
		t.Errorf("err = %v, want ErrMixedKinds", err)
	}
}

func TestPresetsBuild(t *testing.T) {
	builders := map[string]func() (*Timeline, error){
		SectionAbout:       AboutTimeline,
		SectionServices:    ServicesTimeline,
		SectionSpecialists: SpecialistsTimeline,
		SectionTrends:      TrendsTimeline,
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			tl, err := build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if tl.Name != name {
				t.Errorf("Name = %q", tl.Name)
			}
			bg := tl.Evaluate(1)["background"]
			if bg.Kind != KindColor {
				t.Errorf("background kind = %s", bg.Kind)
			}
		})
	}
}

func TestValuesFloat(t *testing.T) {
	v := Values{"a": Length(5, UnitPx)}
	if got := v.Float("a", 0); got != 5 {
		t.Errorf("Float(a) = %v", got)
	}
	if got := v.Float("missing", 7); got != 7 {
		t.Errorf("Float(missing) = %v", got)
	}
}
