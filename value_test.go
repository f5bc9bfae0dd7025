package kinetic

import (
	"errors"
	"math"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		kind ValueKind
		num  float64
		unit Unit
	}{
		{"0.5", KindNumber, 0.5, ""},
		{"-15vh", KindLength, -15, UnitVH},
		{"48px", KindLength, 48, UnitPx},
		{"-75%", KindLength, -75, UnitPct},
		{"12deg", KindLength, 12, UnitDeg},
		{" 100vw ", KindLength, 100, UnitVW},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseValue(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind != tt.kind || v.Num != tt.num || v.Unit != tt.unit {
				t.Errorf("got %+v", v)
			}
		})
	}
}

func TestParseValueColor(t *testing.T) {
	v, err := ParseValue("#2B38F1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindColor {
		t.Fatalf("kind = %s", v.Kind)
	}
	if math.Abs(v.Color.R-0x2B/255.0) > 1e-9 || math.Abs(v.Color.B-0xF1/255.0) > 1e-9 || v.Color.A != 1 {
		t.Errorf("color = %+v", v.Color)
	}

	v, err = ParseValue("#FFFFFF0D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v.Color.A-13/255.0) > 1e-9 {
		t.Errorf("alpha = %f", v.Color.A)
	}
}

func TestParseValueInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "#12", "#GGGGGG", "10em", "px"} {
		if _, err := ParseValue(in); !errors.Is(err, ErrBadValue) {
			t.Errorf("ParseValue(%q) err = %v, want ErrBadValue", in, err)
		}
	}
}

func TestValueStringRoundTrip(t *testing.T) {
	for _, in := range []string{"0.5", "-15vh", "#2b38f1", "#ffffff0d"} {
		v, err := ParseValue(in)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", in, err)
		}
		if got := v.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}

func TestHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for malformed hex")
		}
	}()
	Hex("#xyz")
}

func TestBlendColorMidpoint(t *testing.T) {
	a := ColorValue(Color{0, 0, 0, 0})
	b := ColorValue(Color{1, 1, 1, 1})
	m := blend(a, b, 0.5)
	for _, c := range []float64{m.Color.R, m.Color.G, m.Color.B, m.Color.A} {
		if math.Abs(c-0.5) > 1e-9 {
			t.Errorf("component = %f, want 0.5", c)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: -1, A: 2}.ToRGBA()
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("ToRGBA = %+v", c)
	}
}
