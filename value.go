package kinetic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	KindNone   ValueKind = iota // zero Value; never produced by evaluation
	KindNumber                  // plain scalar (opacity, scale)
	KindColor                   // RGB(A) color, blended component-wise
	KindLength                  // magnitude plus unit ("10vh", "-75%")
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindColor:
		return "color"
	case KindLength:
		return "length"
	default:
		return "none"
	}
}

// Unit is the suffix carried by a KindLength value.
type Unit string

const (
	UnitPx  Unit = "px"
	UnitPct Unit = "%"
	UnitVH  Unit = "vh"
	UnitVW  Unit = "vw"
	UnitDeg Unit = "deg"
)

// units is ordered longest-suffix first so "px" never shadows a longer match.
var units = []Unit{UnitDeg, UnitPx, UnitVH, UnitVW, UnitPct}

// ErrBadValue is returned by ParseValue for input it cannot interpret.
var ErrBadValue = errors.New("kinetic: bad value")

// Value is one keyframe value: a number, a color, or a length with a unit.
type Value struct {
	Kind  ValueKind
	Num   float64 // number or length magnitude
	Unit  Unit    // KindLength only
	Color Color   // KindColor only
}

// Number returns a KindNumber value.
func Number(v float64) Value { return Value{Kind: KindNumber, Num: v} }

// Length returns a KindLength value.
func Length(v float64, u Unit) Value { return Value{Kind: KindLength, Num: v, Unit: u} }

// ColorValue returns a KindColor value.
func ColorValue(c Color) Value { return Value{Kind: KindColor, Color: c} }

// Hex returns a KindColor value for "#rrggbb" or "#rrggbbaa". It panics on
// malformed input and is intended for literals in presets.
func Hex(s string) Value {
	v, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseValue parses a CSS-like literal: "0.5", "-15vh", "48px", "-75%",
// "12deg", "#2B38F1" or "#FFFFFF0D".
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty", ErrBadValue)
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	for _, u := range units {
		if num, ok := strings.CutSuffix(s, string(u)); ok {
			f, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %q", ErrBadValue, s)
			}
			return Length(f, u), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrBadValue, s)
	}
	return Number(f), nil
}

func parseHex(s string) (Value, error) {
	alpha := 1.0
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrBadValue, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrBadValue, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrBadValue, s)
	}
	return ColorValue(Color{R: c.R, G: c.G, B: c.B, A: alpha}), nil
}

// Float returns the scalar part of v: the number or the length magnitude.
// Colors report their alpha.
func (v Value) Float() float64 {
	if v.Kind == KindColor {
		return v.Color.A
	}
	return v.Num
}

// String formats v the way ParseValue accepts it.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindLength:
		return strconv.FormatFloat(v.Num, 'f', -1, 64) + string(v.Unit)
	case KindColor:
		hex := colorful.Color{R: v.Color.R, G: v.Color.G, B: v.Color.B}.Clamped().Hex()
		if v.Color.A >= 1 {
			return hex
		}
		return fmt.Sprintf("%s%02x", hex, uint8(clamp01(v.Color.A)*255+0.5))
	default:
		return ""
	}
}

// Equal reports whether a and b are the same kind, unit and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindColor:
		return v.Color == o.Color
	case KindLength:
		return v.Num == o.Num && v.Unit == o.Unit
	default:
		return v.Num == o.Num
	}
}

func (v Value) finite() bool {
	switch v.Kind {
	case KindColor:
		return isFinite(v.Color.R) && isFinite(v.Color.G) && isFinite(v.Color.B) && isFinite(v.Color.A)
	default:
		return isFinite(v.Num)
	}
}

// blend interpolates a toward b by t in [0, 1]. Kinds and units are assumed
// to match; Keyframes validates that at construction.
func blend(a, b Value, t float64) Value {
	switch a.Kind {
	case KindColor:
		ca := colorful.Color{R: a.Color.R, G: a.Color.G, B: a.Color.B}
		cb := colorful.Color{R: b.Color.R, G: b.Color.G, B: b.Color.B}
		m := ca.BlendRgb(cb, t)
		return ColorValue(Color{R: m.R, G: m.G, B: m.B, A: lerp(a.Color.A, b.Color.A, t)})
	case KindLength:
		return Length(lerp(a.Num, b.Num, t), a.Unit)
	default:
		return Number(lerp(a.Num, b.Num, t))
	}
}
