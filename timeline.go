package kinetic

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateProperty is returned when a property name is bound twice on one timeline.
	ErrDuplicateProperty = errors.New("kinetic: property already bound")
	// ErrInvalidPan is returned for pan phases that cannot produce a finite extent.
	ErrInvalidPan = errors.New("kinetic: invalid pan")
)

// Values maps property names to their most recently evaluated values.
type Values map[string]Value

// Float returns the scalar of the named value, or fallback when absent.
func (v Values) Float(name string, fallback float64) float64 {
	val, ok := v[name]
	if !ok {
		return fallback
	}
	return val.Float()
}

// Timeline composes independently scoped keyframe sets that all read the
// same progress scalar. Every binding lives in one plain map; evaluation is
// explicit and happens once per tick.
type Timeline struct {
	Name string

	props  map[string]*Keyframes
	order  []string
	values Values
	last   float64
}

// NewTimeline creates an empty timeline.
func NewTimeline(name string) *Timeline {
	return &Timeline{
		Name:   name,
		props:  make(map[string]*Keyframes),
		values: make(Values),
	}
}

// Add binds an already-built keyframe set.
func (tl *Timeline) Add(name string, k *Keyframes) error {
	if _, ok := tl.props[name]; ok {
		return fmt.Errorf("%s.%s: %w", tl.Name, name, ErrDuplicateProperty)
	}
	tl.props[name] = k
	tl.order = append(tl.order, name)
	tl.values[name] = k.At(tl.last)
	return nil
}

// Bind builds and binds a keyframe set from breakpoints and values.
func (tl *Timeline) Bind(name string, breaks []float64, values ...Value) error {
	k, err := NewKeyframes(breaks, values)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", tl.Name, name, err)
	}
	return tl.Add(name, k)
}

// BindStrings is Bind over ParseValue literals.
func (tl *Timeline) BindStrings(name string, breaks []float64, literals ...string) error {
	k, err := ParseKeyframes(breaks, literals...)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", tl.Name, name, err)
	}
	return tl.Add(name, k)
}

// Properties returns the bound property names in binding order.
func (tl *Timeline) Properties() []string {
	return append([]string(nil), tl.order...)
}

// Evaluate re-evaluates every property at progress p and returns the shared
// values map. The map is reused across calls.
func (tl *Timeline) Evaluate(p float64) Values {
	p = clamp01(p)
	tl.last = p
	for _, name := range tl.order {
		tl.values[name] = tl.props[name].At(p)
	}
	return tl.values
}

// Values returns the values from the last Evaluate.
func (tl *Timeline) Values() Values {
	return tl.values
}

// Value returns one value from the last Evaluate.
func (tl *Timeline) Value(name string) (Value, bool) {
	v, ok := tl.values[name]
	return v, ok
}

// Progress returns the progress passed to the last Evaluate.
func (tl *Timeline) Progress() float64 {
	return tl.last
}

// MorphState is one end of a morph. Fields left as the zero Value are not
// animated.
type MorphState struct {
	X, Y          Value
	Width, Height Value
	Radius        Value
	Color         Value
}

// MorphSpec blends position, size, corner rounding and color together from
// Compact to Expanded between Start and End. Hold adds an explicit flat
// segment from 0 to Start.
type MorphSpec struct {
	Start, End float64
	Hold       bool
	Compact    MorphState
	Expanded   MorphState
}

// Morph binds prefix.x, prefix.y, prefix.width, prefix.height, prefix.radius
// and prefix.color for every field set on both states.
func (tl *Timeline) Morph(prefix string, spec MorphSpec) error {
	fields := []struct {
		name string
		a, b Value
	}{
		{"x", spec.Compact.X, spec.Expanded.X},
		{"y", spec.Compact.Y, spec.Expanded.Y},
		{"width", spec.Compact.Width, spec.Expanded.Width},
		{"height", spec.Compact.Height, spec.Expanded.Height},
		{"radius", spec.Compact.Radius, spec.Expanded.Radius},
		{"color", spec.Compact.Color, spec.Expanded.Color},
	}
	for _, f := range fields {
		if f.a.Kind == KindNone && f.b.Kind == KindNone {
			continue
		}
		breaks := []float64{spec.Start, spec.End}
		values := []Value{f.a, f.b}
		if spec.Hold && spec.Start > 0 {
			breaks = []float64{0, spec.Start, spec.End}
			values = []Value{f.a, f.a, f.b}
		}
		if err := tl.Bind(prefix+"."+f.name, breaks, values...); err != nil {
			return err
		}
	}
	return nil
}

// PanSpec describes a horizontal pan across a row of items. The offset is 0%
// at Threshold and reaches the full extent at End (1 when zero).
//
// ItemSpan is the percentage of the track one item advances the pan by; zero
// means 100/VisibleCount.
type PanSpec struct {
	Threshold    float64
	End          float64
	ItemCount    int
	VisibleCount int
	ItemSpan     float64
}

// PanExtent returns the pan offset in percent at full progress:
// -(itemCount - visibleCount) * span. Rows that already fit do not pan.
func PanExtent(itemCount, visibleCount int, span float64) (float64, error) {
	if visibleCount <= 0 {
		return 0, fmt.Errorf("%w: visible count %d", ErrInvalidPan, visibleCount)
	}
	if span == 0 {
		span = 100 / float64(visibleCount)
	}
	if itemCount <= visibleCount {
		return 0, nil
	}
	return -float64(itemCount-visibleCount) * span, nil
}

// Pan binds a percentage offset property for spec.
func (tl *Timeline) Pan(name string, spec PanSpec) error {
	extent, err := PanExtent(spec.ItemCount, spec.VisibleCount, spec.ItemSpan)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", tl.Name, name, err)
	}
	end := spec.End
	if end == 0 {
		end = 1
	}
	if spec.Threshold < 0 || spec.Threshold >= end {
		return fmt.Errorf("%s.%s: %w: threshold %v not before end %v", tl.Name, name, ErrInvalidPan, spec.Threshold, end)
	}
	return tl.Bind(name, []float64{spec.Threshold, end}, Length(0, UnitPct), Length(extent, UnitPct))
}
