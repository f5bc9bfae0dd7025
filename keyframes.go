package kinetic

import (
	"errors"
	"fmt"
	"sort"
)

// Configuration errors reported when a keyframe set is built.
var (
	ErrNoKeyframes     = errors.New("kinetic: keyframe set is empty")
	ErrLengthMismatch  = errors.New("kinetic: breakpoint and value counts differ")
	ErrBreakpointOrder = errors.New("kinetic: breakpoints must be strictly increasing")
	ErrMixedKinds      = errors.New("kinetic: keyframe values mix kinds")
	ErrMixedUnits      = errors.New("kinetic: keyframe values mix units")
	ErrNonFinite       = errors.New("kinetic: keyframe contains a non-finite number")
)

// Keyframes is an immutable, validated set of (breakpoint, value) pairs for
// one animated property.
type Keyframes struct {
	breaks []float64
	values []Value
}

// NewKeyframes validates and copies breaks and values. Breakpoints must be
// strictly increasing and every value must share the first value's kind
// (and unit, for lengths).
func NewKeyframes(breaks []float64, values []Value) (*Keyframes, error) {
	if len(breaks) == 0 || len(values) == 0 {
		return nil, ErrNoKeyframes
	}
	if len(breaks) != len(values) {
		return nil, fmt.Errorf("%w: %d breakpoints, %d values", ErrLengthMismatch, len(breaks), len(values))
	}
	first := values[0]
	for i := range breaks {
		if !isFinite(breaks[i]) || !values[i].finite() {
			return nil, fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}
		if i > 0 && breaks[i] <= breaks[i-1] {
			return nil, fmt.Errorf("%w: %v then %v", ErrBreakpointOrder, breaks[i-1], breaks[i])
		}
		v := values[i]
		if v.Kind == KindNone {
			return nil, fmt.Errorf("%w: index %d has no value", ErrMixedKinds, i)
		}
		if v.Kind != first.Kind {
			return nil, fmt.Errorf("%w: %s and %s", ErrMixedKinds, first.Kind, v.Kind)
		}
		if v.Kind == KindLength && v.Unit != first.Unit {
			return nil, fmt.Errorf("%w: %q and %q", ErrMixedUnits, first.Unit, v.Unit)
		}
	}
	k := &Keyframes{
		breaks: append([]float64(nil), breaks...),
		values: append([]Value(nil), values...),
	}
	return k, nil
}

// ParseKeyframes is NewKeyframes over ParseValue literals.
func ParseKeyframes(breaks []float64, literals ...string) (*Keyframes, error) {
	values := make([]Value, len(literals))
	for i, s := range literals {
		v, err := ParseValue(s)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return NewKeyframes(breaks, values)
}

// Len returns the number of keyframes.
func (k *Keyframes) Len() int { return len(k.breaks) }

// Kind returns the kind shared by every value.
func (k *Keyframes) Kind() ValueKind { return k.values[0].Kind }

// At evaluates the property at progress p. Outside the first and last
// breakpoints the end values hold; a breakpoint hit exactly returns its
// stored value untouched.
func (k *Keyframes) At(p float64) Value {
	n := len(k.breaks)
	if p <= k.breaks[0] {
		return k.values[0]
	}
	if p >= k.breaks[n-1] {
		return k.values[n-1]
	}
	// First breakpoint strictly greater than p; p lies in [breaks[i-1], breaks[i]).
	i := sort.Search(n, func(j int) bool { return k.breaks[j] > p })
	lo, hi := k.breaks[i-1], k.breaks[i]
	a, b := k.values[i-1], k.values[i]
	if p == lo || a.Equal(b) {
		return a
	}
	return blend(a, b, clamp01((p-lo)/(hi-lo)))
}
