package kinetic

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultSmoothDuration is how long the smoothed scroll offset takes to
// catch up with a new raw offset.
const DefaultSmoothDuration = 1.2

// EaseInertial is the inertial scroll curve: an exponential ease-out that
// settles just short of 1 and then snaps, min(1, 1.001 - 2^(-10t)).
func EaseInertial(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	x := float64(t / d)
	v := math.Min(1, 1.001-math.Pow(2, -10*x))
	return b + c*float32(v)
}

var easings = map[string]ease.TweenFunc{
	"inertial":  EaseInertial,
	"linear":    ease.Linear,
	"outExpo":   ease.OutExpo,
	"outCubic":  ease.OutCubic,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
}

// EasingByName looks up an easing function by its config name.
func EasingByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("kinetic: unknown easing %q", name)
	}
	return fn, nil
}

// Smoother eases a scalar toward the most recent target over a fixed
// duration. A new target restarts the tween from the current value, so the
// output never jumps to the raw input.
type Smoother struct {
	Duration float32
	Easing   ease.TweenFunc

	current float64
	target  float64
	tween   *gween.Tween
}

// NewSmoother creates a smoother resting at 0.
func NewSmoother(duration float32, fn ease.TweenFunc) *Smoother {
	if fn == nil {
		fn = EaseInertial
	}
	return &Smoother{Duration: duration, Easing: fn}
}

// SetTarget retargets the smoother. Repeating the current target is a no-op.
func (s *Smoother) SetTarget(v float64) {
	if v == s.target && (s.tween != nil || v == s.current) {
		return
	}
	s.target = v
	if s.Duration <= 0 {
		s.current = v
		s.tween = nil
		return
	}
	s.tween = gween.New(float32(s.current), float32(v), s.Duration, s.Easing)
}

// Snap jumps straight to v with no easing.
func (s *Smoother) Snap(v float64) {
	s.current = v
	s.target = v
	s.tween = nil
}

// Update advances the tween by dt seconds and returns the smoothed value.
func (s *Smoother) Update(dt float64) float64 {
	if s.tween == nil {
		return s.current
	}
	v, done := s.tween.Update(float32(dt))
	s.current = float64(v)
	if done {
		s.current = s.target
		s.tween = nil
	}
	return s.current
}

// Value returns the current smoothed value.
func (s *Smoother) Value() float64 { return s.current }

// Target returns the value being eased toward.
func (s *Smoother) Target() float64 { return s.target }

// Settled reports whether the smoother has reached its target.
func (s *Smoother) Settled() bool { return s.tween == nil }
