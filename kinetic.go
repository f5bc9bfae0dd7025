package kinetic

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill.
var ColorWhite = Color{1, 1, 1, 1}

// ToRGBA converts c to a straight-alpha color.RGBA suitable for ebiten and
// image/color consumers. Components are clamped to [0, 1].
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Cursor is the pointer affordance the host should display.
type Cursor uint8

const (
	CursorDefault Cursor = iota // nothing interactive under the pointer
	CursorGrab                  // hovering a body that can be dragged
	CursorPointer               // hovering a body with a bound action
)

func (c Cursor) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorPointer:
		return "pointer"
	default:
		return "default"
	}
}

// EventType identifies a kind of raw input event routed through a Stage.
type EventType uint8

const (
	EventScroll      EventType = iota // fires when the raw scroll offset changes
	EventResize                       // fires when the viewport is resized
	EventPointerDown                  // fires when the pointer button is pressed
	EventPointerMove                  // fires when the pointer moves, pressed or not
	EventPointerUp                    // fires when the pointer button is released
	eventTypeCount
)

func (e EventType) String() string {
	switch e {
	case EventScroll:
		return "scroll"
	case EventResize:
		return "resize"
	case EventPointerDown:
		return "pointerdown"
	case EventPointerMove:
		return "pointermove"
	case EventPointerUp:
		return "pointerup"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
