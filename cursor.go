package kinetic

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring constants for the custom cursor: stiffness 500 and damping 28 on a
// unit mass.
const (
	cursorStiffness = 500.0
	cursorDamping   = 28.0
	cursorGrowScale = 2.0
	cursorFPS       = 60
)

// CursorFollower is a spring-smoothed cursor sprite that trails the pointer
// and grows while it hovers something interactive.
type CursorFollower struct {
	pos, vel    Vec2
	scale, vscl float64
	spring      harmonica.Spring
	placed      bool
	targetScale float64
	affordance  Cursor
}

// NewCursorFollower creates a follower at scale 1.
func NewCursorFollower() *CursorFollower {
	omega := math.Sqrt(cursorStiffness)
	zeta := cursorDamping / (2 * omega)
	return &CursorFollower{
		spring:      harmonica.NewSpring(harmonica.FPS(cursorFPS), omega, zeta),
		scale:       1,
		targetScale: 1,
	}
}

// Update advances the springs one frame toward the pointer position and the
// scale the affordance calls for. The first call places the cursor directly.
func (f *CursorFollower) Update(pointer Vec2, affordance Cursor) {
	if !f.placed {
		f.pos = pointer
		f.placed = true
	}
	f.affordance = affordance
	f.targetScale = 1
	if affordance != CursorDefault {
		f.targetScale = cursorGrowScale
	}
	f.pos.X, f.vel.X = f.spring.Update(f.pos.X, f.vel.X, pointer.X)
	f.pos.Y, f.vel.Y = f.spring.Update(f.pos.Y, f.vel.Y, pointer.Y)
	f.scale, f.vscl = f.spring.Update(f.scale, f.vscl, f.targetScale)
}

// Position returns the smoothed cursor position.
func (f *CursorFollower) Position() Vec2 { return f.pos }

// Scale returns the smoothed cursor scale.
func (f *CursorFollower) Scale() float64 { return f.scale }

// Affordance returns the cursor kind seen on the last Update.
func (f *CursorFollower) Affordance() Cursor { return f.affordance }

func (f *CursorFollower) reset() {
	*f = CursorFollower{spring: f.spring, scale: 1, targetScale: 1}
}
