package kinetic

import (
	"math"

	"github.com/jakecoffman/cp"
)

// BodyID indexes a dynamic body in its World's arena.
type BodyID int

// NoBody is the BodyID of "nothing".
const NoBody BodyID = -1

// ShapeKind is the archetype of a dynamic body.
type ShapeKind uint8

const (
	ShapeRound        ShapeKind = iota // circle, diameter = size
	ShapeRoundedBlock                  // 1.2 x 0.8 of size, 15px corners
	ShapeWideRounded                   // 1.5 x 0.5 of size, 25px corners
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRound:
		return "round"
	case ShapeRoundedBlock:
		return "block"
	case ShapeWideRounded:
		return "wide"
	default:
		return "unknown"
	}
}

// Extent returns the width, height and corner radius for a body of the
// given size. Corners are capped so small blocks keep a straight core.
func (k ShapeKind) Extent(size float64) (w, h, radius float64) {
	switch k {
	case ShapeRoundedBlock:
		w, h, radius = size*1.2, size*0.8, 15
	case ShapeWideRounded:
		w, h, radius = size*1.5, size*0.5, 25
	default:
		return size, size, size / 2
	}
	return w, h, math.Min(radius, math.Min(w, h)*0.45)
}

// Action is something a body does when pressed, such as opening a contact
// channel.
type Action struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}

// BodySpec describes one dynamic body before it is added to a world.
type BodySpec struct {
	Kind        ShapeKind
	Position    Vec2
	Size        float64
	Angle       float64
	Color       Color
	Restitution float64
	Friction    float64
	Label       string
	Actions     []Action
}

// Body is one dynamic body: the physics handles plus the interaction
// metadata it carries.
type Body struct {
	ID    BodyID
	Kind  ShapeKind
	Size  float64
	Color Color
	Label string

	Actions []Action

	body  *cp.Body
	shape *cp.Shape
}

// Interactive reports whether pressing the body triggers anything.
func (b *Body) Interactive() bool {
	return len(b.Actions) > 0
}

// Position returns the body's center.
func (b *Body) Position() Vec2 {
	p := b.body.Position()
	return Vec2{p.X, p.Y}
}

// Velocity returns the body's linear velocity in pixels per second.
func (b *Body) Velocity() Vec2 {
	v := b.body.Velocity()
	return Vec2{v.X, v.Y}
}

// Angle returns the body's rotation in radians.
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// AngularVelocity returns the body's spin in radians per second.
func (b *Body) AngularVelocity() float64 {
	return b.body.AngularVelocity()
}

// Restitution returns the body's bounciness.
func (b *Body) Restitution() float64 {
	return b.shape.Elasticity()
}

// Friction returns the body's friction coefficient.
func (b *Body) Friction() float64 {
	return b.shape.Friction()
}

// Contains reports whether p lies inside the body's shape. The test is
// done against the rotated shape, rounded corners included.
func (b *Body) Contains(p Vec2) bool {
	info := b.shape.PointQuery(cp.Vector{X: p.X, Y: p.Y})
	return info.Distance <= 0
}

// bodyDensity converts shape area to mass.
const bodyDensity = 0.001

func newCPBody(spec BodySpec) (*cp.Body, *cp.Shape) {
	w, h, radius := spec.Kind.Extent(spec.Size)
	var body *cp.Body
	var shape *cp.Shape
	switch spec.Kind {
	case ShapeRound:
		r := spec.Size / 2
		mass := math.Pi * r * r * bodyDensity
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, r, cp.Vector{}))
		shape = cp.NewCircle(body, r, cp.Vector{})
	default:
		mass := w * h * bodyDensity
		body = cp.NewBody(mass, cp.MomentForBox(mass, w, h))
		// cp pads boxes by the radius; shrink the core so the outer size holds.
		shape = cp.NewBox(body, w-2*radius, h-2*radius, radius)
	}
	body.SetPosition(cp.Vector{X: spec.Position.X, Y: spec.Position.Y})
	body.SetAngle(spec.Angle)
	shape.SetElasticity(spec.Restitution)
	shape.SetFriction(spec.Friction)
	return body, shape
}
