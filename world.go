package kinetic

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// WorldState is the lifecycle state of a World.
type WorldState uint8

const (
	WorldUninitialized WorldState = iota // created, waiting for first visibility
	WorldRunning                         // simulating
	WorldStopped                         // released; terminal
)

func (s WorldState) String() string {
	switch s {
	case WorldRunning:
		return "running"
	case WorldStopped:
		return "stopped"
	default:
		return "uninitialized"
	}
}

// ErrWorldStopped is returned when activating a world that was stopped.
var ErrWorldStopped = errors.New("kinetic: world stopped")

const (
	boundaryThickness = 100.0
	// boundarySpan is the minimum length of the ground and walls, so they
	// still close the frame after the viewport grows.
	boundarySpan = 16384.0
	defaultGravity    = 1000.0
	defaultTimeStep   = 1.0 / 60
	grabMaxForce      = 50000.0
)

// WorldConfig configures a World.
type WorldConfig struct {
	Width, Height float64
	Gravity       float64 // px/s^2, downward
	TimeStep      float64 // seconds per Step
	Spawn         SpawnConfig

	// PinLeftWall keeps the left wall where it was created on resize,
	// matching the page this playground was first built for. By default
	// all three boundaries follow the viewport.
	PinLeftWall bool
}

// DefaultWorldConfig returns a world config for the given viewport.
func DefaultWorldConfig(width, height float64) WorldConfig {
	return WorldConfig{
		Width:    width,
		Height:   height,
		Gravity:  defaultGravity,
		TimeStep: defaultTimeStep,
		Spawn:    DefaultSpawnConfig(),
	}
}

// Constraint links a held pointer to a body. It exists only while the
// pointer button is down and refers to the body by arena index.
type Constraint struct {
	Body      BodyID
	Stiffness float64
	Target    Vec2

	anchor *cp.Body
	joint  *cp.Constraint
}

// World is a rigid-body simulation with three static boundaries and a fixed
// set of dynamic bodies created once, on activation.
type World struct {
	cfg   WorldConfig
	state WorldState

	space     *cp.Space
	ground    *cp.Shape
	leftWall  *cp.Shape
	rightWall *cp.Shape

	bodies      []Body
	constraints []*Constraint

	surface *ebiten.Image
	steps   uint64
}

// NewWorld creates an uninitialized world. Nothing is simulated or
// allocated until Activate.
func NewWorld(cfg WorldConfig) *World {
	if cfg.TimeStep <= 0 {
		cfg.TimeStep = defaultTimeStep
	}
	return &World{cfg: cfg}
}

// State returns the lifecycle state.
func (w *World) State() WorldState { return w.state }

// Size returns the current world size.
func (w *World) Size() (float64, float64) { return w.cfg.Width, w.cfg.Height }

// Activate builds the space, boundaries and bodies. It runs once: later
// calls on a running world are no-ops, and a stopped world cannot come back.
func (w *World) Activate() error {
	switch w.state {
	case WorldRunning:
		return nil
	case WorldStopped:
		return ErrWorldStopped
	}
	specs, err := w.cfg.Spawn.Plan(w.cfg.Width)
	if err != nil {
		return err
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: w.cfg.Gravity})
	w.space = space

	width, height := w.cfg.Width, w.cfg.Height
	// Walls reach past the drop band so bodies falling in from above stay
	// between them. Boundaries are sized once and only move on resize.
	reach := w.cfg.Spawn.DropMax + w.cfg.Spawn.MaxSize
	w.ground = w.addBoundary(math.Max(boundarySpan, 4*width), boundaryThickness)
	w.leftWall = w.addBoundary(boundaryThickness, math.Max(boundarySpan, 4*height)+2*reach)
	w.rightWall = w.addBoundary(boundaryThickness, math.Max(boundarySpan, 4*height)+2*reach)
	w.placeBoundaries(width, height, true)

	w.bodies = make([]Body, 0, len(specs))
	for _, spec := range specs {
		body, shape := newCPBody(spec)
		space.AddBody(body)
		space.AddShape(shape)
		id := BodyID(len(w.bodies))
		w.bodies = append(w.bodies, Body{
			ID:      id,
			Kind:    spec.Kind,
			Size:    spec.Size,
			Color:   spec.Color,
			Label:   spec.Label,
			Actions: spec.Actions,
			body:    body,
			shape:   shape,
		})
	}
	w.state = WorldRunning
	return nil
}

func (w *World) addBoundary(width, height float64) *cp.Shape {
	body := cp.NewStaticBody()
	w.space.AddBody(body)
	shape := cp.NewBox(body, width, height, 0)
	// Contact coefficients multiply; 1 lets each body's own values govern.
	shape.SetElasticity(1)
	shape.SetFriction(1)
	w.space.AddShape(shape)
	return shape
}

// moveBoundary repositions a static boundary. Static shapes are cached in
// the static index, so the shape is taken out and re-added at the new spot.
func (w *World) moveBoundary(shape *cp.Shape, at cp.Vector) {
	w.space.RemoveShape(shape)
	shape.Body().SetPosition(at)
	w.space.AddShape(shape)
}

func (w *World) placeBoundaries(width, height float64, left bool) {
	half := boundaryThickness / 2
	w.moveBoundary(w.ground, cp.Vector{X: width / 2, Y: height + half})
	w.moveBoundary(w.rightWall, cp.Vector{X: width + half, Y: height / 2})
	if left {
		w.moveBoundary(w.leftWall, cp.Vector{X: -half, Y: height / 2})
	}
}

// Boundaries returns the centers of the ground, left wall and right wall.
func (w *World) Boundaries() (ground, left, right Vec2) {
	if w.space == nil {
		return
	}
	g, l, r := w.ground.Body().Position(), w.leftWall.Body().Position(), w.rightWall.Body().Position()
	return Vec2{g.X, g.Y}, Vec2{l.X, l.Y}, Vec2{r.X, r.Y}
}

// Resize moves the boundaries to fit a new viewport. Bodies are untouched.
func (w *World) Resize(width, height float64) {
	if w.state == WorldStopped {
		return
	}
	w.cfg.Width, w.cfg.Height = width, height
	if w.surface != nil {
		w.surface.Deallocate()
		w.surface = nil
	}
	if w.state != WorldRunning {
		return
	}
	w.placeBoundaries(width, height, !w.cfg.PinLeftWall)
}

// Step advances the simulation by one fixed time step, first moving every
// grab anchor toward its pointer target.
func (w *World) Step() {
	if w.state != WorldRunning {
		return
	}
	dt := w.cfg.TimeStep
	for _, c := range w.constraints {
		cur := c.anchor.Position()
		next := cur.Lerp(cp.Vector{X: c.Target.X, Y: c.Target.Y}, c.Stiffness)
		c.anchor.SetVelocityVector(next.Sub(cur).Mult(1 / dt))
		c.anchor.SetPosition(next)
	}
	w.space.Step(dt)
	w.steps++
}

// Steps returns how many steps have run.
func (w *World) Steps() uint64 { return w.steps }

// Len returns the number of dynamic bodies.
func (w *World) Len() int { return len(w.bodies) }

// Body returns the body at id, or nil when out of range.
func (w *World) Body(id BodyID) *Body {
	if id < 0 || int(id) >= len(w.bodies) {
		return nil
	}
	return &w.bodies[id]
}

// Bodies returns the dynamic body arena. The returned slice MUST NOT be mutated.
func (w *World) Bodies() []Body {
	return w.bodies
}

// HitTest returns the first body, in arena order, whose shape contains p.
// A miss returns NoBody and false.
func (w *World) HitTest(p Vec2) (BodyID, bool) {
	if w.state != WorldRunning {
		return NoBody, false
	}
	for i := range w.bodies {
		if w.bodies[i].Contains(p) {
			return BodyID(i), true
		}
	}
	return NoBody, false
}

// Grab links the body to a pointer at p. The body's anchor is the point
// under the pointer, so it swings naturally from where it was caught.
func (w *World) Grab(id BodyID, p Vec2, stiffness float64) *Constraint {
	b := w.Body(id)
	if w.state != WorldRunning || b == nil {
		return nil
	}
	at := cp.Vector{X: p.X, Y: p.Y}
	anchor := cp.NewKinematicBody()
	anchor.SetPosition(at)
	joint := cp.NewPivotJoint2(anchor, b.body, cp.Vector{}, b.body.WorldToLocal(at))
	joint.SetMaxForce(grabMaxForce)
	joint.SetErrorBias(math.Pow(1-0.15, 60))
	w.space.AddConstraint(joint)

	c := &Constraint{Body: id, Stiffness: stiffness, Target: p, anchor: anchor, joint: joint}
	w.constraints = append(w.constraints, c)
	return c
}

// Release destroys a constraint made by Grab.
func (w *World) Release(c *Constraint) {
	if c == nil {
		return
	}
	for i, cc := range w.constraints {
		if cc == c {
			copy(w.constraints[i:], w.constraints[i+1:])
			w.constraints[len(w.constraints)-1] = nil
			w.constraints = w.constraints[:len(w.constraints)-1]
			if w.space != nil {
				w.space.RemoveConstraint(c.joint)
			}
			c.joint = nil
			c.anchor = nil
			return
		}
	}
}

// Constraints returns the number of live pointer constraints.
func (w *World) Constraints() int { return len(w.constraints) }

// Stop releases the simulation and the drawing surface. It is final; any
// later Step, Resize or Draw does nothing.
func (w *World) Stop() {
	if w.state == WorldStopped {
		return
	}
	for _, c := range w.constraints {
		c.joint = nil
		c.anchor = nil
	}
	w.constraints = nil
	if w.surface != nil {
		w.surface.Deallocate()
		w.surface = nil
	}
	w.space = nil
	w.ground, w.leftWall, w.rightWall = nil, nil, nil
	w.state = WorldStopped
}
