package kinetic

import "math"

const (
	defaultStiffness    = 0.2
	defaultDragDeadZone = 4.0 // pixels
)

// ActionEvent is delivered when a press lands on a body with bound actions.
type ActionEvent struct {
	Body   BodyID
	Label  string
	Action Action
	Press  uint64 // sequence number of the press that fired it
}

type actionHandler struct {
	id uint32
	fn func(ActionEvent)
}

// ActionHandle allows removing an action listener.
type ActionHandle struct {
	id   uint32
	ctrl *PointerController
}

// Remove unregisters the listener.
func (h ActionHandle) Remove() {
	if h.ctrl == nil {
		return
	}
	s := h.ctrl.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = actionHandler{}
			h.ctrl.handlers = s[:len(s)-1]
			return
		}
	}
}

// PointerController runs the pointer state machine over a World: hit test
// on press, grab while held, release on lift, hover affordance otherwise.
// Positions are in world coordinates.
type PointerController struct {
	world *World
	state *InputState
	gate  *Gate

	// Stiffness is how far the grab anchor closes on the pointer per step.
	Stiffness float64
	// DragDeadZone is how far a held pointer moves before the press counts
	// as a drag rather than a click.
	DragDeadZone float64

	constraint *Constraint
	down       bool
	start      Vec2
	dragging   bool
	presses    uint64

	handlers []actionHandler
	nextID   uint32
}

func newPointerController(world *World, state *InputState, gate *Gate) *PointerController {
	return &PointerController{
		world:        world,
		state:        state,
		gate:         gate,
		Stiffness:    defaultStiffness,
		DragDeadZone: defaultDragDeadZone,
	}
}

// OnAction registers fn for bound actions fired by presses.
func (c *PointerController) OnAction(fn func(ActionEvent)) ActionHandle {
	c.nextID++
	c.handlers = append(c.handlers, actionHandler{id: c.nextID, fn: fn})
	return ActionHandle{id: c.nextID, ctrl: c}
}

// Down handles a press at p.
func (c *PointerController) Down(p Vec2) {
	if c.down {
		// A second down without an up is the same press.
		return
	}
	c.down = true
	c.start = p
	c.dragging = false
	c.presses++

	id, ok := c.world.HitTest(p)
	if !ok {
		return
	}
	c.constraint = c.world.Grab(id, p, c.Stiffness)
	if c.constraint == nil {
		return
	}
	c.state.Grabbed = id
	c.gate.set(true)

	b := c.world.Body(id)
	for _, a := range b.Actions {
		ev := ActionEvent{Body: id, Label: b.Label, Action: a, Press: c.presses}
		for _, h := range c.handlers {
			h.fn(ev)
		}
	}
}

// Move handles pointer movement to p.
func (c *PointerController) Move(p Vec2) {
	if c.constraint != nil {
		c.constraint.Target = p
		if !c.dragging {
			dx, dy := p.X-c.start.X, p.Y-c.start.Y
			c.dragging = math.Sqrt(dx*dx+dy*dy) > c.DragDeadZone
		}
		return
	}
	c.state.Cursor = c.hover(p)
}

// Up handles a release. The constraint is destroyed and the page gets its
// pointer events back.
func (c *PointerController) Up(p Vec2) {
	if !c.down {
		return
	}
	c.down = false
	c.dragging = false
	c.release()
	c.state.Cursor = c.hover(p)
}

func (c *PointerController) release() {
	if c.constraint != nil {
		c.world.Release(c.constraint)
		c.constraint = nil
	}
	c.state.Grabbed = NoBody
	c.gate.set(false)
}

func (c *PointerController) hover(p Vec2) Cursor {
	id, ok := c.world.HitTest(p)
	if !ok {
		return CursorDefault
	}
	if c.world.Body(id).Interactive() {
		return CursorPointer
	}
	return CursorGrab
}

// Grabbed returns the held body, if any.
func (c *PointerController) Grabbed() (BodyID, bool) {
	if c.constraint == nil {
		return NoBody, false
	}
	return c.constraint.Body, true
}

// Dragging reports whether the current press has moved past the dead zone.
func (c *PointerController) Dragging() bool {
	return c.dragging
}

// Presses returns how many discrete presses have been seen.
func (c *PointerController) Presses() uint64 {
	return c.presses
}

// reset drops any grab and every action listener.
func (c *PointerController) reset() {
	c.down = false
	c.dragging = false
	c.release()
	for i := range c.handlers {
		c.handlers[i] = actionHandler{}
	}
	c.handlers = nil
}
