package kinetic

import (
	"fmt"
	"log"
	"time"

	"github.com/tanema/gween/ease"
)

// defaultActivationMargin is how far (in pixels) the playground must be
// inside the viewport before its world is built.
const defaultActivationMargin = 100.0

// StageConfig configures a Stage.
type StageConfig struct {
	// SmoothDuration is the scroll easing time in seconds; 0 disables smoothing.
	SmoothDuration float32
	Easing         ease.TweenFunc

	// World configures the playground. Its Width and Height are replaced by
	// the playground's laid-out size when the world activates.
	World     WorldConfig
	Stiffness float64

	// Playground is the layout id the physics world is drawn over.
	Playground       string
	ActivationMargin float64

	Debug bool
}

// DefaultStageConfig returns the agency page's settings.
func DefaultStageConfig() StageConfig {
	return StageConfig{
		SmoothDuration:   DefaultSmoothDuration,
		Easing:           EaseInertial,
		World:            DefaultWorldConfig(0, 0),
		Stiffness:        defaultStiffness,
		Playground:       SectionPlayground,
		ActivationMargin: defaultActivationMargin,
	}
}

// viewportSetter is implemented by layouts that follow the viewport size,
// such as SectionLayout.
type viewportSetter interface {
	SetViewport(w, h float64)
}

// Stage composes the motion system: it owns the shared input record, the
// listener registry, the render loop, the physics world, the pointer
// controller and the interaction gate. Everything it registers is removed
// by Teardown.
type Stage struct {
	cfg    StageConfig
	state  InputState
	layout Layout
	sched  Scheduler

	events    eventRegistry
	smooth    *Smoother
	loop      *Loop
	world     *World
	pointer   *PointerController
	gate      *Gate
	cursor    *CursorFollower
	timelines map[string]*Timeline
	tlOrder   []string

	injectQueue []Event
	script      *Script

	debug   bool
	logger  *log.Logger
	overlay debugOverlay
	torn    bool
}

// NewStage creates a stage over layout, scheduling its frames on sched.
// Nothing runs until Start.
func NewStage(layout Layout, sched Scheduler, cfg StageConfig) *Stage {
	if cfg.Playground == "" {
		cfg.Playground = SectionPlayground
	}
	if cfg.ActivationMargin == 0 {
		cfg.ActivationMargin = defaultActivationMargin
	}
	if cfg.Stiffness <= 0 {
		cfg.Stiffness = defaultStiffness
	}
	s := &Stage{
		cfg:       cfg,
		state:     newInputState(),
		layout:    layout,
		sched:     sched,
		timelines: make(map[string]*Timeline),
	}
	s.smooth = NewSmoother(cfg.SmoothDuration, cfg.Easing)
	s.loop = newLoop(sched, &s.state, layout, s.smooth)
	s.world = NewWorld(cfg.World)
	s.gate = newGate(&s.state)
	s.pointer = newPointerController(s.world, &s.state, s.gate)
	s.pointer.Stiffness = cfg.Stiffness
	s.cursor = NewCursorFollower()

	// The stage's own listeners go through the same registry as the
	// host's, so teardown has one place to empty.
	s.events.add(EventScroll, s.handleScroll)
	s.events.add(EventResize, s.handleResize)
	s.events.add(EventPointerDown, s.handlePointerDown)
	s.events.add(EventPointerMove, s.handlePointerMove)
	s.events.add(EventPointerUp, s.handlePointerUp)
	s.loop.OnTick(s.update)

	s.SetDebugMode(cfg.Debug)
	return s
}

// Start begins the render loop.
func (s *Stage) Start() {
	if s.torn {
		return
	}
	s.loop.Start()
	s.debugf("started")
}

// Track registers a scroll tracker for the layout container id.
func (s *Stage) Track(id string, offsets Offsets) *Tracker {
	t := NewTracker(id, offsets)
	s.loop.Track(t)
	return t
}

// Bind evaluates tl every frame from the progress of tracker.
func (s *Stage) Bind(tl *Timeline, tracker string) error {
	if _, ok := s.loop.Tracker(tracker); !ok {
		return fmt.Errorf("kinetic: bind %q: no tracker %q", tl.Name, tracker)
	}
	if _, dup := s.timelines[tl.Name]; dup {
		return fmt.Errorf("kinetic: bind %q: timeline already bound", tl.Name)
	}
	s.timelines[tl.Name] = tl
	s.tlOrder = append(s.tlOrder, tl.Name)
	s.loop.Bind(tl, tracker)
	return nil
}

// AddPresets tracks every agency section with its preset offsets and binds
// the section timelines. partnerCount sizes the hero gallery.
func (s *Stage) AddPresets(partnerCount int) error {
	builders := []struct {
		section string
		build   func() (*Timeline, error)
	}{
		{SectionHero, func() (*Timeline, error) { return HeroTimeline(partnerCount) }},
		{SectionAbout, AboutTimeline},
		{SectionServices, ServicesTimeline},
		{SectionSpecialists, SpecialistsTimeline},
		{SectionTrends, TrendsTimeline},
	}
	for _, b := range builders {
		tl, err := b.build()
		if err != nil {
			return fmt.Errorf("kinetic: preset %s: %w", b.section, err)
		}
		if _, ok := s.loop.Tracker(b.section); !ok {
			s.Track(b.section, PresetOffsets(b.section))
		}
		if err := s.Bind(tl, b.section); err != nil {
			return err
		}
	}
	return nil
}

// --- Raw input ---

// Scroll records a new raw scroll offset.
func (s *Stage) Scroll(y float64) {
	s.dispatch(Event{Type: EventScroll, Scroll: y})
}

// Resize records a new viewport size.
func (s *Stage) Resize(w, h float64) {
	s.dispatch(Event{Type: EventResize, X: w, Y: h})
}

// PointerDown records a press at viewport coordinates (x, y).
func (s *Stage) PointerDown(x, y float64) {
	s.dispatch(Event{Type: EventPointerDown, X: x, Y: y})
}

// PointerMove records pointer movement to viewport coordinates (x, y).
func (s *Stage) PointerMove(x, y float64) {
	s.dispatch(Event{Type: EventPointerMove, X: x, Y: y})
}

// PointerUp records a release at viewport coordinates (x, y).
func (s *Stage) PointerUp(x, y float64) {
	s.dispatch(Event{Type: EventPointerUp, X: x, Y: y})
}

func (s *Stage) dispatch(e Event) {
	if s.torn {
		return
	}
	s.events.dispatch(e)
}

func (s *Stage) handleScroll(e Event) {
	s.state.RawScroll = e.Scroll
}

func (s *Stage) handleResize(e Event) {
	s.state.ViewportWidth, s.state.ViewportHeight = e.X, e.Y
	if vs, ok := s.layout.(viewportSetter); ok {
		vs.SetViewport(e.X, e.Y)
	}
	if g, ok := s.playground(); ok {
		s.world.Resize(g.ViewportWidth, g.Height)
	}
	s.debugf("resize %.0fx%.0f", e.X, e.Y)
}

func (s *Stage) handlePointerDown(e Event) {
	s.state.Pointer = Vec2{e.X, e.Y}
	s.state.PointerDown = true
	if p, ok := s.toWorld(e.X, e.Y); ok {
		s.pointer.Down(p)
	}
}

func (s *Stage) handlePointerMove(e Event) {
	s.state.Pointer = Vec2{e.X, e.Y}
	if p, ok := s.toWorld(e.X, e.Y); ok || s.state.Grabbed != NoBody {
		s.pointer.Move(p)
		return
	}
	s.state.Cursor = CursorDefault
}

func (s *Stage) handlePointerUp(e Event) {
	s.state.Pointer = Vec2{e.X, e.Y}
	s.state.PointerDown = false
	p, _ := s.toWorld(e.X, e.Y)
	s.pointer.Up(p)
}

// playground returns the layout geometry of the playground container.
func (s *Stage) playground() (Geometry, bool) {
	g, ok := s.layout.Geometry(s.cfg.Playground)
	if !ok || !g.Laid || g.Height <= 0 || g.ViewportWidth <= 0 {
		return Geometry{}, false
	}
	return g, true
}

// origin returns where the world's top-left sits in viewport coordinates.
func (s *Stage) origin() (Vec2, bool) {
	g, ok := s.playground()
	if !ok {
		return Vec2{}, false
	}
	return Vec2{0, g.Top - s.state.SmoothScroll}, true
}

// toWorld converts viewport coordinates to world coordinates. ok is false
// when the point lies outside the playground or the world is not running.
func (s *Stage) toWorld(x, y float64) (Vec2, bool) {
	o, ok := s.origin()
	if !ok {
		return Vec2{}, false
	}
	p := Vec2{x, y}.Sub(o)
	if s.world.State() != WorldRunning {
		return p, false
	}
	w, h := s.world.Size()
	return p, Rect{Width: w, Height: h}.Contains(p.X, p.Y)
}

// update is the stage's own per-frame step, run after the timelines.
func (s *Stage) update(dt float64) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.script != nil {
		s.script.step(s)
	}
	s.processInjectedInput()
	s.activateIfVisible()

	var t1 time.Time
	if s.debug {
		t1 = time.Now()
	}
	s.world.Step()
	if s.debug {
		stats.stepTime = time.Since(t1)
	}

	s.cursor.Update(s.state.Pointer, s.state.Cursor)

	if s.debug {
		stats.tickTime = time.Since(t0)
		stats.bindings = len(s.tlOrder)
		stats.bodies = s.world.Len()
		stats.constraints = s.world.Constraints()
		stats.listeners = s.ListenerCount()
		s.debugLog(stats)
	}
}

// activateIfVisible builds the world the first time the playground overlaps
// the viewport shrunk by the activation margin on every side.
func (s *Stage) activateIfVisible() {
	if s.world.State() != WorldUninitialized {
		return
	}
	g, ok := s.playground()
	if !ok {
		return
	}
	m := s.cfg.ActivationMargin
	view := Rect{X: m, Y: m, Width: g.ViewportWidth - 2*m, Height: g.ViewportHeight - 2*m}
	region := Rect{Y: g.Top - s.state.SmoothScroll, Width: g.ViewportWidth, Height: g.Height}
	if view.Width < 0 || view.Height < 0 || !region.Intersects(view) {
		return
	}
	s.world.Resize(g.ViewportWidth, g.Height)
	if err := s.world.Activate(); err != nil {
		s.debugf("world activation failed: %v", err)
		return
	}
	s.debugf("world active: %d bodies in %.0fx%.0f", s.world.Len(), g.ViewportWidth, g.Height)
}

// Teardown removes every listener, stops the loop and the world, drops any
// grab, releases the gate and resets the cursor. Later input is ignored.
func (s *Stage) Teardown() {
	if s.torn {
		return
	}
	s.torn = true
	s.events.clear()
	s.loop.Stop()
	s.pointer.reset()
	s.world.Stop()
	s.gate.clear()
	s.state.PointerDown = false
	s.state.Cursor = CursorDefault
	s.cursor.reset()
	s.injectQueue = nil
	s.script = nil
	if s.overlay.img != nil {
		s.overlay.img.Deallocate()
		s.overlay.img = nil
	}
	s.debugCheckTornDown()
	s.debugf("torn down after %d frames", s.loop.Frames())
}

// TornDown reports whether Teardown has run.
func (s *Stage) TornDown() bool { return s.torn }

// --- Queries ---

// Progress returns the last computed progress of tracker id.
func (s *Stage) Progress(id string) float64 {
	return s.state.Progress[id]
}

// Values returns a copy of a bound timeline's latest values.
func (s *Stage) Values(timeline string) Values {
	tl, ok := s.timelines[timeline]
	if !ok {
		return nil
	}
	src := tl.Values()
	out := make(Values, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Timelines returns the names of bound timelines in bind order.
func (s *Stage) Timelines() []string {
	return append([]string(nil), s.tlOrder...)
}

// InteractionActive reports whether the playground currently owns pointer
// events.
func (s *Stage) InteractionActive() bool { return s.gate.Active() }

// Cursor returns the affordance the host should display.
func (s *Stage) Cursor() Cursor { return s.state.Cursor }

// CursorFollower returns the spring-smoothed cursor sprite state.
func (s *Stage) CursorFollower() *CursorFollower { return s.cursor }

// SmoothScroll returns the eased scroll offset.
func (s *Stage) SmoothScroll() float64 { return s.state.SmoothScroll }

// State returns a copy of the shared input record.
func (s *Stage) State() InputState { return s.state.snapshot() }

// World returns the physics world.
func (s *Stage) World() *World { return s.world }

// Gate returns the interaction gate.
func (s *Stage) Gate() *Gate { return s.gate }

// Pointer returns the pointer controller.
func (s *Stage) Pointer() *PointerController { return s.pointer }

// Loop returns the render loop.
func (s *Stage) Loop() *Loop { return s.loop }

// OnAction registers fn for actions fired by pressing labelled bodies.
func (s *Stage) OnAction(fn func(ActionEvent)) ActionHandle {
	return s.pointer.OnAction(fn)
}

// ListenerCount returns how many callbacks are registered anywhere in the
// stage: event listeners, tick hooks, gate listeners and action listeners.
func (s *Stage) ListenerCount() int {
	return s.events.count() + len(s.loop.hooks) + len(s.gate.listeners) + len(s.pointer.handlers)
}
