package kinetic

// FrameID identifies a pending frame request.
type FrameID uint64

// Scheduler is the per-frame scheduling primitive supplied by the host.
// RequestFrame runs fn once on the next frame; CancelFrame drops a request
// that has not run yet.
type Scheduler interface {
	RequestFrame(fn func(dt float64)) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler whose frames are driven explicitly: the Ebiten
// host calls Advance once per update, tests call it directly.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
	running []frameRequest
}

type frameRequest struct {
	id FrameID
	fn func(dt float64)
}

// NewFrameQueue creates an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn func(dt float64)) FrameID {
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame implements Scheduler.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = frameRequest{}
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
}

// Advance runs every request that was pending when it was called. Requests
// made during the frame wait for the next Advance. Returns how many ran.
func (q *FrameQueue) Advance(dt float64) int {
	q.running, q.pending = q.pending, q.running[:0]
	n := len(q.running)
	for i := range q.running {
		q.running[i].fn(dt)
		q.running[i] = frameRequest{}
	}
	q.running = q.running[:0]
	return n
}

// Pending returns the number of outstanding requests.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// tickHook is an extra per-frame step run after timelines are evaluated.
type tickHook struct {
	id uint32
	fn func(dt float64)
}

// HookHandle allows removing a tick hook.
type HookHandle struct {
	id   uint32
	loop *Loop
}

// Remove unregisters the hook.
func (h HookHandle) Remove() {
	if h.loop == nil {
		return
	}
	hooks := h.loop.hooks
	for i := range hooks {
		if hooks[i].id == h.id {
			copy(hooks[i:], hooks[i+1:])
			hooks[len(hooks)-1] = tickHook{}
			h.loop.hooks = hooks[:len(hooks)-1]
			return
		}
	}
}

type binding struct {
	timeline *Timeline
	tracker  string
}

// Loop is the render loop: it keeps one frame request outstanding while
// running and, per frame, eases the scroll offset, recomputes trackers,
// re-evaluates bound timelines and runs tick hooks.
type Loop struct {
	sched  Scheduler
	state  *InputState
	layout Layout
	smooth *Smoother

	trackers map[string]*Tracker
	order    []string
	bindings []binding
	hooks    []tickHook
	nextHook uint32

	pending FrameID
	queued  bool
	running bool
	stopped bool
	frames  uint64
}

func newLoop(sched Scheduler, state *InputState, layout Layout, smooth *Smoother) *Loop {
	return &Loop{
		sched:    sched,
		state:    state,
		layout:   layout,
		smooth:   smooth,
		trackers: make(map[string]*Tracker),
	}
}

// Track registers a tracker. A tracker with the same ID is replaced.
func (l *Loop) Track(t *Tracker) {
	if _, ok := l.trackers[t.ID]; !ok {
		l.order = append(l.order, t.ID)
	}
	l.trackers[t.ID] = t
}

// Tracker returns a registered tracker.
func (l *Loop) Tracker(id string) (*Tracker, bool) {
	t, ok := l.trackers[id]
	return t, ok
}

// Bind evaluates tl from the given tracker's progress every frame.
func (l *Loop) Bind(tl *Timeline, tracker string) {
	l.bindings = append(l.bindings, binding{timeline: tl, tracker: tracker})
}

// OnTick registers fn to run at the end of every frame.
func (l *Loop) OnTick(fn func(dt float64)) HookHandle {
	l.nextHook++
	l.hooks = append(l.hooks, tickHook{id: l.nextHook, fn: fn})
	return HookHandle{id: l.nextHook, loop: l}
}

// Start begins requesting frames. Starting a stopped loop does nothing.
func (l *Loop) Start() {
	if l.running || l.stopped {
		return
	}
	l.running = true
	l.request()
}

// Stop cancels the outstanding frame request and prevents any further
// scheduling. It is final.
func (l *Loop) Stop() {
	if l.queued {
		l.sched.CancelFrame(l.pending)
		l.queued = false
	}
	l.running = false
	l.stopped = true
	for i := range l.hooks {
		l.hooks[i] = tickHook{}
	}
	l.hooks = nil
	l.bindings = nil
}

// Running reports whether the loop is scheduling frames.
func (l *Loop) Running() bool { return l.running }

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 { return l.frames }

func (l *Loop) request() {
	l.pending = l.sched.RequestFrame(l.frame)
	l.queued = true
}

func (l *Loop) frame(dt float64) {
	l.queued = false
	if !l.running {
		return
	}
	l.tick(dt)
	if l.running {
		l.request()
	}
}

// tick runs one frame of work synchronously.
func (l *Loop) tick(dt float64) {
	l.frames++
	l.smooth.SetTarget(l.state.RawScroll)
	l.state.SmoothScroll = l.smooth.Update(dt)
	l.refresh()
	for _, b := range l.bindings {
		b.timeline.Evaluate(l.state.Progress[b.tracker])
	}
	for _, h := range l.hooks {
		if !l.running {
			return
		}
		h.fn(dt)
	}
}

// refresh recomputes every tracker from current geometry and the smoothed
// scroll offset.
func (l *Loop) refresh() {
	for _, id := range l.order {
		g, _ := l.layout.Geometry(id)
		l.state.Progress[id] = l.trackers[id].Update(g, l.state.SmoothScroll)
	}
}
