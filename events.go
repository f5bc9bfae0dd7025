package kinetic

// Event carries one raw input event. Fields not relevant to Type are zero.
type Event struct {
	Type   EventType
	X, Y   float64 // pointer position (viewport) or new viewport size for EventResize
	Scroll float64 // raw scroll offset for EventScroll
}

type eventHandler struct {
	id uint32
	fn func(Event)
}

// eventRegistry holds every listener a Stage registers, grouped by event
// type. Teardown empties it in one pass.
type eventRegistry struct {
	handlers [eventTypeCount][]eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id    uint32
	reg   *eventRegistry
	event EventType
}

// Remove unregisters this listener so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	h.reg.handlers[h.event] = removeEventHandler(h.reg.handlers[h.event], h.id)
}

func removeEventHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *eventRegistry) add(event EventType, fn func(Event)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.handlers[event] = append(r.handlers[event], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

func (r *eventRegistry) dispatch(e Event) {
	if e.Type >= eventTypeCount {
		return
	}
	for _, h := range r.handlers[e.Type] {
		h.fn(e)
	}
}

func (r *eventRegistry) count() int {
	n := 0
	for i := range r.handlers {
		n += len(r.handlers[i])
	}
	return n
}

func (r *eventRegistry) clear() {
	for i := range r.handlers {
		for j := range r.handlers[i] {
			r.handlers[i][j] = eventHandler{}
		}
		r.handlers[i] = nil
	}
}

// --- Stage-level event registration ---

// OnScroll registers a listener for raw scroll offsets.
func (s *Stage) OnScroll(fn func(Event)) CallbackHandle {
	return s.events.add(EventScroll, fn)
}

// OnResize registers a listener for viewport resizes.
func (s *Stage) OnResize(fn func(Event)) CallbackHandle {
	return s.events.add(EventResize, fn)
}

// OnPointerDown registers a listener for pointer presses.
func (s *Stage) OnPointerDown(fn func(Event)) CallbackHandle {
	return s.events.add(EventPointerDown, fn)
}

// OnPointerMove registers a listener for pointer movement.
func (s *Stage) OnPointerMove(fn func(Event)) CallbackHandle {
	return s.events.add(EventPointerMove, fn)
}

// OnPointerUp registers a listener for pointer releases.
func (s *Stage) OnPointerUp(fn func(Event)) CallbackHandle {
	return s.events.add(EventPointerUp, fn)
}
