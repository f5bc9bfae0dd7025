package kinetic

// Injected events use viewport coordinates, the same as real input, and go
// through the stage's listeners. One event is consumed per frame.

// InjectScroll queues a raw scroll offset.
func (s *Stage) InjectScroll(y float64) {
	s.inject(Event{Type: EventScroll, Scroll: y})
}

// InjectResize queues a viewport resize.
func (s *Stage) InjectResize(w, h float64) {
	s.inject(Event{Type: EventResize, X: w, Y: h})
}

// InjectPress queues a pointer press at the given viewport coordinates.
func (s *Stage) InjectPress(x, y float64) {
	s.inject(Event{Type: EventPointerDown, X: x, Y: y})
}

// InjectMove queues a pointer move. Use this between InjectPress and
// InjectRelease to simulate a drag, or alone to hover.
func (s *Stage) InjectMove(x, y float64) {
	s.inject(Event{Type: EventPointerMove, X: x, Y: y})
}

// InjectRelease queues a pointer release.
func (s *Stage) InjectRelease(x, y float64) {
	s.inject(Event{Type: EventPointerUp, X: x, Y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes frames frames.
// Minimum frames is 2 (press + release).
func (s *Stage) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	s.InjectRelease(toX, toY)
}

// InjectPending returns the number of queued synthetic events.
func (s *Stage) InjectPending() int {
	return len(s.injectQueue)
}

func (s *Stage) inject(e Event) {
	if s.torn {
		return
	}
	s.injectQueue = append(s.injectQueue, e)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.dispatch(evt)
	return true
}
