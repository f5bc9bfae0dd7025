package kinetic

// InputState is the one mutable record shared between event callbacks and
// the frame callback. Event callbacks write it; the next tick reads
// whatever was written last. Nothing is queued or replayed.
type InputState struct {
	RawScroll    float64
	SmoothScroll float64

	ViewportWidth  float64
	ViewportHeight float64

	Pointer     Vec2 // viewport coordinates
	PointerDown bool

	Grabbed    BodyID // NoBody when nothing is held
	GateActive bool
	Cursor     Cursor

	Progress map[string]float64
}

func newInputState() InputState {
	return InputState{
		Grabbed:  NoBody,
		Progress: make(map[string]float64),
	}
}

// snapshot copies the record, including the progress map, so callers can
// compare states across frames.
func (s *InputState) snapshot() InputState {
	c := *s
	c.Progress = make(map[string]float64, len(s.Progress))
	for k, v := range s.Progress {
		c.Progress[k] = v
	}
	return c
}
