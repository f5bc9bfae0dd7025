package kinetic

import "testing"

func TestGateNotifiesOnFlip(t *testing.T) {
	state := newInputState()
	g := newGate(&state)
	var got []bool
	g.OnChange(func(active bool) { got = append(got, active) })

	g.set(false)
	g.set(true)
	g.set(true)
	g.set(false)

	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("notifications = %v, want [true false]", got)
	}
	if !g.PassThrough() || state.GateActive {
		t.Error("gate should end in pass-through")
	}
}

func TestGateHandleRemove(t *testing.T) {
	state := newInputState()
	g := newGate(&state)
	a, b := 0, 0
	h := g.OnChange(func(bool) { a++ })
	g.OnChange(func(bool) { b++ })
	h.Remove()
	h.Remove()
	g.set(true)
	if a != 0 || b != 1 {
		t.Errorf("a = %d b = %d", a, b)
	}
	g.clear()
	if len(g.listeners) != 0 {
		t.Errorf("listeners after clear = %d", len(g.listeners))
	}
}

func TestEventRegistry(t *testing.T) {
	var r eventRegistry
	var got []string
	h := r.add(EventScroll, func(e Event) { got = append(got, "a") })
	r.add(EventScroll, func(e Event) { got = append(got, "b") })
	r.add(EventResize, func(e Event) { got = append(got, "resize") })
	if r.count() != 3 {
		t.Fatalf("count = %d", r.count())
	}

	r.dispatch(Event{Type: EventScroll})
	h.Remove()
	r.dispatch(Event{Type: EventScroll})
	r.dispatch(Event{Type: eventTypeCount})

	want := []string{"a", "b", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	r.clear()
	if r.count() != 0 {
		t.Errorf("count after clear = %d", r.count())
	}
}

func TestEventTypeString(t *testing.T) {
	if EventPointerDown.String() != "pointerdown" || eventTypeCount.String() != "unknown" {
		t.Error("unexpected EventType strings")
	}
	if CursorGrab.String() != "grab" || CursorDefault.String() != "default" {
		t.Error("unexpected Cursor strings")
	}
}
