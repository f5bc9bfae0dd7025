package kinetic

// Gate decides who receives pointer events: the simulation surface while
// active, the underlying page (pass-through) otherwise. Its flag lives in
// the stage's InputState.
type Gate struct {
	state     *InputState
	listeners []gateListener
	nextID    uint32
}

type gateListener struct {
	id uint32
	fn func(active bool)
}

// GateHandle allows removing a gate change listener.
type GateHandle struct {
	id   uint32
	gate *Gate
}

// Remove unregisters the listener.
func (h GateHandle) Remove() {
	if h.gate == nil {
		return
	}
	g := h.gate
	for i := range g.listeners {
		if g.listeners[i].id == h.id {
			copy(g.listeners[i:], g.listeners[i+1:])
			g.listeners[len(g.listeners)-1] = gateListener{}
			g.listeners = g.listeners[:len(g.listeners)-1]
			return
		}
	}
}

func newGate(state *InputState) *Gate {
	return &Gate{state: state}
}

// Active reports whether the simulation surface currently owns pointer events.
func (g *Gate) Active() bool {
	return g.state.GateActive
}

// PassThrough reports whether the page receives pointer events.
func (g *Gate) PassThrough() bool {
	return !g.state.GateActive
}

// OnChange registers fn to run whenever the flag flips.
func (g *Gate) OnChange(fn func(active bool)) GateHandle {
	g.nextID++
	g.listeners = append(g.listeners, gateListener{id: g.nextID, fn: fn})
	return GateHandle{id: g.nextID, gate: g}
}

func (g *Gate) set(active bool) {
	if g.state.GateActive == active {
		return
	}
	g.state.GateActive = active
	for _, l := range g.listeners {
		l.fn(active)
	}
}

func (g *Gate) clear() {
	for i := range g.listeners {
		g.listeners[i] = gateListener{}
	}
	g.listeners = g.listeners[:0]
}
