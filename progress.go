package kinetic

import (
	"errors"
	"fmt"
	"strings"
)

// EdgePos is a position along an element's vertical extent, as a fraction:
// 0 is the top edge, 1 the bottom.
type EdgePos float64

const (
	EdgeStart  EdgePos = 0
	EdgeCenter EdgePos = 0.5
	EdgeEnd    EdgePos = 1
)

// Edge pairs a point on the container with a point on the viewport. The
// offset is reached when the two points line up.
type Edge struct {
	Container EdgePos
	Viewport  EdgePos
}

// Offsets bounds a tracker's scroll range: progress is 0 when Enter lines
// up and 1 when Exit lines up.
type Offsets struct {
	Enter, Exit Edge
}

// ErrBadOffset is returned by ParseOffsets for unknown edge names.
var ErrBadOffset = errors.New("kinetic: bad offset")

// ParseOffsets parses a pair of "container viewport" descriptors such as
// ("start end", "end start").
func ParseOffsets(enter, exit string) (Offsets, error) {
	a, err := parseEdge(enter)
	if err != nil {
		return Offsets{}, err
	}
	b, err := parseEdge(exit)
	if err != nil {
		return Offsets{}, err
	}
	return Offsets{Enter: a, Exit: b}, nil
}

func parseEdge(s string) (Edge, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Edge{}, fmt.Errorf("%w: %q", ErrBadOffset, s)
	}
	c, ok := edgeNames[parts[0]]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrBadOffset, s)
	}
	v, ok := edgeNames[parts[1]]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrBadOffset, s)
	}
	return Edge{Container: c, Viewport: v}, nil
}

var edgeNames = map[string]EdgePos{
	"start":  EdgeStart,
	"center": EdgeCenter,
	"end":    EdgeEnd,
}

// Geometry is the layout snapshot a tracker needs: the container's top and
// height in document coordinates and the viewport size. Laid is false until
// the container has been laid out.
type Geometry struct {
	Top, Height    float64
	ViewportWidth  float64
	ViewportHeight float64
	Laid           bool
}

// Tracker converts a container's position relative to the viewport into a
// Progress scalar in [0, 1].
type Tracker struct {
	ID      string
	Offsets Offsets

	progress float64
	start    float64
	end      float64
	valid    bool
}

// NewTracker creates a tracker for the container id.
func NewTracker(id string, offsets Offsets) *Tracker {
	return &Tracker{ID: id, Offsets: offsets}
}

// Update recomputes progress from geometry and the current scroll offset.
// Missing or degenerate geometry yields 0.
func (t *Tracker) Update(g Geometry, scrollY float64) float64 {
	if !g.Laid || g.Height <= 0 || g.ViewportHeight <= 0 {
		t.valid = false
		t.progress = 0
		return 0
	}
	t.start = g.Top + float64(t.Offsets.Enter.Container)*g.Height - float64(t.Offsets.Enter.Viewport)*g.ViewportHeight
	t.end = g.Top + float64(t.Offsets.Exit.Container)*g.Height - float64(t.Offsets.Exit.Viewport)*g.ViewportHeight
	if t.end <= t.start {
		t.valid = false
		t.progress = 0
		return 0
	}
	t.valid = true
	t.progress = clamp01((scrollY - t.start) / (t.end - t.start))
	return t.progress
}

// Progress returns the last computed progress.
func (t *Tracker) Progress() float64 {
	return t.progress
}

// Range returns the scroll offsets at which progress is 0 and 1. ok is
// false until geometry has been seen.
func (t *Tracker) Range() (start, end float64, ok bool) {
	return t.start, t.end, t.valid
}
