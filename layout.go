package kinetic

// Layout answers geometry queries for tracked containers. It is supplied by
// the host; a container that is not laid out yet reports ok == false.
type Layout interface {
	Geometry(id string) (Geometry, bool)
}

// Section is one vertically stacked page block. Height is in viewport
// heights (vh / 100).
type Section struct {
	ID     string
	Height float64
}

// SectionLayout stacks sections top to bottom at the current viewport size.
// It stands in for a document layout engine.
type SectionLayout struct {
	sections []Section
	overlays map[string]string
	width    float64
	height   float64
}

// NewSectionLayout creates a layout; geometry is reported once SetViewport
// has been called with a non-zero size.
func NewSectionLayout(sections ...Section) *SectionLayout {
	return &SectionLayout{sections: sections, overlays: make(map[string]string)}
}

// DefaultLayout returns DefaultSections with the playground overlaying the
// trends section.
func DefaultLayout() *SectionLayout {
	l := NewSectionLayout(DefaultSections()...)
	l.Overlay(SectionPlayground, SectionTrends)
	return l
}

// Overlay makes id report the geometry of section over, for absolutely
// positioned layers such as the physics playground.
func (l *SectionLayout) Overlay(id, over string) {
	l.overlays[id] = over
}

// DefaultSections mirrors the agency page: a 600vh pinned hero, then the
// about, services, specialists and trends sections.
func DefaultSections() []Section {
	return []Section{
		{ID: SectionHero, Height: 6},
		{ID: SectionAbout, Height: 2},
		{ID: SectionServices, Height: 1.5},
		{ID: SectionSpecialists, Height: 1.5},
		{ID: SectionTrends, Height: 1},
	}
}

// SetViewport updates the viewport size.
func (l *SectionLayout) SetViewport(w, h float64) {
	l.width, l.height = w, h
}

// DocumentHeight returns the total scrollable height in pixels.
func (l *SectionLayout) DocumentHeight() float64 {
	var total float64
	for _, s := range l.sections {
		total += s.Height * l.height
	}
	return total
}

// MaxScroll returns the largest valid scroll offset.
func (l *SectionLayout) MaxScroll() float64 {
	m := l.DocumentHeight() - l.height
	if m < 0 {
		return 0
	}
	return m
}

// Geometry implements Layout.
func (l *SectionLayout) Geometry(id string) (Geometry, bool) {
	if l.width <= 0 || l.height <= 0 {
		return Geometry{}, false
	}
	if over, ok := l.overlays[id]; ok {
		id = over
	}
	var top float64
	for _, s := range l.sections {
		h := s.Height * l.height
		if s.ID == id {
			return Geometry{
				Top:            top,
				Height:         h,
				ViewportWidth:  l.width,
				ViewportHeight: l.height,
				Laid:           true,
			}, true
		}
		top += h
	}
	return Geometry{}, false
}
