package kinetic

import "fmt"

// Section timelines for the agency page. Each preset is keyed to the tracker
// offsets its section uses; see PresetOffsets.

// Tracker IDs used by the presets and the default SectionLayout.
const (
	SectionHero        = "hero"
	SectionAbout       = "about"
	SectionServices    = "services"
	SectionSpecialists = "specialists"
	SectionPlayground  = "playground"
	SectionTrends      = "trends"
)

// PresetOffsets returns the tracker offsets each section animates over.
func PresetOffsets(section string) Offsets {
	switch section {
	case SectionHero:
		return Offsets{Enter: Edge{Container: EdgeStart, Viewport: EdgeStart}, Exit: Edge{Container: EdgeEnd, Viewport: EdgeEnd}}
	case SectionSpecialists:
		return Offsets{Enter: Edge{Container: EdgeStart, Viewport: EdgeEnd}, Exit: Edge{Container: EdgeEnd, Viewport: EdgeStart}}
	default:
		return Offsets{Enter: Edge{Container: EdgeStart, Viewport: EdgeEnd}, Exit: Edge{Container: EdgeStart, Viewport: EdgeStart}}
	}
}

// HeroVisibleCards is how many partner cards fit the gallery at once, and
// HeroCardSpan the share of the track one card (22vw plus gap) occupies.
const (
	HeroVisibleCards = 3
	HeroCardSpan     = 25.0
)

// HeroTimeline is the pinned hero: the headline fades and shrinks, the
// colored blocks morph into a gallery, then the gallery pans sideways.
func HeroTimeline(partnerCount int) (*Timeline, error) {
	tl := NewTimeline(SectionHero)
	steps := []error{
		tl.Bind("headline.opacity", []float64{0, 0.15}, Number(1), Number(0)),
		tl.Bind("headline.scale", []float64{0, 0.15}, Number(1), Number(0.9)),
		tl.Morph("blocks", MorphSpec{
			Start: 0.15, End: 0.3, Hold: true,
			Compact:  MorphState{Y: Length(10, UnitVH), Width: Length(25, UnitVW)},
			Expanded: MorphState{Y: Length(-15, UnitVH), Width: Length(100, UnitVW)},
		}),
		tl.Bind("blocks.padding", []float64{0, 0.15, 0.3}, Length(0, UnitPx), Length(0, UnitPx), Length(48, UnitPx)),
		tl.Bind("gallery.gap", []float64{0.15, 0.3}, Length(1, UnitPx), Length(24, UnitPx)),
		tl.Pan("gallery.x", PanSpec{
			Threshold: 0.3, End: 1,
			ItemCount: partnerCount, VisibleCount: HeroVisibleCards, ItemSpan: HeroCardSpan,
		}),
		tl.Bind("gallery.progress", []float64{0.3, 1}, Length(0, UnitPct), Length(100, UnitPct)),
		tl.Bind("gallery.header.opacity", []float64{0.25, 0.35}, Number(0), Number(1)),
	}
	for _, err := range steps {
		if err != nil {
			return nil, err
		}
	}
	for i := 0; i < partnerCount; i++ {
		if err := addVideoCard(tl, i); err != nil {
			return nil, err
		}
	}
	return tl, nil
}

// The first four partners start as the colored blocks under the headline.
var (
	blockWidths  = []float64{40, 20, 20, 20}
	blockHeights = []float64{100, 80, 80, 80}
	blockColors  = []string{"#000000", "#FF6B2B", "#FFCC00", "#A8C69F"}
)

func addVideoCard(tl *Timeline, i int) error {
	prefix := fmt.Sprintf("card%d", i)
	compact := MorphState{
		Width:  Length(0, UnitVW),
		Height: Length(0, UnitVW),
		Radius: Length(16, UnitPx),
		Color:  Hex("#FFFFFF0D"),
	}
	opacity := 0.0
	if i < len(blockWidths) {
		// Blocks are sized within the 25vw x 10vh strip; heights are kept in
		// vw (at 16:9) so the property has a single unit.
		compact.Width = Length(blockWidths[i]*0.25, UnitVW)
		compact.Height = Length(blockHeights[i]*0.1*9/16, UnitVW)
		compact.Radius = Length(12, UnitPx)
		compact.Color = Hex(blockColors[i])
		opacity = 1
	}
	expanded := MorphState{
		Width:  Length(22, UnitVW),
		Height: Length(39, UnitVW),
		Radius: Length(16, UnitPx),
		Color:  compact.Color,
	}

	steps := []error{
		tl.Morph(prefix, MorphSpec{Start: 0.15, End: 0.3, Compact: compact, Expanded: expanded}),
		tl.Bind(prefix+".opacity", []float64{0.15, 0.25}, Number(opacity), Number(1)),
		tl.Bind(prefix+".video.opacity", []float64{0.2, 0.35}, Number(0), Number(1)),
		tl.Bind(prefix+".label.opacity", []float64{0.3, 0.4}, Number(0), Number(1)),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}

// AboutTimeline fades the about section from brand blue to white and
// cross-fades its three culture images.
func AboutTimeline() (*Timeline, error) {
	tl := NewTimeline(SectionAbout)
	steps := []error{
		tl.Bind("background", []float64{0, 0.8}, Hex("#2B38F1"), Hex("#FFFFFF")),
		tl.Bind("text", []float64{0, 0.8}, Hex("#FFFFFF"), Hex("#000000")),
		tl.Bind("accent", []float64{0, 0.8}, Hex("#FFFFFF"), Hex("#2B38F1")),
	}
	for i := 0; i < 3; i++ {
		start := 0.0
		if i == 0 {
			start = 1
		}
		steps = append(steps, tl.Bind(fmt.Sprintf("image%d.opacity", i),
			[]float64{float64(i) * 0.33, float64(i+1) * 0.33}, Number(start), Number(1)))
	}
	for _, err := range steps {
		if err != nil {
			return nil, err
		}
	}
	return tl, nil
}

// ServicesTimeline fades the services background from white to yellow.
func ServicesTimeline() (*Timeline, error) {
	tl := NewTimeline(SectionServices)
	if err := tl.Bind("background", []float64{0, 0.8}, Hex("#FFFFFF"), Hex("#F4CE14")); err != nil {
		return nil, err
	}
	return tl, nil
}

// TrendsTimeline fades the trends background from white to sage.
func TrendsTimeline() (*Timeline, error) {
	tl := NewTimeline(SectionTrends)
	if err := tl.Bind("background", []float64{0, 0.8}, Hex("#FFFFFF"), Hex("#A0C1A6")); err != nil {
		return nil, err
	}
	return tl, nil
}

var (
	stackRotations = []float64{-8, 4, -2}
	stackOffsets   = []float64{-20, 10, 0}
)

// SpecialistsTimeline fades the background from yellow to white and fans
// out the stacked specialist cards.
func SpecialistsTimeline() (*Timeline, error) {
	tl := NewTimeline(SectionSpecialists)
	if err := tl.Bind("background", []float64{0, 0.2}, Hex("#F4CE14"), Hex("#FFFFFF")); err != nil {
		return nil, err
	}
	phases := []float64{0.2, 0.5, 0.8}
	for i, rot := range stackRotations {
		prefix := fmt.Sprintf("stack%d", i)
		fi := float64(i)
		steps := []error{
			tl.Bind(prefix+".rotate", phases, Length(rot, UnitDeg), Length(rot*1.5, UnitDeg), Length(rot*0.5, UnitDeg)),
			tl.Bind(prefix+".y", phases, Length(fi*20, UnitPx), Length(fi*-10, UnitPx), Length(fi*10, UnitPx)),
			tl.Bind(prefix+".scale", phases, Number(1-fi*0.05), Number(1), Number(0.95)),
			tl.Bind(prefix+".opacity", []float64{0.1, 0.2}, Number(0), Number(1)),
			tl.Bind(prefix+".x", []float64{0}, Length(stackOffsets[i], UnitPx)),
		}
		for _, err := range steps {
			if err != nil {
				return nil, err
			}
		}
	}
	return tl, nil
}
