package kinetic

import (
	"fmt"
	"math/rand/v2"
)

// DefaultPalette is the fill palette bodies draw from.
var DefaultPalette = []string{"#2B38F1", "#F4CE14", "#FF6B2B", "#A0C1A6", "#FFFFFF"}

// LabelSpec is a semantic label handed to spawned bodies in the interactive
// variant, with the actions pressing such a body fires.
type LabelSpec struct {
	Label   string   `yaml:"label"`
	Actions []Action `yaml:"actions"`
}

// DefaultContactLabels are the contact channels the interactive playground
// scatters among its bodies.
var DefaultContactLabels = []LabelSpec{
	{Label: "mail", Actions: []Action{{Name: "contact", Target: "mailto:hello@3xhike.com"}}},
	{Label: "instagram", Actions: []Action{{Name: "contact", Target: "https://instagram.com/3xhike"}}},
	{Label: "linkedin", Actions: []Action{{Name: "contact", Target: "https://linkedin.com/company/3xhike"}}},
}

// SpawnConfig controls how a world populates itself on activation.
type SpawnConfig struct {
	Count       int
	Seed        uint64
	Palette     []string
	MinSize     float64
	MaxSize     float64
	Restitution float64
	Friction    float64

	// Drop is the vertical band above the frame bodies start in:
	// y is uniform in [-DropMax, -DropMin].
	DropMin float64
	DropMax float64

	// Labels are assigned to the first len(Labels) bodies.
	Labels []LabelSpec

	// Layout, when set, replaces randomized placement: exactly these
	// bodies are created, in this order.
	Layout []BodySpec
}

// DefaultSpawnConfig returns the playground's spawn settings.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Count:       25,
		Seed:        1,
		Palette:     DefaultPalette,
		MinSize:     50,
		MaxSize:     120,
		Restitution: 0.4,
		Friction:    0.5,
		DropMin:     200,
		DropMax:     2200,
	}
}

// Plan returns the bodies a world of the given width would spawn. The same
// seed and width always produce the same plan.
func (c SpawnConfig) Plan(width float64) ([]BodySpec, error) {
	if len(c.Layout) > 0 {
		return append([]BodySpec(nil), c.Layout...), nil
	}
	if c.Count < 0 {
		return nil, fmt.Errorf("kinetic: negative spawn count %d", c.Count)
	}
	palette := c.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	colors := make([]Color, len(palette))
	for i, hex := range palette {
		v, err := ParseValue(hex)
		if err != nil || v.Kind != KindColor {
			return nil, fmt.Errorf("kinetic: palette entry %d: %q is not a color", i, hex)
		}
		colors[i] = v.Color
	}

	rng := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	specs := make([]BodySpec, 0, c.Count)
	seen := make(map[Vec2]bool, c.Count)
	for i := 0; i < c.Count; i++ {
		pos := Vec2{
			X: rng.Float64() * width,
			Y: -rng.Float64()*(c.DropMax-c.DropMin) - c.DropMin,
		}
		// Identical starts would stack bodies perfectly; nudge apart.
		for seen[pos] {
			pos.X += 1
		}
		seen[pos] = true

		spec := BodySpec{
			Position:    pos,
			Size:        c.MinSize + rng.Float64()*(c.MaxSize-c.MinSize),
			Color:       colors[rng.IntN(len(colors))],
			Restitution: c.Restitution,
			Friction:    c.Friction,
		}
		switch t := rng.Float64(); {
		case t < 0.3:
			spec.Kind = ShapeRound
		case t < 0.6:
			spec.Kind = ShapeRoundedBlock
		default:
			spec.Kind = ShapeWideRounded
		}
		if i < len(c.Labels) {
			spec.Label = c.Labels[i].Label
			spec.Actions = append([]Action(nil), c.Labels[i].Actions...)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
