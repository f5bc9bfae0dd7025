package kinetic

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("kinetic: invalid config")

// Config is the YAML form of a stage: smoothing, the physics playground and
// any extra timelines beyond the built-in presets.
//
// Example:
//
//	smoothing:
//	  duration: 1.2
//	  easing: inertial
//	physics:
//	  count: 25
//	  seed: 7
//	  palette: ["#2B38F1", "#F4CE14"]
//	timelines:
//	  - name: banner
//	    tracker: about
//	    enter: start end
//	    exit: start start
//	    properties:
//	      - name: opacity
//	        at: [0, 0.5]
//	        values: ["0", "1"]
type Config struct {
	Smoothing SmoothingConfig  `yaml:"smoothing"`
	Physics   PhysicsConfig    `yaml:"physics"`
	Presets   bool             `yaml:"presets"`
	Partners  int              `yaml:"partners"`
	Debug     bool             `yaml:"debug"`
	Timelines []TimelineConfig `yaml:"timelines"`
}

// SmoothingConfig configures scroll easing.
type SmoothingConfig struct {
	// Duration in seconds; 0 disables smoothing.
	Duration float64 `yaml:"duration"`
	// Easing is one of the names EasingByName accepts.
	Easing string `yaml:"easing"`
}

// PhysicsConfig configures the playground world.
type PhysicsConfig struct {
	Count       int         `yaml:"count"`
	Seed        uint64      `yaml:"seed"`
	Gravity     float64     `yaml:"gravity"`
	Stiffness   float64     `yaml:"stiffness"`
	MinSize     float64     `yaml:"minSize"`
	MaxSize     float64     `yaml:"maxSize"`
	Restitution float64     `yaml:"restitution"`
	Friction    float64     `yaml:"friction"`
	Palette     []string    `yaml:"palette"`
	Labels      []LabelSpec `yaml:"labels"`
	PinLeftWall bool        `yaml:"pinLeftWall"`
}

// TimelineConfig is a user-defined timeline bound to a tracker.
type TimelineConfig struct {
	Name    string `yaml:"name"`
	Tracker string `yaml:"tracker"`
	// Enter and Exit are "<container> <viewport>" edge pairs, for example
	// "start end". Empty uses the tracker's preset offsets.
	Enter      string           `yaml:"enter"`
	Exit       string           `yaml:"exit"`
	Properties []PropertyConfig `yaml:"properties"`
}

// PropertyConfig is one keyframed property.
type PropertyConfig struct {
	Name   string    `yaml:"name"`
	At     []float64 `yaml:"at"`
	Values []string  `yaml:"values"`
}

// DefaultConfig returns the agency page configuration.
func DefaultConfig() *Config {
	spawn := DefaultSpawnConfig()
	return &Config{
		Smoothing: SmoothingConfig{Duration: DefaultSmoothDuration, Easing: "inertial"},
		Physics: PhysicsConfig{
			Count:       spawn.Count,
			Seed:        spawn.Seed,
			Gravity:     defaultGravity,
			Stiffness:   defaultStiffness,
			MinSize:     spawn.MinSize,
			MaxSize:     spawn.MaxSize,
			Restitution: spawn.Restitution,
			Friction:    spawn.Friction,
			Palette:     append([]string(nil), spawn.Palette...),
			Labels:      append([]LabelSpec(nil), DefaultContactLabels...),
		},
		Presets:  true,
		Partners: 6,
	}
}

// LoadConfig reads and validates a YAML config. Fields the file leaves out
// keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config data.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and builds every configured timeline so that bad
// keyframes fail at load time rather than on the first frame.
func (c *Config) Validate() error {
	if c.Smoothing.Duration < 0 {
		return fmt.Errorf("%w: smoothing duration %.2f < 0", ErrInvalidConfig, c.Smoothing.Duration)
	}
	if _, err := EasingByName(c.Smoothing.Easing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	p := c.Physics
	if p.Count < 0 {
		return fmt.Errorf("%w: physics count %d < 0", ErrInvalidConfig, p.Count)
	}
	if p.MinSize <= 0 || p.MinSize > p.MaxSize {
		return fmt.Errorf("%w: physics size range invalid: min(%.1f) max(%.1f)", ErrInvalidConfig, p.MinSize, p.MaxSize)
	}
	if p.Stiffness <= 0 || p.Stiffness > 1 {
		return fmt.Errorf("%w: stiffness %.2f outside (0, 1]", ErrInvalidConfig, p.Stiffness)
	}
	if p.Restitution < 0 || p.Friction < 0 {
		return fmt.Errorf("%w: restitution and friction must be >= 0", ErrInvalidConfig)
	}
	if c.Partners < 0 {
		return fmt.Errorf("%w: partners %d < 0", ErrInvalidConfig, c.Partners)
	}
	if _, err := c.spawnConfig().Plan(1); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(c.Timelines))
	for i, tc := range c.Timelines {
		if tc.Name == "" || tc.Tracker == "" {
			return fmt.Errorf("%w: timeline %d needs a name and a tracker", ErrInvalidConfig, i)
		}
		if seen[tc.Name] {
			return fmt.Errorf("%w: timeline %q defined twice", ErrInvalidConfig, tc.Name)
		}
		seen[tc.Name] = true
		if _, err := tc.Build(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if _, err := tc.Offsets(); err != nil {
			return fmt.Errorf("%w: timeline %q: %w", ErrInvalidConfig, tc.Name, err)
		}
	}
	return nil
}

func (c *Config) spawnConfig() SpawnConfig {
	spawn := DefaultSpawnConfig()
	p := c.Physics
	spawn.Count = p.Count
	spawn.Seed = p.Seed
	spawn.MinSize, spawn.MaxSize = p.MinSize, p.MaxSize
	spawn.Restitution, spawn.Friction = p.Restitution, p.Friction
	if len(p.Palette) > 0 {
		spawn.Palette = p.Palette
	}
	spawn.Labels = p.Labels
	return spawn
}

// StageConfig converts c into the settings NewStage takes.
func (c *Config) StageConfig() StageConfig {
	sc := DefaultStageConfig()
	sc.SmoothDuration = float32(c.Smoothing.Duration)
	if fn, err := EasingByName(c.Smoothing.Easing); err == nil {
		sc.Easing = fn
	}
	sc.World.Gravity = c.Physics.Gravity
	sc.World.PinLeftWall = c.Physics.PinLeftWall
	sc.World.Spawn = c.spawnConfig()
	sc.Stiffness = c.Physics.Stiffness
	sc.Debug = c.Debug
	return sc
}

// Apply adds the presets (when enabled) and every configured timeline to s.
func (c *Config) Apply(s *Stage) error {
	if c.Presets {
		if err := s.AddPresets(c.Partners); err != nil {
			return err
		}
	}
	for _, tc := range c.Timelines {
		tl, err := tc.Build()
		if err != nil {
			return err
		}
		if _, ok := s.loop.Tracker(tc.Tracker); !ok {
			off, err := tc.Offsets()
			if err != nil {
				return err
			}
			s.Track(tc.Tracker, off)
		}
		if err := s.Bind(tl, tc.Tracker); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the timeline.
func (tc TimelineConfig) Build() (*Timeline, error) {
	tl := NewTimeline(tc.Name)
	for _, p := range tc.Properties {
		if err := tl.BindStrings(p.Name, p.At, p.Values...); err != nil {
			return nil, err
		}
	}
	return tl, nil
}

// Offsets returns the tracker offsets, falling back to the preset for the
// tracker when Enter and Exit are both empty.
func (tc TimelineConfig) Offsets() (Offsets, error) {
	if tc.Enter == "" && tc.Exit == "" {
		return PresetOffsets(tc.Tracker), nil
	}
	return ParseOffsets(tc.Enter, tc.Exit)
}
