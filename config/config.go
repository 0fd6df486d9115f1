// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/emberfield/field"
	"github.com/pthm-cable/emberfield/theme"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Scene     SceneConfig     `yaml:"scene"`
	Moods     []MoodConfig    `yaml:"moods"`
	Audio     AudioConfig     `yaml:"audio"`
	Sparks    SparksConfig    `yaml:"sparks"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds the dot grid parameters.
type FieldConfig struct {
	Spacing      float64 `yaml:"spacing"`       // pixels between grid cells
	Scale        float64 `yaml:"scale"`         // noise frequency per pixel
	TimeScale    float64 `yaml:"time_scale"`    // noise time units per second
	AlphaBase    float64 `yaml:"alpha_base"`    // brightness weight in alpha
	AlphaBoost   float64 `yaml:"alpha_boost"`   // proximity^2 weight in alpha
	RadiusBase   float64 `yaml:"radius_base"`   // minimum dot radius
	RadiusBright float64 `yaml:"radius_bright"` // radius added at full brightness
	RadiusProx   float64 `yaml:"radius_prox"`   // radius added at full proximity
}

// PointerConfig holds pointer influence parameters.
type PointerConfig struct {
	InfluenceRadius float64 `yaml:"influence_radius"` // pixels
}

// SceneConfig holds startup and transition timings, in seconds.
type SceneConfig struct {
	BootSeconds     float64 `yaml:"boot_seconds"`
	RevealSeconds   float64 `yaml:"reveal_seconds"`
	MoodFadeSeconds float64 `yaml:"mood_fade_seconds"`
}

// MoodConfig is one palette entry. Colors are "#rrggbb" hex strings.
type MoodConfig struct {
	Name       string  `yaml:"name"`
	Background string  `yaml:"background"`
	Dot        string  `yaml:"dot"`
	Accent     string  `yaml:"accent"`
	DroneHz    float64 `yaml:"drone_hz"`
	Intensity  float64 `yaml:"intensity"`
}

// AudioConfig holds synthesis settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	PlinkLowHz  float64 `yaml:"plink_low_hz"`  // click pitch at the bottom of the window
	PlinkHighHz float64 `yaml:"plink_high_hz"` // click pitch at the top
}

// SparksConfig holds click spark settings.
type SparksConfig struct {
	Seed int64 `yaml:"seed"`
}

// TelemetryConfig holds frame stats settings, both in frames.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // rolling window length
	LogInterval int `yaml:"log_interval"` // frames between stats emissions
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32

	// FieldParams is ready to hand to field.New, voiced with the first
	// mood's palette.
	FieldParams field.Params

	// Moods are the parsed palettes in file order.
	Moods []theme.Mood
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived calculates values derived from the loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Telemetry.StatsWindow <= 0 {
		c.Telemetry.StatsWindow = 120
	}
	if c.Telemetry.LogInterval <= 0 {
		c.Telemetry.LogInterval = c.Telemetry.StatsWindow
	}

	// Synthesize a single mood if none specified so the engine always
	// has a palette.
	if len(c.Moods) == 0 {
		c.Moods = []MoodConfig{{
			Name:       "ember",
			Background: "#0c0a10",
			Dot:        "#949ca8",
			Accent:     "#ff5c30",
			DroneHz:    55,
			Intensity:  0.6,
		}}
	}

	c.Derived.Moods = make([]theme.Mood, len(c.Moods))
	for i, mc := range c.Moods {
		bg, err := theme.ParseHexColor(mc.Background)
		if err != nil {
			return fmt.Errorf("mood %q background: %w", mc.Name, err)
		}
		dot, err := theme.ParseHexColor(mc.Dot)
		if err != nil {
			return fmt.Errorf("mood %q dot: %w", mc.Name, err)
		}
		accent, err := theme.ParseHexColor(mc.Accent)
		if err != nil {
			return fmt.Errorf("mood %q accent: %w", mc.Name, err)
		}
		c.Derived.Moods[i] = theme.Mood{
			Name:       mc.Name,
			Background: bg,
			Dot:        dot,
			Accent:     accent,
			DroneHz:    mc.DroneHz,
			Intensity:  mc.Intensity,
		}
	}

	first := c.Derived.Moods[0]
	c.Derived.FieldParams = field.Params{
		Spacing:         float32(c.Field.Spacing),
		Scale:           c.Field.Scale,
		InfluenceRadius: float32(c.Pointer.InfluenceRadius),
		AlphaBase:       float32(c.Field.AlphaBase),
		AlphaBoost:      float32(c.Field.AlphaBoost),
		RadiusBase:      float32(c.Field.RadiusBase),
		RadiusBright:    float32(c.Field.RadiusBright),
		RadiusProx:      float32(c.Field.RadiusProx),
		Background:      first.Background,
		Dot:             first.Dot,
		Accent:          first.Accent,
	}

	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
