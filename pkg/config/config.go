package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "Ballpit"

	// DefaultTimeStep is the fixed step in seconds, one per ebiten tick at 60 TPS.
	DefaultTimeStep = 1.0 / 60.0

	DefaultWallThickness   = 20.0
	DefaultWallRestitution = 1.2

	DefaultMaxBodies = 40
	DefaultMinRadius = 10.0
	DefaultMaxRadius = 40.0

	DefaultDragStiffness = 0.2
	DefaultDragMaxForce  = 50000.0
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Engine EngineConfig `yaml:"engine"`
	Walls  WallsConfig  `yaml:"walls"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Drag   DragConfig   `yaml:"drag"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type EngineConfig struct {
	Gravity    GravityConfig    `yaml:"gravity"`
	Iterations IterationsConfig `yaml:"iterations"`
	TimeStep   float64          `yaml:"time_step"`
}

// GravityConfig is the gravity direction and its scale. A zero scale disables
// gravity regardless of the direction.
type GravityConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

type IterationsConfig struct {
	Velocity   int `yaml:"velocity"`
	Position   int `yaml:"position"`
	Constraint int `yaml:"constraint"`
}

type WallsConfig struct {
	Thickness   float64 `yaml:"thickness"`
	Restitution float64 `yaml:"restitution"`
}

type SpawnConfig struct {
	MaxBodies      int         `yaml:"max_bodies"`
	MinRadius      float64     `yaml:"min_radius"`
	MaxRadius      float64     `yaml:"max_radius"`
	Mass           float64     `yaml:"mass"`
	Density        float64     `yaml:"density"`
	Restitution    float64     `yaml:"restitution"`
	Friction       float64     `yaml:"friction"`
	FrictionStatic float64     `yaml:"friction_static"`
	FrictionAir    float64     `yaml:"friction_air"`
	Force          ForceConfig `yaml:"force"`
	FillStyle      string      `yaml:"fill_style"`
	// Seed seeds the radius generator. Zero picks a time based seed.
	Seed int64 `yaml:"seed"`
}

type ForceConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type DragConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	MaxForce  float64 `yaml:"max_force"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Engine: EngineConfig{
			Gravity: GravityConfig{
				X:     0,
				Y:     -5,
				Scale: 0,
			},
			Iterations: IterationsConfig{
				Velocity:   4,
				Position:   6,
				Constraint: 2,
			},
			TimeStep: DefaultTimeStep,
		},
		Walls: WallsConfig{
			Thickness:   DefaultWallThickness,
			Restitution: DefaultWallRestitution,
		},
		Spawn: SpawnConfig{
			MaxBodies:      DefaultMaxBodies,
			MinRadius:      DefaultMinRadius,
			MaxRadius:      DefaultMaxRadius,
			Mass:           10,
			Density:        0.001,
			Restitution:    1.2,
			Friction:       0.1,
			FrictionStatic: 0.5,
			FrictionAir:    0.01,
			Force: ForceConfig{
				X: 0.5,
				Y: 0.6,
			},
			FillStyle: "#000",
		},
		Drag: DragConfig{
			Stiffness: DefaultDragStiffness,
			MaxForce:  DefaultDragMaxForce,
		},
	}
}

// Load reads a YAML file and overlays it on the default configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	return Parse(data)
}

// Parse overlays YAML data on the default configuration and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return cfg, nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate rejects values that would make the client fail outright.
// Gravity and solver iteration counts are passed to the solver as they are.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Engine.TimeStep <= 0 {
		errs = append(errs, fmt.Errorf("engine.time_step must be positive, got %v", c.Engine.TimeStep))
	}
	if c.Spawn.MaxBodies < 0 {
		errs = append(errs, fmt.Errorf("spawn.max_bodies must not be negative, got %d", c.Spawn.MaxBodies))
	}
	if c.Spawn.MinRadius < 0 || c.Spawn.MinRadius >= c.Spawn.MaxRadius {
		errs = append(errs, fmt.Errorf("spawn radius range [%v, %v) is empty", c.Spawn.MinRadius, c.Spawn.MaxRadius))
	}
	if _, err := ParseColor(c.Spawn.FillStyle); err != nil {
		errs = append(errs, fmt.Errorf("spawn.fill_style: %v", err))
	}
	return errors.Join(errs...)
}

// FillColor returns the parsed spawn fill style.
func (c *Config) FillColor() color.Color {
	clr, err := ParseColor(c.Spawn.FillStyle)
	if err != nil {
		return color.Black
	}
	return clr
}

// ParseColor parses a CSS style hex color, either #rgb or #rrggbb.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse color %q: %v", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
