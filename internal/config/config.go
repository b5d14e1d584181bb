package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/pipeworks/internal/world"
	"github.com/gravitas-games/pipeworks/pkg/grid3"
)

// Config holds all server configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
}

// ServerConfig holds listener settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// WorldConfig holds the growth volume and decision parameters
type WorldConfig struct {
	BoundsX uint32 `yaml:"bounds_x"`
	BoundsY uint32 `yaml:"bounds_y"`
	BoundsZ uint32 `yaml:"bounds_z"`

	TurnProbability float32 `yaml:"turn_probability"`
	StopProbability float32 `yaml:"stop_probability"`

	// Palette lists run colors as hex strings; empty uses the built-in set
	Palette []string `yaml:"palette"`

	// SpawnAttempts caps fresh-start resampling; 0 uses the default
	SpawnAttempts int `yaml:"spawn_attempts"`
}

// GenerationConfig holds how the session drives growth
type GenerationConfig struct {
	// Seed for the session's random source; 0 seeds from the clock
	Seed int64 `yaml:"seed"`

	// InitialSegments are grown before the server accepts clients
	InitialSegments int `yaml:"initial_segments"`

	// MaxSegments stops growth once reached; 0 means unlimited
	MaxSegments int `yaml:"max_segments"`

	// TickMS is the interval between growth steps; 0 disables streaming
	TickMS int `yaml:"tick_ms"`
}

// Default returns the deployment defaults. Load unmarshals on top of
// them, so a key that is absent keeps its default while an explicit
// zero (tick_ms: 0 disables streaming, turn_probability: 0 never turns)
// survives as written.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		World: WorldConfig{
			BoundsX:         10,
			BoundsY:         10,
			BoundsZ:         10,
			TurnProbability: 0.1,
			StopProbability: 0.1,
		},
		Generation: GenerationConfig{
			InitialSegments: 100,
			TickMS:          250,
		},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the ranges the world and session rely on
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.World.TurnProbability < 0 || c.World.TurnProbability > 1 {
		return fmt.Errorf("turn_probability %v outside [0, 1]", c.World.TurnProbability)
	}
	if c.World.StopProbability < 0 || c.World.StopProbability > 1 {
		return fmt.Errorf("stop_probability %v outside [0, 1]", c.World.StopProbability)
	}
	if c.World.SpawnAttempts < 0 {
		return fmt.Errorf("spawn_attempts must not be negative")
	}
	if c.Generation.InitialSegments < 0 || c.Generation.MaxSegments < 0 {
		return fmt.Errorf("segment counts must not be negative")
	}
	if c.Generation.TickMS < 0 {
		return fmt.Errorf("tick_ms must not be negative")
	}
	// palette parsing doubles as its validation
	if _, err := c.WorldParams(); err != nil {
		return err
	}
	return nil
}

// WorldParams converts the world section into construction parameters
func (c *Config) WorldParams() (world.Params, error) {
	p := world.Params{
		Bounds:          grid3.Bounds{X: c.World.BoundsX, Y: c.World.BoundsY, Z: c.World.BoundsZ},
		TurnProbability: c.World.TurnProbability,
		StopProbability: c.World.StopProbability,
		SpawnAttempts:   c.World.SpawnAttempts,
	}
	if len(c.World.Palette) > 0 {
		pal, err := world.ParsePalette(c.World.Palette)
		if err != nil {
			return world.Params{}, err
		}
		p.Palette = pal
	}
	return p, nil
}
