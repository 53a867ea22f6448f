package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Mshel/junction/internal/entity"
	"github.com/Mshel/junction/internal/geometry"
)

const (
	DefaultConfigPath = "config/junction.toml"
	ConfigPathEnv     = "JUNCTION_CONFIG"

	CanvasWidth        = 1500.0
	CanvasHeight       = 900.0
	SceneryInsetMargin = 100.0
	GameTickDuration   = 100 * time.Millisecond
)

type Config struct {
	World     WorldConfig     `toml:"world"`
	Player    PlayerConfig    `toml:"player"`
	Scenery   []SceneryConfig `toml:"scenery"`
	Logging   LoggingConfig   `toml:"logging"`
	Server    ServerConfig    `toml:"server"`
	Autopilot AutopilotConfig `toml:"autopilot"`
	Journal   JournalConfig   `toml:"journal"`
}

type WorldConfig struct {
	Width       float64       `toml:"width"`
	Height      float64       `toml:"height"`
	SpawnMargin float64       `toml:"spawn_margin"`
	Seed        int64         `toml:"seed"` // 0 picks a time based seed
	TickRate    time.Duration `toml:"tick_rate"`
}

type PlayerConfig struct {
	Shape      string  `toml:"shape"` // "circle" or "rectangle"
	Radius     float64 `toml:"radius"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	StepWidth  float64 `toml:"step_width"`
	StepHeight float64 `toml:"step_height"`
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	Color      string  `toml:"color"`
}

type SceneryConfig struct {
	Kind       string  `toml:"kind"`
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	BaseWidth  float64 `toml:"base_width"`
	BaseHeight float64 `toml:"base_height"`
	TopRadius  float64 `toml:"top_radius"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // empty keeps stderr
}

type ServerConfig struct {
	Host                string `toml:"host"`
	Port                string `toml:"port"`
	HostKeyPath         string `toml:"host_key_path"`
	MaxConnectionsPerIP int    `toml:"max_connections_per_ip"`
}

type AutopilotConfig struct {
	Enabled    bool   `toml:"enabled"`
	Script     string `toml:"script"`
	EveryTicks int    `toml:"every_ticks"`
}

type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// LoadConfig reads path over the defaults. A missing file at the default
// path is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.Scenery = nil
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if !md.IsDefined("scenery") {
		cfg.Scenery = defaultScenery()
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigPath returns the env override or the default path.
func ConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}

// DefaultConfig is the start scene: a red circle in the top left corner and
// one tree.
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Width:       CanvasWidth,
			Height:      CanvasHeight,
			SpawnMargin: SceneryInsetMargin,
			TickRate:    GameTickDuration,
		},
		Player: PlayerConfig{
			Shape:      "circle",
			Radius:     50,
			StepWidth:  50,
			StepHeight: 50,
			X:          50,
			Y:          50,
			Color:      "red",
		},
		Scenery: defaultScenery(),
		Logging: LoggingConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Host:                "0.0.0.0",
			Port:                "6997",
			HostKeyPath:         ".ssh/junction_ed25519",
			MaxConnectionsPerIP: 2,
		},
		Autopilot: AutopilotConfig{
			Script:     "scripts/autopilot.lua",
			EveryTicks: 3,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    "walks.db",
		},
	}
}

func defaultScenery() []SceneryConfig {
	return []SceneryConfig{
		{Kind: "tree", X: 500, Y: 600, BaseWidth: 45, BaseHeight: 120, TopRadius: 60},
	}
}

func (c *Config) validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size %vx%v must be positive", c.World.Width, c.World.Height)
	}
	if c.World.SpawnMargin < 0 || 2*c.World.SpawnMargin >= c.World.Width || 2*c.World.SpawnMargin >= c.World.Height {
		return fmt.Errorf("spawn margin %v does not fit a %vx%v world", c.World.SpawnMargin, c.World.Width, c.World.Height)
	}
	if c.World.TickRate <= 0 {
		return fmt.Errorf("tick rate %v must be positive", c.World.TickRate)
	}
	if c.Autopilot.EveryTicks <= 0 {
		return fmt.Errorf("autopilot every_ticks %d must be positive", c.Autopilot.EveryTicks)
	}
	if _, err := c.PlayerEntity(); err != nil {
		return err
	}
	if _, err := c.InitialScenery(); err != nil {
		return err
	}
	return nil
}

// PlayerEntity builds the controlled player described by the config.
func (c *Config) PlayerEntity() (entity.Player, error) {
	pc := c.Player

	var shape entity.Shape
	switch pc.Shape {
	case "circle":
		if pc.Radius <= 0 {
			return entity.Player{}, fmt.Errorf("player radius %v must be positive", pc.Radius)
		}
		if 2*pc.Radius > c.World.Width || 2*pc.Radius > c.World.Height {
			return entity.Player{}, fmt.Errorf("player radius %v does not fit the world", pc.Radius)
		}
		shape = entity.Circle(pc.Radius)
	case "rectangle":
		shape = entity.Rectangle(pc.Width, pc.Height)
	default:
		return entity.Player{}, fmt.Errorf("unknown player shape %q", pc.Shape)
	}

	color, ok := entity.ColorByName(pc.Color)
	if !ok {
		return entity.Player{}, fmt.Errorf("unknown player color %q", pc.Color)
	}

	player, err := entity.NewPlayer(shape,
		entity.Size{W: pc.StepWidth, H: pc.StepHeight},
		geometry.Point{X: pc.X, Y: pc.Y},
		color)
	if err != nil {
		return entity.Player{}, fmt.Errorf("player: %w", err)
	}
	return player, nil
}

func (c *Config) InitialScenery() ([]entity.Scenery, error) {
	scenery := make([]entity.Scenery, 0, len(c.Scenery))
	for i, sc := range c.Scenery {
		if sc.Kind != "tree" {
			return nil, fmt.Errorf("scenery %d: unknown kind %q", i, sc.Kind)
		}
		scenery = append(scenery, entity.Scenery{
			Type:     entity.Tree(sc.BaseWidth, sc.BaseHeight, sc.TopRadius),
			Location: geometry.Point{X: sc.X, Y: sc.Y},
		})
	}
	return scenery, nil
}
