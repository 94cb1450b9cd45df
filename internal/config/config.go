package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"circlegame/internal/logger"
)

// Screen Constants
const (
	WindowWidth  = 700
	WindowHeight = 800
	PlayingArea  = 600 // Vertical movement stops here, the rest is empty HUD space
	WindowTitle  = "Circle Movement Game"

	CircleRadius = 20
	CircleSpeed  = 5 // Pixels per frame

	TargetTPS = 60
)

// Backends
const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

type WindowConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	PlayingArea int    `yaml:"playing_area"`
	Title       string `yaml:"title"`
}

type CircleConfig struct {
	Radius int `yaml:"radius"`
	Speed  int `yaml:"speed"`
}

// Config is the full runtime configuration. The zero-file case is Default().
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Circle  CircleConfig  `yaml:"circle"`
	TPS     int           `yaml:"tps"`
	Backend string        `yaml:"backend"`
	Debug   bool          `yaml:"debug"` // TPS and position overlay
	Log     logger.Config `yaml:"log"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:       WindowWidth,
			Height:      WindowHeight,
			PlayingArea: PlayingArea,
			Title:       WindowTitle,
		},
		Circle: CircleConfig{
			Radius: CircleRadius,
			Speed:  CircleSpeed,
		},
		TPS:     TargetTPS,
		Backend: BackendEbiten,
		Log:     logger.DefaultConfig(),
	}
}

// Load overlays the YAML file at path onto Default. An empty path means no file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalid = errors.New("invalid config")

func (c Config) Validate() error {
	w := c.Window
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, w.Width, w.Height)
	case w.PlayingArea <= 0 || w.PlayingArea > w.Height:
		return fmt.Errorf("%w: playing_area %d outside window height %d", ErrInvalid, w.PlayingArea, w.Height)
	case c.Circle.Radius <= 0:
		return fmt.Errorf("%w: circle radius %d", ErrInvalid, c.Circle.Radius)
	case c.Circle.Speed <= 0:
		return fmt.Errorf("%w: circle speed %d", ErrInvalid, c.Circle.Speed)
	case 2*c.Circle.Radius >= w.Width || 2*c.Circle.Radius >= w.PlayingArea:
		return fmt.Errorf("%w: circle radius %d does not fit %dx%d play area", ErrInvalid, c.Circle.Radius, w.Width, w.PlayingArea)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	}

	switch c.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	return nil
}
