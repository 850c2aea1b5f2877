// Package config loads the cubescene YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	TPS       int    `yaml:"tps"`
}

type Headless struct {
	Enabled          bool    `yaml:"enabled"`
	Hz               int     `yaml:"hz"`
	Frames           uint64  `yaml:"frames"` // 0 = run forever
	DevicePixelRatio float64 `yaml:"device_pixel_ratio"`
}

type Log struct {
	Level   string `yaml:"level"` // zerolog level name
	Console bool   `yaml:"console"`
}

type Config struct {
	Container string   `yaml:"container"` // id of the element the scene mounts into
	HUD       bool     `yaml:"hud"`
	Window    Window   `yaml:"window"`
	Headless  Headless `yaml:"headless"`
	Log       Log      `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Container: "app",
		Window: Window{
			Title:     "cubescene",
			Width:     800,
			Height:    600,
			Resizable: true,
			TPS:       60,
		},
		Headless: Headless{
			Hz:               60,
			DevicePixelRatio: 1,
		},
		Log: Log{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (c *Config) Validate() error {
	if c.Container == "" {
		return fmt.Errorf("%w: container id is empty", ErrInvalid)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS < 0 {
		return fmt.Errorf("%w: window tps %d", ErrInvalid, c.Window.TPS)
	}
	if c.Headless.Hz <= 0 {
		return fmt.Errorf("%w: headless hz %d", ErrInvalid, c.Headless.Hz)
	}
	if c.Headless.DevicePixelRatio < 0 {
		return fmt.Errorf("%w: device pixel ratio %v", ErrInvalid, c.Headless.DevicePixelRatio)
	}
	if _, err := c.Log.ZerologLevel(); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// ZerologLevel parses Level. An empty level means info.
func (l Log) ZerologLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(l.Level)
}
