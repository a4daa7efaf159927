// Package config loads SignaturePad settings from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"SignaturePad/internal/state"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Surface    SurfaceConfig `yaml:"surface"`
	Background string        `yaml:"background"`
	Pen        PenConfig     `yaml:"pen"`
	Remote     RemoteConfig  `yaml:"remote"`
}

// SurfaceConfig is the capture surface size in pixels.
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PenConfig is the initial pen.
type PenConfig struct {
	Color string  `yaml:"color"`
	Width float32 `yaml:"width"`
}

// RemoteConfig controls the remote pad listener.
type RemoteConfig struct {
	Enabled   bool `yaml:"enabled"`
	Port      int  `yaml:"port"`
	Advertise bool `yaml:"advertise"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{Remote: RemoteConfig{Enabled: true, Advertise: true}}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file. A missing file yields Default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Remote: RemoteConfig{Enabled: true, Advertise: true}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Surface.Width <= 0 {
		c.Surface.Width = 480
	}
	if c.Surface.Height <= 0 {
		c.Surface.Height = 200
	}
	if c.Background == "" {
		c.Background = "#ffffff"
	}
	if c.Pen.Color == "" {
		c.Pen.Color = "#000000"
	}
	if c.Pen.Width <= 0 {
		c.Pen.Width = state.DefaultPen.Width
	}
	if c.Remote.Port == 0 {
		c.Remote.Port = 8889
	}
}

// Validate checks values that have no sensible default.
func (c *Config) Validate() error {
	if c.Surface.Width > 8192 || c.Surface.Height > 8192 {
		return fmt.Errorf("config: surface %dx%d is too large", c.Surface.Width, c.Surface.Height)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if _, err := ParseHexColor(c.Pen.Color); err != nil {
		return fmt.Errorf("config: pen color: %w", err)
	}
	if c.Remote.Port < 1 || c.Remote.Port > 65535 {
		return fmt.Errorf("config: remote port %d out of range", c.Remote.Port)
	}
	return nil
}

// BackgroundColor returns the parsed background.
func (c *Config) BackgroundColor() color.NRGBA {
	bg, _ := ParseHexColor(c.Background)
	return bg
}

// StatePen returns the configured pen.
func (c *Config) StatePen() state.Pen {
	pc, _ := ParseHexColor(c.Pen.Color)
	return state.Pen{Color: pc, Width: c.Pen.Width}
}

// ParseHexColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// HexColor formats c as #rrggbb, or #rrggbbaa when not opaque.
func HexColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
