// Package config loads game settings from an optional YAML file layered over
// compiled-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/snaking/constant"
	"github.com/lixenwraith/snaking/snake"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all runtime settings
type Config struct {
	Tick    time.Duration `yaml:"tick"`
	Length  int           `yaml:"length"`
	Backend string        `yaml:"backend"`
	Sound   bool          `yaml:"sound"`
	Glyphs  Glyphs        `yaml:"glyphs"`
}

// Glyphs is the display table; each entry must be exactly one rune
type Glyphs struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Body  string `yaml:"body"`
	Food  string `yaml:"food"`
}

// Default returns the compiled-in settings
func Default() *Config {
	return &Config{
		Tick:    constant.TickInterval,
		Length:  constant.InitialLength,
		Backend: constant.BackendANSI,
		Sound:   true,
		Glyphs: Glyphs{
			Up:    string(constant.GlyphUp),
			Down:  string(constant.GlyphDown),
			Left:  string(constant.GlyphLeft),
			Right: string(constant.GlyphRight),
			Body:  string(constant.GlyphBody),
			Food:  string(constant.GlyphFood),
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults; keys absent from data keep their default
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges, backend name and glyph widths
func (c *Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalid, c.Tick)
	}
	if c.Length < 1 {
		return fmt.Errorf("%w: length must be at least 1, got %d", ErrInvalid, c.Length)
	}
	switch c.Backend {
	case constant.BackendANSI, constant.BackendTcell:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}

	glyphs := []struct {
		name, value string
	}{
		{"up", c.Glyphs.Up},
		{"down", c.Glyphs.Down},
		{"left", c.Glyphs.Left},
		{"right", c.Glyphs.Right},
		{"body", c.Glyphs.Body},
		{"food", c.Glyphs.Food},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: glyph %s must be a single character, got %q", ErrInvalid, g.name, g.value)
		}
	}
	return nil
}

// GlyphSet converts the table for the snake formatter. Call after Validate.
func (c *Config) GlyphSet() snake.GlyphSet {
	return snake.GlyphSet{
		Up:    firstRune(c.Glyphs.Up),
		Down:  firstRune(c.Glyphs.Down),
		Left:  firstRune(c.Glyphs.Left),
		Right: firstRune(c.Glyphs.Right),
		Body:  firstRune(c.Glyphs.Body),
	}
}

// FoodGlyph returns the food marker
func (c *Config) FoodGlyph() rune {
	return firstRune(c.Glyphs.Food)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
