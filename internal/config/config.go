// Package config reads the optional YAML settings file of the viewer.
package config

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	game_log "github.com/pizzicato-game/pizzicato-game.github.io/internal/log"
)

const (
	DefaultTitle = "Finger Position Visualization"
	DefaultTPS   = 60
)

// Config holds viewer settings. Colors maps palette slot names to colors.
type Config struct {
	LogLevel string            `yaml:"log_level"`
	Title    string            `yaml:"title"`
	TPS      int               `yaml:"tps"`
	Colors   map[string]string `yaml:"colors"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{LogLevel: "info", Title: DefaultTitle, TPS: DefaultTPS}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document leaves out.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	if _, ok := game_log.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() game_log.Level {
	return game_log.LevelFromString(c.LogLevel)
}

// ApplyColors overrides entries of palette with the configured colors. Every
// configured slot must already exist in palette.
func (c Config) ApplyColors(palette map[string]*color.RGBA) error {
	slots := make([]string, 0, len(c.Colors))
	for slot := range c.Colors {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	for _, slot := range slots {
		dst, ok := palette[strings.ToLower(slot)]
		if !ok {
			return fmt.Errorf("unknown color slot %q", slot)
		}
		col, err := ParseColor(c.Colors[slot])
		if err != nil {
			return errors.Wrapf(err, "color %q", slot)
		}
		*dst = col
	}
	return nil
}

// ParseColor accepts an SVG color name, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	// Stored premultiplied, as ebiten expects of color.RGBA.
	n := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}
