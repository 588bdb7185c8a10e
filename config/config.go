// Package config holds render settings: canvas geometry and the visual style
// handed to the SVG backend.
//
// Settings are resolved in order: built-in defaults, then a YAML file, then
// PIANOROLL_* environment variables (a .env file in the working directory is
// loaded first when present).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pianoroll/diagram"
	"pianoroll/render"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PIANOROLL_"

// Config represents a complete render configuration.
type Config struct {
	Layout struct {
		Width        int `yaml:"width"`         // Total canvas width in pixels
		MarginLeft   int `yaml:"margin_left"`   // Space left of the time axis
		MarginRight  int `yaml:"margin_right"`  // Space right of the time axis
		RowHeight    int `yaml:"row_height"`    // Height of one row of haps
		HeaderHeight int `yaml:"header_height"` // Space reserved for the title
		FooterHeight int `yaml:"footer_height"` // Space below the rows when no axis is drawn
		AxisHeight   int `yaml:"axis_height"`   // Space below the rows for the tick axis
	} `yaml:"layout"`
	Colors struct {
		Background string `yaml:"background"` // Canvas fill
		Bright     string `yaml:"bright"`     // Highlighted strip and title
		Dim        string `yaml:"dim"`        // Context strips outside the highlight
	} `yaml:"colors"`
	Font struct {
		Family string `yaml:"family"`
		Size   int    `yaml:"size"`
	} `yaml:"font"`
	Stroke struct {
		Width int `yaml:"width"`
		Dash  int `yaml:"dash"` // Dash length for fragment edges
	} `yaml:"stroke"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	g := diagram.DefaultGeometry()
	cfg.Layout.Width = g.Width
	cfg.Layout.MarginLeft = g.MarginLeft
	cfg.Layout.MarginRight = g.MarginRight
	cfg.Layout.RowHeight = g.RowHeight
	cfg.Layout.HeaderHeight = g.HeaderHeight
	cfg.Layout.FooterHeight = g.FooterHeight
	cfg.Layout.AxisHeight = g.AxisHeight

	s := render.DefaultStyle()
	cfg.Colors.Background = s.Background
	cfg.Colors.Bright = s.Bright
	cfg.Colors.Dim = s.Dim
	cfg.Font.Family = s.FontFamily
	cfg.Font.Size = s.FontSize
	cfg.Stroke.Width = s.StrokeWidth
	cfg.Stroke.Dash = s.Dash
	return cfg
}

// Load resolves the configuration. An empty path skips the file stage.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from PIANOROLL_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"WIDTH":         &c.Layout.Width,
		"MARGIN_LEFT":   &c.Layout.MarginLeft,
		"MARGIN_RIGHT":  &c.Layout.MarginRight,
		"ROW_HEIGHT":    &c.Layout.RowHeight,
		"HEADER_HEIGHT": &c.Layout.HeaderHeight,
		"FOOTER_HEIGHT": &c.Layout.FooterHeight,
		"AXIS_HEIGHT":   &c.Layout.AxisHeight,
		"FONT_SIZE":     &c.Font.Size,
		"STROKE_WIDTH":  &c.Stroke.Width,
		"STROKE_DASH":   &c.Stroke.Dash,
	}
	for name, field := range ints {
		value, ok := lookup(EnvPrefix + name)
		if !ok || value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*field = n
	}

	strs := map[string]*string{
		"BACKGROUND":  &c.Colors.Background,
		"BRIGHT":      &c.Colors.Bright,
		"DIM":         &c.Colors.Dim,
		"FONT_FAMILY": &c.Font.Family,
	}
	for name, field := range strs {
		if value, ok := lookup(EnvPrefix + name); ok && value != "" {
			*field = value
		}
	}
	return nil
}

// Validate checks that the canvas leaves room to draw.
func (c *Config) Validate() error {
	l := c.Layout
	if l.Width <= l.MarginLeft+l.MarginRight {
		return fmt.Errorf("%w: width %d leaves no room inside margins %d+%d", ErrInvalidConfig, l.Width, l.MarginLeft, l.MarginRight)
	}
	if l.RowHeight <= 2 {
		return fmt.Errorf("%w: row_height must be greater than 2, got %d", ErrInvalidConfig, l.RowHeight)
	}
	if l.HeaderHeight < 0 || l.FooterHeight < 0 || l.AxisHeight < 0 {
		return fmt.Errorf("%w: heights must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Geometry returns the layout dimensions.
func (c *Config) Geometry() diagram.Geometry {
	return diagram.Geometry{
		Width:        c.Layout.Width,
		MarginLeft:   c.Layout.MarginLeft,
		MarginRight:  c.Layout.MarginRight,
		RowHeight:    c.Layout.RowHeight,
		HeaderHeight: c.Layout.HeaderHeight,
		FooterHeight: c.Layout.FooterHeight,
		AxisHeight:   c.Layout.AxisHeight,
	}
}

// Style returns the SVG style.
func (c *Config) Style() render.Style {
	return render.Style{
		Background:  c.Colors.Background,
		Bright:      c.Colors.Bright,
		Dim:         c.Colors.Dim,
		FontFamily:  c.Font.Family,
		FontSize:    c.Font.Size,
		StrokeWidth: c.Stroke.Width,
		Dash:        c.Stroke.Dash,
	}
}

// ErrInvalidConfig indicates settings that cannot produce a drawing.
var ErrInvalidConfig = errors.New("invalid config")
