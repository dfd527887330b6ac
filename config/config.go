// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads engine and theme settings from TOML files.
//
// A configuration file looks like:
//
//	[engine]
//	nodes = 4096
//	px_per_inch = 110
//	font = "go"
//	log_level = "debug"
//
//	[theme]
//	background = "#202020"
//	foreground = "white"
//	accent = "cornflowerblue"
//	text_size = 16
//
// Fields missing from the file keep their Default values.
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	"boxui.org/font"
	"boxui.org/font/gofont"
	"boxui.org/font/opentype"
	"boxui.org/font/shaping"
	"boxui.org/layout"
	"boxui.org/text"
	"boxui.org/unit"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Config is the root of a configuration file.
type Config struct {
	Engine Engine `toml:"engine"`
	Theme  Theme  `toml:"theme"`
}

// Engine configures a layout.Context.
type Engine struct {
	// Nodes is the maximum number of boxes per frame.
	Nodes int `toml:"nodes"`
	// Identities is the initial capacity of the identity map.
	Identities int     `toml:"identities"`
	PxPerInch  float32 `toml:"px_per_inch"`
	// Validate enables the checks for contradictory sizes. It defaults
	// to true.
	Validate *bool `toml:"validate"`
	// Font is "go", "gomono" or the path to an OpenType file.
	Font string `toml:"font"`
	// Shaping measures text with a HarfBuzz shaper.
	Shaping  bool   `toml:"shaping"`
	Language string `toml:"language"`
	LogLevel string `toml:"log_level"`
}

// Theme holds the colors and metrics of a user interface.
type Theme struct {
	Background Color   `toml:"background"`
	Foreground Color   `toml:"foreground"`
	Accent     Color   `toml:"accent"`
	Border     Color   `toml:"border"`
	TextSize   int     `toml:"text_size"`
	Radius     float32 `toml:"radius"`
	Spacing    float32 `toml:"spacing"`
}

// Color is a color written as #rrggbb, #rrggbbaa or an SVG color name.
type Color color.NRGBA

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Engine: Engine{
			Nodes:      1024,
			Identities: 256,
			PxPerInch:  unit.PxPerInch,
			Font:       "go",
			Language:   "en",
			LogLevel:   "warn",
		},
		Theme: Theme{
			Background: Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			Foreground: Color{A: 0xff},
			Accent:     Color(rgb(colornames.Steelblue)),
			Border:     Color{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
			TextSize:   16,
			Radius:     4,
			Spacing:    8,
		},
	}
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses a configuration file. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

func (c *Config) validate() error {
	e := &c.Engine
	switch {
	case e.Nodes < 0:
		return fmt.Errorf("negative nodes %d", e.Nodes)
	case e.Identities < 0:
		return fmt.Errorf("negative identities %d", e.Identities)
	case e.PxPerInch < 0:
		return fmt.Errorf("negative px_per_inch %g", e.PxPerInch)
	case c.Theme.TextSize <= 0:
		return fmt.Errorf("text_size %d must be positive", c.Theme.TextSize)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Engine.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	l, err := c.level()
	if err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// Face loads the configured font.
func (c *Config) Face() (font.Face, error) {
	switch c.Engine.Font {
	case "", "go":
		return gofont.Face(), nil
	case "gomono":
		return gofont.Mono(), nil
	}
	src, err := os.ReadFile(c.Engine.Font)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read font: %w", err)
	}
	if c.Engine.Shaping {
		face, err := shaping.Parse(src, c.Engine.Language)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return face, nil
	}
	face, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return face, nil
}

// Options returns the layout options of the configuration, measuring
// text with face.
func (c *Config) Options(face font.Face, logger *slog.Logger) []layout.Option {
	e := &c.Engine
	opts := []layout.Option{
		layout.WithCapacity(e.Nodes, e.Identities),
		layout.WithMetric(unit.Metric{PxPerInch: e.PxPerInch}),
		layout.WithLogger(logger),
	}
	if face != nil {
		opts = append(opts, layout.WithMeasurer(face))
	}
	if e.Validate != nil {
		opts = append(opts, layout.WithValidation(*e.Validate))
	}
	return opts
}

// TextStyle returns the style of body text.
func (t *Theme) TextStyle() text.Style {
	return text.Style{
		Size:  t.TextSize,
		Color: t.Foreground.NRGBA(),
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return fmt.Errorf("unknown color %q", s)
		}
		*c = Color(rgb(named))
		return nil
	}
	col, ok := layout.ParseHexColor(s)
	if !ok {
		return fmt.Errorf("invalid color %q", s)
	}
	*c = Color(col)
	return nil
}

// NRGBA returns c as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

// rgb converts an opaque color.
func rgb(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
