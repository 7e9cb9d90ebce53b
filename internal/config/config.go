// Package config holds the drawing constants, view limits and colors the UI
// and the render command are built with. Values come from Default and may be
// overridden by a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sgthelper/internal/seg"
)

type Config struct {
	Layout Layout `yaml:"layout"`
	Render Render `yaml:"render"`
	View   View   `yaml:"view"`
	Theme  Theme  `yaml:"theme"`
}

// Layout scales the abstract layout space.
type Layout struct {
	UnitX     float64 `yaml:"unit_x"`
	BaseY     float64 `yaml:"base_y"`
	PerFieldY float64 `yaml:"per_field_y"`
}

// Render sizes the bracket glyph and label stacking, in layout units.
type Render struct {
	Inset        float64 `yaml:"inset"`
	TickLen      float64 `yaml:"tick_len"`
	LabelSpacing float64 `yaml:"label_spacing"`
	// CellScale is how many layout units one braille micro-pixel covers at zoom 1.
	CellScale float64 `yaml:"cell_scale"`
}

// View bounds the zoom of the canvas.
type View struct {
	ZoomIn  float64 `yaml:"zoom_in"`
	ZoomOut float64 `yaml:"zoom_out"`
	MaxZoom float64 `yaml:"max_zoom"`
	MinZoom float64 `yaml:"min_zoom"`
}

// Theme colors. Stroke and the font apply to SVG output; the rest color the
// terminal UI.
type Theme struct {
	Stroke     string `yaml:"stroke"`
	Canvas     string `yaml:"canvas"`
	Label      string `yaml:"label"`
	Accent     string `yaml:"accent"`
	Dim        string `yaml:"dim"`
	Error      string `yaml:"error"`
	FontFamily string `yaml:"font_family"`
	FontSize   int    `yaml:"font_size"`
}

func Default() Config {
	return Config{
		Layout: Layout{
			UnitX:     seg.DefaultLayout.UnitX,
			BaseY:     seg.DefaultLayout.BaseY,
			PerFieldY: seg.DefaultLayout.PerFieldY,
		},
		Render: Render{Inset: 3, TickLen: 3, LabelSpacing: 10, CellScale: 2.5},
		View:   View{ZoomIn: 1.25, ZoomOut: 0.8, MaxZoom: 5, MinZoom: 0.05},
		Theme: Theme{
			Stroke:     "#000000",
			Canvas:     "#E6E6E6",
			Label:      "#76E3EA",
			Accent:     "#7C3AED",
			Dim:        "#6B7280",
			Error:      "#F85149",
			FontFamily: "Consolas, monospace",
			FontSize:   10,
		},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Layout.UnitX <= 0:
		return errors.New("layout.unit_x must be positive")
	case c.Layout.BaseY <= 0:
		return errors.New("layout.base_y must be positive")
	case c.Layout.PerFieldY < 0:
		return errors.New("layout.per_field_y must not be negative")
	case c.Render.Inset < 0 || c.Render.TickLen < 0 || c.Render.LabelSpacing < 0:
		return errors.New("render sizes must not be negative")
	case c.Render.CellScale <= 0:
		return errors.New("render.cell_scale must be positive")
	case c.View.ZoomIn <= 1:
		return errors.New("view.zoom_in must be greater than 1")
	case c.View.ZoomOut <= 0 || c.View.ZoomOut >= 1:
		return errors.New("view.zoom_out must be between 0 and 1")
	case c.View.MinZoom <= 0 || c.View.MaxZoom < c.View.MinZoom:
		return errors.New("view zoom bounds are invalid")
	}
	return nil
}

// LayoutParams converts the layout section for the layout engine.
func (c Config) LayoutParams() seg.LayoutParams {
	return seg.LayoutParams{UnitX: c.Layout.UnitX, BaseY: c.Layout.BaseY, PerFieldY: c.Layout.PerFieldY}
}
