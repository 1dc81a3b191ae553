// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads chart and axis settings from TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kofi-q/axis-go"
	"github.com/kofi-q/axis-go/viewport"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

const maxLabelCount = 25

type Offsets struct {
	Left   float32 `toml:"left"`
	Top    float32 `toml:"top"`
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
}

// Chart is the pixel geometry of the chart.
type Chart struct {
	Width   float32 `toml:"width"`
	Height  float32 `toml:"height"`
	Offsets Offsets `toml:"offsets"`

	ZoomX float32 `toml:"zoom_x"`
	ZoomY float32 `toml:"zoom_y"`
	PanX  float32 `toml:"pan_x"`
	PanY  float32 `toml:"pan_y"`
}

type LimitLine struct {
	Value     float32            `toml:"value"`
	Label     string             `toml:"label"`
	Position  axis.LabelPosition `toml:"position"`
	LineWidth float32            `toml:"line_width"`
	Color     string             `toml:"color"`
	Dash      []float32          `toml:"dash"`
	FontSize  float32            `toml:"font_size"`
	XOffset   float32            `toml:"x_offset"`
	YOffset   float32            `toml:"y_offset"`
	Disabled  bool               `toml:"disabled"`
}

// Axis holds the settings of one axis and the data range it shows.
type Axis struct {
	Min      float32 `toml:"min"`
	Max      float32 `toml:"max"`
	Inverted bool    `toml:"inverted"`
	Disabled bool    `toml:"disabled"`

	Position axis.Placement `toml:"position"`
	Layers   []string       `toml:"layers"`

	LabelCount    int     `toml:"label_count"`
	ForceLabels   bool    `toml:"force_labels"`
	CenterLabels  bool    `toml:"center_labels"`
	AnchorAtMin   bool    `toml:"anchor_at_min"`
	ExtendPastMax bool    `toml:"extend_past_max"`
	Granularity   float32 `toml:"granularity"`

	Font          string  `toml:"font"`
	FontSize      float32 `toml:"font_size"`
	XOffset       float32 `toml:"x_offset"`
	YOffset       float32 `toml:"y_offset"`
	LabelRotation float32 `toml:"label_rotation"`

	GridLineWidth float32 `toml:"grid_line_width"`
	AxisLineWidth float32 `toml:"axis_line_width"`

	AvoidFirstLastClipping bool    `toml:"avoid_first_last_clipping"`
	HideTopEntry           bool    `toml:"hide_top_entry"`
	HideBottomEntry        bool    `toml:"hide_bottom_entry"`
	LabelXOffset           float32 `toml:"label_x_offset"`
	ZeroLineWidth          float32 `toml:"zero_line_width"`

	LimitLines []LimitLine `toml:"limit_lines"`
}

type Highlight struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

// Config is a chart with one horizontal and one vertical axis.
type Config struct {
	Chart      Chart       `toml:"chart"`
	X          Axis        `toml:"x"`
	Y          Axis        `toml:"y"`
	Highlights []Highlight `toml:"highlights"`
}

// Default returns the settings used for keys missing from a file.
func Default() Config {
	x := axis.NewXAxis()
	y := axis.NewYAxis()
	return Config{
		Chart: Chart{
			Width:   480,
			Height:  320,
			Offsets: Offsets{Left: 48, Top: 24, Right: 24, Bottom: 32},
			ZoomX:   1,
			ZoomY:   1,
		},
		X: fromAxis(&x.Axis, x.Position, 0, 100),
		Y: fromAxis(&y.Axis, y.Position, 0, 100),
	}
}

func fromAxis(a *axis.Axis, p axis.Placement, min, max float32) Axis {
	var granularity float32
	if a.Labeling.GranularityEnabled {
		granularity = a.Labeling.Granularity
	}
	return Axis{
		Min:           min,
		Max:           max,
		Position:      p,
		LabelCount:    a.Labeling.LabelCount,
		Granularity:   granularity,
		FontSize:      a.Font.Size,
		XOffset:       a.XOffset,
		YOffset:       a.YOffset,
		GridLineWidth: a.GridLineWidth,
		AxisLineWidth: a.AxisLineWidth,
		ZeroLineWidth: 1,
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	ch := c.Chart
	if ch.Width <= 0 || ch.Height <= 0 {
		add("chart size %gx%g must be positive", ch.Width, ch.Height)
	}
	o := ch.Offsets
	if o.Left < 0 || o.Top < 0 || o.Right < 0 || o.Bottom < 0 {
		add("chart offsets must not be negative")
	} else if o.Left+o.Right >= ch.Width || o.Top+o.Bottom >= ch.Height {
		add("chart offsets leave no content area")
	}
	if ch.ZoomX < 1 || ch.ZoomY < 1 {
		add("zoom must be at least 1")
	}

	for _, a := range []struct {
		name string
		axis *Axis
		dir  axis.Direction
	}{
		{"x", &c.X, axis.Horizontal},
		{"y", &c.Y, axis.Vertical},
	} {
		errs = append(errs, a.axis.validate(a.name, a.dir)...)
	}
	return errors.Join(errs...)
}

func (a *Axis) validate(name string, dir axis.Direction) []error {
	var errs []error
	add := func(format string, args ...any) {
		args = append([]any{ErrInvalid, name}, args...)
		errs = append(errs, fmt.Errorf("%w: %s."+format, args...))
	}

	if !(axis.Range{Min: a.Min, Max: a.Max}).Valid() {
		add("min %g and max %g do not form a range", a.Min, a.Max)
	}
	if a.LabelCount < 0 || a.LabelCount > maxLabelCount {
		add("label_count %d out of range [0, %d]", a.LabelCount, maxLabelCount)
	}
	if a.Position.Direction() != dir {
		add("position %s does not fit this axis", a.Position)
	}
	if a.XOffset < 0 || a.YOffset < 0 {
		add("offsets must not be negative")
	}
	if a.FontSize <= 0 || math.IsInf(float64(a.FontSize), 0) {
		add("font_size %g must be positive", a.FontSize)
	}
	for _, l := range a.Layers {
		if _, ok := axis.ParseLayer(l); !ok {
			add("layers: unknown layer %q", l)
		}
	}
	for i, l := range a.LimitLines {
		if _, err := parseColor(l.Color); err != nil {
			add("limit_lines[%d].color: %v", i, err)
		}
	}
	return errs
}

// layers returns the configured layers, or the defaults when none are set.
func (a *Axis) layers() axis.Layer {
	if a.Layers == nil {
		return axis.LayersDefault
	}
	var layers axis.Layer
	for _, name := range a.Layers {
		l, _ := axis.ParseLayer(name)
		layers |= l
	}
	return layers
}

func (a *Axis) base() axis.Axis {
	base := axis.Axis{
		Disabled: a.Disabled,
		Layers:   a.layers(),
		Labeling: axis.Labeling{
			LabelCount:         a.LabelCount,
			GranularityEnabled: a.Granularity > 0,
			Granularity:        a.Granularity,
			ForceLabels:        a.ForceLabels,
			CenterLabels:       a.CenterLabels,
			AnchorAtMin:        a.AnchorAtMin,
			ExtendPastMax:      a.ExtendPastMax,
		},
		Font:             axis.Font{Family: a.Font, Size: a.FontSize},
		XOffset:          a.XOffset,
		YOffset:          a.YOffset,
		LabelRotation:    a.LabelRotation,
		GridLineWidth:    a.GridLineWidth,
		AxisLineWidth:    a.AxisLineWidth,
		HighlightPadding: axis.RectType{Left: 2, Top: 2, Right: 2, Bottom: 2},
	}
	for _, l := range a.LimitLines {
		base.LimitLines = append(base.LimitLines, l.limitLine())
	}
	return base
}

func (l LimitLine) limitLine() axis.LimitLine {
	ll := axis.NewLimitLine(l.Value, l.Label)
	ll.LabelPosition = l.Position
	ll.Disabled = l.Disabled
	if l.LineWidth > 0 {
		ll.LineWidth = l.LineWidth
	}
	if l.FontSize > 0 {
		ll.Font.Size = l.FontSize
	}
	if l.XOffset != 0 {
		ll.XOffset = l.XOffset
	}
	if l.YOffset != 0 {
		ll.YOffset = l.YOffset
	}
	if c, err := parseColor(l.Color); err == nil && c != nil {
		ll.Color = c
	}
	if len(l.Dash) == 2 {
		ll.SetDash(l.Dash[0], l.Dash[1], 0)
	}
	return ll
}

// XAxis builds the horizontal axis settings.
func (c *Config) XAxis() *axis.XAxis {
	return &axis.XAxis{
		Axis:                   c.X.base(),
		Position:               c.X.Position,
		AvoidFirstLastClipping: c.X.AvoidFirstLastClipping,
	}
}

// YAxis builds the vertical axis settings.
func (c *Config) YAxis() *axis.YAxis {
	return &axis.YAxis{
		Axis:            c.Y.base(),
		Position:        c.Y.Position,
		HideTopEntry:    c.Y.HideTopEntry,
		HideBottomEntry: c.Y.HideBottomEntry,
		LabelXOffset:    c.Y.LabelXOffset,
		ZeroLineWidth:   c.Y.ZeroLineWidth,
	}
}

// Viewport builds the viewport and transformer for the chart, zoomed and
// panned as configured.
func (c *Config) Viewport() (*viewport.Handler, *viewport.Transformer) {
	h := viewport.NewHandler()
	h.SetChartDimens(c.Chart.Width, c.Chart.Height)
	o := c.Chart.Offsets
	h.Restrain(o.Left, o.Top, o.Right, o.Bottom)
	h.Zoom(c.Chart.ZoomX, c.Chart.ZoomY)
	h.Translate(-c.Chart.PanX, c.Chart.PanY)

	t := viewport.NewTransformer(h)
	t.SetRanges(
		axis.Range{Min: c.X.Min, Max: c.X.Max},
		axis.Range{Min: c.Y.Min, Max: c.Y.Max},
	)
	t.SetInvertedY(c.Y.Inverted)
	return h, t
}

// parseColor reads "#rgb" or "#rrggbb". An empty string yields nil.
func parseColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	switch len(s) {
	case 0:
		return nil, nil
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("bad color %q", s)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("bad color %q", s)
		}
	default:
		return nil, fmt.Errorf("bad color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
