// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svg

import (
	"image/color"
	"io"

	"github.com/kofi-q/axis-go"
)

var (
	gridColor      = color.Gray{Y: 0xdd}
	axisColor      = color.Gray{Y: 0x44}
	labelColor     = color.Black
	contentColor   = color.Gray{Y: 0xfa}
	highlightColor = color.RGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}
	zeroColor      = color.Gray{Y: 0x88}
)

// AxisFrame holds the layout of one axis.
type AxisFrame struct {
	Font axis.Font

	Labels        []axis.Label
	Grid          axis.GridLayout
	AxisLines     []axis.Segment
	AxisLineWidth float32
	LimitLines    []axis.LimitLineLayout
	Highlights    []axis.HighlightLabel

	ZeroLine      *axis.Segment
	ZeroLineClip  axis.RectType
	ZeroLineWidth float32
}

// Frame is a chart with its axes laid out.
type Frame struct {
	Width, Height float32
	Content       axis.RectType
	Axes          []AxisFrame
}

// Write draws f as a complete SVG document. Layers are drawn back to front:
// grid lines, zero lines, axis lines, limit lines, labels and highlights.
func Write(w io.Writer, f *Frame) error {
	c := newCanvas(w, f.Width, f.Height)

	c.rect(f.Content, style{}.fill(contentColor).String())

	for i := range f.Axes {
		drawGrid(c, &f.Axes[i])
	}
	for i := range f.Axes {
		drawZeroLine(c, &f.Axes[i])
	}
	for i := range f.Axes {
		drawAxisLines(c, &f.Axes[i])
	}
	for i := range f.Axes {
		drawLimitLines(c, &f.Axes[i])
	}
	for i := range f.Axes {
		drawLabels(c, &f.Axes[i])
	}
	for i := range f.Axes {
		drawHighlights(c, &f.Axes[i])
	}

	return c.close()
}

func drawGrid(c *canvas, a *AxisFrame) {
	if len(a.Grid.Lines) == 0 {
		return
	}
	c.Group(c.clip(a.Grid.Clip), style{}.stroke(gridColor, a.Grid.Width).String())
	for _, l := range a.Grid.Lines {
		c.line(l)
	}
	c.Gend()
}

func drawZeroLine(c *canvas, a *AxisFrame) {
	if a.ZeroLine == nil {
		return
	}
	c.line(*a.ZeroLine,
		c.clip(a.ZeroLineClip),
		style{}.stroke(zeroColor, a.ZeroLineWidth).String(),
	)
}

func drawAxisLines(c *canvas, a *AxisFrame) {
	if len(a.AxisLines) == 0 {
		return
	}
	c.Gstyle(style{}.stroke(axisColor, a.AxisLineWidth).String())
	for _, l := range a.AxisLines {
		c.line(l)
	}
	c.Gend()
}

func drawLimitLines(c *canvas, a *AxisFrame) {
	for _, l := range a.LimitLines {
		c.line(l.Line,
			c.clip(l.Clip),
			style{}.stroke(l.Color, l.Width).dash(l.Dash, l.DashPhase).String(),
		)
		if l.HasLabel() {
			st := style{}.fill(l.LabelColor).font(l.LabelFont, l.LabelAlign)
			c.text(l.LabelOrigin, l.Label, st.String())
		}
	}
}

func drawLabels(c *canvas, a *AxisFrame) {
	st := style{}.fill(labelColor).font(a.Font, axis.AlignLeft).String()
	for _, l := range a.Labels {
		if l.Box.Rotation.Angle != 0 {
			c.transform(l.Box.Rotation.Matrix())
			c.text(l.Box.Origin, l.Text, st)
			c.Gend()
			continue
		}
		c.text(l.Box.Origin, l.Text, st)
	}
}

func drawHighlights(c *canvas, a *AxisFrame) {
	box := style{}.fill(highlightColor).String()
	st := style{}.fill(color.White).font(a.Font, axis.AlignLeft).String()
	for _, h := range a.Highlights {
		rotated := h.Rotation.Angle != 0
		if rotated {
			c.transform(h.Rotation.Matrix())
		}
		c.rect(h.Rect, box)
		c.text(h.Origin, h.Text, st)
		if rotated {
			c.Gend()
		}
	}
}
