// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import "image/color"

const (
	limitLabelGap   = 2 // vertical gap between a vertical line's label and the content edge
	limitLabelInset = 4 // horizontal inset of a horizontal line's label from the content edge
)

// LimitLine marks a threshold value across the content area.
type LimitLine struct {
	Value     float32
	LineWidth float32
	Color     color.Color

	// Dash lengths alternate on and off, starting at DashPhase. Empty means
	// solid.
	Dash      []float32
	DashPhase float32

	Label         string
	LabelPosition LabelPosition
	Font          Font
	TextColor     color.Color

	XOffset, YOffset float32

	Disabled bool
}

// NewLimitLine returns a limit line at value with default styling.
func NewLimitLine(value float32, label string) LimitLine {
	return LimitLine{
		Value:         value,
		LineWidth:     2,
		Color:         color.RGBA{R: 237, G: 91, B: 91, A: 255},
		Label:         label,
		LabelPosition: LabelRightTop,
		Font:          Font{Size: 10},
		TextColor:     color.Black,
		XOffset:       5,
		YOffset:       5,
	}
}

// SetDash sets the dash pattern. A zero on or off length clears it.
func (l *LimitLine) SetDash(on, off, phase float32) {
	if on <= 0 || off <= 0 {
		l.Dash, l.DashPhase = nil, 0
		return
	}
	l.Dash, l.DashPhase = []float32{on, off}, phase
}

// LimitLineLayout is a planned limit line.
type LimitLineLayout struct {
	Line  Segment
	Clip  RectType
	Width float32
	Color color.Color

	Dash      []float32
	DashPhase float32

	// Label fields are zero when the line has no label.
	Label       string
	LabelFont   Font
	LabelColor  color.Color
	LabelOrigin PointType // baseline point the text is aligned at
	LabelAlign  Align
}

func (l LimitLineLayout) HasLabel() bool {
	return l.Label != ""
}

func (r *renderer) layoutLimitLines(dir Direction) []LimitLineLayout {
	if !r.axis.shows(LayerLimitLines) {
		return nil
	}
	var out []LimitLineLayout
	for _, l := range r.axis.LimitLines {
		if l.Disabled {
			continue
		}
		out = append(out, r.layoutLimitLine(dir, l))
	}
	return out
}

func (r *renderer) layoutLimitLine(dir Direction, l LimitLine) LimitLineLayout {
	pts := r.limitBuf[:]
	coord := 0
	if dir == Horizontal {
		pts[0], pts[1] = l.Value, 0
	} else {
		pts[0], pts[1] = 0, l.Value
		coord = 1
	}
	r.trans.PointValuesToPixel(pts)
	return planLimitLine(dir, l, pts[coord], r.vp.ContentRect(), r.m)
}

// planLimitLine lays out l at the pixel coordinate pixel. Lines of a
// horizontal axis are vertical and the reverse.
func planLimitLine(
	dir Direction,
	l LimitLine,
	pixel float32,
	content RectType,
	m Measurer,
) LimitLineLayout {
	out := LimitLineLayout{
		Width:     l.LineWidth,
		Color:     l.Color,
		Dash:      l.Dash,
		DashPhase: l.DashPhase,
	}

	if dir == Horizontal {
		out.Line = Segment{
			From: PointType{pixel, content.Bottom},
			To:   PointType{pixel, content.Top},
		}
		out.Clip = content.Inset(-l.LineWidth, 0)
	} else {
		out.Line = Segment{
			From: PointType{content.Left, pixel},
			To:   PointType{content.Right, pixel},
		}
		out.Clip = content.Inset(0, -l.LineWidth)
	}

	if l.Label == "" {
		return out
	}
	out.Label = l.Label
	out.LabelFont = l.Font
	out.LabelColor = l.TextColor

	h := m.Measure(l.Label, l.Font).Ht
	spec := l.LabelPosition.spec()

	var x, y float32
	if dir == Horizontal {
		dx := l.LineWidth + l.XOffset
		dy := limitLabelGap + l.YOffset
		if spec.right {
			x, out.LabelAlign = pixel+dx, AlignLeft
		} else {
			x, out.LabelAlign = pixel-dx, AlignRight
		}
		if spec.top {
			y = content.Top + dy + h
		} else {
			y = content.Bottom - dy
		}
	} else {
		dx := limitLabelInset + l.XOffset
		dy := l.LineWidth + h + l.YOffset
		if spec.right {
			x, out.LabelAlign = content.Right-dx, AlignRight
		} else {
			x, out.LabelAlign = content.Left+dx, AlignLeft
		}
		if spec.top {
			y = pixel - dy + h
		} else {
			y = pixel + dy
		}
	}
	out.LabelOrigin = PointType{x, y}
	return out
}
