// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
)

// Axis holds the settings shared by horizontal and vertical axes.
type Axis struct {
	Disabled bool  // hides the whole axis
	Layers   Layer // visible parts of the axis

	Labeling Labeling
	Font     Font

	XOffset float32 // label distance from the content edge, horizontally
	YOffset float32 // label distance from the content edge, vertically

	LabelRotation float32 // degrees, clockwise

	GridLineWidth float32
	AxisLineWidth float32

	// HighlightPadding is the space around highlight label text, per edge.
	HighlightPadding RectType

	LimitLines []LimitLine

	// Formatter turns values into label text. nil selects a grouping
	// English formatter.
	Formatter ValueFormatter
}

func defaultAxis() Axis {
	return Axis{
		Layers: LayersDefault,
		Labeling: Labeling{
			LabelCount:  6,
			Granularity: 1,
		},
		Font:             Font{Size: 10},
		XOffset:          5,
		YOffset:          5,
		GridLineWidth:    1,
		AxisLineWidth:    1,
		HighlightPadding: RectType{2, 2, 2, 2},
	}
}

func (a *Axis) shows(l Layer) bool {
	return !a.Disabled && a.Layers.Has(l)
}

func (a *Axis) formatter() ValueFormatter {
	if a.Formatter == nil {
		return defaultFormatter
	}
	return a.Formatter
}

// LabelMetrics is the size of the longest label of an axis, before and after
// rotation, in whole pixels.
type LabelMetrics struct {
	Width         float32
	Height        float32
	RotatedWidth  float32
	RotatedHeight float32
}

// Label is one laid-out axis label.
type Label struct {
	Index int     // tick index
	Value float32 // tick value the text was formatted from
	Text  string

	// Pos is the pixel point the label is anchored to, and Anchor the
	// fraction of the text extent placed there. Vertical axes align text
	// with Align instead of an anchor.
	Pos    PointType
	Anchor PointType
	Align  Align

	Rotation float32
	Edge     Edge

	Box TextBox
}

// GridLayout is the set of grid lines of an axis, to be drawn clipped to
// Clip.
type GridLayout struct {
	Clip  RectType
	Width float32
	Lines []Segment
}

// renderer is the state shared by the axis renderers: the collaborators
// and the buffers reused between layout passes.
type renderer struct {
	vp    Viewport
	trans Transformer
	m     Measurer
	axis  *Axis

	ticks   TickSet
	metrics LabelMetrics

	labels   scratch
	grid     scratch
	limitBuf [2]float32
}

func (r *renderer) computeTicks(dir Direction, min, max float32, inverted bool) {
	visible := VisibleRange(dir, r.vp, r.trans, Range{min, max}, inverted)
	r.ticks = ComputeTicks(visible, r.axis.Labeling)
}

func round(v float32) float32 {
	return float32(math.Floor(float64(v) + 0.5))
}

func (r *renderer) computeSize(angle float32) {
	longest := LongestLabel(r.ticks.Entries, r.ticks.Decimals, r.axis.formatter())

	width := r.m.Measure(longest, r.axis.Font).Wd
	height := r.m.Measure("Q", r.axis.Font).Ht
	rotated := RotatedSize(width, height, angle)

	r.metrics = LabelMetrics{
		Width:         round(width),
		Height:        round(height),
		RotatedWidth:  round(rotated.Wd),
		RotatedHeight: round(rotated.Ht),
	}
}

func (r *renderer) format(v float32) string {
	return r.axis.formatter().FormatValue(v, r.ticks.Decimals)
}

// Ticks returns the ticks of the last ComputeAxis call.
func (r *renderer) Ticks() TickSet {
	return r.ticks
}

// LabelMetrics returns the label size of the last ComputeAxis call.
func (r *renderer) LabelMetrics() LabelMetrics {
	return r.metrics
}

// SetTicks replaces the computed ticks, for hosts that plan ticks
// themselves.
func (r *renderer) SetTicks(ts TickSet) {
	r.ticks = ts
}
