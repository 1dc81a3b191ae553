// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import "math"

// SizeType fields Wd and Ht specify the horizontal and vertical extents of a
// laid-out element such as a label.
type SizeType struct {
	Wd, Ht float32
}

// PointType fields X and Y specify the horizontal and vertical coordinates of
// a point in pixel space, or an anchor fraction in [0, 1] when used as an
// anchor.
type PointType struct {
	X, Y float32
}

// Transform moves a point by given X, Y offset
func (p PointType) Transform(x, y float32) PointType {
	return PointType{p.X + x, p.Y + y}
}

// RectType is an axis-aligned rectangle in pixel space. Top is smaller than
// Bottom: pixel y grows downward.
type RectType struct {
	Left, Top, Right, Bottom float32
}

func (r RectType) Width() float32 {
	return r.Right - r.Left
}

func (r RectType) Height() float32 {
	return r.Bottom - r.Top
}

// ContainsY reports whether y lies between Top and Bottom inclusive.
func (r RectType) ContainsY(y float32) bool {
	return y >= r.Top && y <= r.Bottom
}

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom. Negative values grow it.
func (r RectType) Inset(dx, dy float32) RectType {
	return RectType{r.Left + dx, r.Top + dy, r.Right - dx, r.Bottom - dy}
}

// Segment is a straight line between two pixel points.
type Segment struct {
	From, To PointType
}

// Range is a closed interval in data space.
type Range struct {
	Min, Max float32
}

// Span returns Max-Min in double precision.
func (r Range) Span() float64 {
	return float64(r.Max) - float64(r.Min)
}

// Valid reports whether the range is finite and not reversed.
func (r Range) Valid() bool {
	span := r.Span()
	return r.Min <= r.Max && !math.IsNaN(span) && !math.IsInf(span, 0)
}

// Align is the horizontal alignment of text relative to its origin.
type Align uint8

const (
	// AlignLeft draws text starting at the origin.
	AlignLeft Align = iota
	// AlignCenter centers text on the origin.
	AlignCenter
	// AlignRight draws text ending at the origin.
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Direction tells which chart dimension an axis measures.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// Edge names one side of the content rectangle.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return "top"
}

func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// of returns the coordinate of the edge in r.
func (e Edge) of(r RectType) float32 {
	switch e {
	case EdgeBottom:
		return r.Bottom
	case EdgeLeft:
		return r.Left
	case EdgeRight:
		return r.Right
	}
	return r.Top
}

// Style is a font style bit set.
type Style uint8

const (
	StyleNone Style = 0
)

const (
	StyleB Style = 1 << iota
	StyleI
)

func (s Style) String() string {
	switch s & (StyleB | StyleI) {
	case StyleB:
		return "b"
	case StyleI:
		return "i"
	case StyleB | StyleI:
		return "bi"
	}
	return ""
}

// Font identifies the typeface and size text is measured with. An empty
// Family selects the measurer's default face.
type Font struct {
	Family string
	Style  Style
	Size   float32
}

// FontMetrics holds the vertical metrics of a font at a given size.
type FontMetrics struct {
	Ascent     float32
	Descent    float32
	LineHeight float32
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
