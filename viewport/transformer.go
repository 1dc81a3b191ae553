// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package viewport

import (
	"github.com/aclements/go-moremath/scale"

	"github.com/kofi-q/axis-go"
)

// Transformer maps data values to pixels of the content rectangle of a
// Handler. Data ranges are first mapped onto [0, 1], then scaled to the
// zoomed content size and shifted by the pan. Pixel y grows downward, so
// larger y values are drawn higher unless the y axis is inverted.
type Transformer struct {
	h    *Handler
	x, y scale.Linear

	invertedY bool
}

var _ axis.Transformer = (*Transformer)(nil)

func NewTransformer(h *Handler) *Transformer {
	return &Transformer{
		h: h,
		x: scale.Linear{Min: 0, Max: 1},
		y: scale.Linear{Min: 0, Max: 1},
	}
}

// SetRanges sets the data ranges shown across the full, unzoomed content
// rectangle.
func (t *Transformer) SetRanges(x, y axis.Range) {
	t.x = scale.Linear{Min: float64(x.Min), Max: float64(x.Max)}
	t.y = scale.Linear{Min: float64(y.Min), Max: float64(y.Max)}
}

// SetInvertedY draws larger y values lower when inverted is true.
func (t *Transformer) SetInvertedY(inverted bool) {
	t.invertedY = inverted
}

func (t *Transformer) InvertedY() bool {
	return t.invertedY
}

// PointValuesToPixel converts interleaved x, y values to pixels in place.
// A trailing odd value is left untouched.
func (t *Transformer) PointValuesToPixel(pts []float32) {
	content := t.h.ContentRect()
	w := float64(content.Width() * t.h.scaleX)
	hgt := float64(content.Height() * t.h.scaleY)
	panX, panY := float64(t.h.panX), float64(t.h.panY)

	for i := 0; i+1 < len(pts); i += 2 {
		x := t.x.Map(float64(pts[i]))*w - panX
		y := t.y.Map(float64(pts[i+1]))*hgt - panY

		pts[i] = content.Left + float32(x)
		if t.invertedY {
			pts[i+1] = content.Top + float32(y)
		} else {
			pts[i+1] = content.Bottom - float32(y)
		}
	}
}

// PixelForValues returns the pixel position of the data point (x, y).
func (t *Transformer) PixelForValues(x, y float32) axis.PointType {
	pts := [2]float32{x, y}
	t.PointValuesToPixel(pts[:])
	return axis.PointType{X: pts[0], Y: pts[1]}
}

// ValuesByTouchPoint returns the data values at pixel (x, y).
func (t *Transformer) ValuesByTouchPoint(x, y float32) axis.PointType {
	content := t.h.ContentRect()
	w := float64(content.Width() * t.h.scaleX)
	hgt := float64(content.Height() * t.h.scaleY)
	if w == 0 || hgt == 0 {
		return axis.PointType{X: float32(t.x.Min), Y: float32(t.y.Min)}
	}

	ux := (float64(x-content.Left) + float64(t.h.panX)) / w

	var dy float64
	if t.invertedY {
		dy = float64(y - content.Top)
	} else {
		dy = float64(content.Bottom - y)
	}
	uy := (dy + float64(t.h.panY)) / hgt

	return axis.PointType{
		X: float32(t.x.Unmap(ux)),
		Y: float32(t.y.Unmap(uy)),
	}
}
