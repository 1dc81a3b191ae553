// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package viewport keeps the pixel geometry of a chart: its size, the
// content rectangle left after the offsets, and the current zoom and pan.
package viewport

import (
	"math"

	"github.com/kofi-q/axis-go"
)

// Handler tracks the chart size, offsets, zoom and pan. It implements
// axis.Viewport.
type Handler struct {
	content axis.RectType

	chartWidth, chartHeight float32

	scaleX, scaleY       float32
	minScaleX, minScaleY float32
	maxScaleX, maxScaleY float32

	// Pixels of the zoomed content scrolled past, from the minimum value.
	panX, panY float32
}

var _ axis.Viewport = (*Handler)(nil)

func NewHandler() *Handler {
	return &Handler{
		scaleX:    1,
		scaleY:    1,
		minScaleX: 1,
		minScaleY: 1,
		maxScaleX: math.MaxFloat32,
		maxScaleY: math.MaxFloat32,
	}
}

// SetChartDimens resizes the chart and keeps the current offsets.
func (h *Handler) SetChartDimens(width, height float32) {
	left, top := h.OffsetLeft(), h.OffsetTop()
	right, bottom := h.OffsetRight(), h.OffsetBottom()

	h.chartWidth, h.chartHeight = width, height
	h.Restrain(left, top, right, bottom)
}

// Restrain sets the distances between the chart edges and the content
// rectangle.
func (h *Handler) Restrain(left, top, right, bottom float32) {
	h.content = axis.RectType{
		Left:   left,
		Top:    top,
		Right:  h.chartWidth - right,
		Bottom: h.chartHeight - bottom,
	}
	h.limitPan()
}

func (h *Handler) ContentRect() axis.RectType { return h.content }
func (h *Handler) ChartWidth() float32        { return h.chartWidth }
func (h *Handler) ChartHeight() float32       { return h.chartHeight }
func (h *Handler) OffsetLeft() float32        { return h.content.Left }
func (h *Handler) OffsetTop() float32         { return h.content.Top }

func (h *Handler) OffsetRight() float32 {
	return h.chartWidth - h.content.Right
}

func (h *Handler) OffsetBottom() float32 {
	return h.chartHeight - h.content.Bottom
}

func (h *Handler) ContentWidth() float32  { return h.content.Width() }
func (h *Handler) ContentHeight() float32 { return h.content.Height() }

func (h *Handler) ScaleX() float32 { return h.scaleX }
func (h *Handler) ScaleY() float32 { return h.scaleY }

// Pan returns the pixels of zoomed content scrolled past on each axis.
func (h *Handler) Pan() (x, y float32) { return h.panX, h.panY }

// SetMinimumScale sets the smallest zoom factors. Values below 1 are raised
// to 1.
func (h *Handler) SetMinimumScale(x, y float32) {
	h.minScaleX, h.minScaleY = max(x, 1), max(y, 1)
	h.Zoom(h.scaleX, h.scaleY)
}

// SetMaximumScale sets the largest zoom factors. Zero means unbounded.
func (h *Handler) SetMaximumScale(x, y float32) {
	if x <= 0 {
		x = math.MaxFloat32
	}
	if y <= 0 {
		y = math.MaxFloat32
	}
	h.maxScaleX, h.maxScaleY = x, y
	h.Zoom(h.scaleX, h.scaleY)
}

// Zoom sets the zoom factors, clamped to the allowed scale range.
func (h *Handler) Zoom(x, y float32) {
	h.scaleX = min(max(x, h.minScaleX), h.maxScaleX)
	h.scaleY = min(max(y, h.minScaleY), h.maxScaleY)
	h.limitPan()
}

// Translate drags the content by dx, dy pixels. Panning stops at the edges
// of the zoomed content.
func (h *Handler) Translate(dx, dy float32) {
	h.panX -= dx
	h.panY += dy
	h.limitPan()
}

func (h *Handler) limitPan() {
	maxX := h.content.Width() * (h.scaleX - 1)
	maxY := h.content.Height() * (h.scaleY - 1)
	h.panX = min(max(h.panX, 0), max(maxX, 0))
	h.panY = min(max(h.panY, 0), max(maxY, 0))
}

// InBoundsX reports whether x lies within the content width, allowing one
// pixel of slack on either side.
func (h *Handler) InBoundsX(x float32) bool {
	return h.inBoundsLeft(x) && h.inBoundsRight(x)
}

func (h *Handler) inBoundsLeft(x float32) bool {
	return h.content.Left <= x+1
}

func (h *Handler) inBoundsRight(x float32) bool {
	return h.content.Right >= truncHundredth(x)-1
}

// InBoundsY reports whether y lies within the content height. The bottom
// comparison ignores fractions below a hundredth of a pixel.
func (h *Handler) InBoundsY(y float32) bool {
	return h.content.Top <= y && h.content.Bottom >= truncHundredth(y)
}

func (h *Handler) InBounds(x, y float32) bool {
	return h.InBoundsX(x) && h.InBoundsY(y)
}

func truncHundredth(v float32) float32 {
	return float32(math.Trunc(float64(v)*100) / 100)
}

func (h *Handler) IsFullyZoomedOutX() bool {
	return h.scaleX <= h.minScaleX && h.minScaleX <= 1
}

func (h *Handler) IsFullyZoomedOutY() bool {
	return h.scaleY <= h.minScaleY && h.minScaleY <= 1
}

func (h *Handler) IsFullyZoomedOut() bool {
	return h.IsFullyZoomedOutX() && h.IsFullyZoomedOutY()
}
