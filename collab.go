// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

// Transformer maps between data space and pixel space for the current
// viewport.
type Transformer interface {
	// PointValuesToPixel converts interleaved x, y data values to pixels in
	// place. Order is preserved.
	PointValuesToPixel(pts []float32)

	// ValuesByTouchPoint returns the data values under the pixel (x, y).
	ValuesByTouchPoint(x, y float32) PointType
}

// Viewport exposes the content rectangle of the chart and its zoom state.
// Layout only reads from it.
type Viewport interface {
	ContentRect() RectType
	ChartWidth() float32
	ChartHeight() float32
	OffsetLeft() float32
	OffsetRight() float32
	InBoundsX(x float32) bool
	InBoundsY(y float32) bool
	IsFullyZoomedOutX() bool
	IsFullyZoomedOutY() bool
}

// Measurer measures text. Measure returns a zero size for empty text and a
// positive finite size otherwise.
type Measurer interface {
	Measure(text string, f Font) SizeType
	Metrics(f Font) FontMetrics
}
