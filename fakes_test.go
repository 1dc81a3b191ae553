package axis

import "unicode/utf8"

// linearTrans maps x to ox + sx*x and y to oy - sy*y.
type linearTrans struct {
	ox, sx float32
	oy, sy float32
}

func (t linearTrans) PointValuesToPixel(pts []float32) {
	for i := 0; i+1 < len(pts); i += 2 {
		pts[i] = t.ox + t.sx*pts[i]
		pts[i+1] = t.oy - t.sy*pts[i+1]
	}
}

func (t linearTrans) ValuesByTouchPoint(x, y float32) PointType {
	return PointType{(x - t.ox) / t.sx, (t.oy - y) / t.sy}
}

type fakeViewport struct {
	content       RectType
	width, height float32
	zoomedX       bool
	zoomedY       bool
}

func (v *fakeViewport) ContentRect() RectType    { return v.content }
func (v *fakeViewport) ChartWidth() float32      { return v.width }
func (v *fakeViewport) ChartHeight() float32     { return v.height }
func (v *fakeViewport) OffsetLeft() float32      { return v.content.Left }
func (v *fakeViewport) OffsetRight() float32     { return v.width - v.content.Right }
func (v *fakeViewport) IsFullyZoomedOutX() bool  { return !v.zoomedX }
func (v *fakeViewport) IsFullyZoomedOutY() bool  { return !v.zoomedY }
func (v *fakeViewport) InBoundsY(y float32) bool { return v.content.ContainsY(y) }

func (v *fakeViewport) InBoundsX(x float32) bool {
	return v.content.Left <= x+1 && v.content.Right >= x-1
}

// fixedMeasurer gives every rune the same advance.
type fixedMeasurer struct {
	advance float32
	height  float32
	ascent  float32
}

func (m fixedMeasurer) Measure(text string, f Font) SizeType {
	if text == "" {
		return SizeType{}
	}
	return SizeType{m.advance * float32(utf8.RuneCountInString(text)), m.height}
}

func (m fixedMeasurer) Metrics(f Font) FontMetrics {
	return FontMetrics{
		Ascent:     m.ascent,
		Descent:    m.height - m.ascent,
		LineHeight: m.height,
	}
}

var testMeasurer = fixedMeasurer{advance: 6, height: 10, ascent: 8}

// testChart is a 480x320 chart with a {40, 20, 440, 300} content rectangle
// showing x in [0, 100] and y in [0, 100].
func testChart() (*fakeViewport, linearTrans) {
	vp := &fakeViewport{
		content: RectType{Left: 40, Top: 20, Right: 440, Bottom: 300},
		width:   480,
		height:  320,
	}
	return vp, linearTrans{ox: 40, sx: 4, oy: 300, sy: 2.8}
}
