// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

// YAxis configures a vertical axis.
type YAxis struct {
	Axis

	Position Placement

	HideTopEntry    bool // skip the label of the highest tick
	HideBottomEntry bool // skip the label of the lowest tick

	// LabelXOffset moves the label text horizontally without moving the
	// highlight labels.
	LabelXOffset float32

	ZeroLineWidth float32
}

// NewYAxis returns a vertical axis with default settings: labels outside
// the left content edge.
func NewYAxis() *YAxis {
	a := &YAxis{
		Axis:          defaultAxis(),
		Position:      PlacementLeftOutside,
		ZeroLineWidth: 1,
	}
	a.YOffset = 0
	return a
}

// YRenderer lays out a vertical axis.
type YRenderer struct {
	renderer
	y *YAxis

	zero [2]float32
}

func NewYRenderer(vp Viewport, trans Transformer, m Measurer, a *YAxis) *YRenderer {
	return &YRenderer{
		renderer: renderer{vp: vp, trans: trans, m: m, axis: &a.Axis},
		y:        a,
	}
}

// ComputeAxis plans the ticks for the data range [min, max], narrowed to
// the visible part when the chart is zoomed, and measures the labels.
// inverted tells that values grow against the pixel direction.
func (r *YRenderer) ComputeAxis(min, max float32, inverted bool) {
	r.computeTicks(Vertical, min, max, inverted)
	r.computeSize(0)
}

func (r *YRenderer) edge() edgeSpec {
	p := r.y.Position
	if p.Direction() != Vertical {
		p = PlacementLeftOutside
	}
	return p.edges()[0]
}

// labelX returns the x coordinate label text is aligned at, before
// LabelXOffset.
func (r *YRenderer) labelX(e edgeSpec) float32 {
	return e.edge.of(r.vp.ContentRect()) + e.offsetSign()*r.y.XOffset
}

// labelYOffset moves the text baseline below the tick so the digits are
// vertically centered on it.
func (r *YRenderer) labelYOffset() float32 {
	return r.m.Measure("A", r.y.Font).Ht/2.5 + r.y.YOffset
}

// alignedOrigin returns the left edge of text of the given width aligned
// at x.
func alignedOrigin(x, width float32, align Align) float32 {
	switch align {
	case AlignRight:
		return x - width
	case AlignCenter:
		return x - width/2
	}
	return x
}

// LayoutLabels places the labels of the ticks that fall within the content
// height.
func (r *YRenderer) LayoutLabels() []Label {
	if !r.y.shows(LayerLabels) || r.ticks.Empty() {
		return nil
	}

	e := r.edge()
	x := r.labelX(e) + r.y.LabelXOffset
	yOffset := r.labelYOffset()

	r.labels.fillY(r.trans, r.ticks.Entries)
	r.labels.mark(1, r.vp.InBoundsY)

	from, to := 0, r.ticks.Len()
	if r.y.HideBottomEntry {
		from++
	}
	if r.y.HideTopEntry {
		to--
	}

	var labels []Label
	for _, i := range r.labels.visible() {
		if i < from || i >= to {
			continue
		}
		value := r.ticks.Entries[i]
		text := r.format(value)
		width := r.m.Measure(text, r.y.Font).Wd

		p := PointType{x, r.labels.y(i) + yOffset}
		labels = append(labels, Label{
			Index: i,
			Value: value,
			Text:  text,
			Pos:   p,
			Align: e.align,
			Edge:  e.edge,
			Box: TextBox{
				Origin: PointType{alignedOrigin(p.X, width, e.align), p.Y},
			},
		})
	}
	return labels
}

// LayoutGridLines returns a horizontal grid line per tick, from the left
// chart offset to the right content edge.
func (r *YRenderer) LayoutGridLines() GridLayout {
	if !r.y.shows(LayerGridLines) || r.ticks.Empty() {
		return GridLayout{}
	}

	content := r.vp.ContentRect()
	r.grid.fillY(r.trans, r.ticks.Entries)

	grid := GridLayout{
		Clip:  content.Inset(0, -r.y.GridLineWidth),
		Width: r.y.GridLineWidth,
		Lines: make([]Segment, r.grid.len()),
	}
	for i := range grid.Lines {
		y := r.grid.y(i)
		grid.Lines[i] = Segment{
			From: PointType{r.vp.OffsetLeft(), y},
			To:   PointType{content.Right, y},
		}
	}
	return grid
}

// LayoutZeroLine returns the horizontal line through the value zero. ok is
// false when the zero line is hidden.
func (r *YRenderer) LayoutZeroLine() (line Segment, clip RectType, ok bool) {
	if !r.y.shows(LayerZeroLine) {
		return Segment{}, RectType{}, false
	}

	content := r.vp.ContentRect()
	r.zero = [2]float32{}
	r.trans.PointValuesToPixel(r.zero[:])
	y := r.zero[1]

	line = Segment{
		From: PointType{content.Left, y},
		To:   PointType{content.Right, y},
	}
	return line, content.Inset(0, -r.y.ZeroLineWidth), true
}

// LayoutAxisLine returns the axis line along the content edge the axis is
// placed at.
func (r *YRenderer) LayoutAxisLine() []Segment {
	if !r.y.shows(LayerAxisLine) {
		return nil
	}

	content := r.vp.ContentRect()
	x := r.edge().edge.of(content)
	return []Segment{{
		From: PointType{x, content.Top},
		To:   PointType{x, content.Bottom},
	}}
}

// LayoutLimitLines plans the enabled limit lines of the axis.
func (r *YRenderer) LayoutLimitLines() []LimitLineLayout {
	return r.layoutLimitLines(Vertical)
}

// LayoutLimitLine plans l against this axis. It returns false for disabled
// lines.
func (r *YRenderer) LayoutLimitLine(l LimitLine) (LimitLineLayout, bool) {
	if l.Disabled {
		return LimitLineLayout{}, false
	}
	return r.layoutLimitLine(Vertical, l), true
}
