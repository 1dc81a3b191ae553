// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

// XAxis configures a horizontal axis.
type XAxis struct {
	Axis

	Position Placement

	// AvoidFirstLastClipping moves the first and last labels inward when
	// they would be cut off by the chart edges.
	AvoidFirstLastClipping bool
}

// NewXAxis returns a horizontal axis with default settings: labels above
// the content.
func NewXAxis() *XAxis {
	a := &XAxis{Axis: defaultAxis(), Position: PlacementTop}
	a.YOffset = 4
	return a
}

// XRenderer lays out a horizontal axis.
type XRenderer struct {
	renderer
	x *XAxis
}

func NewXRenderer(vp Viewport, trans Transformer, m Measurer, a *XAxis) *XRenderer {
	return &XRenderer{
		renderer: renderer{vp: vp, trans: trans, m: m, axis: &a.Axis},
		x:        a,
	}
}

// ComputeAxis plans the ticks for the data range [min, max], narrowed to
// the visible part when the chart is zoomed, and measures the labels.
// inverted tells that values grow against the pixel direction.
func (r *XRenderer) ComputeAxis(min, max float32, inverted bool) {
	r.computeTicks(Horizontal, min, max, inverted)
	r.computeSize(r.x.LabelRotation)
}

func (r *XRenderer) edges() []edgeSpec {
	p := r.x.Position
	if p.Direction() != Horizontal {
		p = PlacementBottom
	}
	return p.edges()
}

// labelPos returns the y coordinate labels along e are anchored at.
func (r *XRenderer) labelPos(e edgeSpec) float32 {
	offset := r.x.YOffset
	if e.inside {
		offset += r.metrics.RotatedHeight
	}
	return e.edge.of(r.vp.ContentRect()) + e.offsetSign()*offset
}

// LayoutLabels places the labels of the ticks that fall within the content
// width. Both-sided axes return the top labels followed by the bottom ones.
func (r *XRenderer) LayoutLabels() []Label {
	if !r.x.shows(LayerLabels) || r.ticks.Empty() {
		return nil
	}

	r.labels.fillX(r.trans, r.ticks.Positions())
	r.labels.mark(0, r.vp.InBoundsX)
	visible := r.labels.visible()
	fm := r.m.Metrics(r.x.Font)

	edges := r.edges()
	labels := make([]Label, 0, len(visible)*len(edges))
	for _, e := range edges {
		pos := r.labelPos(e)
		for _, i := range visible {
			value := r.ticks.Entries[i]
			text := r.format(value)
			size := r.m.Measure(text, r.x.Font)

			x := r.labels.x(i)
			if r.x.AvoidFirstLastClipping {
				x = r.avoidClipping(i, x, size.Wd)
			}

			p := PointType{x, pos}
			labels = append(labels, Label{
				Index:    i,
				Value:    value,
				Text:     text,
				Pos:      p,
				Anchor:   e.anchor,
				Align:    e.align,
				Rotation: r.x.LabelRotation,
				Edge:     e.edge,
				Box:      placeText(size, fm, p, e.anchor, r.x.LabelRotation),
			})
		}
	}
	return labels
}

// avoidClipping shifts the first and last labels so their text stays on
// the chart. Other labels are returned unchanged.
func (r *XRenderer) avoidClipping(i int, x, width float32) float32 {
	n := r.ticks.Len()
	switch {
	case i == n-1 && n > 1:
		if width > r.vp.OffsetRight()*2 && x+width > r.vp.ChartWidth() {
			x -= width / 2
		}
	case i == 0:
		if x-width/2 < 0 {
			x += width / 2
		}
	}
	return x
}

// LayoutGridLines returns a vertical grid line per tick, spanning the
// content height.
func (r *XRenderer) LayoutGridLines() GridLayout {
	if !r.x.shows(LayerGridLines) || r.ticks.Empty() {
		return GridLayout{}
	}

	content := r.vp.ContentRect()
	r.grid.fillX(r.trans, r.ticks.Entries)

	grid := GridLayout{
		Clip:  content.Inset(-r.x.GridLineWidth, 0),
		Width: r.x.GridLineWidth,
		Lines: make([]Segment, r.grid.len()),
	}
	for i := range grid.Lines {
		x := r.grid.x(i)
		grid.Lines[i] = Segment{
			From: PointType{x, content.Bottom},
			To:   PointType{x, content.Top},
		}
	}
	return grid
}

// LayoutAxisLine returns the axis line along each content edge the axis is
// placed at.
func (r *XRenderer) LayoutAxisLine() []Segment {
	if !r.x.shows(LayerAxisLine) {
		return nil
	}

	content := r.vp.ContentRect()
	var lines []Segment
	for _, e := range r.edges() {
		y := e.edge.of(content)
		lines = append(lines, Segment{
			From: PointType{content.Left, y},
			To:   PointType{content.Right, y},
		})
	}
	return lines
}

// LayoutLimitLines plans the enabled limit lines of the axis.
func (r *XRenderer) LayoutLimitLines() []LimitLineLayout {
	return r.layoutLimitLines(Horizontal)
}

// LayoutLimitLine plans l against this axis. It returns false for disabled
// lines.
func (r *XRenderer) LayoutLimitLine(l LimitLine) (LimitLineLayout, bool) {
	if l.Disabled {
		return LimitLineLayout{}, false
	}
	return r.layoutLimitLine(Horizontal, l), true
}
