// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

// Highlight is a selected data point. X and Y are data values, DrawX and
// DrawY the pixel position the point is drawn at.
type Highlight struct {
	X, Y         float32
	DrawX, DrawY float32
}

// HighlightLabel is the value label of a highlight on an axis, drawn over a
// background rectangle.
type HighlightLabel struct {
	Text string

	// Rect is the background. For rotated labels it is in the rotated frame,
	// like Origin.
	Rect   RectType
	Origin PointType // left aligned baseline of the text
	Align  Align     // alignment of the text against its axis label position

	Rotation Rotation
	Edge     Edge
}

// highlightEdge returns the edge a horizontal highlight label at pos
// belongs to. Both-sided axes resolve it by comparing pos with the top label
// position.
func (r *XRenderer) highlightEdge(e edgeSpec, pos float32) edgeSpec {
	if r.x.Position != PlacementBothSided {
		return e
	}
	if pos == r.vp.ContentRect().Top-r.x.YOffset {
		return edgeTop
	}
	return edgeBottom
}

// LayoutHighlights places a value label for each highlight whose x lies
// within the content width.
func (r *XRenderer) LayoutHighlights(hs []Highlight) []HighlightLabel {
	if !r.x.shows(LayerHighlightLabels) || len(hs) == 0 {
		return nil
	}

	content := r.vp.ContentRect()
	fm := r.m.Metrics(r.x.Font)
	pad := r.x.HighlightPadding

	var out []HighlightLabel
	for _, e := range r.edges() {
		pos := r.labelPos(e)
		side := r.highlightEdge(e, pos)
		for _, h := range hs {
			if !r.vp.InBoundsX(h.DrawX) {
				continue
			}
			text := r.format(h.X)
			size := r.m.Measure(text, r.x.Font)
			box := placeText(size, fm, PointType{h.DrawX, pos}, e.anchor, r.x.LabelRotation)

			o := box.Origin
			rect := RectType{
				Left:   o.X - pad.Left,
				Top:    o.Y - size.Ht - pad.Top,
				Right:  o.X + size.Wd + pad.Right,
				Bottom: o.Y + pad.Bottom,
			}
			out = append(out, HighlightLabel{
				Text:     text,
				Rect:     side.clampHighlight(rect, content),
				Origin:   o,
				Align:    e.align,
				Rotation: box.Rotation,
				Edge:     side.edge,
			})
		}
	}
	return out
}

// LayoutHighlights places a value label for each highlight whose y lies
// within the content height.
func (r *YRenderer) LayoutHighlights(hs []Highlight) []HighlightLabel {
	if !r.y.shows(LayerHighlightLabels) || len(hs) == 0 {
		return nil
	}

	content := r.vp.ContentRect()
	e := r.edge()
	x := r.labelX(e)
	yOffset := r.labelYOffset()
	pad := r.y.HighlightPadding

	var out []HighlightLabel
	for _, h := range hs {
		if !r.vp.InBoundsY(h.DrawY) {
			continue
		}
		text := r.format(h.Y)
		size := r.m.Measure(text, r.y.Font)
		y := h.DrawY + yOffset

		left := alignedOrigin(x, size.Wd, e.align)
		rect := RectType{
			Left:   left - pad.Left,
			Top:    y - size.Ht - pad.Top,
			Right:  left + size.Wd + pad.Right,
			Bottom: y + pad.Bottom,
		}
		out = append(out, HighlightLabel{
			Text:   text,
			Rect:   e.clampHighlight(rect, content),
			Origin: PointType{left, y},
			Align:  e.align,
			Edge:   e.edge,
		})
	}
	return out
}
