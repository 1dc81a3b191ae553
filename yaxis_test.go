package axis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestYRenderer(p Placement) (*YRenderer, *YAxis, *fakeViewport) {
	vp, trans := testChart()
	a := NewYAxis()
	a.Position = p
	r := NewYRenderer(vp, trans, testMeasurer, a)
	r.ComputeAxis(0, 100, false)
	return r, a, vp
}

func TestYComputeAxis(t *testing.T) {
	r, _, _ := newTestYRenderer(PlacementLeftOutside)

	require.Equal(t, []float32{0, 20, 40, 60, 80, 100}, r.Ticks().Entries)
	require.Equal(t, float32(18), r.LabelMetrics().Width)
}

func TestYLayoutLabels(t *testing.T) {
	for _, tc := range []struct {
		p     Placement
		x     float32
		align Align
		edge  Edge
	}{
		{PlacementLeftOutside, 35, AlignRight, EdgeLeft},
		{PlacementLeftInside, 45, AlignLeft, EdgeLeft},
		{PlacementRightOutside, 445, AlignLeft, EdgeRight},
		{PlacementRightInside, 435, AlignRight, EdgeRight},
		{Placement(42), 35, AlignRight, EdgeLeft},
	} {
		t.Run(tc.p.String(), func(t *testing.T) {
			r, _, _ := newTestYRenderer(tc.p)
			labels := r.LayoutLabels()
			require.Len(t, labels, 6)

			for i, l := range labels {
				require.Equal(t, tc.x, l.Pos.X)
				require.Equal(t, tc.align, l.Align)
				require.Equal(t, tc.edge, l.Edge)
				require.Equal(t, i, l.Index)
			}

			// The baseline sits a 2.5th of the text height below the tick.
			require.Equal(t, float32(304), labels[0].Pos.Y)
			require.InDelta(t, 24, labels[5].Pos.Y, 1e-4)
		})
	}
}

func TestYLayoutLabelsBox(t *testing.T) {
	r, _, _ := newTestYRenderer(PlacementLeftOutside)
	labels := r.LayoutLabels()

	require.Equal(t, "100", labels[5].Text)
	require.InDelta(t, 35-18, labels[5].Box.Origin.X, 1e-4)

	r, _, _ = newTestYRenderer(PlacementRightOutside)
	labels = r.LayoutLabels()
	require.Equal(t, float32(445), labels[5].Box.Origin.X)
}

func TestYLabelXOffset(t *testing.T) {
	r, a, _ := newTestYRenderer(PlacementLeftOutside)
	a.LabelXOffset = -3

	for _, l := range r.LayoutLabels() {
		require.Equal(t, float32(32), l.Pos.X)
	}
}

func TestYHideEntries(t *testing.T) {
	r, a, _ := newTestYRenderer(PlacementLeftOutside)

	a.HideTopEntry = true
	labels := r.LayoutLabels()
	require.Len(t, labels, 5)
	require.Equal(t, 0, labels[0].Index)
	require.Equal(t, 4, labels[4].Index)

	a.HideBottomEntry = true
	labels = r.LayoutLabels()
	require.Len(t, labels, 4)
	require.Equal(t, 1, labels[0].Index)
	require.Equal(t, 4, labels[3].Index)
}

func TestYLayoutGridLines(t *testing.T) {
	r, _, _ := newTestYRenderer(PlacementLeftOutside)
	grid := r.LayoutGridLines()

	require.Equal(t, RectType{40, 19, 440, 301}, grid.Clip)
	require.Len(t, grid.Lines, 6)
	require.Equal(t, Segment{PointType{40, 300}, PointType{440, 300}}, grid.Lines[0])
}

func TestYLayoutZeroLine(t *testing.T) {
	r, a, _ := newTestYRenderer(PlacementLeftOutside)

	_, _, ok := r.LayoutZeroLine()
	require.False(t, ok)

	a.Layers = a.Layers.With(LayerZeroLine, true)
	a.ZeroLineWidth = 2
	line, clip, ok := r.LayoutZeroLine()
	require.True(t, ok)
	require.Equal(t, Segment{PointType{40, 300}, PointType{440, 300}}, line)
	require.Equal(t, RectType{40, 18, 440, 302}, clip)
}

func TestYLayoutAxisLine(t *testing.T) {
	r, _, _ := newTestYRenderer(PlacementLeftInside)
	require.Equal(t, []Segment{{PointType{40, 20}, PointType{40, 300}}}, r.LayoutAxisLine())

	r, _, _ = newTestYRenderer(PlacementRightOutside)
	require.Equal(t, []Segment{{PointType{440, 20}, PointType{440, 300}}}, r.LayoutAxisLine())
}

func TestYInverted(t *testing.T) {
	vp, _ := testChart()
	vp.zoomedY = true
	a := NewYAxis()
	// Inverted data: 0 at the top, 50 at the bottom of the content.
	trans := linearTrans{ox: 40, sx: 4, oy: 20, sy: -5.6}
	r := NewYRenderer(vp, trans, testMeasurer, a)
	r.ComputeAxis(0, 100, true)

	ts := r.Ticks()
	require.Equal(t, []float32{0, 10, 20, 30, 40, 50}, ts.Entries)
}
