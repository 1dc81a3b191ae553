package axis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withHighlights(l Layer) Layer {
	return l.With(LayerHighlightLabels, true)
}

func TestXHighlightRect(t *testing.T) {
	r, a, _ := newTestXRenderer(PlacementBottom)
	a.Layers = withHighlights(a.Layers)

	hs := r.LayoutHighlights([]Highlight{{X: 50, Y: 10, DrawX: 240, DrawY: 200}})
	require.Len(t, hs, 1)

	h := hs[0]
	require.Equal(t, "50", h.Text)
	require.Equal(t, EdgeBottom, h.Edge)
	// Text origin (234, 312), 12x10, padded by 2.
	require.Equal(t, PointType{234, 312}, h.Origin)
	require.Equal(t, RectType{232, 300, 248, 314}, h.Rect)
}

func TestXHighlightHiddenByDefault(t *testing.T) {
	r, _, _ := newTestXRenderer(PlacementBottom)
	require.Nil(t, r.LayoutHighlights([]Highlight{{X: 50, DrawX: 240}}))
}

func TestXHighlightSkipsOutOfBounds(t *testing.T) {
	r, a, _ := newTestXRenderer(PlacementBottom)
	a.Layers = withHighlights(a.Layers)

	hs := r.LayoutHighlights([]Highlight{
		{X: -50, DrawX: -160},
		{X: 50, DrawX: 240},
		{X: 150, DrawX: 640},
	})
	require.Len(t, hs, 1)
	require.Equal(t, "50", hs[0].Text)
}

func TestXHighlightClamping(t *testing.T) {
	for _, tc := range []struct {
		p     Placement
		check func(t *testing.T, rect, content RectType)
	}{
		{PlacementTopInside, func(t *testing.T, rect, content RectType) {
			require.Equal(t, content.Top, rect.Top)
		}},
		{PlacementBottomInside, func(t *testing.T, rect, content RectType) {
			require.Equal(t, content.Bottom, rect.Bottom)
		}},
		{PlacementTop, func(t *testing.T, rect, content RectType) {
			require.Equal(t, content.Top, rect.Bottom)
		}},
		{PlacementBottom, func(t *testing.T, rect, content RectType) {
			require.Equal(t, content.Bottom, rect.Top)
		}},
	} {
		t.Run(tc.p.String(), func(t *testing.T) {
			r, a, vp := newTestXRenderer(tc.p)
			a.Layers = withHighlights(a.Layers)
			a.YOffset = 0
			a.HighlightPadding = RectType{6, 6, 6, 6}

			hs := r.LayoutHighlights([]Highlight{{X: 0, DrawX: vp.content.Left}})
			require.Len(t, hs, 1)
			tc.check(t, hs[0].Rect, vp.content)
		})
	}
}

func TestXHighlightBothSided(t *testing.T) {
	r, a, _ := newTestXRenderer(PlacementBothSided)
	a.Layers = withHighlights(a.Layers)

	hs := r.LayoutHighlights([]Highlight{{X: 50, DrawX: 240}})
	require.Len(t, hs, 2)
	require.Equal(t, EdgeTop, hs[0].Edge)
	require.Equal(t, EdgeBottom, hs[1].Edge)
	require.LessOrEqual(t, hs[0].Rect.Bottom, float32(20))
	require.GreaterOrEqual(t, hs[1].Rect.Top, float32(300))
}

func TestXHighlightRotated(t *testing.T) {
	r, a, _ := newTestXRenderer(PlacementBottom)
	a.Layers = withHighlights(a.Layers)
	a.LabelRotation = 45
	r.ComputeAxis(0, 100, false)

	hs := r.LayoutHighlights([]Highlight{{X: 50, DrawX: 240}})
	require.Len(t, hs, 1)
	require.Equal(t, float32(45), hs[0].Rotation.Angle)
	require.Equal(t, PointType{-6, 3}, hs[0].Origin)
}

func TestYHighlightRect(t *testing.T) {
	for _, tc := range []struct {
		p    Placement
		want RectType
	}{
		// Text "50" is 12x10 with its baseline at 164.
		{PlacementLeftOutside, RectType{21, 152, 37, 166}},
		{PlacementLeftInside, RectType{43, 152, 59, 166}},
		{PlacementRightOutside, RectType{443, 152, 459, 166}},
		{PlacementRightInside, RectType{421, 152, 437, 166}},
	} {
		t.Run(tc.p.String(), func(t *testing.T) {
			r, a, _ := newTestYRenderer(tc.p)
			a.Layers = withHighlights(a.Layers)

			hs := r.LayoutHighlights([]Highlight{{X: 10, Y: 50, DrawX: 80, DrawY: 160}})
			require.Len(t, hs, 1)
			require.Equal(t, "50", hs[0].Text)
			require.Equal(t, tc.want, hs[0].Rect)
		})
	}
}

func TestYHighlightClamping(t *testing.T) {
	for _, tc := range []struct {
		p     Placement
		check func(t *testing.T, rect, content RectType)
	}{
		{PlacementLeftInside, func(t *testing.T, rect, content RectType) {
			require.Equal(t, content.Left, rect.Left)
		}},
		{PlacementLeftOutside, func(t *testing.T, rect, content RectType) {
			require.Equal(t, content.Left, rect.Right)
		}},
		{PlacementRightInside, func(t *testing.T, rect, content RectType) {
			require.Equal(t, content.Right, rect.Right)
		}},
		{PlacementRightOutside, func(t *testing.T, rect, content RectType) {
			require.Equal(t, content.Right, rect.Left)
		}},
	} {
		t.Run(tc.p.String(), func(t *testing.T) {
			r, a, vp := newTestYRenderer(tc.p)
			a.Layers = withHighlights(a.Layers)
			a.XOffset = 0

			hs := r.LayoutHighlights([]Highlight{{Y: 50, DrawY: 160}})
			require.Len(t, hs, 1)
			tc.check(t, hs[0].Rect, vp.content)
		})
	}
}

func TestYHighlightSkipsOutOfBounds(t *testing.T) {
	r, a, _ := newTestYRenderer(PlacementLeftOutside)
	a.Layers = withHighlights(a.Layers)

	require.Empty(t, r.LayoutHighlights([]Highlight{{Y: 200, DrawY: -260}}))
}
