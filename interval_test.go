package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNiceNum(t *testing.T) {
	for _, tc := range []struct {
		val   float64
		round bool
		want  float64
	}{
		{18.6, true, 20},
		{14, true, 10},
		{35, true, 50},
		{0.0072, true, 0.01},
		{0.0031, true, 0.005},
		{4.2, false, 5},
		{1, false, 1},
		{120, false, 200},
	} {
		require.InDelta(t, tc.want, niceNum(tc.val, tc.round), 1e-12, "niceNum(%g, %t)", tc.val, tc.round)
	}
}

func TestPrecision(t *testing.T) {
	require.Equal(t, 0, Precision(20))
	require.Equal(t, 0, Precision(1))
	require.Equal(t, 1, Precision(0.5))
	require.Equal(t, 2, Precision(0.05))
	require.Equal(t, 3, Precision(0.001))
	require.Equal(t, 0, Precision(0))
	require.Equal(t, 0, Precision(math.Inf(1)))
}

func TestComputeTicksWholeRange(t *testing.T) {
	ts := ComputeTicks(Range{0, 100}, Labeling{LabelCount: 5})

	require.Equal(t, 20.0, ts.Interval)
	require.Equal(t, []float32{0, 20, 40, 60, 80, 100}, ts.Entries)
	require.Equal(t, 0, ts.Decimals)
	require.Empty(t, ts.Centered)
}

func TestComputeTicksExtendPastMax(t *testing.T) {
	ts := ComputeTicks(Range{0, 100}, Labeling{LabelCount: 5, ExtendPastMax: true})

	require.Equal(t, []float32{0, 20, 40, 60, 80, 100, 120}, ts.Entries)
}

func TestComputeTicksRoundsRawInterval(t *testing.T) {
	ts := ComputeTicks(Range{0, 93}, Labeling{LabelCount: 5})

	require.Equal(t, 20.0, ts.Interval)
	require.Equal(t, []float32{0, 20, 40, 60, 80}, ts.Entries)
}

func TestComputeTicksGranularity(t *testing.T) {
	cfg := Labeling{LabelCount: 5, GranularityEnabled: true, Granularity: 5}
	ts := ComputeTicks(Range{0, 10}, cfg)

	require.Equal(t, 5.0, ts.Interval)
	require.Equal(t, []float32{0, 5, 10}, ts.Entries)

	cfg.GranularityEnabled = false
	ts = ComputeTicks(Range{0, 10}, cfg)
	require.Equal(t, 2.0, ts.Interval)
	require.Len(t, ts.Entries, 6)
}

func TestComputeTicksLeadingDigitAboveFive(t *testing.T) {
	ts := ComputeTicks(Range{0, 7}, Labeling{LabelCount: 1})
	require.Equal(t, 10.0, ts.Interval)
	require.Equal(t, []float32{0}, ts.Entries)

	require.Equal(t, 1.0, normalizeInterval(0.7, Labeling{}))
	require.Equal(t, 10.0, normalizeInterval(7, Labeling{}))
	require.Equal(t, 5.0, normalizeInterval(5, Labeling{}))
}

func TestComputeTicksFractional(t *testing.T) {
	ts := ComputeTicks(Range{0.03, 0.97}, Labeling{LabelCount: 4})

	require.InDelta(t, 0.2, ts.Interval, 1e-12)
	require.Equal(t, 1, ts.Decimals)
	require.Len(t, ts.Entries, 4)
	for i, want := range []float32{0.2, 0.4, 0.6, 0.8} {
		require.InDelta(t, want, ts.Entries[i], 1e-6)
	}
}

func TestComputeTicksNegativeRange(t *testing.T) {
	ts := ComputeTicks(Range{-50, 50}, Labeling{LabelCount: 4})

	require.Equal(t, 20.0, ts.Interval)
	require.Equal(t, []float32{-40, -20, 0, 20, 40}, ts.Entries)
	require.False(t, math.Signbit(float64(ts.Entries[2])))
}

func TestComputeTicksDegenerate(t *testing.T) {
	for _, tc := range []struct {
		name string
		r    Range
		n    int
	}{
		{"empty range", Range{5, 5}, 6},
		{"reversed range", Range{10, 0}, 6},
		{"no labels", Range{0, 100}, 0},
		{"infinite", Range{0, float32(math.Inf(1))}, 6},
		{"nan", Range{float32(math.NaN()), 1}, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ts := ComputeTicks(tc.r, Labeling{LabelCount: tc.n})
			require.True(t, ts.Empty())
			require.Zero(t, ts.Interval)
		})
	}
}

func TestComputeTicksForced(t *testing.T) {
	ts := ComputeTicks(Range{0, 93}, Labeling{LabelCount: 4, ForceLabels: true})

	require.Equal(t, 31.0, ts.Interval)
	require.Equal(t, []float32{0, 31, 62, 93}, ts.Entries)

	ts = ComputeTicks(Range{3, 9}, Labeling{LabelCount: 1, ForceLabels: true})
	require.Equal(t, []float32{3}, ts.Entries)
}

func TestComputeTicksCentered(t *testing.T) {
	ts := ComputeTicks(Range{0, 100}, Labeling{LabelCount: 5, CenterLabels: true})

	require.Equal(t, []float32{-20, 0, 20, 40, 60, 80, 100}, ts.Entries)
	require.Equal(t, []float32{-10, 10, 30, 50, 70, 90, 110}, ts.Centered)
	require.Equal(t, ts.Centered, ts.Positions())
}

func TestComputeTicksAnchorAtMin(t *testing.T) {
	ts := ComputeTicks(Range{3, 93}, Labeling{LabelCount: 5, AnchorAtMin: true})

	require.Equal(t, 20.0, ts.Interval)
	require.Equal(t, []float32{3, 23, 43, 63, 83}, ts.Entries)
}

func TestComputeTicksProperties(t *testing.T) {
	for _, r := range []Range{
		{0, 1}, {0, 7}, {-3, 14}, {0.001, 0.0042}, {12, 12.5},
		{-1e6, 3e6}, {250, 251}, {0, 93}, {17, 4096}, {-0.5, 0.25},
	} {
		for n := 1; n <= 25; n++ {
			ts := ComputeTicks(r, Labeling{LabelCount: n})
			require.Greater(t, ts.Interval, 0.0, "%v n=%d", r, n)

			mag := math.Pow10(int(math.Floor(math.Log10(ts.Interval))))
			lead := ts.Interval / mag
			nice := false
			for _, d := range []float64{1, 2, 5, 10} {
				if math.Abs(lead-d) < 1e-6 {
					nice = true
				}
			}
			require.True(t, nice, "%v n=%d interval %g", r, n, ts.Interval)

			for i := 1; i < len(ts.Entries); i++ {
				require.Greater(t, ts.Entries[i], ts.Entries[i-1], "%v n=%d", r, n)
			}
		}
	}
}

func TestVisibleRange(t *testing.T) {
	vp, _ := testChart()
	// x in [25, 75] and y in [10, 60] across the content.
	trans := linearTrans{ox: 40 - 8*25, sx: 8, oy: 300 + 5.6*10, sy: 5.6}
	full := Range{0, 100}

	require.Equal(t, full, VisibleRange(Horizontal, vp, trans, full, false))

	vp.zoomedX, vp.zoomedY = true, true
	x := VisibleRange(Horizontal, vp, trans, full, false)
	require.InDelta(t, 25, x.Min, 1e-4)
	require.InDelta(t, 75, x.Max, 1e-4)

	x = VisibleRange(Horizontal, vp, trans, full, true)
	require.InDelta(t, 75, x.Min, 1e-4)
	require.InDelta(t, 25, x.Max, 1e-4)

	y := VisibleRange(Vertical, vp, trans, full, false)
	require.InDelta(t, 10, y.Min, 1e-4)
	require.InDelta(t, 60, y.Max, 1e-4)

	vp.content.Right = vp.content.Left + 10
	require.Equal(t, full, VisibleRange(Horizontal, vp, trans, full, false))
}
