// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

// Nice number rounding adapted from Nice Numbers for Graph Labels by Paul
// Heckbert from "Graphics Gems", Academic Press, 1990

// Paul Heckbert	2 Dec 88

// https://github.com/erich666/GraphicsGems

// LICENSE

// This code repository predates the concept of Open Source, and predates most
// licenses along such lines. As such, the official license truly is:

// EULA: The Graphics Gems code is copyright-protected. In other words, you
// cannot claim the text of the code as your own and resell it. Using the code
// is permitted in any program, product, or library, non-commercial or
// commercial. Giving credit is not required, though is a nice gesture. The
// code comes as-is, and if there are any flaws or problems with any Gems code,
// nobody involved with Gems - authors, editors, publishers, or webmasters -
// are to be held responsible. Basically, don't be a jerk, and remember that
// anything free comes with no guarantee.

import (
	"math"
)

// Slack used when comparing interval multiples against range bounds.
const tickEpsilon = 1e-9

// Labeling controls how ComputeTicks spaces the ticks of an axis.
type Labeling struct {
	// LabelCount is the desired number of labels. Zero disables ticks.
	LabelCount int

	// GranularityEnabled keeps the interval from dropping below Granularity,
	// which avoids repeated labels once values are rounded for display.
	GranularityEnabled bool
	Granularity        float32

	// ForceLabels emits exactly LabelCount evenly spaced ticks from Min to
	// Max. The interval is then not normalised.
	ForceLabels bool

	// CenterLabels starts one interval early and fills TickSet.Centered with
	// the midpoints between grid lines.
	CenterLabels bool

	// AnchorAtMin generates Min + i*interval instead of the multiples of the
	// interval that fall inside the range.
	AnchorAtMin bool

	// ExtendPastMax appends the first tick beyond Max.
	ExtendPastMax bool
}

// TickSet is the result of interval planning. Entries ascend. Centered is
// either empty or as long as Entries.
type TickSet struct {
	Entries  []float32
	Centered []float32
	Interval float64
	Decimals int
}

func (t TickSet) Len() int {
	return len(t.Entries)
}

func (t TickSet) Empty() bool {
	return len(t.Entries) == 0
}

// Positions returns the values labels are positioned at: the centered
// entries when present, the entries otherwise.
func (t TickSet) Positions() []float32 {
	if len(t.Centered) > 0 {
		return t.Centered
	}
	return t.Entries
}

// niceNum returns a "nice" number approximately equal to x. The number is
// rounded if round is true, converted to its ceiling otherwise.
func niceNum(val float64, round bool) float64 {
	var nf float64

	exp := int(math.Floor(math.Log10(val)))
	var f float64
	if exp < 0 {
		f = val * math.Pow10(-exp)
	} else {
		f = val / math.Pow10(exp)
	}
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3.0:
			nf = 2
		case f < 7.0:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2.0:
			nf = 2
		case f <= 5.0:
			nf = 5
		default:
			nf = 10
		}
	}
	if exp < 0 {
		return nf / math.Pow10(-exp)
	}
	return nf * math.Pow10(exp)
}

// roundToNextSignificant rounds x to the nearest value of the form d*10^k
// with d one of 1, 2, 5 or 10. Zero and non-finite input yield zero.
func roundToNextSignificant(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	if x < 0 {
		return -niceNum(-x, true)
	}
	return niceNum(x, true)
}

// Precision returns an appropriate number of fraction digits for labels
// spaced div apart.
func Precision(div float64) int {
	if !(div > 0) || math.IsInf(div, 0) {
		return 0
	}
	return int(math.Max(-math.Floor(math.Log10(div)), 0))
}

// normalizeInterval applies the granularity floor and moves intervals with a
// leading digit above 5 to the next power of ten.
func normalizeInterval(interval float64, cfg Labeling) float64 {
	if cfg.GranularityEnabled && interval < float64(cfg.Granularity) {
		interval = float64(cfg.Granularity)
	}
	if !(interval > 0) || math.IsInf(interval, 0) {
		return interval
	}

	magnitude := math.Pow10(int(math.Floor(math.Log10(interval))))
	if int(interval/magnitude+tickEpsilon) > 5 {
		// Avoids intervals like 0.9 or 90. Keep the old value when the
		// bump floors to zero.
		if bumped := math.Floor(10 * magnitude); bumped != 0 {
			interval = bumped
		}
	}
	return interval
}

// ComputeTicks plans the ticks of an axis showing r. Empty, reversed and
// non-finite ranges, and a zero label count, produce an empty TickSet.
func ComputeTicks(r Range, cfg Labeling) TickSet {
	span := r.Span()
	if cfg.LabelCount <= 0 || !(span > 0) || math.IsInf(span, 0) {
		return TickSet{}
	}

	if cfg.ForceLabels {
		return forcedTicks(r, span, cfg)
	}

	interval := roundToNextSignificant(span / float64(cfg.LabelCount))
	interval = normalizeInterval(interval, cfg)
	if !(interval > 0) || math.IsInf(interval, 0) {
		return TickSet{Entries: []float32{r.Min}}
	}

	min, max := float64(r.Min), float64(r.Max)

	var first, last float64
	if cfg.AnchorAtMin {
		first = min
		last = max
	} else {
		first = math.Ceil(min/interval) * interval
		last = math.Nextafter(math.Floor(max/interval)*interval, math.Inf(1))
	}
	if cfg.CenterLabels {
		first -= interval
	}

	n := 0
	if last >= first {
		n = int(math.Floor((last-first)/interval+tickEpsilon)) + 1
	}
	if cfg.ExtendPastMax {
		n++
	}

	ts := TickSet{
		Entries:  make([]float32, n),
		Interval: interval,
		Decimals: Precision(interval),
	}
	for i := range ts.Entries {
		v := first + float64(i)*interval
		if v == 0 {
			// Drop negative zero.
			v = 0
		}
		ts.Entries[i] = float32(v)
	}
	if cfg.CenterLabels {
		ts.Centered = centered(ts.Entries, interval)
	}
	return ts
}

func forcedTicks(r Range, span float64, cfg Labeling) TickSet {
	n := cfg.LabelCount
	var interval float64
	if n > 1 {
		interval = span / float64(n-1)
	}

	ts := TickSet{
		Entries:  make([]float32, n),
		Interval: interval,
		Decimals: Precision(interval),
	}
	for i := range ts.Entries {
		ts.Entries[i] = float32(float64(r.Min) + float64(i)*interval)
	}
	if cfg.CenterLabels {
		ts.Centered = centered(ts.Entries, interval)
	}
	return ts
}

func centered(entries []float32, interval float64) []float32 {
	offset := float32(interval / 2)
	out := make([]float32, len(entries))
	for i, v := range entries {
		out[i] = v + offset
	}
	return out
}

// VisibleRange narrows full to the data range currently visible in the
// content rectangle. Outside of a zoom, or when the content is too narrow to
// measure, full is returned unchanged.
func VisibleRange(
	dir Direction,
	vp Viewport,
	trans Transformer,
	full Range,
	inverted bool,
) Range {
	content := vp.ContentRect()
	if content.Width() <= 10 {
		return full
	}

	if dir == Horizontal {
		if vp.IsFullyZoomedOutX() {
			return full
		}
		p1 := trans.ValuesByTouchPoint(content.Left, content.Top)
		p2 := trans.ValuesByTouchPoint(content.Right, content.Top)
		if inverted {
			return Range{p2.X, p1.X}
		}
		return Range{p1.X, p2.X}
	}

	if vp.IsFullyZoomedOutY() {
		return full
	}
	p1 := trans.ValuesByTouchPoint(content.Left, content.Top)
	p2 := trans.ValuesByTouchPoint(content.Left, content.Bottom)
	if inverted {
		return Range{p1.Y, p2.Y}
	}
	return Range{p2.Y, p1.Y}
}
