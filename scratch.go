package axis

import (
	"github.com/bits-and-blooms/bitset"
)

// scratch holds the interleaved x, y pixel positions of the ticks of one
// layout pass. The buffer is reused across passes and only reallocated when
// the tick count changes.
type scratch struct {
	pts      []float32
	inBounds bitset.BitSet
}

func (sc *scratch) reset(n int) []float32 {
	if len(sc.pts) != n*2 {
		sc.pts = make([]float32, n*2)
	} else {
		clear(sc.pts)
	}
	sc.inBounds.ClearAll()
	return sc.pts
}

// fillX transforms values placed on the x coordinate.
func (sc *scratch) fillX(trans Transformer, values []float32) []float32 {
	pts := sc.reset(len(values))
	for i, v := range values {
		pts[i*2] = v
	}
	trans.PointValuesToPixel(pts)
	return pts
}

// fillY transforms values placed on the y coordinate.
func (sc *scratch) fillY(trans Transformer, values []float32) []float32 {
	pts := sc.reset(len(values))
	for i, v := range values {
		pts[i*2+1] = v
	}
	trans.PointValuesToPixel(pts)
	return pts
}

// mark records which transformed positions satisfy inBounds.
func (sc *scratch) mark(coord int, inBounds func(float32) bool) {
	for i := 0; i*2+coord < len(sc.pts); i++ {
		if inBounds(sc.pts[i*2+coord]) {
			sc.inBounds.Set(uint(i))
		}
	}
}

func (sc *scratch) len() int {
	return len(sc.pts) / 2
}

func (sc *scratch) x(i int) float32 {
	return sc.pts[i*2]
}

func (sc *scratch) y(i int) float32 {
	return sc.pts[i*2+1]
}

// visible returns the indices marked in bounds, in ascending order.
func (sc *scratch) visible() []int {
	out := make([]int, 0, sc.inBounds.Count())
	for i, ok := sc.inBounds.NextSet(0); ok; i, ok = sc.inBounds.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}
