package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/kofi-q/axis-go"
)

func TestBasicFallback(t *testing.T) {
	s := NewFaceSet()
	require.Zero(t, s.Len())

	require.Equal(t, axis.SizeType{Wd: 14, Ht: 13}, s.Measure("AB", axis.Font{Size: 13}))
	require.Equal(t, axis.SizeType{Wd: 28, Ht: 26}, s.Measure("AB", axis.Font{Size: 26}))
	require.Equal(t, axis.SizeType{}, s.Measure("", axis.Font{Size: 13}))

	require.Equal(t, axis.FontMetrics{Ascent: 11, Descent: 2, LineHeight: 13},
		s.Metrics(axis.Font{Size: 13}))
}

func TestGoFaceSet(t *testing.T) {
	s := NewGoFaceSet()
	require.Equal(t, 4, s.Len())

	small := s.Measure("Hello", axis.Font{Size: 12})
	require.Greater(t, small.Wd, float32(0))
	require.Greater(t, small.Ht, float32(0))
	require.Less(t, small.Ht, float32(18))

	large := s.Measure("Hello", axis.Font{Size: 24})
	require.InEpsilon(t, 2*small.Wd, large.Wd, 0.05)

	m := s.Metrics(axis.Font{Size: 12})
	require.Greater(t, m.Ascent, float32(0))
	require.GreaterOrEqual(t, m.LineHeight, m.Ascent+m.Descent-1)
}

func TestLookupFallback(t *testing.T) {
	s := NewGoFaceSet()
	f := axis.Font{Family: "go", Size: 10}
	want := s.Measure("0123", f)

	f.Family = "Go"
	require.Equal(t, want, s.Measure("0123", f))
	f.Family = ""
	require.Equal(t, want, s.Measure("0123", f))
	f.Family = "helvetica"
	require.Equal(t, want, s.Measure("0123", f))

	bold := NewFaceSet()
	bold.MustAdd("go", axis.StyleNone, gobold.TTF)
	f = axis.Font{Family: "go", Style: axis.StyleB, Size: 10}
	require.Equal(t, bold.Measure("0123", f), s.Measure("0123", f))
}

func TestAddReplaces(t *testing.T) {
	s := NewFaceSet()
	require.NoError(t, s.Add("Sans", axis.StyleNone, goregular.TTF))
	f := axis.Font{Family: "sans", Size: 10}
	s.Measure("width", f)

	require.NoError(t, s.Add("sans", axis.StyleNone, gobold.TTF))
	require.Equal(t, 1, s.Len())

	bold := NewFaceSet()
	bold.MustAdd("sans", axis.StyleNone, gobold.TTF)
	require.Equal(t, bold.Measure("width", f), s.Measure("width", f))
}

func TestAddInvalid(t *testing.T) {
	s := NewFaceSet()

	err := s.Add("bad", axis.StyleNone, []byte("not a font"))
	require.ErrorContains(t, err, "unable to parse font file")
	require.Zero(t, s.Len())

	require.Panics(t, func() {
		s.MustAdd("bad", axis.StyleB, nil)
	})
}

func TestConcurrentMeasure(t *testing.T) {
	s := NewGoFaceSet()
	want := s.Measure("100", axis.Font{Size: 11})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			size := float32(9 + i)
			s.Measure("1,000", axis.Font{Size: size})
			s.Metrics(axis.Font{Size: size})
		}()
	}
	wg.Wait()

	require.Equal(t, want, s.Measure("100", axis.Font{Size: 11}))
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "gobi", Key{Family: "Go", Style: axis.StyleB | axis.StyleI}.String())
	require.Equal(t, "go", Key{Family: "go"}.String())
}
