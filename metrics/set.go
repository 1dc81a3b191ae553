// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics measures label text with TrueType faces.
package metrics

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/kofi-q/axis-go"
)

// Key identifies a registered font.
type Key struct {
	Family string
	Style  axis.Style
}

func (k Key) String() string {
	return strings.ToLower(k.Family) + k.Style.String()
}

type faceKey struct {
	Key
	size float32
}

// basicHeight is the pixel height basicfont.Face7x13 is drawn at.
const basicHeight = 13

// FaceSet holds TrueType fonts keyed by family and style and measures text
// with them. Faces are created per size on first use. Fonts that are not
// registered fall back to the default family, then to basicfont.Face7x13
// scaled to the requested size.
//
// FaceSet implements axis.Measurer and is safe for concurrent use.
type FaceSet struct {
	mu sync.Mutex

	fonts  map[Key]*truetype.Font
	faces  map[faceKey]font.Face
	family string // default family

	Hinting font.Hinting
}

var _ axis.Measurer = (*FaceSet)(nil)

func NewFaceSet() *FaceSet {
	return &FaceSet{
		fonts: make(map[Key]*truetype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// NewGoFaceSet returns a set holding the Go fonts under the family "go",
// which is also the default.
func NewGoFaceSet() *FaceSet {
	s := NewFaceSet()
	s.MustAdd("go", axis.StyleNone, goregular.TTF)
	s.MustAdd("go", axis.StyleB, gobold.TTF)
	s.MustAdd("go", axis.StyleI, goitalic.TTF)
	s.MustAdd("go", axis.StyleB|axis.StyleI, gobolditalic.TTF)
	s.SetDefault("go")
	return s
}

// Add parses ttf and registers it for family and style, replacing any font
// registered for the same key.
func (s *FaceSet) Add(family string, style axis.Style, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("unable to parse font file: %w", err)
	}

	key := Key{Family: strings.ToLower(family), Style: style}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fonts[key] = f
	for fk := range s.faces {
		if fk.Key == key {
			delete(s.faces, fk)
		}
	}
	return nil
}

func (s *FaceSet) MustAdd(family string, style axis.Style, ttf []byte) {
	if err := s.Add(family, style, ttf); err != nil {
		panic(fmt.Sprintf(
			"unable to add font family(%s), style(%s): %v",
			family,
			style,
			err,
		))
	}
}

// SetDefault selects the family used for fonts with an empty or unknown
// family.
func (s *FaceSet) SetDefault(family string) {
	s.mu.Lock()
	s.family = strings.ToLower(family)
	s.mu.Unlock()
}

func (s *FaceSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fonts)
}

func (s *FaceSet) lookup(family string, style axis.Style) (Key, *truetype.Font) {
	family = strings.ToLower(family)
	for _, key := range [...]Key{
		{family, style},
		{family, axis.StyleNone},
		{s.family, style},
		{s.family, axis.StyleNone},
	} {
		if f, ok := s.fonts[key]; ok {
			return key, f
		}
	}
	return Key{}, nil
}

// face returns the face for f and the factor its measurements are scaled
// by. Callers hold s.mu.
func (s *FaceSet) face(f axis.Font) (font.Face, float32) {
	key, ttf := s.lookup(f.Family, f.Style)
	if ttf == nil {
		if f.Size <= 0 {
			return basicfont.Face7x13, 1
		}
		return basicfont.Face7x13, f.Size / basicHeight
	}

	fk := faceKey{Key: key, size: f.Size}
	if face, ok := s.faces[fk]; ok {
		return face, 1
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(f.Size),
		Hinting: s.Hinting,
	})
	s.faces[fk] = face
	return face, 1
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Measure returns the advance width of text and the height of its tight
// bounding box.
func (s *FaceSet) Measure(text string, f axis.Font) axis.SizeType {
	if text == "" {
		return axis.SizeType{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	face, k := s.face(f)
	bounds, advance := font.BoundString(face, text)
	return axis.SizeType{
		Wd: toFloat(advance) * k,
		Ht: toFloat(bounds.Max.Y-bounds.Min.Y) * k,
	}
}

func (s *FaceSet) Metrics(f axis.Font) axis.FontMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	face, k := s.face(f)
	m := face.Metrics()
	return axis.FontMetrics{
		Ascent:     toFloat(m.Ascent) * k,
		Descent:    toFloat(m.Descent) * k,
		LineHeight: toFloat(m.Height) * k,
	}
}
