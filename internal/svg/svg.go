// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package svg renders laid-out axis frames as SVG documents.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo/float"

	"github.com/kofi-q/axis-go"
)

// errWriter keeps the first write error, since svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

// canvas is an svgo document that hands out clip path ids.
type canvas struct {
	*svgo.SVG

	out   *errWriter
	clips int
}

func newCanvas(w io.Writer, width, height float32) *canvas {
	out := &errWriter{w: w}
	c := &canvas{SVG: svgo.New(out), out: out}
	c.Start(float64(width), float64(height))
	return c
}

// close ends the document and reports the first write error.
func (c *canvas) close() error {
	c.End()
	return c.out.err
}

// clip defines a clip path covering r and returns the attribute that applies
// it to an element.
func (c *canvas) clip(r axis.RectType) string {
	id := "c" + strconv.Itoa(c.clips)
	c.clips++

	c.Def()
	c.ClipPath(`id="` + id + `"`)
	c.rect(r)
	c.ClipEnd()
	c.DefEnd()
	return `clip-path="url(#` + id + `)"`
}

func (c *canvas) rect(r axis.RectType, style ...string) {
	c.Rect(
		float64(r.Left), float64(r.Top),
		float64(r.Width()), float64(r.Height()),
		style...,
	)
}

func (c *canvas) line(s axis.Segment, style ...string) {
	c.Line(
		float64(s.From.X), float64(s.From.Y),
		float64(s.To.X), float64(s.To.Y),
		style...,
	)
}

func (c *canvas) text(p axis.PointType, s string, style string) {
	c.Text(float64(p.X), float64(p.Y), s, style)
}

// transform opens a group drawn through m. Close it with Gend.
func (c *canvas) transform(m axis.TransformMatrix) {
	c.Gtransform(fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		num(m.A), num(m.B), num(m.C), num(m.D), num(m.E), num(m.F),
	))
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// style builds a CSS declaration list for svgo's style argument.
type style []string

func (s style) String() string { return strings.Join(s, ";") }

func (s style) fill(c color.Color) style {
	return s.paint("fill", c)
}

func (s style) stroke(c color.Color, width float32) style {
	s = s.paint("stroke", c)
	return append(s, "stroke-width:"+num(width))
}

func (s style) paint(prop string, c color.Color) style {
	if c == nil {
		return append(s, prop+":none")
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	s = append(s, fmt.Sprintf("%s:#%02x%02x%02x", prop, nc.R, nc.G, nc.B))
	if nc.A != 0xff {
		s = append(s, fmt.Sprintf("%s-opacity:%.3g", prop, float64(nc.A)/0xff))
	}
	return s
}

func (s style) dash(lengths []float32, phase float32) style {
	if len(lengths) == 0 {
		return s
	}
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = num(l)
	}
	s = append(s, "stroke-dasharray:"+strings.Join(parts, ","))
	if phase != 0 {
		s = append(s, "stroke-dashoffset:"+num(phase))
	}
	return s
}

var anchors = [...]string{
	axis.AlignLeft:   "start",
	axis.AlignCenter: "middle",
	axis.AlignRight:  "end",
}

// font sets the text properties. Text is left aligned unless align says
// otherwise.
func (s style) font(f axis.Font, align axis.Align) style {
	if int(align) < len(anchors) && align != axis.AlignLeft {
		s = append(s, "text-anchor:"+anchors[align])
	}
	if f.Size > 0 {
		s = append(s, "font-size:"+num(f.Size)+"px")
	}
	if f.Family != "" {
		s = append(s, "font-family:"+attrEscaper.Replace(f.Family))
	}
	if f.Style&axis.StyleB != 0 {
		s = append(s, "font-weight:bold")
	}
	if f.Style&axis.StyleI != 0 {
		s = append(s, "font-style:italic")
	}
	return s
}

// svgo writes style strings verbatim inside a double-quoted attribute.
var attrEscaper = strings.NewReplacer(`"`, "'", "&", "&amp;", "<", "&lt;")
