// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValueFormatter turns axis values into label text. decimals is the number
// of fraction digits the tick interval calls for.
type ValueFormatter interface {
	FormatValue(v float32, decimals int) string
}

// ValueFormatterFunc adapts a function to ValueFormatter.
type ValueFormatterFunc func(v float32, decimals int) string

func (f ValueFormatterFunc) FormatValue(v float32, decimals int) string {
	return f(v, decimals)
}

// GroupingFormatter prints values with locale digit grouping, e.g.
// "12,500.5".
type GroupingFormatter struct {
	p *message.Printer
}

// NewGroupingFormatter returns a formatter for the conventions of tag.
func NewGroupingFormatter(tag language.Tag) *GroupingFormatter {
	return &GroupingFormatter{p: message.NewPrinter(tag)}
}

func (f *GroupingFormatter) FormatValue(v float32, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return f.p.Sprintf("%."+strconv.Itoa(decimals)+"f", float64(v))
}

var defaultFormatter ValueFormatter = NewGroupingFormatter(language.English)

// LongestLabel returns the longest label text produced for entries.
func LongestLabel(entries []float32, decimals int, fm ValueFormatter) string {
	if fm == nil {
		fm = defaultFormatter
	}
	var longest string
	var longestLen int
	for _, v := range entries {
		text := fm.FormatValue(v, decimals)
		if n := utf8.RuneCountInString(text); n > longestLen {
			longest, longestLen = text, n
		}
	}
	return longest
}
