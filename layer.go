// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import "strings"

// Layer is a set of the parts of an axis that can be shown or hidden.
// A hidden layer is skipped before any of its layout is computed.
type Layer uint8

const (
	LayerLabels Layer = 1 << iota
	LayerHighlightLabels
	LayerGridLines
	LayerAxisLine
	LayerLimitLines
	LayerZeroLine

	// LayersDefault is what a new axis shows.
	LayersDefault = LayerLabels | LayerGridLines | LayerAxisLine | LayerLimitLines
)

var layerNames = [...]string{
	"labels",
	"highlight_labels",
	"grid_lines",
	"axis_line",
	"limit_lines",
	"zero_line",
}

// Has reports whether every layer in l2 is set in l.
func (l Layer) Has(l2 Layer) bool {
	return l&l2 == l2
}

// With returns l with l2 shown or hidden.
func (l Layer) With(l2 Layer, visible bool) Layer {
	if visible {
		return l | l2
	}
	return l &^ l2
}

func (l Layer) String() string {
	var names []string
	for i, name := range layerNames {
		if l&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// ParseLayer returns the layer with the given name.
func ParseLayer(name string) (Layer, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range layerNames {
		if n == name {
			return 1 << i, true
		}
	}
	return 0, false
}
