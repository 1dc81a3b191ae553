// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"strings"
)

// Placement selects the content edge an axis is drawn along and whether its
// labels sit inside or outside the content rectangle.
type Placement uint8

const (
	PlacementTop Placement = iota
	PlacementTopInside
	PlacementBottom
	PlacementBottomInside
	PlacementBothSided
	PlacementLeftOutside
	PlacementLeftInside
	PlacementRightOutside
	PlacementRightInside

	placementCount
)

var placementNames = [placementCount]string{
	PlacementTop:          "top",
	PlacementTopInside:    "top_inside",
	PlacementBottom:       "bottom",
	PlacementBottomInside: "bottom_inside",
	PlacementBothSided:    "both_sided",
	PlacementLeftOutside:  "left",
	PlacementLeftInside:   "left_inside",
	PlacementRightOutside: "right",
	PlacementRightInside:  "right_inside",
}

func (p Placement) String() string {
	if p >= placementCount {
		return fmt.Sprintf("Placement(%d)", uint8(p))
	}
	return placementNames[p]
}

// Direction returns the direction of the axes that accept p.
func (p Placement) Direction() Direction {
	if p >= PlacementLeftOutside {
		return Vertical
	}
	return Horizontal
}

func (p Placement) MarshalText() ([]byte, error) {
	if p >= placementCount {
		return nil, fmt.Errorf("unknown placement %d", uint8(p))
	}
	return []byte(placementNames[p]), nil
}

func (p *Placement) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	name = strings.ReplaceAll(name, "-", "_")
	for i, n := range placementNames {
		if n == name {
			*p = Placement(i)
			return nil
		}
	}
	switch name {
	case "left_outside":
		*p = PlacementLeftOutside
		return nil
	case "right_outside":
		*p = PlacementRightOutside
		return nil
	}
	return fmt.Errorf("unknown placement %q", text)
}

// edgeSpec describes the labels drawn along one content edge.
type edgeSpec struct {
	edge   Edge
	inside bool

	// outward is -1 when moving away from the content crosses toward smaller
	// pixel coordinates (top, left) and +1 otherwise.
	outward float32

	anchor PointType
	align  Align
}

// offsetSign is the direction label offsets are applied in, away from the
// edge: outward for outside labels, inward for inside ones.
func (e edgeSpec) offsetSign() float32 {
	if e.inside {
		return -e.outward
	}
	return e.outward
}

// clampHighlight keeps a highlight background on the correct side of the
// content edge. Inside labels have their far edge held within the content,
// outside labels have their near edge held out of it.
func (e edgeSpec) clampHighlight(r RectType, content RectType) RectType {
	ref := e.edge.of(content)
	switch e.edge {
	case EdgeTop:
		if e.inside {
			r.Top = maxf(r.Top, ref)
		} else {
			r.Bottom = minf(r.Bottom, ref)
		}
	case EdgeBottom:
		if e.inside {
			r.Bottom = minf(r.Bottom, ref)
		} else {
			r.Top = maxf(r.Top, ref)
		}
	default:
		if e.align == AlignRight {
			r.Right = minf(r.Right, ref)
		} else {
			r.Left = maxf(r.Left, ref)
		}
	}
	return r
}

var (
	anchorAbove = PointType{0.5, 1}
	anchorBelow = PointType{0.5, 0}

	edgeTop = edgeSpec{
		edge: EdgeTop, outward: -1, anchor: anchorAbove, align: AlignCenter,
	}
	edgeBottom = edgeSpec{
		edge: EdgeBottom, outward: 1, anchor: anchorBelow, align: AlignCenter,
	}
)

var placements = [placementCount][]edgeSpec{
	PlacementTop: {edgeTop},
	PlacementTopInside: {{
		edge: EdgeTop, inside: true, outward: -1,
		anchor: anchorAbove, align: AlignCenter,
	}},
	PlacementBottom: {edgeBottom},
	PlacementBottomInside: {{
		edge: EdgeBottom, inside: true, outward: 1,
		anchor: anchorBelow, align: AlignCenter,
	}},
	PlacementBothSided: {edgeTop, edgeBottom},
	PlacementLeftOutside: {{
		edge: EdgeLeft, outward: -1, align: AlignRight,
	}},
	PlacementLeftInside: {{
		edge: EdgeLeft, inside: true, outward: -1, align: AlignLeft,
	}},
	PlacementRightOutside: {{
		edge: EdgeRight, outward: 1, align: AlignLeft,
	}},
	PlacementRightInside: {{
		edge: EdgeRight, inside: true, outward: 1, align: AlignRight,
	}},
}

// edges returns the label edges of p. Unknown placements report a vertical
// direction, so they fall back to the default vertical placement.
func (p Placement) edges() []edgeSpec {
	if p >= placementCount {
		return placements[PlacementLeftOutside]
	}
	return placements[p]
}

// Inside reports whether the labels of p are drawn within the content
// rectangle.
func (p Placement) Inside() bool {
	e := p.edges()
	return len(e) == 1 && e[0].inside
}

// LabelPosition places a limit line label relative to the line.
type LabelPosition uint8

const (
	LabelRightTop LabelPosition = iota
	LabelRightBottom
	LabelLeftTop
	LabelLeftBottom
)

var labelPositionNames = [...]string{
	LabelRightTop:    "right_top",
	LabelRightBottom: "right_bottom",
	LabelLeftTop:     "left_top",
	LabelLeftBottom:  "left_bottom",
}

func (p LabelPosition) String() string {
	if int(p) >= len(labelPositionNames) {
		return fmt.Sprintf("LabelPosition(%d)", uint8(p))
	}
	return labelPositionNames[p]
}

func (p LabelPosition) MarshalText() ([]byte, error) {
	if int(p) >= len(labelPositionNames) {
		return nil, fmt.Errorf("unknown label position %d", uint8(p))
	}
	return []byte(labelPositionNames[p]), nil
}

func (p *LabelPosition) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	name = strings.ReplaceAll(name, "-", "_")
	for i, n := range labelPositionNames {
		if n == name {
			*p = LabelPosition(i)
			return nil
		}
	}
	return fmt.Errorf("unknown label position %q", text)
}

// limitLabelSpec is one row of the limit label table.
type limitLabelSpec struct {
	right bool // label on the right of a vertical line or the right content edge
	top   bool // label above a horizontal line or at the top content edge
}

var limitLabels = [...]limitLabelSpec{
	LabelRightTop:    {right: true, top: true},
	LabelRightBottom: {right: true, top: false},
	LabelLeftTop:     {right: false, top: true},
	LabelLeftBottom:  {right: false, top: false},
}

func (p LabelPosition) spec() limitLabelSpec {
	if int(p) >= len(limitLabels) {
		return limitLabels[LabelRightTop]
	}
	return limitLabels[p]
}
