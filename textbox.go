// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

// TextBox is where a label is drawn from: left aligned, with its baseline
// at Origin. When Rotation is non-zero, Origin is relative to the rotation
// pivot and the text is drawn under Rotation.Matrix().
type TextBox struct {
	Origin   PointType
	Rotation Rotation
}

// placeText resolves the drawing origin of text measuring size whose anchor
// point is pos. anchor holds the fraction of the text extent that sits at
// pos. Rotated text turns around its center, and the rotated bounding box
// is then moved so that the anchor fraction of it lands on pos.
func placeText(
	size SizeType,
	fm FontMetrics,
	pos PointType,
	anchor PointType,
	angle float32,
) TextBox {
	dx := float32(0)
	dy := fm.Ascent

	if angle != 0 {
		dx -= size.Wd * 0.5
		dy -= fm.LineHeight * 0.5

		pivot := pos
		if anchor.X != 0.5 || anchor.Y != 0.5 {
			rotated := RotatedSize(size.Wd, fm.LineHeight, angle)
			pivot.X -= rotated.Wd * (anchor.X - 0.5)
			pivot.Y -= rotated.Ht * (anchor.Y - 0.5)
		}
		return TextBox{
			Origin:   PointType{dx, dy},
			Rotation: Rotation{Angle: angle, Pivot: pivot},
		}
	}

	dx -= size.Wd * anchor.X
	dy -= fm.LineHeight * anchor.Y
	return TextBox{Origin: pos.Transform(dx, dy)}
}
