// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
)

// TransformMatrix is an affine transform in pixel space, mapping (x, y) to
// (A*x + C*y + E, B*x + D*y + F).
type TransformMatrix struct {
	A, B, C, D, E, F float32
}

// Identity is the transform that leaves points unchanged.
var Identity = TransformMatrix{1, 0, 0, 1, 0, 0}

// Apply transforms p.
func (tm TransformMatrix) Apply(p PointType) PointType {
	return PointType{
		X: tm.A*p.X + tm.C*p.Y + tm.E,
		Y: tm.B*p.X + tm.D*p.Y + tm.F,
	}
}

// Rotation rotates the following rectangle and text by Angle degrees around
// Pivot. Angles are measured clockwise, since pixel y grows downward. Content
// under a rotation is expressed relative to the pivot.
type Rotation struct {
	Angle float32
	Pivot PointType
}

// IsZero reports whether the rotation leaves content in place.
func (r Rotation) IsZero() bool {
	return r.Angle == 0 && r.Pivot == PointType{}
}

// Matrix returns the transform that first translates local content to the
// pivot, then rotates it by the angle around the pivot.
func (r Rotation) Matrix() TransformMatrix {
	angle := float64(r.Angle) * math.Pi / 180
	var tm TransformMatrix
	tm.A = float32(math.Cos(angle))
	tm.B = float32(math.Sin(angle))
	tm.C = -tm.B
	tm.D = tm.A
	tm.E = r.Pivot.X
	tm.F = r.Pivot.Y
	return tm
}

// RotatedSize returns the extent of the axis-aligned bounding box of a
// width x height rectangle rotated by degrees.
func RotatedSize(width, height, degrees float32) SizeType {
	radians := float64(degrees) * math.Pi / 180
	sin := math.Abs(math.Sin(radians))
	cos := math.Abs(math.Cos(radians))
	w, h := math.Abs(float64(width)), math.Abs(float64(height))
	return SizeType{
		Wd: float32(w*cos + h*sin),
		Ht: float32(w*sin + h*cos),
	}
}
