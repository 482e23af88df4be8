// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/simcore/base/errors"
)

// PlaneType classifies the orientation of a [Plane] normal.
type PlaneType uint8

const (
	// PlaneX is a plane whose normal is exactly +X.
	PlaneX PlaneType = iota

	// PlaneY is a plane whose normal is exactly +Y.
	PlaneY

	// PlaneZ is a plane whose normal is exactly +Z.
	PlaneZ

	// PlaneAnyX is a general plane whose normal is closest to the X axis.
	PlaneAnyX

	// PlaneAnyY is a general plane whose normal is closest to the Y axis.
	PlaneAnyY

	// PlaneAnyZ is a general plane whose normal is closest to the Z axis.
	PlaneAnyZ
)

// IsAxial returns whether planes of this type are axis-aligned
// with a positive unit normal, so that the distance of a point to
// the plane is a single component subtraction.
func (t PlaneType) IsAxial() bool {
	return t < PlaneAnyX
}

// Axis returns the axis the plane type is aligned with or closest to.
func (t PlaneType) Axis() Dims {
	return Dims(t % 3)
}

func (t PlaneType) String() string {
	if t > PlaneAnyZ {
		return fmt.Sprintf("PlaneType(%d)", uint8(t))
	}
	if t.IsAxial() {
		return t.Axis().String()
	}
	return "Any" + t.Axis().String()
}

// Side is the result of classifying a box against a [Plane].
// Its values are bit flags: [Straddle] is the union of [Front] and [Back].
type Side uint8

const (
	// Front is set when some part of the box is on or in front of the plane.
	Front Side = 1

	// Back is set when some part of the box is behind the plane.
	Back Side = 2

	// Straddle means that the box crosses the plane.
	Straddle = Front | Back
)

func (s Side) String() string {
	switch s {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Straddle:
		return "Straddle"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Plane is an oriented plane: the set of points p with Normal·p == Dist.
// Points with Normal·p > Dist are in front of the plane.
//
// Type and SignBits are caches derived from Normal, used to speed up
// classification. They must be re-derived whenever Normal changes:
// use [NewPlane], [Plane.SetNormal], or call [Plane.Update] after
// writing Normal directly.
type Plane struct {
	// Normal is the plane normal, conventionally of unit length.
	Normal Vector3

	// Dist is the signed offset of the plane from the origin along Normal.
	Dist float32

	// Type is the orientation class of Normal.
	Type PlaneType

	// SignBits has bit i set iff component i of Normal is negative.
	SignBits uint8
}

// NewPlane returns a new [Plane] with the given normal and offset,
// with Type and SignBits derived from the normal.
func NewPlane(normal Vector3, dist float32) Plane {
	p := Plane{Normal: normal, Dist: dist}
	p.Update()
	return p
}

// SetNormal sets the plane normal and re-derives Type and SignBits.
func (p *Plane) SetNormal(normal Vector3) {
	p.Normal = normal
	p.Update()
}

// Update re-derives Type and SignBits from Normal.
func (p *Plane) Update() {
	p.Type = PlaneTypeOf(p.Normal)
	p.SignBits = SignBitsOf(p.Normal)
}

// PlaneTypeOf returns the [PlaneType] of the given normal.
func PlaneTypeOf(normal Vector3) PlaneType {
	switch {
	case normal.X == 1 && normal.Y == 0 && normal.Z == 0:
		return PlaneX
	case normal.Y == 1 && normal.X == 0 && normal.Z == 0:
		return PlaneY
	case normal.Z == 1 && normal.X == 0 && normal.Y == 0:
		return PlaneZ
	}
	a := normal.Abs()
	if a.X >= a.Y && a.X >= a.Z {
		return PlaneAnyX
	}
	if a.Y >= a.Z {
		return PlaneAnyY
	}
	return PlaneAnyZ
}

// SignBitsOf returns the sign bit pattern of the given normal:
// bit i is set iff component i is negative.
func SignBitsOf(normal Vector3) uint8 {
	var bits uint8
	if normal.X < 0 {
		bits |= 1
	}
	if normal.Y < 0 {
		bits |= 2
	}
	if normal.Z < 0 {
		bits |= 4
	}
	return bits
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane{Normal: %v, Dist: %v, Type: %v, SignBits: %d}", p.Normal, p.Dist, p.Type, p.SignBits)
}

// DistanceToPoint returns the signed distance of the point to the plane:
// positive in front, negative behind.
func (p *Plane) DistanceToPoint(point Vector3) float32 {
	if p.Type.IsAxial() {
		return point.Dim(p.Type.Axis()) - p.Dist
	}
	return p.Normal.Dot(point) - p.Dist
}

// BoxSide classifies the given box against the plane, returning
// [Front] if the box is entirely on or in front of it, [Back] if the
// box is entirely behind it, and [Straddle] otherwise.
//
// Axial planes compare Dist against the box extents on the plane axis.
// General planes compute the distance of the corner furthest along the
// normal (dist1) and of the opposite corner (dist2), with the corners
// selected by SignBits. An out-of-range SignBits is an internal
// consistency violation and aborts through [errors.Fatalf].
func (p *Plane) BoxSide(box Box3) Side {
	if p.Type.IsAxial() {
		ax := p.Type.Axis()
		if p.Dist <= box.Min.Dim(ax) {
			return Front
		}
		if p.Dist >= box.Max.Dim(ax) {
			return Back
		}
		return Straddle
	}
	if p.SignBits > 7 {
		errors.Fatalf("math32.Plane.BoxSide: bad signbits %d", p.SignBits)
	}
	dist1 := p.Normal.Dot(box.Corner(p.SignBits))
	dist2 := p.Normal.Dot(box.Corner(^p.SignBits & 7))
	return sides(dist1, dist2, p.Dist)
}

// BoxSideSigns is [Plane.BoxSide] for general planes without the
// SignBits cache: the corners are chosen by testing the sign of each
// normal component. It gives the same result as BoxSide on a plane
// whose caches are current.
func (p *Plane) BoxSideSigns(box Box3) Side {
	n := p.Normal
	var far, near Vector3
	for d := X; d < DimsN; d++ {
		if n.Dim(d) >= 0 {
			far.SetDim(d, box.Max.Dim(d))
			near.SetDim(d, box.Min.Dim(d))
		} else {
			far.SetDim(d, box.Min.Dim(d))
			near.SetDim(d, box.Max.Dim(d))
		}
	}
	return sides(n.Dot(far), n.Dot(near), p.Dist)
}

// sides combines the far and near corner distances into a [Side].
func sides(dist1, dist2, dist float32) Side {
	var s Side
	if dist1 >= dist {
		s = Front
	}
	if dist2 < dist {
		s |= Back
	}
	return s
}

// ProjectPointOnPlane returns the projection of point p onto the plane
// through the origin with the given normal, which need not be unit length.
func ProjectPointOnPlane(p, normal Vector3) Vector3 {
	d := normal.Dot(p) / normal.Dot(normal)
	return p.Sub(normal.MulScalar(d))
}

// PerpendicularVector returns a unit vector perpendicular to src,
// which must be of unit length. It projects the coordinate axis least
// aligned with src onto the plane orthogonal to src and normalizes it.
func PerpendicularVector(src Vector3) Vector3 {
	pos := X
	minelem := float32(1)
	for d := X; d < DimsN; d++ {
		if a := Abs(src.Dim(d)); a < minelem {
			pos = d
			minelem = a
		}
	}
	var axis Vector3
	axis.SetDim(pos, 1)
	dst := ProjectPointOnPlane(axis, src)
	dst.Normalize()
	return dst
}
