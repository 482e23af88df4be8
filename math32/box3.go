// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit simulation kernel functionality.

package math32

// Box3 represents an axis-aligned 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
// A non-empty box has Min <= Max on every axis.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new [Box3] with empty minimum and maximum values.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// SetFromPoints sets this bounding box from the specified array of points.
func (b *Box3) SetFromPoints(points []Vector3) {
	b.SetEmpty()
	b.ExpandByPoints(points)
}

// ExpandByPoints may expand this bounding box from the specified array of points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for i := 0; i < len(points); i++ {
		b.ExpandByPoint(points[i])
	}
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox may expand this bounding box to include the specified box
func (b *Box3) ExpandByBox(box Box3) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ExpandByVector expands this bounding box by the specified vector
// subtracting from min and adding to max.
func (b *Box3) ExpandByVector(vector Vector3) {
	b.Min.SetSub(vector)
	b.Max.SetAdd(vector)
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Corner returns the corner of the box selected by mask: for each
// axis i, bit i of mask set selects Min, clear selects Max.
// A plane's SignBits used as the mask gives the corner furthest along
// the plane normal; its complement gives the nearest corner.
func (b Box3) Corner(mask uint8) Vector3 {
	c := b.Max
	if mask&1 != 0 {
		c.X = b.Min.X
	}
	if mask&2 != 0 {
		c.Y = b.Min.Y
	}
	if mask&4 != 0 {
		c.Z = b.Min.Z
	}
	return c
}

// Corners returns all eight corners of the box, indexed by the
// [Box3.Corner] mask.
func (b Box3) Corners() [8]Vector3 {
	var cs [8]Vector3
	for i := range cs {
		cs[i] = b.Corner(uint8(i))
	}
	return cs
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Vector3) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}

// IntersectsBox returns if other box intersects this one.
func (b Box3) IntersectsBox(other Box3) bool {
	// using 6 splitting planes to rule out intersections.
	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y ||
		other.Max.Z < b.Min.Z || other.Min.Z > b.Max.Z {
		return false
	}
	return true
}

// Union returns the union with other box.
func (b Box3) Union(other Box3) Box3 {
	other.Min.SetMin(b.Min)
	other.Max.SetMax(b.Max)
	return other
}

// MulMatrix3x4 transforms the vertices of this bounding box by the given
// rotation + translation matrix and returns the resulting spanning Box3
// of the transformed points.
func (b Box3) MulMatrix3x4(m *Matrix3x4) Box3 {
	nb := Box3{}
	for r := 0; r < 3; r++ {
		mn, mx := m[r][3], m[r][3]
		for c := 0; c < 3; c++ {
			lo := m[r][c] * b.Min.Dim(Dims(c))
			hi := m[r][c] * b.Max.Dim(Dims(c))
			mn += Min(lo, hi)
			mx += Max(lo, hi)
		}
		nb.Min.SetDim(Dims(r), mn)
		nb.Max.SetDim(Dims(r), mx)
	}
	return nb
}

// Translate returns translated position of this box by offset.
func (b Box3) Translate(offset Vector3) Box3 {
	nb := Box3{}
	nb.Min = b.Min.Add(offset)
	nb.Max = b.Max.Add(offset)
	return nb
}
