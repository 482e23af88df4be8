// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit simulation kernel functionality.

package math32

// Triangle represents a triangle made of three vertices.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle a, b, c, wound so that
// the vertices appear counterclockwise when viewed from the front.
// A degenerate triangle returns the zero vector.
func Normal(a, b, c Vector3) Vector3 {
	nv := c.Sub(b).Cross(a.Sub(b))
	if nv.Normalize() == 0 {
		return Vector3{}
	}
	return nv
}

// Normal returns the triangle's normal.
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}

// Plane returns the plane through the triangle, with the normal
// given by [Triangle.Normal].
func (t Triangle) Plane() Plane {
	n := t.Normal()
	return NewPlane(n, n.Dot(t.A))
}

// Box returns the bounding box of the triangle.
func (t Triangle) Box() Box3 {
	b := B3Empty()
	b.ExpandByPoint(t.A)
	b.ExpandByPoint(t.B)
	b.ExpandByPoint(t.C)
	return b
}
