// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix3 is a 3x3 matrix in row-major order: m[row][col].
// It is used for pure rotations.
type Matrix3 [3][3]float32

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Matrix3FromColumns returns the matrix with the given column vectors.
func Matrix3FromColumns(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}
}

// RotationZ returns the matrix that, applied to a point, rotates it
// clockwise by the given angle in degrees about the Z axis (it rotates
// the coordinate frame counterclockwise).
func RotationZ(degrees float32) Matrix3 {
	s, c := Sincos(DegToRad(degrees))
	return Matrix3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// Mul returns the matrix product m · other. Applied to a vector, the
// result first applies other and then m.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var out Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][0]*other[0][c] + m[r][1]*other[1][c] + m[r][2]*other[2][c]
		}
	}
	return out
}

// Transpose returns the transpose of m, which is its inverse
// when m is a rotation (orthonormal columns).
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Row returns the given row as a vector.
func (m Matrix3) Row(r int) Vector3 {
	return Vector3{m[r][0], m[r][1], m[r][2]}
}

// MulVector3 returns m · v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

// Matrix3x4 is a 3x4 affine transform in row-major order: a 3x3
// rotation in columns 0-2 and a translation in column 3.
type Matrix3x4 [3][4]float32

// Identity3x4 returns the identity transform.
func Identity3x4() Matrix3x4 {
	return Matrix3x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

// NewMatrix3x4 returns the transform with the given rotation and translation.
func NewMatrix3x4(rot Matrix3, trans Vector3) Matrix3x4 {
	return Matrix3x4{
		{rot[0][0], rot[0][1], rot[0][2], trans.X},
		{rot[1][0], rot[1][1], rot[1][2], trans.Y},
		{rot[2][0], rot[2][1], rot[2][2], trans.Z},
	}
}

// Rotation returns the rotation part of the transform.
func (m Matrix3x4) Rotation() Matrix3 {
	return Matrix3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Translation returns the translation part of the transform.
func (m Matrix3x4) Translation() Vector3 {
	return Vector3{m[0][3], m[1][3], m[2][3]}
}

// Mul returns the composition m · other of the two transforms, treating
// each as a 4x4 matrix with an implicit (0, 0, 0, 1) last row:
// the result applies other first and then m.
func (m Matrix3x4) Mul(other Matrix3x4) Matrix3x4 {
	var out Matrix3x4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][0]*other[0][c] + m[r][1]*other[1][c] + m[r][2]*other[2][c]
		}
		out[r][3] = m[r][0]*other[0][3] + m[r][1]*other[1][3] + m[r][2]*other[2][3] + m[r][3]
	}
	return out
}

// MulPoint returns the point v transformed by m: rotation then translation.
func (m Matrix3x4) MulPoint(v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// MulVector3 returns the direction v rotated by m, ignoring translation.
func (m Matrix3x4) MulVector3(v Vector3) Vector3 {
	return m.Rotation().MulVector3(v)
}
