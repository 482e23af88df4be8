// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Indexes of the Euler angles held in a [Vector3] of view angles,
// all in degrees.
const (
	// Pitch is the up / down angle, rotation about the lateral (right) axis.
	Pitch = X

	// Yaw is the left / right angle, rotation about the vertical (Z) axis.
	Yaw = Y

	// Roll is the tilt angle, rotation about the forward axis.
	Roll = Z
)

// Frame is a local coordinate frame: the orthonormal forward, right,
// and up basis vectors of a viewer or an entity, with
// Up = Right × Forward.
//
// Frames are owned by the caller (typically the view system, which
// recomputes one per simulation tick) and are only read by the
// functions of this package.
type Frame struct {
	Forward Vector3
	Right   Vector3
	Up      Vector3
}

// NewFrame returns the [Frame] for the given pitch, yaw, and roll
// angles in degrees, indexed by [Pitch], [Yaw] and [Roll]. Yaw rotates
// about the vertical axis, pitch about the lateral axis, and roll
// about the forward axis. Zero angles give Forward = +X, Right = -Y
// and Up = +Z.
func NewFrame(angles Vector3) Frame {
	sy, cy := Sincos(DegToRad(angles.Dim(Yaw)))
	sp, cp := Sincos(DegToRad(angles.Dim(Pitch)))
	sr, cr := Sincos(DegToRad(angles.Dim(Roll)))

	var f Frame
	f.Forward = Vec3(cp*cy, cp*sy, -sp)
	f.Right = Vec3(-1*sr*sp*cy+-1*cr*-sy, -1*sr*sp*sy+-1*cr*cy, -1*sr*cp)
	f.Up = Vec3(cr*sp*cy+-sr*-sy, cr*sp*sy+-sr*cy, cr*cp)
	return f
}

// ToLocal projects the world-space vector v onto the frame, returning
// (v·Right, v·Up, v·Forward). This is the scalar reference version of
// the transform; see package xform for the dispatched entry point.
func (f *Frame) ToLocal(v Vector3) Vector3 {
	return Vector3{v.Dot(f.Right), v.Dot(f.Up), v.Dot(f.Forward)}
}

// Matrix returns the rotation whose rows are Right, Up and Forward,
// so that f.Matrix().MulVector3(v) == f.ToLocal(v).
func (f *Frame) Matrix() Matrix3 {
	return Matrix3FromColumns(f.Right, f.Up, f.Forward).Transpose()
}

// RotateAroundAxis returns point rotated counterclockwise (right-hand
// rule) by the given angle in degrees about axis, which must be of
// unit length.
//
// It builds an orthonormal frame M whose columns are a vector
// perpendicular to axis, a second perpendicular, and axis itself,
// and applies M · RotationZ(degrees) · Mᵀ, using the transpose as
// the inverse of M.
func RotateAroundAxis(axis, point Vector3, degrees float32) Vector3 {
	vf := axis
	vr := PerpendicularVector(axis)
	vup := vr.Cross(vf)

	m := Matrix3FromColumns(vr, vup, vf)
	im := m.Transpose()
	rot := m.Mul(RotationZ(degrees)).Mul(im)
	return rot.MulVector3(point)
}
