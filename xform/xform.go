// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xform provides the world-to-local frame transform used by the
// per-tick view code, with a scalar reference implementation and a
// vectorized one selected once per process from a hardware capability
// probe.
//
// Call [Init] once at startup, before any concurrent use, and then
// [ToLocal] from anywhere:
//
//	xform.Init(xform.HasSIMD, slog.Default())
//	local := xform.ToLocal(v, &frame)
package xform

import (
	"cogentcore.org/simcore/math32"
)

// Transformer projects world-space vectors onto a [math32.Frame].
// All implementations agree with [Scalar] within floating-point
// tolerance.
type Transformer interface {
	// ToLocal returns (v·Right, v·Up, v·Forward) for the frame f.
	ToLocal(v math32.Vector3, f *math32.Frame) math32.Vector3

	// Name returns a short name of the implementation, for diagnostics.
	Name() string
}

// Scalar is the reference [Transformer]: three plain dot products.
type Scalar struct{}

func (Scalar) ToLocal(v math32.Vector3, f *math32.Frame) math32.Vector3 {
	return f.ToLocal(v)
}

func (Scalar) Name() string { return "scalar" }

// Vector is the vectorized [Transformer]. The input and each basis
// vector are padded to four lanes with a zero W, multiplied lane-wise,
// and each product is reduced by a horizontal sum of its first three
// lanes, in the same order as [math32.Vector3.Dot].
//
// On amd64 the kernel is SSE assembly; elsewhere it is a portable lane
// kernel with the same data flow.
type Vector struct{}

func (Vector) ToLocal(v math32.Vector3, f *math32.Frame) math32.Vector3 {
	in := math32.Vector4FromVector3(v, 0)
	basis := [3]math32.Vector4{
		math32.Vector4FromVector3(f.Right, 0),
		math32.Vector4FromVector3(f.Up, 0),
		math32.Vector4FromVector3(f.Forward, 0),
	}
	var out math32.Vector4
	toLocalKernel(&in, &basis, &out)
	return out.Vector3()
}

func (Vector) Name() string { return kernelName }

// toLocalLanes is the portable form of the vectorized kernel.
func toLocalLanes(v *math32.Vector4, basis *[3]math32.Vector4, out *math32.Vector4) {
	var sums [3]float32
	for i := range basis {
		p := basis[i].Mul(*v)
		sums[i] = (p.X + p.Y) + p.Z
	}
	out.Set(sums[0], sums[1], sums[2], 0)
}
