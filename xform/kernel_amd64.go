// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import "cogentcore.org/simcore/math32"

const (
	kernelAsm  = true
	kernelName = "sse2"
)

var toLocalKernel = toLocalSSE

// toLocalSSE computes out = (basis[0]·v, basis[1]·v, basis[2]·v, 0)
// with SSE2 instructions. Implemented in kernel_amd64.s.
//
//go:noescape
func toLocalSSE(v *math32.Vector4, basis *[3]math32.Vector4, out *math32.Vector4)
