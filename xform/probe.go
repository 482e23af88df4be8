// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import "golang.org/x/sys/cpu"

// Probe reports whether the vectorized transform can be used on the
// current hardware.
type Probe func() bool

// HasSIMD is the default [Probe]. It reports true when this build has
// an assembly kernel and the processor supports the instructions it
// uses (SSE2 on amd64).
func HasSIMD() bool {
	return kernelAsm && cpu.X86.HasSSE2
}

// Never is a [Probe] that always selects the scalar transform.
func Never() bool { return false }

// Always is a [Probe] that always selects the vectorized transform.
// The portable lane kernel makes this valid on every architecture.
func Always() bool { return true }
