// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"cogentcore.org/simcore/math32"
)

// binding boxes the active Transformer so that implementations of
// different concrete types can share one atomic pointer.
type binding struct {
	t Transformer
}

var (
	initOnce sync.Once

	// active is the process-wide transform; scalar until [Init] runs.
	active atomic.Pointer[binding]
)

func init() {
	active.Store(&binding{Scalar{}})
}

// Select returns the [Transformer] that probe chooses, without
// binding it. A nil probe selects [Scalar].
func Select(probe Probe) Transformer {
	if probe != nil && probe() {
		return Vector{}
	}
	return Scalar{}
}

// Init selects the process-wide [Transformer] with probe and binds it
// for the lifetime of the process, logging the chosen path to logger
// (or [slog.Default] if logger is nil). Only the first call has any
// effect; later calls return the already bound transform.
func Init(probe Probe, logger *slog.Logger) Transformer {
	initOnce.Do(func() {
		t := Select(probe)
		active.Store(&binding{t})
		if logger == nil {
			logger = slog.Default()
		}
		if _, ok := t.(Vector); ok {
			logger.Info("vectorized frame transform enabled", "path", t.Name())
		} else {
			logger.Info("using scalar fallback for frame transform", "path", t.Name())
		}
	})
	return Active()
}

// Active returns the bound [Transformer].
func Active() Transformer {
	return active.Load().t
}

// ToLocal projects v onto the frame f with the bound [Transformer],
// returning (v·Right, v·Up, v·Forward).
func ToLocal(v math32.Vector3, f *math32.Frame) math32.Vector3 {
	return active.Load().t.ToLocal(v, f)
}
