// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides a [Rand] interface that can be satisfied by
// either the global random number generator or a separately seeded
// one, and geometric samplers that draw from it.
package randx

import "math/rand/v2"

// Rand provides the subset of [rand.Rand] methods used by this
// package, so that the samplers can use either the global source or
// a separate, seeded one.
type Rand interface {
	// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
	Float32() float32
}

// SysRand supports the system random number generator,
// either the global one when Rand is nil, or a separate [rand.Rand].
type SysRand struct {
	// Rand is the separate generator, or nil for the global source.
	Rand *rand.Rand
}

// NewGlobalRand returns a new [SysRand] that uses the global source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new [SysRand] with its own PCG source seeded
// with the given seed, so that its sequence is reproducible.
func NewSysRand(seed uint64) *SysRand {
	return &SysRand{Rand: rand.New(rand.NewPCG(seed, seed))}
}

func (r *SysRand) Float32() float32 {
	if r.Rand == nil {
		return rand.Float32()
	}
	return r.Rand.Float32()
}

// getRand returns the single Rand of randOpt, or the global source.
func getRand(randOpt []Rand) Rand {
	if len(randOpt) == 0 {
		return NewGlobalRand()
	}
	return randOpt[0]
}
