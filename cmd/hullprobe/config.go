// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "cogentcore.org/simcore/cli"

// Config is the configuration of hullprobe. Values come from the
// `default:` tags, then the config file, then command-line flags.
type Config struct {
	cli.Includes

	// Hull is the hull description file (.toml, .yaml or .yml).
	// If it is empty, a box hull from BoxMins to BoxMaxs is used.
	Hull string

	// BoxMins and BoxMaxs are the extents of the box hull.
	BoxMins [3]float32 `default:"-16 -16 -24"`
	BoxMaxs [3]float32 `default:"16 16 32"`

	// Angles are the pitch, yaw and roll in degrees of the view
	// frame that the points are also reported in.
	Angles [3]float32 `default:"0 0 0"`

	// RandomAngles replaces Angles with random ones drawn from the
	// sampler, so that Seed also fixes the view frame.
	RandomAngles bool

	// Points are the points to classify, in addition to any given
	// with --point or as arguments.
	Points [][3]float32

	// SIMD allows the vectorized transform when the hardware supports it.
	SIMD bool `default:"true"`

	// Samples is the number of random points drawn uniformly from
	// the sample box, whose contents are reported as a histogram.
	Samples int

	// SampleMins and SampleMaxs are the extents of the sample box.
	SampleMins [3]float32 `default:"-64 -64 -64"`
	SampleMaxs [3]float32 `default:"64 64 64"`

	// Seed seeds the sampler; 0 uses the global random source.
	Seed uint64

	// Workers is the number of goroutines classifying points.
	Workers int `default:"4"`
}
