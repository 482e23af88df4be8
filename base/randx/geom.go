// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "cogentcore.org/simcore/math32"

// PointInBox returns a point uniformly distributed in the box b.
// Optionally can pass a single Rand interface to use;
// otherwise uses the system global Rand source.
func PointInBox(b math32.Box3, randOpt ...Rand) math32.Vector3 {
	rnd := getRand(randOpt)
	sz := b.Size()
	return math32.Vec3(
		b.Min.X+rnd.Float32()*sz.X,
		b.Min.Y+rnd.Float32()*sz.Y,
		b.Min.Z+rnd.Float32()*sz.Z,
	)
}

// PointsInBox returns n points from [PointInBox].
func PointsInBox(b math32.Box3, n int, randOpt ...Rand) []math32.Vector3 {
	rnd := getRand(randOpt)
	pts := make([]math32.Vector3, n)
	for i := range pts {
		pts[i] = PointInBox(b, rnd)
	}
	return pts
}

// Angles returns pitch, yaw and roll angles each uniform in [0, 360).
func Angles(randOpt ...Rand) math32.Vector3 {
	rnd := getRand(randOpt)
	return math32.Vec3(360*rnd.Float32(), 360*rnd.Float32(), 360*rnd.Float32())
}
