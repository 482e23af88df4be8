// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsp

import (
	"cogentcore.org/simcore/base/errors"
	"cogentcore.org/simcore/math32"
)

// BoxHull returns a hull for the axis-aligned box from mins to maxs,
// used to clip against entities that have a bounding box but no
// geometry of their own. Points inside the box are [Solid] and points
// outside are [Empty].
//
// The hull is a chain of six axial planes, two per axis, each with an
// [Empty] leaf on its outer side. As with any hull, points on a plane
// belong to its front, so the box includes its Min faces and excludes
// its Max faces.
func BoxHull(mins, maxs math32.Vector3) *Hull {
	planes := make([]math32.Plane, 6)
	nodes := make([]ClipNode, 6)
	for i := range 6 {
		side := i & 1
		ax := math32.Dims(i >> 1)
		var n math32.Vector3
		n.SetDim(ax, 1)
		if side == 0 {
			planes[i] = math32.NewPlane(n, maxs.Dim(ax))
		} else {
			planes[i] = math32.NewPlane(n, mins.Dim(ax))
		}

		nodes[i].Plane = i
		nodes[i].Children[side] = Leaf(Empty)
		if i != 5 {
			nodes[i].Children[side^1] = Internal(i + 1)
		} else {
			nodes[i].Children[side^1] = Leaf(Solid)
		}
	}
	return errors.Must1(NewHull(planes, nodes, Internal(0), math32.Vector3{}, math32.Vector3{}))
}
