// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsp

import (
	"context"
	"encoding/binary"
	"math"

	"cogentcore.org/simcore/math32"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// ClassifyAll returns the contents of every point, as [Hull.PointContents]
// would. The points are split into consecutive chunks that are classified
// concurrently by at most limit goroutines; a limit below 1 means 1.
// It stops early and returns the context error if ctx is done.
func (h *Hull) ClassifyAll(ctx context.Context, points []math32.Vector3, limit int) ([]Contents, error) {
	limit = max(limit, 1)
	out := make([]Contents, len(points))
	chunk := (len(points) + limit - 1) / limit
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for start := 0; start < len(points); start += chunk {
		end := min(start+chunk, len(points))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out[i] = h.PointContents(points[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Checksum returns a 64-bit xxHash of the hull geometry: the planes,
// clip nodes, root and clip extents. Hulls built from the same data
// have the same checksum, so it can be used to check that a client
// and a server agree on the collision geometry.
func (h *Hull) Checksum() uint64 {
	buf := make([]byte, 0, 16*len(h.planes)+12*len(h.nodes)+36)
	putInt := func(i int) {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(i)))
	}
	putFloat := func(f float32) {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	putVector := func(v math32.Vector3) {
		putFloat(v.X)
		putFloat(v.Y)
		putFloat(v.Z)
	}
	putInt(len(h.planes))
	putInt(len(h.nodes))
	putInt(h.root.Encode())
	for _, p := range h.planes {
		putVector(p.Normal)
		putFloat(p.Dist)
	}
	for _, n := range h.nodes {
		putInt(n.Plane)
		putInt(n.Children[0].Encode())
		putInt(n.Children[1].Encode())
	}
	putVector(h.clipMins)
	putVector(h.clipMaxs)
	return xxhash.Sum64(buf)
}
