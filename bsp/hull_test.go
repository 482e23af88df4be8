// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsp

import (
	"math/rand/v2"
	"sync"
	"testing"

	"cogentcore.org/simcore/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func axial(ax math32.Dims, dist float32) math32.Plane {
	var n math32.Vector3
	n.SetDim(ax, 1)
	return math32.NewPlane(n, dist)
}

func TestSingleAxialRoot(t *testing.T) {
	h, err := NewHull(
		[]math32.Plane{axial(math32.X, 0)},
		[]ClipNode{{Plane: 0, Children: [2]NodeRef{Leaf(Empty), Leaf(Solid)}}},
		Internal(0), math32.Vector3{}, math32.Vector3{})
	require.NoError(t, err)

	assert.Equal(t, Empty, h.PointContents(math32.Vec3(1, 0, 0)))
	assert.Equal(t, Solid, h.PointContents(math32.Vec3(-1, 0, 0)))
	assert.Equal(t, Empty, h.PointContents(math32.Vec3(0, 5, -5)), "on the plane is front")
	assert.Equal(t, Solid, h.PointContents(math32.Vec3(-1e-6, 100, 100)))

	assert.Equal(t, Water, h.Classify(Leaf(Water), math32.Vec3(1, 0, 0)))
	assert.Equal(t, Solid, h.Classify(Internal(0), math32.Vec3(-3, 0, 0)))
	assert.Equal(t, 1, h.Depth())
}

func TestGeneralPlane(t *testing.T) {
	h, err := NewHull(
		[]math32.Plane{{Normal: math32.Vec3(0.6, 0.8, 0), Dist: 1}},
		[]ClipNode{{Plane: 0, Children: [2]NodeRef{Leaf(Sky), Leaf(Lava)}}},
		Internal(0), math32.Vector3{}, math32.Vector3{})
	require.NoError(t, err)
	assert.Equal(t, math32.PlaneAnyY, h.Plane(0).Type, "plane tags are derived")
	assert.Equal(t, Sky, h.PointContents(math32.Vec3(1, 1, 0)))
	assert.Equal(t, Lava, h.PointContents(math32.Vec3(0, 0, 50)))
}

func TestBoxHull(t *testing.T) {
	mins, maxs := math32.Vec3(-16, -16, -24), math32.Vec3(16, 16, 32)
	h := BoxHull(mins, maxs)
	assert.Equal(t, 6, h.NumPlanes())
	assert.Equal(t, 6, h.NumNodes())
	assert.Equal(t, 6, h.Depth())

	assert.Equal(t, Solid, h.PointContents(math32.Vec3(0, 0, 0)))
	assert.Equal(t, Solid, h.PointContents(mins))
	assert.Equal(t, Empty, h.PointContents(maxs))
	assert.Equal(t, Empty, h.PointContents(math32.Vec3(0, 0, 40)))
	assert.Equal(t, Empty, h.PointContents(math32.Vec3(-17, 0, 0)))

	box := math32.Box3{Min: mins, Max: maxs}
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		p := math32.Vec3((r.Float32()*2-1)*40, (r.Float32()*2-1)*40, (r.Float32()*2-1)*40)
		want := Empty
		if box.ContainsPoint(p) && p.X < maxs.X && p.Y < maxs.Y && p.Z < maxs.Z {
			want = Solid
		}
		assert.Equal(t, want, h.PointContents(p), "point %v", p)
	}
}

func TestNewHullErrors(t *testing.T) {
	planes := []math32.Plane{axial(math32.X, 0), axial(math32.Y, 0)}
	tests := []struct {
		name  string
		nodes []ClipNode
		root  NodeRef
		err   error
	}{
		{"plane index", []ClipNode{{Plane: 2, Children: [2]NodeRef{Leaf(Empty), Leaf(Solid)}}}, Internal(0), ErrPlaneIndex},
		{"negative plane", []ClipNode{{Plane: -1, Children: [2]NodeRef{Leaf(Empty), Leaf(Solid)}}}, Internal(0), ErrPlaneIndex},
		{"child index", []ClipNode{{Plane: 0, Children: [2]NodeRef{Internal(1), Leaf(Solid)}}}, Internal(0), ErrNodeIndex},
		{"root index", []ClipNode{{Plane: 0, Children: [2]NodeRef{Leaf(Empty), Leaf(Solid)}}}, Internal(3), ErrNodeIndex},
		{"empty hull", nil, Internal(0), ErrNodeIndex},
		{"zero contents", []ClipNode{{Plane: 0, Children: [2]NodeRef{Leaf(0), Leaf(Solid)}}}, Internal(0), ErrContents},
		{"unknown contents", []ClipNode{{Plane: 0, Children: [2]NodeRef{Leaf(Empty), Leaf(-15)}}}, Internal(0), ErrContents},
		{"self loop", []ClipNode{{Plane: 0, Children: [2]NodeRef{Leaf(Empty), Internal(0)}}}, Internal(0), ErrCycle},
		{"cycle", []ClipNode{
			{Plane: 0, Children: [2]NodeRef{Internal(1), Leaf(Solid)}},
			{Plane: 1, Children: [2]NodeRef{Leaf(Empty), Internal(0)}},
		}, Internal(0), ErrCycle},
		{"unreachable cycle", []ClipNode{
			{Plane: 0, Children: [2]NodeRef{Leaf(Empty), Leaf(Solid)}},
			{Plane: 1, Children: [2]NodeRef{Internal(2), Leaf(Solid)}},
			{Plane: 1, Children: [2]NodeRef{Internal(1), Leaf(Solid)}},
		}, Internal(0), ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHull(planes, tt.nodes, tt.root, math32.Vector3{}, math32.Vector3{})
			assert.Nil(t, h)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSharedSubtree(t *testing.T) {
	// both sides of the root lead to the same node: a DAG, not a cycle
	h, err := NewHull(
		[]math32.Plane{axial(math32.X, 0), axial(math32.Z, 0)},
		[]ClipNode{
			{Plane: 0, Children: [2]NodeRef{Internal(1), Internal(1)}},
			{Plane: 1, Children: [2]NodeRef{Leaf(Empty), Leaf(Water)}},
		},
		Internal(0), math32.Vector3{}, math32.Vector3{})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Depth())
	assert.Equal(t, Water, h.PointContents(math32.Vec3(-1, 0, -1)))
	assert.Equal(t, Empty, h.PointContents(math32.Vec3(1, 0, 1)))
}

func TestLeafRoot(t *testing.T) {
	h, err := NewHull(nil, nil, Leaf(Solid), math32.Vector3{}, math32.Vector3{})
	require.NoError(t, err)
	assert.Equal(t, Solid, h.PointContents(math32.Vec3(1, 2, 3)))
	assert.Equal(t, 0, h.Depth())
}

// chainHull returns a hull of n nodes where node i splits at x = i,
// with Solid behind each plane and Empty beyond the last one.
func chainHull(t *testing.T, n int) *Hull {
	planes := make([]math32.Plane, n)
	nodes := make([]ClipNode, n)
	for i := range n {
		planes[i] = axial(math32.X, float32(i))
		nodes[i] = ClipNode{Plane: i, Children: [2]NodeRef{Internal(i + 1), Leaf(Solid)}}
	}
	nodes[n-1].Children[0] = Leaf(Empty)
	h, err := NewHull(planes, nodes, Internal(0), math32.Vector3{}, math32.Vector3{})
	require.NoError(t, err)
	return h
}

func TestDeepHull(t *testing.T) {
	const n = 100000
	h := chainHull(t, n)
	assert.Equal(t, n, h.Depth())
	assert.Equal(t, Empty, h.PointContents(math32.Vec3(n, 0, 0)))
	assert.Equal(t, Solid, h.PointContents(math32.Vec3(50000.5, 0, 0)))
	assert.Equal(t, Solid, h.PointContents(math32.Vec3(-1, 0, 0)))
	assert.Equal(t, Empty, h.Classify(Internal(n-1), math32.Vec3(n, 0, 0)))
}

func TestHullCopiesInput(t *testing.T) {
	planes := []math32.Plane{axial(math32.X, 0)}
	nodes := []ClipNode{{Plane: 0, Children: [2]NodeRef{Leaf(Empty), Leaf(Solid)}}}
	h, err := NewHull(planes, nodes, Internal(0), math32.Vec3(-1, -1, -1), math32.Vec3(1, 1, 1))
	require.NoError(t, err)
	planes[0].Dist = 100
	nodes[0].Children[0] = Leaf(Lava)
	assert.Equal(t, Empty, h.PointContents(math32.Vec3(1, 0, 0)))
	assert.Equal(t, math32.Vec3(-1, -1, -1), h.ClipMins())
	assert.Equal(t, math32.Vec3(1, 1, 1), h.ClipMaxs())
	assert.Equal(t, Internal(0), h.Root())
	assert.Equal(t, nodes[0].Plane, h.Node(0).Plane)
}

func TestConcurrentClassify(t *testing.T) {
	h := BoxHull(math32.Vec3(-1, -1, -1), math32.Vec3(1, 1, 1))
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Go(func() {
			r := rand.New(rand.NewPCG(uint64(g), 0))
			for range 1000 {
				p := math32.Vec3(r.Float32()*4-2, r.Float32()*4-2, r.Float32()*4-2)
				c := h.PointContents(p)
				assert.True(t, c == Solid || c == Empty)
			}
		})
	}
	wg.Wait()
}

func TestNodeRef(t *testing.T) {
	assert.Equal(t, Leaf(Solid), ChildRef(-2))
	assert.Equal(t, Internal(7), ChildRef(7))
	assert.Equal(t, Internal(0), NodeRef{})
	for _, n := range []int{-14, -1, 0, 1, 1234} {
		assert.Equal(t, n, ChildRef(n).Encode())
	}
	assert.True(t, Leaf(Empty).IsLeaf())
	assert.Equal(t, -1, Leaf(Empty).Index())
	assert.Equal(t, 3, Internal(3).Index())
	assert.Equal(t, Contents(0), Internal(3).Contents())
	assert.Equal(t, "Leaf(water)", Leaf(Water).String())
	assert.Equal(t, "Internal(3)", Internal(3).String())
}

func TestContents(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "current_down", CurrentDown.String())
	assert.Equal(t, "Contents(-15)", Contents(-15).String())
	assert.Equal(t, "Contents(0)", Contents(0).String())
	assert.True(t, Clip.IsValid())
	assert.False(t, Contents(1).IsValid())
	assert.True(t, Slime.IsLiquid())
	assert.False(t, Sky.IsLiquid())
	assert.True(t, Current270.IsCurrent())
	assert.False(t, Clip.IsCurrent())
}

func BenchmarkClassify(b *testing.B) {
	h := BoxHull(math32.Vec3(-16, -16, -24), math32.Vec3(16, 16, 32))
	p := math32.Vec3(1, 2, 3)
	for b.Loop() {
		h.PointContents(p)
	}
}
