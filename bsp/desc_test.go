// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsp

import (
	"path/filepath"
	"testing"

	"cogentcore.org/simcore/base/iox/tomlx"
	"cogentcore.org/simcore/base/iox/yamlx"
	"cogentcore.org/simcore/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenHullDesc(t *testing.T) {
	td, err := OpenHullDesc(filepath.Join("testdata", "wedge.toml"))
	require.NoError(t, err)
	yd, err := OpenHullDesc(filepath.Join("testdata", "wedge.yaml"))
	require.NoError(t, err)
	assert.Equal(t, td, yd)

	assert.Equal(t, "wedge", td.Name)
	assert.Len(t, td.Planes, 3)
	assert.Equal(t, [3]float32{0.6, 0.8, 0}, td.Planes[1].Normal)
	assert.Equal(t, [2]int{1, -2}, td.Nodes[0].Children)
	assert.Equal(t, [3]float32{-16, -16, -24}, td.ClipMins)
}

func TestOpenHull(t *testing.T) {
	for _, file := range []string{"wedge.toml", "wedge.yaml"} {
		h, err := OpenHull(filepath.Join("testdata", file))
		require.NoError(t, err, file)

		assert.Equal(t, 3, h.Depth())
		assert.Equal(t, math32.Vec3(16, 16, 32), h.ClipMaxs())
		assert.Equal(t, math32.PlaneX, h.Plane(0).Type)
		assert.Equal(t, math32.PlaneAnyY, h.Plane(1).Type)

		assert.Equal(t, Solid, h.PointContents(math32.Vec3(-1, 0, 0)))
		assert.Equal(t, Empty, h.PointContents(math32.Vec3(10, 10, 0)))
		assert.Equal(t, Water, h.PointContents(math32.Vec3(1, 1, 0)))
		assert.Equal(t, Water, h.PointContents(math32.Vec3(0, 0, 0)))
		assert.Equal(t, Lava, h.PointContents(math32.Vec3(1, 1, -10)))
	}
}

func TestOpenHullErrors(t *testing.T) {
	_, err := OpenHull(filepath.Join("testdata", "cycle.yml"))
	assert.ErrorIs(t, err, ErrCycle)
	assert.Contains(t, err.Error(), `hull "cycle"`)

	_, err = OpenHull(filepath.Join("testdata", "unknown.yaml"))
	assert.Error(t, err)

	_, err = OpenHull(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)

	_, err = OpenHull(filepath.Join("testdata", "wedge.json"))
	assert.ErrorContains(t, err, "unsupported hull file extension")
}

func TestHullDescRoundTrip(t *testing.T) {
	h := BoxHull(math32.Vec3(-16, -16, -24), math32.Vec3(16, 16, 32))
	dir := t.TempDir()
	for _, file := range []string{"box.toml", "box.yaml"} {
		fn := filepath.Join(dir, file)
		require.NoError(t, SaveHull(h, fn))
		h2, err := OpenHull(fn)
		require.NoError(t, err)
		assert.Equal(t, h.Desc(), h2.Desc(), file)
		assert.Equal(t, Solid, h2.PointContents(math32.Vec3(0, 0, 0)))
	}
	assert.Error(t, SaveHull(h, filepath.Join(dir, "box.txt")))
}

func TestHullDescText(t *testing.T) {
	d := &HullDesc{
		Name:   "step",
		Root:   0,
		Planes: []PlaneDesc{{Normal: [3]float32{0, 0, 1}, Dist: 8}},
		Nodes:  []NodeDesc{{Plane: 0, Children: [2]int{-1, -2}}},
	}
	tb, err := tomlx.WriteBytes(d)
	require.NoError(t, err)
	yb, err := yamlx.WriteBytes(d)
	require.NoError(t, err)

	td, yd := &HullDesc{}, &HullDesc{}
	require.NoError(t, tomlx.ReadBytes(td, tb))
	require.NoError(t, yamlx.ReadBytes(yd, yb))
	assert.Equal(t, d, td)
	assert.Equal(t, d, yd)

	h, err := td.Build()
	require.NoError(t, err)
	assert.Equal(t, Empty, h.PointContents(math32.Vec3(0, 0, 8)))
	assert.Equal(t, Solid, h.PointContents(math32.Vec3(0, 0, 7)))
}
