// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsp

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/simcore/base/iox/tomlx"
	"cogentcore.org/simcore/base/iox/yamlx"
	"cogentcore.org/simcore/math32"
)

// HullDesc is the file representation of a [Hull], as loaded by
// [OpenHullDesc]. Node references use the sign encoding of map files:
// non-negative values are node indexes and negative values are
// [Contents] codes (see [ChildRef]).
type HullDesc struct {
	// Name is an optional name of the hull, for diagnostics.
	Name string `toml:"name" yaml:"name"`

	// Root is the encoded reference to the root of the tree.
	Root int `toml:"root" yaml:"root"`

	// ClipMins and ClipMaxs are the extents of the box the hull
	// geometry was expanded by.
	ClipMins [3]float32 `toml:"clip_mins" yaml:"clip_mins"`
	ClipMaxs [3]float32 `toml:"clip_maxs" yaml:"clip_maxs"`

	Planes []PlaneDesc `toml:"planes" yaml:"planes"`
	Nodes  []NodeDesc  `toml:"nodes" yaml:"nodes"`
}

// PlaneDesc is the file representation of a [math32.Plane].
// Its type and sign bits are derived when the hull is built.
type PlaneDesc struct {
	Normal [3]float32 `toml:"normal" yaml:"normal"`
	Dist   float32    `toml:"dist" yaml:"dist"`
}

// NodeDesc is the file representation of a [ClipNode].
type NodeDesc struct {
	Plane int `toml:"plane" yaml:"plane"`

	// Children are the encoded front and back references.
	Children [2]int `toml:"children" yaml:"children"`
}

func vec3(a [3]float32) math32.Vector3 {
	return math32.Vec3(a[0], a[1], a[2])
}

// Build returns a new validated [Hull] from the description.
func (d *HullDesc) Build() (*Hull, error) {
	planes := make([]math32.Plane, len(d.Planes))
	for i, p := range d.Planes {
		planes[i] = math32.NewPlane(vec3(p.Normal), p.Dist)
	}
	nodes := make([]ClipNode, len(d.Nodes))
	for i, n := range d.Nodes {
		nodes[i] = ClipNode{Plane: n.Plane, Children: [2]NodeRef{ChildRef(n.Children[0]), ChildRef(n.Children[1])}}
	}
	h, err := NewHull(planes, nodes, ChildRef(d.Root), vec3(d.ClipMins), vec3(d.ClipMaxs))
	if err != nil && d.Name != "" {
		return nil, fmt.Errorf("hull %q: %w", d.Name, err)
	}
	return h, err
}

// Desc returns the file representation of the hull.
func (h *Hull) Desc() *HullDesc {
	d := &HullDesc{
		Root:     h.root.Encode(),
		ClipMins: [3]float32{h.clipMins.X, h.clipMins.Y, h.clipMins.Z},
		ClipMaxs: [3]float32{h.clipMaxs.X, h.clipMaxs.Y, h.clipMaxs.Z},
		Planes:   make([]PlaneDesc, len(h.planes)),
		Nodes:    make([]NodeDesc, len(h.nodes)),
	}
	for i, p := range h.planes {
		d.Planes[i] = PlaneDesc{Normal: [3]float32{p.Normal.X, p.Normal.Y, p.Normal.Z}, Dist: p.Dist}
	}
	for i, n := range h.nodes {
		d.Nodes[i] = NodeDesc{Plane: n.Plane, Children: [2]int{n.Children[0].Encode(), n.Children[1].Encode()}}
	}
	return d
}

// OpenHullDesc reads a hull description from the given file, which
// must have a .toml, .yaml or .yml extension.
func OpenHullDesc(filename string) (*HullDesc, error) {
	d := &HullDesc{}
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(d, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(d, filename)
	default:
		return nil, fmt.Errorf("bsp: %s: unsupported hull file extension", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("bsp: %w", err)
	}
	return d, nil
}

// OpenHull reads a hull description from the given file with
// [OpenHullDesc] and builds it.
func OpenHull(filename string) (*Hull, error) {
	d, err := OpenHullDesc(filename)
	if err != nil {
		return nil, err
	}
	if d.Name == "" {
		d.Name = filepath.Base(filename)
	}
	return d.Build()
}

// SaveHull writes the description of the hull to the given file,
// choosing the format by extension as in [OpenHullDesc].
func SaveHull(h *Hull, filename string) error {
	d := h.Desc()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(d, filename)
	case ".yaml", ".yml":
		return yamlx.Save(d, filename)
	}
	return fmt.Errorf("bsp: %s: unsupported hull file extension", filename)
}
