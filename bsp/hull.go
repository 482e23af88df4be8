// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bsp provides collision hulls: binary space partition trees
// of planes with content classifications at the leaves, and point
// location queries against them.
package bsp

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/simcore/base/errors"
	"cogentcore.org/simcore/math32"
)

var (
	// ErrPlaneIndex is returned when a clip node references a plane
	// that does not exist.
	ErrPlaneIndex = errors.New("plane index out of range")

	// ErrNodeIndex is returned when a child or root references a clip
	// node that does not exist.
	ErrNodeIndex = errors.New("node index out of range")

	// ErrContents is returned for a leaf with an undefined content code.
	ErrContents = errors.New("invalid contents")

	// ErrCycle is returned when the clip nodes do not form a tree.
	ErrCycle = errors.New("clip nodes contain a cycle")
)

// ClipNode is an internal node of a [Hull]: a splitting plane and the
// two subtrees on either side of it.
type ClipNode struct {
	// Plane is the index of the splitting plane in the hull.
	Plane int

	// Children are the front (0) and back (1) subtrees. Points on
	// the plane belong to the front.
	Children [2]NodeRef
}

// Hull is an immutable collision volume. It is safe for concurrent
// use by multiple goroutines.
type Hull struct {
	planes   []math32.Plane
	nodes    []ClipNode
	root     NodeRef
	clipMins math32.Vector3
	clipMaxs math32.Vector3
	depth    int
}

// NewHull returns a new [Hull] with the given planes, clip nodes and
// root reference. clipMins and clipMaxs are the extents of the box the
// hull geometry was expanded by, such as a player bounding box.
//
// The slices are copied, and the Type and SignBits of every plane are
// re-derived from its normal. An error is returned if a node refers to
// a missing plane or node, a leaf has invalid contents, or the nodes
// do not form an acyclic graph.
func NewHull(planes []math32.Plane, nodes []ClipNode, root NodeRef, clipMins, clipMaxs math32.Vector3) (*Hull, error) {
	if len(nodes) > math.MaxInt32 {
		return nil, fmt.Errorf("bsp: %d clip nodes: %w", len(nodes), ErrNodeIndex)
	}
	h := &Hull{
		planes:   slices.Clone(planes),
		nodes:    slices.Clone(nodes),
		root:     root,
		clipMins: clipMins,
		clipMaxs: clipMaxs,
	}
	for i := range h.planes {
		h.planes[i].Update()
	}
	if err := h.checkRef(root); err != nil {
		return nil, fmt.Errorf("bsp: root: %w", err)
	}
	for i, n := range h.nodes {
		if n.Plane < 0 || n.Plane >= len(h.planes) {
			return nil, fmt.Errorf("bsp: node %d: plane %d: %w", i, n.Plane, ErrPlaneIndex)
		}
		for side, c := range n.Children {
			if err := h.checkRef(c); err != nil {
				return nil, fmt.Errorf("bsp: node %d: child %d: %w", i, side, err)
			}
		}
	}
	depths, err := h.nodeDepths()
	if err != nil {
		return nil, err
	}
	if !root.IsLeaf() {
		h.depth = depths[root.Index()]
	}
	return h, nil
}

// checkRef returns an error if r is not a valid reference into h.
func (h *Hull) checkRef(r NodeRef) error {
	if r.IsLeaf() {
		if !r.Contents().IsValid() {
			return fmt.Errorf("%v: %w", r.Contents(), ErrContents)
		}
		return nil
	}
	if r.Index() < 0 || r.Index() >= len(h.nodes) {
		return fmt.Errorf("%v: %w", r, ErrNodeIndex)
	}
	return nil
}

// nodeDepths returns, for every node, the largest number of plane
// tests needed to reach a leaf from it. It walks the nodes depth
// first with an explicit stack, colouring each node while it is on
// the stack, and returns [ErrCycle] when a child is found on the
// stack. All references must already be checked.
func (h *Hull) nodeDepths() ([]int, error) {
	const (
		unvisited = iota
		onStack
		done
	)
	type visit struct {
		node int
		next int
	}
	state := make([]uint8, len(h.nodes))
	depths := make([]int, len(h.nodes))
	var stack []visit
	for start := range h.nodes {
		if state[start] != unvisited {
			continue
		}
		state[start] = onStack
		stack = append(stack[:0], visit{node: start})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			n := &h.nodes[top.node]
			if top.next == len(n.Children) {
				d := 0
				for _, c := range n.Children {
					if !c.IsLeaf() {
						d = max(d, depths[c.Index()])
					}
				}
				depths[top.node] = d + 1
				state[top.node] = done
				stack = stack[:len(stack)-1]
				continue
			}
			c := n.Children[top.next]
			top.next++
			if c.IsLeaf() {
				continue
			}
			switch state[c.Index()] {
			case onStack:
				return nil, fmt.Errorf("bsp: node %d: child %v: %w", top.node, c, ErrCycle)
			case unvisited:
				state[c.Index()] = onStack
				stack = append(stack, visit{node: c.Index()})
			}
		}
	}
	return depths, nil
}

// Classify returns the contents of the leaf containing point p,
// descending from the start reference, which must be a reference into
// this hull. At each node it takes the front child if the signed
// distance of p to the node's plane is non-negative and the back child
// otherwise. A leaf start returns its contents immediately.
func (h *Hull) Classify(start NodeRef, p math32.Vector3) Contents {
	ref := start
	for !ref.leaf {
		node := &h.nodes[ref.index]
		plane := &h.planes[node.Plane]
		if plane.DistanceToPoint(p) < 0 {
			ref = node.Children[1]
		} else {
			ref = node.Children[0]
		}
	}
	return ref.contents
}

// PointContents returns the contents of the leaf containing p,
// starting from the root of the hull.
func (h *Hull) PointContents(p math32.Vector3) Contents {
	return h.Classify(h.root, p)
}

// Root returns the root reference of the hull.
func (h *Hull) Root() NodeRef {
	return h.root
}

// NumPlanes returns the number of planes in the hull.
func (h *Hull) NumPlanes() int {
	return len(h.planes)
}

// NumNodes returns the number of clip nodes in the hull.
func (h *Hull) NumNodes() int {
	return len(h.nodes)
}

// Plane returns the plane with the given index.
func (h *Hull) Plane(i int) math32.Plane {
	return h.planes[i]
}

// Node returns the clip node with the given index.
func (h *Hull) Node(i int) ClipNode {
	return h.nodes[i]
}

// ClipMins returns the minimum extents of the box the hull was expanded by.
func (h *Hull) ClipMins() math32.Vector3 {
	return h.clipMins
}

// ClipMaxs returns the maximum extents of the box the hull was expanded by.
func (h *Hull) ClipMaxs() math32.Vector3 {
	return h.clipMaxs
}

// Depth returns the largest number of plane tests that
// [Hull.PointContents] performs for any point.
func (h *Hull) Depth() int {
	return h.depth
}
