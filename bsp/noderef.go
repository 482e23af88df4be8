// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bsp

import "fmt"

// NodeRef is a reference to a child of a clip node or to the start of
// a traversal: either an internal node, by its index in the hull, or a
// leaf with its [Contents]. The zero value is Internal(0).
type NodeRef struct {
	leaf     bool
	index    int32
	contents Contents
}

// Internal returns a reference to the clip node with the given index.
func Internal(index int) NodeRef {
	return NodeRef{index: int32(index)}
}

// Leaf returns a leaf reference with the given contents.
func Leaf(c Contents) NodeRef {
	return NodeRef{leaf: true, contents: c}
}

// ChildRef converts a sign-encoded child number, as stored in map
// files, to a [NodeRef]: non-negative values are node indexes and
// negative values are content codes.
func ChildRef(n int) NodeRef {
	if n < 0 {
		return Leaf(Contents(n))
	}
	return Internal(n)
}

// Encode returns the sign-encoded child number for the reference,
// the inverse of [ChildRef].
func (r NodeRef) Encode() int {
	if r.leaf {
		return int(r.contents)
	}
	return int(r.index)
}

// IsLeaf returns whether the reference is a leaf.
func (r NodeRef) IsLeaf() bool {
	return r.leaf
}

// Index returns the node index of an internal reference, or -1 for a leaf.
func (r NodeRef) Index() int {
	if r.leaf {
		return -1
	}
	return int(r.index)
}

// Contents returns the contents of a leaf reference, or 0 for an
// internal one.
func (r NodeRef) Contents() Contents {
	return r.contents
}

func (r NodeRef) String() string {
	if r.leaf {
		return "Leaf(" + r.contents.String() + ")"
	}
	return fmt.Sprintf("Internal(%d)", r.index)
}
