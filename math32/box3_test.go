// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.SetFromPoints([]Vector3{Vec3(1, -2, 3), Vec3(-1, 2, 0), Vec3(0, 0, 5)})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B3(-1, -2, 0, 1, 2, 5), b)
	assert.Equal(t, Vec3(0, 0, 2.5), b.Center())
	assert.Equal(t, Vec3(2, 4, 5), b.Size())

	assert.True(t, b.ContainsPoint(Vec3(1, 2, 5)))
	assert.False(t, b.ContainsPoint(Vec3(1.5, 0, 0)))
	assert.True(t, b.IntersectsBox(B3(1, 2, 5, 9, 9, 9)))
	assert.False(t, b.IntersectsBox(B3(1.1, 0, 0, 9, 9, 9)))

	assert.Equal(t, B3(-1, -2, 0, 4, 4, 5), b.Union(B3(3, 3, 3, 4, 4, 4)))
	assert.Equal(t, B3(0, -1, 1, 2, 3, 6), b.Translate(Vec3(1, 1, 1)))

	eb := b
	eb.ExpandByVector(Vec3(1, 1, 1))
	assert.Equal(t, B3(-2, -3, -1, 2, 3, 6), eb)
	eb = B3Empty()
	eb.ExpandByBox(b)
	assert.Equal(t, b, eb)
}

func TestBox3Corner(t *testing.T) {
	b := B3(-1, -2, -3, 1, 2, 3)
	assert.Equal(t, b.Max, b.Corner(0))
	assert.Equal(t, b.Min, b.Corner(7))
	assert.Equal(t, Vec3(-1, 2, 3), b.Corner(1))
	assert.Equal(t, Vec3(1, -2, 3), b.Corner(2))
	assert.Equal(t, Vec3(1, 2, -3), b.Corner(4))

	cs := b.Corners()
	seen := map[Vector3]bool{}
	for _, c := range cs {
		assert.True(t, b.ContainsPoint(c))
		seen[c] = true
	}
	assert.Len(t, seen, 8)
}

func TestBox3MulMatrix3x4(t *testing.T) {
	b := B3(0, 0, 0, 1, 2, 3)
	m := NewMatrix3x4(RotationZ(90), Vec3(10, 0, 0))
	nb := b.MulMatrix3x4(&m)
	// RotationZ(90) maps (x, y) to (y, -x)
	tolAssertEqualVector(t, Vec3(10, -1, 0), nb.Min, 1e-5)
	tolAssertEqualVector(t, Vec3(12, 0, 3), nb.Max, 1e-5)

	r := rand.New(rand.NewPCG(31, 32))
	for range 200 {
		b := randBox(r, 10)
		m := NewMatrix3x4(randMatrix3(r), randVector(r, 10))
		nb := b.MulMatrix3x4(&m)
		for _, c := range b.Corners() {
			p := m.MulPoint(c)
			grown := nb
			grown.ExpandByVector(Vector3Scalar(1e-3))
			assert.True(t, grown.ContainsPoint(p), "%v not in %v", p, nb)
		}
	}
}
