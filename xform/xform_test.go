// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"testing"

	"cogentcore.org/simcore/base/tolassert"
	"cogentcore.org/simcore/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randVector(r *rand.Rand, scale float32) math32.Vector3 {
	return math32.Vec3((r.Float32()*2-1)*scale, (r.Float32()*2-1)*scale, (r.Float32()*2-1)*scale)
}

func assertClose(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	tol := float32(1e-5) * max(1, want.Length())
	tolassert.EqualTol(t, want.X, got.X, tol)
	tolassert.EqualTol(t, want.Y, got.Y, tol)
	tolassert.EqualTol(t, want.Z, got.Z, tol)
}

func TestScalar(t *testing.T) {
	f := math32.NewFrame(math32.Vector3{})
	got := Scalar{}.ToLocal(math32.Vec3(1, 2, 3), &f)
	assertClose(t, math32.Vec3(-2, 3, 1), got)
	assert.Equal(t, "scalar", Scalar{}.Name())
}

func TestVectorMatchesScalar(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		f := math32.NewFrame(randVector(r, 360))
		v := randVector(r, 1000)
		want := Scalar{}.ToLocal(v, &f)
		assertClose(t, want, Vector{}.ToLocal(v, &f))
	}
}

func TestLanesMatchScalar(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		f := math32.NewFrame(randVector(r, 360))
		v := randVector(r, 1000)
		in := math32.Vector4FromVector3(v, 0)
		basis := [3]math32.Vector4{
			math32.Vector4FromVector3(f.Right, 0),
			math32.Vector4FromVector3(f.Up, 0),
			math32.Vector4FromVector3(f.Forward, 0),
		}
		var out math32.Vector4
		toLocalLanes(&in, &basis, &out)
		assertClose(t, f.ToLocal(v), out.Vector3())
		assert.Equal(t, float32(0), out.W)
	}
}

func TestVectorNonUnitFrame(t *testing.T) {
	// each output lane is a plain three-term dot product
	f := math32.Frame{
		Forward: math32.Vec3(1, 2, 3),
		Right:   math32.Vec3(4, 5, 6),
		Up:      math32.Vec3(7, 8, 9),
	}
	got := Vector{}.ToLocal(math32.Vec3(1, 1, 1), &f)
	assert.Equal(t, math32.Vec3(15, 24, 6), got)
}

func TestHasSIMD(t *testing.T) {
	if runtime.GOARCH == "amd64" {
		assert.True(t, HasSIMD(), "SSE2 is part of the amd64 baseline")
		assert.Equal(t, "sse2", Vector{}.Name())
	} else {
		assert.False(t, HasSIMD())
		assert.Equal(t, "lanes", Vector{}.Name())
	}
}

func TestSelect(t *testing.T) {
	assert.IsType(t, Scalar{}, Select(nil))
	assert.IsType(t, Scalar{}, Select(Never))
	assert.IsType(t, Vector{}, Select(Always))
}

func TestInit(t *testing.T) {
	assert.IsType(t, Scalar{}, Active())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	tr := Init(Always, logger)
	assert.IsType(t, Vector{}, tr)
	assert.IsType(t, Vector{}, Active())
	assert.Contains(t, buf.String(), "vectorized frame transform enabled")
	assert.Contains(t, buf.String(), "path="+Vector{}.Name())

	// later calls do not rebind or log
	buf.Reset()
	tr = Init(Never, logger)
	assert.IsType(t, Vector{}, tr)
	assert.IsType(t, Vector{}, Active())
	assert.Empty(t, buf.String())

	f := math32.NewFrame(math32.Vec3(10, 20, 30))
	v := math32.Vec3(3, -4, 5)
	require.NotNil(t, Active())
	assertClose(t, f.ToLocal(v), ToLocal(v, &f))
}

func BenchmarkScalar(b *testing.B) {
	f := math32.NewFrame(math32.Vec3(10, 20, 30))
	v := math32.Vec3(3, -4, 5)
	for b.Loop() {
		v = Scalar{}.ToLocal(v, &f)
	}
}

func BenchmarkVector(b *testing.B) {
	f := math32.NewFrame(math32.Vec3(10, 20, 30))
	v := math32.Vec3(3, -4, 5)
	for b.Loop() {
		v = Vector{}.ToLocal(v, &f)
	}
}
