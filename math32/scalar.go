// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math"

	"cogentcore.org/simcore/base/errors"
	"golang.org/x/exp/constraints"
)

// FloorDivMod returns the floor-based quotient and remainder of numer
// and denom, both of which should be integral values: the remainder is
// always in [0, denom), so FloorDivMod(-7, 2) is (-4, 1) rather than
// the truncated (-3, -1). The quotient must fit in an int.
//
// A denominator <= 0 is an internal consistency violation and aborts
// through [errors.Fatalf].
func FloorDivMod(numer, denom float64) (quotient, rem int) {
	if denom <= 0 {
		errors.Fatalf("math32.FloorDivMod: bad denominator %v", denom)
	}
	if numer >= 0 {
		x := math.Floor(numer / denom)
		return int(x), int(math.Floor(numer - x*denom))
	}
	// perform operations with positive values, and fix mod to make floor-based
	x := math.Floor(-numer / denom)
	quotient = -int(x)
	rem = int(math.Floor(-numer - x*denom))
	if rem != 0 {
		quotient--
		rem = int(denom) - rem
	}
	return
}

// GreatestCommonDivisor returns the greatest common divisor of a and b,
// which must be non-negative, by Euclid's algorithm. The argument order
// does not matter and GreatestCommonDivisor(x, 0) is x.
func GreatestCommonDivisor[T constraints.Integer](a, b T) T {
	if a > b {
		if b == 0 {
			return a
		}
		return GreatestCommonDivisor(b, a%b)
	}
	if a == 0 {
		return b
	}
	return GreatestCommonDivisor(a, b%a)
}

// Invert24To16 returns the fixed-point reciprocal 256 / val using integer
// division, or 0xFFFFFFFF when val <= 256, where the reciprocal would not
// fit the fixed-point range. It is not a general purpose inverse.
func Invert24To16(val uint32) uint32 {
	if val <= 0x100 {
		return 0xFFFFFFFF
	}
	return 0x100 / val
}

// AngleWrap wraps the angle a in degrees into [0, 360), quantized to
// 65536 steps per turn. The scaled angle is truncated toward zero before
// being masked and scaled back, so the result is a quantized angle and
// not a plain modulo: for example a small negative angle wraps to just
// under 360 only once it reaches a full quantization step.
func AngleWrap(a float32) float32 {
	q := int64(float64(a)*(65536/360.0)) & 65535
	return float32((360.0 / 65536) * float64(q))
}
