// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Negate returns -v. Zero negates to itself (invariant 3 forbids a
// negative zero).
func (v *Value) Negate() *Value {
	if v.IsZero() {
		return Zero
	}
	return &Value{negative: !v.negative, size: v.size, limbs: v.limbs}
}

// Abs returns |v|.
func (v *Value) Abs() *Value {
	if !v.negative {
		return v
	}
	return v.Negate()
}

// addMagnitudes adds |a| and |b|, returning the sum's limb buffer, choosing
// the larger operand as x per limbAdd's precondition.
func addMagnitudes(a, b *Value) []uint64 {
	x, y := a, b
	if y.size > x.size {
		x, y = y, x
	}
	dst := make([]uint64, x.size+1)
	size := limbAdd(dst, x.limbs[:x.size], y.limbs[:y.size])
	return dst[:size]
}

// subMagnitudes subtracts |b| from |a|, requiring |a| >= |b|.
func subMagnitudes(a, b *Value) []uint64 {
	dst := make([]uint64, a.size)
	size := limbSub(dst, a.limbs[:a.size], b.limbs[:b.size])
	return dst[:size]
}

// Add returns a + b.
//
// When signs agree the magnitudes are added and the common sign kept; when
// they disagree the smaller magnitude is subtracted from the larger and the
// result takes the sign of the larger-magnitude operand (zero forcing
// non-negative), exactly as spec.md §4.3 describes.
func Add(a, b *Value) *Value {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	if a.negative == b.negative {
		return newValue(a.negative, addMagnitudes(a, b))
	}
	switch a.absCompare(b) {
	case 0:
		return Zero
	case 1:
		return newValue(a.negative, subMagnitudes(a, b))
	default:
		return newValue(b.negative, subMagnitudes(b, a))
	}
}

// Subtract returns a - b, implemented by mirroring Add's cases against -b
// rather than materializing an explicit negation.
func Subtract(a, b *Value) *Value {
	if b.IsZero() {
		return a
	}
	if a.IsZero() {
		return b.Negate()
	}
	if a.negative != b.negative {
		return newValue(a.negative, addMagnitudes(a, b))
	}
	switch a.absCompare(b) {
	case 0:
		return Zero
	case 1:
		return newValue(a.negative, subMagnitudes(a, b))
	default:
		return newValue(!a.negative, subMagnitudes(b, a))
	}
}

// MultiplyWord returns v * l for a machine-word multiplier.
//
// math.MinInt64 is handled via a left shift by 63 with a sign flip (its
// magnitude, 2^63, cannot be formed as a positive int64), matching
// spec.md §4.3.
func (v *Value) MultiplyWord(l int64) *Value {
	if v.IsZero() || l == 0 {
		return Zero
	}
	if l == minInt64 {
		shifted := v.Abs().ShiftLeft(63)
		if !v.negative {
			return shifted.Negate()
		}
		return shifted
	}
	neg := v.negative
	mag := uint64(l)
	if l < 0 {
		neg = !neg
		mag = uint64(-l)
	}
	dst := make([]uint64, v.size+1)
	limbMulLimb(dst, v.limbs[:v.size], mag, 0)
	return newValue(neg, dst)
}

// Multiply returns a * b using Karatsuba (see karatsuba.go) once operands
// are large enough, falling back to schoolbook multiplication otherwise.
func Multiply(a, b *Value) *Value {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	x, y := a.Abs(), b.Abs()
	if y.size > x.size {
		x, y = y, x
	}
	mag := karatsubaMultiply(x, y)
	if a.negative != b.negative {
		return mag.Negate()
	}
	return mag
}

// multiplyFullMagnitude is the conventional O(n^2) schoolbook multiply used
// directly for small operands and as Karatsuba's base case.
func multiplyFullMagnitude(x, y []uint64) []uint64 {
	if len(y) == 1 {
		dst := make([]uint64, len(x)+1)
		limbMulLimb(dst, x, y[0], 0)
		return dst[:trimSize(dst)]
	}
	dst := make([]uint64, len(x)+len(y))
	size := limbMulFull(dst, x, y)
	return dst[:size]
}
