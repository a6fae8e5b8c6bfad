// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// longPow5 holds 5^0..5^27, the largest powers of five whose value still
// fits in a single 63-bit limb (5^27 < 2^63). E uses it to scale by 10^n in
// limb-sized chunks instead of building 5^n digit-by-digit.
var longPow5 = [...]int64{
	1, 5, 25, 125, 625, 3125, 15625, 78125, 390625, 1953125,
	9765625, 48828125, 244140625, 1220703125, 6103515625,
	30517578125, 152587890625, 762939453125, 3814697265625,
	19073486328125, 95367431640625, 476837158203125,
	2384185791015625, 11920928955078125, 59604644775390625,
	298023223876953125, 1490116119384765625, 7450580596923828125,
}

// intPow5 holds 5^0..5^13, the powers of five that fit a 32-bit word; used
// for the common small-exponent fast path of E.
var intPow5 = [...]int32{
	1, 5, 25, 125, 625, 3125, 15625, 78125, 390625, 1953125,
	9765625, 48828125, 244140625, 1220703125,
}

// ShiftLeft returns v * 2^n. Negative n delegates to ShiftRight(-n).
func (v *Value) ShiftLeft(n int) *Value {
	if n < 0 {
		return v.ShiftRight(-n)
	}
	if v.IsZero() || n == 0 {
		return v
	}
	wordShift := n / limbBits
	bitShift := uint(n % limbBits)
	dst := make([]uint64, v.size+wordShift+1)
	size := limbShiftLeft(dst, wordShift, bitShift, v.limbs[:v.size])
	return newValue(v.negative, dst[:size])
}

// ShiftRight returns the arithmetic (floor) right shift of v by n bits:
// negative values round toward negative infinity, matching two's-complement
// shift semantics. Negative n delegates to ShiftLeft(-n).
func (v *Value) ShiftRight(n int) *Value {
	if n < 0 {
		return v.ShiftLeft(-n)
	}
	if v.IsZero() || n == 0 {
		return v
	}
	wordShift := n / limbBits
	bitShift := uint(n % limbBits)
	if wordShift >= v.size {
		if v.negative {
			return FromI64(-1)
		}
		return Zero
	}

	var bitLost bool
	if v.negative {
		for i := 0; i < wordShift; i++ {
			if v.limbs[i] != 0 {
				bitLost = true
				break
			}
		}
		if !bitLost && bitShift > 0 && v.limbs[wordShift]&((uint64(1)<<bitShift)-1) != 0 {
			bitLost = true
		}
	}

	dst := make([]uint64, v.size-wordShift)
	size := limbShiftRight(dst, wordShift, bitShift, v.limbs[:v.size])
	result := newValue(v.negative, dst[:size])
	if !v.negative || !bitLost {
		return result
	}

	// Floor-division correction: a one-bit was shifted out of a negative
	// value, so the truncated-toward-zero magnitude shift undershoots the
	// floor by one; bump the magnitude to compensate.
	if result.IsZero() {
		return FromI64(-1)
	}
	bumped := make([]uint64, result.size+1)
	sz := limbAdd(bumped, result.limbs[:result.size], []uint64{1})
	return newValue(true, bumped[:sz])
}

// powerOfFive returns 5^n as a Value, built by multiplying in factors of
// at most 5^27 taken from longPow5.
func powerOfFive(n int) *Value {
	result := One
	const chunk = len(longPow5) - 1
	for n > 0 {
		step := n
		if step > chunk {
			step = chunk
		}
		result = result.MultiplyWord(longPow5[step])
		n -= step
	}
	return result
}

// E returns v * 10^n, implemented as v * 5^n << n for n > 0 and
// v / 5^n >> n for n < 0 (5^|n| combined with a plain bit shift avoids a
// separate decimal-scaling code path). E(0) returns v unchanged.
func (v *Value) E(n int) *Value {
	if n == 0 || v.IsZero() {
		if n == 0 {
			return v
		}
		return Zero
	}
	if n > 0 {
		if n < len(intPow5) {
			return v.MultiplyWord(int64(intPow5[n])).ShiftLeft(n)
		}
		return Multiply(v, powerOfFive(n)).ShiftLeft(n)
	}
	m := -n
	var quotient *Value
	if m < len(intPow5) {
		quotient = mustDivide(v, FromI64(int64(intPow5[m])))
	} else {
		quotient = mustDivide(v, powerOfFive(m))
	}
	return quotient.ShiftRight(m)
}
