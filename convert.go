// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

// Conversions to and from machine-sized representations: bit length,
// two's-complement byte encoding, and lossy narrowing to native numeric
// types. Grounded on the teacher's mpn.go limb-counting helpers for
// BitLength and on the base-256 accumulator pattern spec.md's own Parse
// uses for byte decoding (see text.go), applied with 256 as the radix.

// BitLength returns the number of bits needed to hold the magnitude of v,
// sign excluded: 0 for zero, otherwise 63*(size-1) plus the bit length of
// the top limb, corrected down by one when a negative value's magnitude is
// an exact power of two (its two's-complement negation needs one fewer
// magnitude bit than the positive case).
func (v *Value) BitLength() int {
	if v.IsZero() {
		return 0
	}
	top := v.limbs[v.size-1]
	n := limbBits*(v.size-1) + bits.Len64(top)
	if v.negative && top&(top-1) == 0 {
		for i := 0; i < v.size-1; i++ {
			if v.limbs[i] != 0 {
				return n
			}
		}
		return n - 1
	}
	return n
}

// packBytesToLimbs decodes a big-endian unsigned byte slice into a 63-bit
// limb magnitude using the same multiply-by-base-add-digit accumulator
// Parse uses for text, with base 256.
func packBytesToLimbs(data []byte) ([]uint64, int) {
	limbs := []uint64{}
	size := 0
	for _, b := range data {
		limbs, size = limbMulAddWord(limbs, size, 256, uint64(b))
		limbs = limbs[:size]
	}
	return limbs, size
}

// unpackLimbsToBytes is packBytesToLimbs's inverse: it peels base-256
// digits off the magnitude by repeated division, filling a big-endian
// byte array of exactly numBytes bytes (left-padded with zero bytes).
func unpackLimbsToBytes(limbs []uint64, size int, numBytes int) []byte {
	out := make([]byte, numBytes)
	work := make([]uint64, size)
	copy(work, limbs[:size])
	for i := numBytes - 1; i >= 0 && size > 0; i-- {
		dst := make([]uint64, size)
		rem := limbDivSmall(dst, work[:size], 256)
		out[i] = byte(rem)
		work = dst
		size = trimSize(dst)
	}
	return out
}

// FromBytes decodes data as a big-endian two's-complement integer, the
// inverse of ToBytes. An empty slice decodes to Zero.
func FromBytes(data []byte) *Value {
	if len(data) == 0 {
		return Zero
	}
	if data[0]&0x80 == 0 {
		limbs, size := packBytesToLimbs(data)
		return newValue(false, limbs[:size])
	}
	inverted := make([]byte, len(data))
	for i, b := range data {
		inverted[i] = ^b
	}
	limbs, size := packBytesToLimbs(inverted)
	if size == 0 {
		return newValue(true, []uint64{1})
	}
	buf := make([]uint64, size+1)
	sz := limbAdd(buf, limbs[:size], []uint64{1})
	return newValue(true, buf[:sz])
}

// ToBytes encodes v as a minimal big-endian two's-complement byte slice:
// BitLength()/8 + 1 bytes, always wide enough to carry an unambiguous sign
// bit. Negative values are encoded via magnitude-minus-one then bitwise
// inversion, the standard two's-complement construction.
func (v *Value) ToBytes() []byte {
	n := v.BitLength()/8 + 1
	if !v.negative {
		return unpackLimbsToBytes(v.limbs, v.size, n)
	}
	dst := make([]uint64, v.size)
	size := limbSub(dst, v.limbs[:v.size], []uint64{1})
	out := unpackLimbsToBytes(dst, size, n)
	for i := range out {
		out[i] = ^out[i]
	}
	return out
}

// ToBytesInto writes v's minimal big-endian two's-complement encoding into
// dst starting at offset, returning the number of bytes written. It
// reports ErrBufferTooSmall rather than writing a truncated encoding when
// dst[offset:] cannot hold it.
func (v *Value) ToBytesInto(dst []byte, offset int) (int, error) {
	enc := v.ToBytes()
	if offset < 0 || len(dst)-offset < len(enc) {
		return 0, errorf(ErrBufferTooSmall, "need %d bytes at offset %d, have %d", len(enc), offset, len(dst)-offset)
	}
	copy(dst[offset:], enc)
	return len(enc), nil
}

// ToI64 narrows v to an int64, silently truncating to the low 64 bits of
// the magnitude (with sign applied) when v does not fit — spec.md leaves
// out-of-range narrowing unspecified, and this matches the teacher's
// narrowing conversions (no panic, no error).
func (v *Value) ToI64() int64 {
	if v.IsZero() {
		return 0
	}
	var mag uint64
	for i := v.size - 1; i >= 0; i-- {
		mag = mag<<limbBits | v.limbs[i]
	}
	if v.negative {
		return -int64(mag)
	}
	return int64(mag)
}

// ToI32 narrows v to an int32 via ToI64, truncating further if needed.
func (v *Value) ToI32() int32 { return int32(v.ToI64()) }

// ToF64 converts v to the nearest float64, accumulating from the most
// significant limb down (each step is exact up to float64's 53-bit
// mantissa; beyond that, precision is lost the same way converting any
// too-large integer to float64 loses precision).
func (v *Value) ToF64() float64 {
	if v.IsZero() {
		return 0
	}
	var f float64
	for i := v.size - 1; i >= 0; i-- {
		f = f*float64(uint64(1)<<limbBits) + float64(v.limbs[i])
	}
	if v.negative {
		return -f
	}
	return f
}

// ToF32 converts v to the nearest float32 via ToF64.
func (v *Value) ToF32() float32 { return float32(v.ToF64()) }
