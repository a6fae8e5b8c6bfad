// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "strings"

// Text parsing and formatting in radixes 2 through 36. Grounded on the
// digit-accumulator shape spec.md's Parse describes ("acc = acc*radix +
// digit"), reusing limbMulAddWord (shared with convert.go's byte decoding)
// and limbDivSmall (shared with the division code) for the inverse
// digit-peeling direction.

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// digitValue returns the numeric value of c in the given radix, or -1 if c
// is not a valid digit for that radix.
func digitValue(c byte, radix int) int {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return -1
	}
	if v >= radix {
		return -1
	}
	return v
}

// Parse reads chars as a signed integer in the given radix (2..36),
// accepting an optional leading '+' or '-'. It reports ErrMalformedText for
// an empty mantissa, an out-of-range radix, or any invalid digit.
func Parse(chars string, radix int) (*Value, error) {
	if radix < 2 || radix > 36 {
		return nil, errorf(ErrMalformedText, "radix %d out of range [2,36]", radix)
	}
	s := chars
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, errorf(ErrMalformedText, "empty digit string")
	}

	limbs := []uint64{}
	size := 0
	r := uint64(radix)
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i], radix)
		if d < 0 {
			return nil, errorf(ErrMalformedText, "invalid digit %q for radix %d", s[i], radix)
		}
		limbs, size = limbMulAddWord(limbs, size, r, uint64(d))
		limbs = limbs[:size]
	}
	return newValue(neg, limbs[:size]), nil
}

// ToText formats v in base 10.
func (v *Value) ToText() string { return v.ToTextRadix(10) }

// ToTextRadix formats v in the given radix (2..36), peeling off one digit
// at a time via repeated division (limbDivSmall's inverse of Parse's
// multiply-accumulate), then reversing the collected digits.
func (v *Value) ToTextRadix(radix int) string {
	if radix < 2 || radix > 36 {
		panic("bigint: ToTextRadix: radix out of range [2,36]")
	}
	if v.IsZero() {
		return "0"
	}
	work := v.cloneLimbs()
	size := v.size
	var digits []byte
	for size > 0 {
		dst := make([]uint64, size)
		rem := limbDivSmall(dst, work[:size], uint32(radix))
		digits = append(digits, digitAlphabet[rem])
		work = dst
		size = trimSize(dst)
	}
	if v.negative {
		digits = append(digits, '-')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// TextSink receives formatted output, e.g. a bufio.Writer or
// strings.Builder. FormatTo builds the complete text in memory first and
// hands it to the sink in a single WriteString call; it does not stream
// digits incrementally.
type TextSink interface {
	WriteString(s string) (int, error)
}

// FormatTo writes v's base-10 text into sink.
func (v *Value) FormatTo(sink TextSink) error {
	_, err := sink.WriteString(v.ToText())
	return err
}

// formatJoin is a small helper for building delimited sequences of values
// in base 10, matching the teacher's habit of using
// strings.Builder rather than naive concatenation for repeated appends.
func formatJoin(values []*Value, sep string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(v.ToText())
	}
	return b.String()
}
