// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "github.com/pkg/errors"

// Sentinel errors for the conditions spec.md §7 requires to fail
// synchronously and locally. Callers check with errors.Is; wrapped
// messages carry the offending input where useful.
var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrInvalidModulus is returned by SetModulus/Mod when m <= 0.
	ErrInvalidModulus = errors.New("bigint: modulus must be positive")

	// ErrModulusUnset is returned by Reciprocal when no modulus is in scope.
	ErrModulusUnset = errors.New("bigint: reciprocal requires a scoped modulus")

	// ErrMalformedText is returned by Parse on invalid or empty digit runs.
	ErrMalformedText = errors.New("bigint: malformed numeric text")

	// ErrBufferTooSmall is returned by ToBytesInto when dst cannot hold the encoding.
	ErrBufferTooSmall = errors.New("bigint: destination buffer too small")
)

// errorf wraps a sentinel with a formatted message, preserving errors.Is
// against the sentinel while attaching the offending-input detail.
func errorf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
