//
// Copyright (c) 2026 Ofek Zeevi
//
// All rights reserved.
//

package sharemind

import "errors"

// Failure taxonomy for the core. No operation has internal persistent
// state and none of these are recoverable within the core - they all
// propagate to the caller.
var (
	// ErrOutOfRange is returned when a plaintext value does not fit in
	// [0, 2^n).
	ErrOutOfRange = errors.New("sharemind: value out of range")

	// ErrBadShare is returned when an explicit share triple is
	// ill-formed: a share outside [0, 2^n) in NewFromShares, or a bit
	// share other than 0 or 1 in FromBinaryShares. The triple's length
	// is fixed at three by its array type.
	ErrBadShare = errors.New("sharemind: bad share")

	// ErrSizeMismatch is returned when two operands of an operation
	// carry different bit sizes.
	ErrSizeMismatch = errors.New("sharemind: size mismatch")

	// ErrSizeNotPowerOfTwo is returned by the bitwise primitives
	// (BitwiseAdd, ExtractBits, GTE) when n is not a power of two.
	ErrSizeNotPowerOfTwo = errors.New("sharemind: size is not a power of two")
)
