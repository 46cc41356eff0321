// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// an operation tag) and tests MUST check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency.
// The specific invalid-argument sentinels wrap ErrInvalidArgument, so
// errors.Is(err, ErrInvalidArgument) holds for each of them.

var (
	// ErrInvalidArgument is the umbrella kind for every rejected input value
	// (dimensions, name length, shift direction/amount, random range).
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates an element index outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrCopyMismatch is returned by Duplicate when the post-copy self-check fails.
	ErrCopyMismatch = errors.New("matrix: duplicate differs from source")
)

var (
	// ErrInvalidDimensions indicates rows or cols is zero (or the product overflows).
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrNameTooLong indicates a name that does not fit in MaxNameLen bytes with its terminator.
	ErrNameTooLong = fmt.Errorf("%w: name longer than %d bytes", ErrInvalidArgument, MaxNameLen-1)

	// ErrNameHasNUL indicates a name containing a 0x00 byte, which the file format uses as terminator.
	ErrNameHasNUL = fmt.Errorf("%w: name contains a NUL byte", ErrInvalidArgument)

	// ErrInvalidDirection indicates a shift direction other than 'l' or 'r'.
	ErrInvalidDirection = fmt.Errorf("%w: shift direction must be 'l' or 'r'", ErrInvalidArgument)

	// ErrInvalidShift indicates a zero shift amount.
	ErrInvalidShift = fmt.Errorf("%w: shift amount must be > 0", ErrInvalidArgument)

	// ErrInvalidRange indicates a random range whose upper bound is below the lower bound.
	ErrInvalidRange = fmt.Errorf("%w: range upper bound below lower bound", ErrInvalidArgument)

	// ErrNilSource indicates a nil random source.
	ErrNilSource = fmt.Errorf("%w: nil random source", ErrInvalidArgument)
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
