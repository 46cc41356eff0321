// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the common validation checks.
//  - Keep operations minimal by delegating nil/shape/name checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Note:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"strings"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateName ensures name plus its terminator fits in MaxNameLen bytes and
// that name holds no terminator byte of its own.
// Complexity: O(len(name)).
func ValidateName(name string) error {
	if len(name)+1 > MaxNameLen {
		return validatorErrorf("ValidateName", ErrNameTooLong)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return validatorErrorf("ValidateName", ErrNameHasNUL)
	}

	return nil
}

// ValidateDims ensures rows and cols are positive and rows*cols is representable.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}
	if rows > MaxElements/cols {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}
