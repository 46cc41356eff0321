// SPDX-License-Identifier: MIT
// Package matrix: operations on Matrix values.
// Equal, Duplicate, Shift, Add and Randomize. All functions perform strict
// fail-fast validation and leave their outputs untouched on error.

package matrix

// Operation name constants for unified error wrapping.
const (
	opDuplicate = "Duplicate"
	opShift     = "Shift"
	opAdd       = "Add"
	opRandomize = "Randomize"
)

// Direction selects a logical shift direction.
type Direction byte

const (
	// ShiftLeft moves bits toward the most significant end (x << k).
	ShiftLeft Direction = 'l'
	// ShiftRight moves bits toward the least significant end (x >> k).
	ShiftRight Direction = 'r'
)

// ParseDirection maps the single-letter tokens "l" and "r" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "l":
		return ShiftLeft, nil
	case "r":
		return ShiftRight, nil
	}

	return 0, matrixErrorf("ParseDirection", ErrInvalidDirection)
}

// Source draws uniform integers in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Int63n(n int64) int64
}

// Equal reports whether a and b hold the same shape and the same elements.
// Matrices of different shapes are never equal. Nil operands are never equal.
// Complexity: O(rows*cols).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Duplicate returns a new Matrix named name with src's shape and elements.
// Stage 1 (Validate): src non-nil, name bound.
// Stage 2 (Execute): allocate and copy.
// Stage 3 (Finalize): self-check with Equal.
// Complexity: O(rows*cols).
func Duplicate(src *Matrix, name string) (*Matrix, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opDuplicate, err)
	}
	dst, err := New(name, src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opDuplicate, err)
	}
	copy(dst.data, src.data)

	if !Equal(src, dst) {
		return nil, matrixErrorf(opDuplicate, ErrCopyMismatch)
	}

	return dst, nil
}

// Shift applies a logical shift of amount bits to every element in place.
// Amounts of 32 or more clear every element (all bits are shifted out).
// Complexity: O(rows*cols).
func Shift(m *Matrix, dir Direction, amount uint) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opShift, err)
	}
	if dir != ShiftLeft && dir != ShiftRight {
		return matrixErrorf(opShift, ErrInvalidDirection)
	}
	if amount == 0 {
		return matrixErrorf(opShift, ErrInvalidShift)
	}

	// Go defines x<<k and x>>k as 0 for k >= 32 on uint32.
	if dir == ShiftLeft {
		for i := range m.data {
			m.data[i] <<= amount
		}
		return nil
	}
	for i := range m.data {
		m.data[i] >>= amount
	}

	return nil
}

// Add stores the element-wise sum a+b into c, wrapping modulo 2^32.
// a, b and c must share one shape; on any error c is untouched.
// c may alias a or b.
// Complexity: O(rows*cols).
func Add(a, b, c *Matrix) error {
	for _, m := range []*Matrix{a, b, c} {
		if err := ValidateNotNil(m); err != nil {
			return matrixErrorf(opAdd, err)
		}
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, c); err != nil {
		return matrixErrorf(opAdd, err)
	}

	for i := range c.data {
		c.data[i] = a.data[i] + b.data[i] // unsigned overflow wraps
	}

	return nil
}

// Randomize fills m with values drawn uniformly from the closed range [lo, hi].
// Complexity: O(rows*cols).
func Randomize(m *Matrix, lo, hi uint32, rng Source) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRandomize, err)
	}
	if hi < lo {
		return matrixErrorf(opRandomize, ErrInvalidRange)
	}
	if rng == nil {
		return matrixErrorf(opRandomize, ErrNilSource)
	}

	span := int64(hi-lo) + 1 // at most 2^32, fits int64
	for i := range m.data {
		m.data[i] = lo + uint32(rng.Int63n(span))
	}

	return nil
}
