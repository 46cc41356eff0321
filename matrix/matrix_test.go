// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Matrix value type.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures that New rejects zero dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New("A", 0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // specific sentinel
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)   // umbrella kind

	_, err = matrix.New("A", 5, 0) // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New("A", -1, 2) // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestNewNameBound verifies the name limit counts the terminator byte.
func TestNewNameBound(t *testing.T) {
	longest := strings.Repeat("n", matrix.MaxNameLen-1)
	m, err := matrix.New(longest, 1, 1)
	require.NoError(t, err)
	require.Equal(t, longest, m.Name())

	_, err = matrix.New(longest+"x", 1, 1)
	require.ErrorIs(t, err, matrix.ErrNameTooLong)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestNewZeroInitialized checks shape accessors and the zeroed buffer.
func TestNewZeroInitialized(t *testing.T) {
	m, err := matrix.New("Z", 3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Len())
	require.Equal(t, make([]uint32, 12), m.Data())
}

// TestAtSetOutOfRange ensures At() and Set() reject invalid indices.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.New("A", 2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestSetAtRowMajor validates element placement in the flat buffer.
func TestSetAtRowMajor(t *testing.T) {
	m, err := matrix.New("A", 2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 42))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)

	data := m.Data()
	require.Equal(t, uint32(42), data[1*3+2]) // data[i*cols+j]
}

// TestDataIsCopy ensures Data() does not expose the backing slice.
func TestDataIsCopy(t *testing.T) {
	m, err := matrix.NewFrom("A", 1, 2, []uint32{1, 2})
	require.NoError(t, err)

	d := m.Data()
	d[0] = 99

	v, _ := m.At(0, 0)
	require.Equal(t, uint32(1), v)
}

// TestLoadLengthMismatch ensures Load refuses a buffer of the wrong length.
func TestLoadLengthMismatch(t *testing.T) {
	m, err := matrix.New("A", 2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Load([]uint32{1, 2, 3}), matrix.ErrDimensionMismatch)
	require.Equal(t, make([]uint32, 4), m.Data()) // untouched

	_, err = matrix.NewFrom("B", 2, 2, []uint32{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewFrom("S", 2, 2, []uint32{1, 2, 3, 4})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestFill sets every element.
func TestFill(t *testing.T) {
	m, err := matrix.New("F", 2, 2)
	require.NoError(t, err)

	m.Fill(7)
	require.Equal(t, []uint32{7, 7, 7, 7}, m.Data())
}
