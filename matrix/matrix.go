// SPDX-License-Identifier: MIT
// Package matrix: the Matrix value type.
// Matrix is a concrete, row-major grid of uint32 values, storing elements in
// a flat slice. The slice is sized once at construction and never grows.

package matrix

import (
	"fmt"
	"strings"
)

// MaxNameLen is the name bound in bytes, including the terminator byte that
// the binary format appends. A valid name therefore has at most MaxNameLen-1 bytes.
const MaxNameLen = 50

// Matrix is a named rows×cols grid of uint32 values.
// data holds rows*cols elements in row-major order: data[i*cols+j] is (i,j).
type Matrix struct {
	name string   // bounded identifier, not unique
	r, c int      // number of rows and columns, both > 0
	data []uint32 // flat backing storage, len == r*c
}

// New creates a rows×cols Matrix named name with every element zero.
// Stage 1 (Validate): name bound, rows and cols > 0, no size overflow.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(rows*cols) time and memory.
func New(name string, rows, cols int) (*Matrix, error) {
	if err := ValidateName(name); err != nil {
		return nil, matrixErrorf("New", err)
	}
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf("New", err)
	}

	return &Matrix{name: name, r: rows, c: cols, data: make([]uint32, rows*cols)}, nil
}

// NewFrom creates a Matrix and loads data into it.
// data must hold exactly rows*cols elements; it is copied, not retained.
// Complexity: O(rows*cols).
func NewFrom(name string, rows, cols int, data []uint32) (*Matrix, error) {
	m, err := New(name, rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Load(data); err != nil {
		return nil, matrixErrorf("NewFrom", err)
	}

	return m, nil
}

// Name returns the matrix name.
func (m *Matrix) Name() string { return m.name }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Len returns rows*cols, the number of stored elements.
func (m *Matrix) Len() int { return len(m.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (uint32, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v uint32) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Data returns a copy of the row-major element slice.
// Complexity: O(rows*cols).
func (m *Matrix) Data() []uint32 {
	out := make([]uint32, len(m.data))
	copy(out, m.data)

	return out
}

// Load copies data into the matrix. len(data) must equal rows*cols.
// Complexity: O(rows*cols).
func (m *Matrix) Load(data []uint32) error {
	if len(data) != len(m.data) {
		return matrixErrorf("Load", ErrDimensionMismatch)
	}
	copy(m.data, data)

	return nil
}

// Fill sets every element to v.
func (m *Matrix) Fill(v uint32) {
	for i := range m.data {
		m.data[i] = v
	}
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		base := i * m.c // row offset
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[base+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// MaxElements bounds rows*cols. It is also the largest payload the binary
// file format accepts, so every matrix New allows can be stored and loaded.
const MaxElements = 1 << 26
