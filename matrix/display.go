// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Display writes a human-readable rendering of m to w:
//
//	Matrix Contents (A):
//	DIM = (2,3)
//	1 2 3
//	4 5 6
//
// A blank line precedes and follows the block.
// Complexity: O(rows*cols).
func Display(w io.Writer, m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Display", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\n%s\n%s\n", Header(m), DimLine(m))
	for i := 0; i < m.r; i++ {
		bw.WriteString(m.RowString(i))
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// Header returns the title line used by Display.
func Header(m *Matrix) string {
	return fmt.Sprintf("Matrix Contents (%s):", m.name)
}

// DimLine returns the dimension line used by Display.
func DimLine(m *Matrix) string {
	return fmt.Sprintf("DIM = (%d,%d)", m.r, m.c)
}

// RowString renders row i as space-separated decimal values.
// Out-of-range rows render as the empty string.
func (m *Matrix) RowString(i int) string {
	if i < 0 || i >= m.r {
		return ""
	}
	var sb strings.Builder
	base := i * m.c // row offset
	for j := 0; j < m.c; j++ {
		if j > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(m.data[base+j]), 10))
	}

	return sb.String()
}
