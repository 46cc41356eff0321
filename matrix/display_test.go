// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	m := mustFrom(t, "grid", 2, 2, []uint32{0, 4294967295, 17, 3})

	var buf bytes.Buffer
	require.NoError(t, matrix.Display(&buf, m))
	require.Equal(t, "\nMatrix Contents (grid):\nDIM = (2,2)\n0 4294967295\n17 3\n\n", buf.String())
}

func TestDisplayNil(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, matrix.Display(&buf, nil), matrix.ErrNilMatrix)
	require.Zero(t, buf.Len())
}

func TestRowString(t *testing.T) {
	m := mustFrom(t, "r", 2, 3, []uint32{1, 2, 3, 4, 5, 6})

	require.Equal(t, "1 2 3", m.RowString(0))
	require.Equal(t, "4 5 6", m.RowString(1))
	require.Empty(t, m.RowString(2))
	require.Empty(t, m.RowString(-1))
}
