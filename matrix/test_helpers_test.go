// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
)

// mustNew allocates a zeroed rows×cols matrix or fails the test.
func mustNew(tb testing.TB, name string, rows, cols int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(name, rows, cols)
	if err != nil {
		tb.Fatalf("New(%q,%d,%d): %v", name, rows, cols, err)
	}

	return m
}

// mustFrom allocates a rows×cols matrix loaded with data or fails the test.
func mustFrom(tb testing.TB, name string, rows, cols int, data []uint32) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewFrom(name, rows, cols, data)
	if err != nil {
		tb.Fatalf("NewFrom(%q,%d,%d): %v", name, rows, cols, err)
	}

	return m
}
