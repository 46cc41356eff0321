// SPDX-License-Identifier: MIT

// Package matrix provides the named uint32 matrix value used by lvmat.
//
// The matrix package provides:
//
//   - Matrix: a rows×cols grid of uint32 stored row-major in one flat slice,
//     carrying a bounded name (MaxNameLen bytes including the terminator of
//     the on-disk form).
//   - Element-wise operations: Add (modular, wraps at 2^32), Shift (logical
//     left/right), Randomize (uniform over a closed range).
//   - Equal and Duplicate with a shape-aware comparison: matrices of different
//     shapes are never equal.
//   - Display for a plain-text rendering of name, dimensions and grid.
//
// All operations validate their inputs and return sentinel errors from
// errors.go; callers match them with errors.Is. Nothing here logs or panics
// on user-triggered conditions.
package matrix
