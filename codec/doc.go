// SPDX-License-Identifier: MIT

// Package codec reads and writes matrix.Matrix values in the lvmat binary
// format.
//
// Layout (little-endian, fixed field order):
//
//	u32            name_len   len(name)+1, counts the terminator
//	u8[name_len]   name       name bytes followed by 0x00
//	u32            rows
//	u32            cols
//	u32[rows*cols] data       row-major
//	u8             sentinel   0xFF
//
// WriteMatrix serializes into one buffer and writes it with a single write
// call. ReadMatrix never returns a partial matrix: every field is validated,
// including the trailing sentinel, before the Matrix is built.
//
// Errors:
//
//	ErrIO          - open/stat/read/write/close failure; the concrete type is
//	                 *IOError and carries a Kind.
//	ErrCorruptData - truncated stream, bad name length or terminator, zero
//	                 dimensions, oversized payload, size mismatch or bad sentinel.
package codec
