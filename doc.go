// SPDX-License-Identifier: MIT

// Package lvmat is an in-memory workbench for named matrices of uint32
// values, driven by a tiny line-oriented command language and backed by a
// compact binary file format.
//
// What is inside:
//
//	matrix/   - the Matrix value type: create, add, duplicate, equal, shift, randomize, display
//	codec/    - the little-endian on-disk format with terminator and sentinel checks
//	registry/ - a fixed-capacity ring of matrix slots with eviction by position
//	command/  - tokenizer and verb dispatcher (create, display, add, duplicate,
//	            equal, shift, random, read, write)
//	session/  - prompt/read/dispatch loop with an interactive line editor
//	config/   - defaults, YAML file and LVMAT_* environment layers
//	metrics/  - Prometheus counters for commands, evictions and codec traffic
//	cmd/lvmat - the shell binary
//
// Quick session:
//
//	> create A 2 2
//	Created Matrix (A,2,2)
//	> random A 1 5
//	Matrix (A) is randomized between 1 5
//	> duplicate A B
//	Duplication of A into B finished
//	> equal A B
//	SAME DATA IN BOTH
//
// Library packages never log and never exit; every failure is an error value
// matched with errors.Is against the package sentinels.
//
//	go install github.com/katalvlaran/lvmat/cmd/lvmat@latest
package lvmat
