// SPDX-License-Identifier: MIT

// Command lvmat is an interactive shell over a bounded set of named uint32
// matrices with a binary file format.
//
//	$ lvmat --data-dir ./mats
//	> create A 3 3
//	Created Matrix (A,3,3)
//	> random A 1 5
//	> write A
//	> exit
package main

import (
	"github.com/katalvlaran/lvmat/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		config.Exitf("lvmat: %v", err)
	}
}
