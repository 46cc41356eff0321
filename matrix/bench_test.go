// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the element-wise operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinkB defeats dead-code elimination.
var sinkB bool

func benchRandom(b *testing.B, name string, n int, rng *rand.Rand) *matrix.Matrix {
	b.Helper()
	m := mustNew(b, name, n, n)
	if err := matrix.Randomize(m, 0, math.MaxUint32, rng); err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(int64(n)))
			x, y := benchRandom(b, "x", n, rng), benchRandom(b, "y", n, rng)
			out := mustNew(b, "out", n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.Add(x, y, out); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkShift(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchRandom(b, "m", n, rand.New(rand.NewSource(int64(n))))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = matrix.Shift(m, matrix.ShiftRight, 1)
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchRandom(b, "x", n, rand.New(rand.NewSource(int64(n))))
			y, err := matrix.Duplicate(x, "y")
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = matrix.Equal(x, y)
			}
		})
	}
}
