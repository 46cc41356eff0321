// SPDX-License-Identifier: MIT

// Package random provides the seeded generator used by the random verb.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a generator seeded with seed, or with NewSeed() when seed is 0.
// The seed actually used is returned so a session can be replayed.
func New(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = s
	}

	return rand.New(rand.NewSource(seed)), seed, nil
}
