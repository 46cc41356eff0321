// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strings"
)

const (
	// MaxTokens bounds the argument vector of one line. Extra tokens are dropped.
	MaxTokens = 50

	// MaxTokenLen is the longest accepted token in bytes.
	MaxTokenLen = 24
)

// Tokenize splits line on whitespace into at most MaxTokens tokens.
// Tokens beyond MaxTokens are silently discarded; a kept token longer than
// MaxTokenLen fails the whole line with ErrTokenTooLong.
// A blank line yields an empty, non-nil slice.
func Tokenize(line string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) > MaxTokens {
		fields = fields[:MaxTokens]
	}
	for i, tok := range fields {
		if len(tok) > MaxTokenLen {
			return nil, fmt.Errorf("token %d (%d bytes): %w", i, len(tok), ErrTokenTooLong)
		}
	}
	if fields == nil {
		fields = []string{}
	}

	return fields, nil
}
