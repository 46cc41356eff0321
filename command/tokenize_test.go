// SPDX-License-Identifier: MIT

package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"blank", "", []string{}},
		{"spaces only", "   \t ", []string{}},
		{"single", "exit", []string{"exit"}},
		{"mixed whitespace", "  create\tA  3 \t3\n", []string{"create", "A", "3", "3"}},
		{"longest token", "display " + strings.Repeat("x", MaxTokenLen), []string{"display", strings.Repeat("x", MaxTokenLen)}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Tokenize(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTokenizeDropsExcessTokens(t *testing.T) {
	t.Parallel()

	line := strings.TrimSpace(strings.Repeat("t ", MaxTokens+10))
	got, err := Tokenize(line)
	require.NoError(t, err)
	require.Len(t, got, MaxTokens)
}

func TestTokenizeTokenTooLong(t *testing.T) {
	t.Parallel()

	_, err := Tokenize("display " + strings.Repeat("x", MaxTokenLen+1))
	require.ErrorIs(t, err, ErrTokenTooLong)
}

// A long token past the token limit is dropped before it is checked.
func TestTokenizeLongTokenBeyondLimitIgnored(t *testing.T) {
	t.Parallel()

	line := strings.Repeat("t ", MaxTokens) + strings.Repeat("x", MaxTokenLen+5)
	got, err := Tokenize(line)
	require.NoError(t, err)
	require.Len(t, got, MaxTokens)
}
