// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

// Sentinel errors returned by Dispatch.
var (
	// ErrUnknownCommand indicates that no verb matches the line's first token and arity.
	ErrUnknownCommand = errors.New("command: not a command")

	// ErrTokenTooLong indicates a token longer than MaxTokenLen bytes.
	ErrTokenTooLong = errors.New("command: token too long")

	// ErrUnsafeName indicates a matrix name that cannot be used as a file name.
	ErrUnsafeName = fmt.Errorf("%w: name is not a plain file name", matrix.ErrInvalidArgument)
)

// missingError reports an operand name absent from the registry.
type missingError struct {
	name string
	err  error
}

func (e *missingError) Error() string { return fmt.Sprintf("Matrix (%s) doesn't exist", e.name) }

func (e *missingError) Unwrap() error { return e.err }
