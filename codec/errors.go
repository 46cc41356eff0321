// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	// ErrIO is matched by every *IOError via errors.Is.
	ErrIO = errors.New("codec: i/o error")

	// ErrCorruptData indicates a stream that does not follow the binary layout.
	ErrCorruptData = errors.New("codec: corrupt data")
)

// Kind classifies the operating-system cause of an IOError.
type Kind uint8

const (
	// KindOther is any failure not covered by a more specific kind.
	KindOther Kind = iota
	// KindPermission is an access-denied failure (EACCES, EPERM).
	KindPermission
	// KindBusy is a resource-busy failure (EBUSY, ETXTBSY, EADDRINUSE).
	KindBusy
	// KindBadDescriptor is a bad file descriptor (EBADF, or a closed *os.File).
	KindBadDescriptor
	// KindExists is an already-exists failure (EEXIST).
	KindExists
)

func (k Kind) String() string {
	switch k {
	case KindPermission:
		return "permission denied"
	case KindBusy:
		return "resource busy"
	case KindBadDescriptor:
		return "bad file descriptor"
	case KindExists:
		return "already exists"
	default:
		return "other"
	}
}

// IOError reports a failed file operation on Path.
type IOError struct {
	Op   string // "open", "stat", "read", "write", "close"
	Path string
	Kind Kind
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("codec: %s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

// Unwrap exposes the underlying OS error.
func (e *IOError) Unwrap() error { return e.Err }

// Is reports ErrIO as a match so callers can test the kind without errors.As.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// newIOError builds an IOError, classifying err into a Kind.
func newIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Kind: classify(err), Err: err}
}

// classify maps an OS error onto a Kind.
func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrExist):
		return KindExists
	case errors.Is(err, fs.ErrClosed), errors.Is(err, syscall.EBADF):
		return KindBadDescriptor
	case errors.Is(err, syscall.EBUSY), errors.Is(err, syscall.ETXTBSY), errors.Is(err, syscall.EADDRINUSE):
		return KindBusy
	default:
		return KindOther
	}
}

// corruptf wraps ErrCorruptData with a formatted reason.
func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorruptData}, args...)...)
}
