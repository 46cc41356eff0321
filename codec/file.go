// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/katalvlaran/lvmat/matrix"
)

// FileMode is the permission used when WriteMatrix creates a file.
const FileMode os.FileMode = 0o644

// WriteMatrix encodes m and stores it at path, creating or truncating the file.
// The whole encoding is written with one write call.
// Returns the number of bytes written.
func WriteMatrix(path string, m *matrix.Matrix) (int, error) {
	buf, err := Marshal(m)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FileMode)
	if err != nil {
		return 0, newIOError("open", path, err)
	}

	n, err := f.Write(buf)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		_ = f.Close()
		return n, newIOError("write", path, err)
	}
	if err = f.Close(); err != nil {
		return n, newIOError("close", path, err)
	}

	return n, nil
}

// ReadMatrix decodes the matrix stored at path.
// The file must contain exactly one encoded matrix: trailing bytes are
// reported as ErrCorruptData, like any other layout violation.
func ReadMatrix(path string) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIOError("open", path, err)
	}
	m, err := readFile(f, path)
	if cerr := f.Close(); cerr != nil && err == nil {
		return nil, newIOError("close", path, cerr)
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

// readFile decodes from an open file, bounding the payload by the file size.
func readFile(f *os.File, path string) (*matrix.Matrix, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, newIOError("stat", path, err)
	}

	br := bufio.NewReader(f)
	m, err := decode(br, info.Size())
	if err != nil {
		if errors.Is(err, ErrCorruptData) {
			return nil, err
		}
		return nil, newIOError("read", path, err)
	}

	switch _, err = br.ReadByte(); {
	case err == nil:
		return nil, corruptf("trailing bytes after sentinel")
	case !errors.Is(err, io.EOF):
		return nil, newIOError("read", path, err)
	}

	return m, nil
}
