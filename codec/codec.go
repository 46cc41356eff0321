// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	// Sentinel is the trailer byte closing every encoded matrix.
	Sentinel byte = 0xFF

	// MaxElements bounds rows*cols accepted by Decode so a corrupt header
	// cannot force an arbitrarily large allocation. It equals the bound
	// matrix.New enforces.
	MaxElements = matrix.MaxElements

	u32Size = 4
)

// byteOrder is the fixed on-disk byte order.
var byteOrder = binary.LittleEndian

// header is the fixed-width part of the layout that follows the name.
type header struct {
	Rows uint32
	Cols uint32
}

// EncodedSize returns the exact number of bytes Marshal produces for m.
func EncodedSize(m *matrix.Matrix) int {
	nameLen := len(m.Name()) + 1
	return u32Size + nameLen + 2*u32Size + u32Size*m.Len() + 1
}

// Marshal serializes m into a freshly allocated buffer sized by EncodedSize.
// Complexity: O(rows*cols).
func Marshal(m *matrix.Matrix) ([]byte, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("codec: Marshal: %w", err)
	}
	if err := matrix.ValidateName(m.Name()); err != nil {
		return nil, fmt.Errorf("codec: Marshal: %w", err)
	}
	if err := matrix.ValidateDims(m.Rows(), m.Cols()); err != nil {
		return nil, fmt.Errorf("codec: Marshal: %w", err)
	}

	name := m.Name()
	buf := make([]byte, 0, EncodedSize(m))

	buf = byteOrder.AppendUint32(buf, uint32(len(name)+1))
	buf = append(buf, name...)
	buf = append(buf, 0) // terminator
	buf = byteOrder.AppendUint32(buf, uint32(m.Rows()))
	buf = byteOrder.AppendUint32(buf, uint32(m.Cols()))
	for _, v := range m.Data() {
		buf = byteOrder.AppendUint32(buf, v)
	}
	buf = append(buf, Sentinel)

	return buf, nil
}

// Encode writes the encoding of m to w in a single Write call.
func Encode(w io.Writer, m *matrix.Matrix) error {
	buf, err := Marshal(m)
	if err != nil {
		return err
	}
	n, err := w.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}

	return nil
}

// Decode reads one encoded matrix from r.
// Truncation and layout violations are reported as ErrCorruptData; any other
// read failure is returned wrapped as-is.
// Complexity: O(rows*cols).
func Decode(r io.Reader) (*matrix.Matrix, error) {
	return decode(r, -1)
}

// decode reads one matrix. When limit >= 0 the element payload must fit in
// limit bytes, checked before the payload is allocated.
func decode(r io.Reader, limit int64) (*matrix.Matrix, error) {
	var word [u32Size]byte

	// Stage 1: name length and name bytes.
	if err := readField(r, word[:], "name length"); err != nil {
		return nil, err
	}
	nameLen := byteOrder.Uint32(word[:])
	if nameLen == 0 || nameLen > matrix.MaxNameLen {
		return nil, corruptf("name length %d outside [1,%d]", nameLen, matrix.MaxNameLen)
	}
	var nameBuf [matrix.MaxNameLen]byte
	raw := nameBuf[:nameLen]
	if err := readField(r, raw, "name"); err != nil {
		return nil, err
	}
	if raw[nameLen-1] != 0 {
		return nil, corruptf("name is not terminated")
	}
	name := raw[:nameLen-1]
	for _, b := range name {
		if b == 0 {
			return nil, corruptf("name contains an embedded terminator")
		}
	}

	// Stage 2: dimensions.
	var h header
	if err := binary.Read(r, byteOrder, &h); err != nil {
		if isTruncation(err) {
			return nil, corruptf("truncated dimensions")
		}
		return nil, fmt.Errorf("read dimensions: %w", err)
	}
	if h.Rows == 0 || h.Cols == 0 {
		return nil, corruptf("zero dimension %dx%d", h.Rows, h.Cols)
	}
	count := uint64(h.Rows) * uint64(h.Cols)
	if count > MaxElements {
		return nil, corruptf("%dx%d exceeds %d elements", h.Rows, h.Cols, MaxElements)
	}
	if limit >= 0 && count*u32Size > uint64(limit) {
		return nil, corruptf("%dx%d payload longer than the input", h.Rows, h.Cols)
	}

	// Stage 3: payload and trailer.
	payload := make([]byte, count*u32Size)
	if err := readField(r, payload, "data"); err != nil {
		return nil, err
	}
	data := make([]uint32, count)
	for i := range data {
		data[i] = byteOrder.Uint32(payload[i*u32Size:])
	}
	if err := readField(r, word[:1], "sentinel"); err != nil {
		return nil, err
	}
	if word[0] != Sentinel {
		return nil, corruptf("sentinel 0x%02X, want 0x%02X", word[0], Sentinel)
	}

	m, err := matrix.NewFrom(string(name), int(h.Rows), int(h.Cols), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	return m, nil
}

// readField fills buf from r, mapping a short read to ErrCorruptData.
func readField(r io.Reader, buf []byte, field string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if isTruncation(err) {
			return corruptf("truncated %s", field)
		}
		return fmt.Errorf("read %s: %w", field, err)
	}

	return nil
}

func isTruncation(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
