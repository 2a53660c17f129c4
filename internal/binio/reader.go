// Package binio provides bounds-checked binary reading over an in-memory buffer.
package binio

import (
	"encoding/binary"
	"fmt"

	"github.com/simonhull/id3meta/internal/types"
)

// Reader consumes a byte buffer sequentially with bounds checking and
// helpful error context. Every read is validated against the remaining
// buffer; malformed input yields an error, never an out-of-range access.
type Reader struct {
	buf []byte
	off int64 // absolute offset into the original buffer, for error messages
}

// NewReader creates a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

// Len returns the number of unconsumed bytes.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Rest returns the unconsumed remainder of the buffer. The returned slice
// aliases the input buffer; callers that retain data must copy it.
func (r *Reader) Rest() []byte {
	return r.buf
}

// Take consumes n bytes and returns them, with context for error messages.
// The returned slice aliases the input buffer.
func (r *Reader) Take(n int, what string) ([]byte, error) {
	if n < 0 {
		return nil, &types.CorruptFrameError{
			Offset: r.off,
			Reason: fmt.Sprintf("negative size %d for %s", n, what),
		}
	}
	if n > len(r.buf) {
		return nil, &types.CorruptFrameError{
			Offset: r.off,
			Reason: fmt.Sprintf("need %d bytes for %s, have %d", n, what, len(r.buf)),
		}
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	r.off += int64(n)
	return b, nil
}

// Skip consumes n bytes without returning them.
func (r *Reader) Skip(n int, what string) error {
	_, err := r.Take(n, what)
	return err
}

// Read reads a big-endian value of type T and advances the reader.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	var zero T
	var size int

	// Determine size based on type
	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	buf, err := r.Take(size, what)
	if err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}
