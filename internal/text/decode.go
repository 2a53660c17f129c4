// Package text decodes ID3v2 frame strings in their four declared encodings.
//
// Frame strings live inside a fixed byte budget (derived from the frame's
// declared size) and end at an encoding-specific NUL terminator. A string
// that runs to the end of its budget without a terminator is truncated
// there; that is valid data, not an error.
package text

import (
	"bytes"
	"fmt"
	"unicode/utf16"

	"github.com/simonhull/id3meta/internal/types"
)

// Decode decodes one string from the front of buf.
//
// At most maxBytes bytes are examined. The returned consumed count includes
// the terminator when one was found; rest is buf with the consumed bytes
// removed. Latin-1 and UTF-8 bytes pass through without re-encoding.
//
// A budget that is negative or larger than buf is corrupt frame
// bookkeeping and yields an error.
func Decode(enc types.TextEncoding, maxBytes int, buf []byte) (s string, consumed int, rest []byte, err error) {
	if maxBytes < 0 {
		return "", 0, nil, &types.CorruptFrameError{
			Reason: fmt.Sprintf("string budget underflow (%d bytes)", maxBytes),
		}
	}
	if maxBytes > len(buf) {
		return "", 0, nil, &types.CorruptFrameError{
			Reason: fmt.Sprintf("string budget %d exceeds remaining %d bytes", maxBytes, len(buf)),
		}
	}

	switch enc {
	case types.EncodingUTF16, types.EncodingUTF16BE:
		// Two-byte terminator, scanned pairwise.
		for i := 0; i+2 <= maxBytes; i += 2 {
			if buf[i] == 0 && buf[i+1] == 0 {
				return decodeUTF16(enc, buf[:i]), i + 2, buf[i+2:], nil
			}
		}
		return decodeUTF16(enc, buf[:maxBytes]), maxBytes, buf[maxBytes:], nil

	default:
		// Latin-1, UTF-8, and unknown encoding bytes: single-byte terminator.
		if k := bytes.IndexByte(buf[:maxBytes], 0); k >= 0 {
			return string(buf[:k]), k + 1, buf[k+1:], nil
		}
		return string(buf[:maxBytes]), maxBytes, buf[maxBytes:], nil
	}
}

// DecodeSequence decodes consecutive strings packed into one budget,
// shrinking the budget by each string's consumption until it is exhausted.
// This is the body layout of generic text frames, which may carry several
// NUL-delimited values.
func DecodeSequence(enc types.TextEncoding, maxBytes int, buf []byte) ([]string, []byte, error) {
	var out []string
	for maxBytes > 0 {
		s, consumed, rest, err := Decode(enc, maxBytes, buf)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, s)
		maxBytes -= consumed
		buf = rest
	}
	return out, buf, nil
}

// decodeUTF16 decodes UTF-16 data per the encoding: with-BOM data is
// interpreted per its BOM (big-endian when the BOM is absent), UTF-16BE
// data is always big-endian with no BOM handling.
func decodeUTF16(enc types.TextEncoding, data []byte) string {
	if enc == types.EncodingUTF16 && len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			return decodeUTF16LE(data[2:])
		}
		if data[0] == 0xFE && data[1] == 0xFF {
			return decodeUTF16BE(data[2:])
		}
	}
	return decodeUTF16BE(data)
}

// decodeUTF16BE decodes UTF-16 big-endian code units.
func decodeUTF16BE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
	}

	return string(utf16.Decode(u16))
}

// decodeUTF16LE decodes UTF-16 little-endian code units.
func decodeUTF16LE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	u16 := make([]uint16, len(data)/2)
	for i := range u16 {
		u16[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}

	return string(utf16.Decode(u16))
}
