package types

import "fmt"

// TextEncoding is the text-encoding byte that prefixes string data in
// ID3v2 frame bodies.
type TextEncoding byte

const (
	// EncodingLatin1 is ISO-8859-1 (encoding byte 0).
	EncodingLatin1 TextEncoding = 0

	// EncodingUTF16 is UTF-16 with a byte-order mark (encoding byte 1).
	EncodingUTF16 TextEncoding = 1

	// EncodingUTF16BE is UTF-16 big-endian without a BOM (encoding byte 2,
	// ID3v2.4 only).
	EncodingUTF16BE TextEncoding = 2

	// EncodingUTF8 is UTF-8 (encoding byte 3, ID3v2.4 only).
	EncodingUTF8 TextEncoding = 3
)

// TerminatorSize returns the width of the NUL terminator for the encoding:
// one byte for Latin-1 and UTF-8, two for the UTF-16 variants.
func (e TextEncoding) TerminatorSize() int {
	switch e {
	case EncodingUTF16, EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}

// String returns a human-readable encoding name.
func (e TextEncoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("TextEncoding(%d)", byte(e))
	}
}
