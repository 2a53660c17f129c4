// Package frame decodes individual ID3v2 frame bodies into typed values.
package frame

import (
	"bytes"
	"errors"

	"github.com/simonhull/id3meta/internal/binio"
	"github.com/simonhull/id3meta/internal/text"
	"github.com/simonhull/id3meta/internal/types"
)

// Outcome is the result category of decoding one frame.
type Outcome int

const (
	// Decoded means the frame body was parsed into a FrameValue.
	Decoded Outcome = iota

	// Skipped means the frame is recognized but not interpreted; its
	// declared size was consumed and the tag parse continues.
	Skipped

	// Halt means the identifier is unrecognized. Nothing was consumed
	// and the tag parse stops here.
	Halt
)

// Decode decodes one frame body from the front of buf.
//
// id is the 4-character frame identifier, size its declared body size, and
// off the absolute offset of the frame within the input buffer (used only
// for error context). Dispatch:
//
//   - TXXX, COMM, APIC decode to UserText, Comment, Picture
//   - other T-frames decode to TextList
//   - members of known are skipped whole
//   - anything else halts the tag parse without consuming
//
// The frame body must account for exactly size bytes; nested fields that
// would overrun it yield a CorruptFrameError.
func Decode(id types.FrameID, size int, buf []byte, known Set, off int64) (Outcome, types.FrameValue, []byte, error) {
	var decodeBody func([]byte) (types.FrameValue, error)
	switch {
	case id == "TXXX":
		decodeBody = decodeUserText
	case id == "COMM":
		decodeBody = decodeComment
	case id == "APIC":
		decodeBody = decodePicture
	case isTextFrameID(id):
		decodeBody = decodeTextList
	case !known.Contains(id):
		// Unrecognized identifier: nothing consumed, tag parse stops.
		return Halt, nil, buf, nil
	}

	// Only now does the declared size matter; a Halt outcome must not
	// trust (or be derailed by) a garbage size field.
	if size > len(buf) {
		return Decoded, nil, nil, &types.CorruptFrameError{
			FrameID: id,
			Offset:  off,
			Reason:  "declared size reaches past end of tag",
		}
	}

	if decodeBody == nil {
		return Skipped, nil, buf[size:], nil
	}

	v, err := decodeBody(buf[:size])
	return Decoded, v, buf[size:], describe(id, off, err)
}

// isTextFrameID reports whether id names a generic text frame: a leading
// 'T' followed by uppercase letters or digits. TXXX matches too but is
// dispatched before this check.
func isTextFrameID(id types.FrameID) bool {
	if len(id) != 4 || id[0] != 'T' {
		return false
	}
	for i := 1; i < 4; i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// decodeTextList parses a text frame body: encoding byte, then one or more
// NUL-delimited strings filling the rest of the frame.
func decodeTextList(body []byte) (types.FrameValue, error) {
	enc, rest, err := encodingByte(body)
	if err != nil {
		return nil, err
	}

	strings, _, err := text.DecodeSequence(enc, len(body)-1, rest)
	if err != nil {
		return nil, err
	}
	return types.TextList(strings), nil
}

// decodeUserText parses a TXXX body: encoding byte, NUL-terminated
// description, then the value in the same encoding.
func decodeUserText(body []byte) (types.FrameValue, error) {
	enc, rest, err := encodingByte(body)
	if err != nil {
		return nil, err
	}
	budget := len(body) - 1

	desc, consumed, rest, err := text.Decode(enc, budget, rest)
	if err != nil {
		return nil, err
	}

	value, _, _, err := text.Decode(enc, budget-consumed, rest)
	if err != nil {
		return nil, err
	}

	return types.UserText{Description: desc, Value: value}, nil
}

// decodeComment parses a COMM body: encoding byte, a 3-byte language code
// copied verbatim, then description and value as in TXXX.
func decodeComment(body []byte) (types.FrameValue, error) {
	r := binio.NewReader(body)

	encByte, err := binio.Read[uint8](r, "text encoding")
	if err != nil {
		return nil, err
	}
	enc := types.TextEncoding(encByte)

	lang, err := r.Take(3, "language code")
	if err != nil {
		return nil, err
	}

	budget := len(body) - 4
	desc, consumed, rest, err := text.Decode(enc, budget, r.Rest())
	if err != nil {
		return nil, err
	}

	value, _, _, err := text.Decode(enc, budget-consumed, rest)
	if err != nil {
		return nil, err
	}

	return types.Comment{
		Language:         string(lang),
		ShortDescription: desc,
		Value:            value,
	}, nil
}

// decodePicture parses an APIC body: encoding byte, Latin-1 MIME type,
// picture-type byte, description in the declared encoding, then the image
// payload filling the rest of the frame.
func decodePicture(body []byte) (types.FrameValue, error) {
	r := binio.NewReader(body)

	encByte, err := binio.Read[uint8](r, "text encoding")
	if err != nil {
		return nil, err
	}
	enc := types.TextEncoding(encByte)

	// The MIME type is Latin-1 regardless of the declared encoding.
	mime, mimeConsumed, _, err := text.Decode(types.EncodingLatin1, len(body)-1, r.Rest())
	if err != nil {
		return nil, err
	}
	if err := r.Skip(mimeConsumed, "MIME type"); err != nil {
		return nil, err
	}

	picType, err := binio.Read[uint8](r, "picture type")
	if err != nil {
		return nil, err
	}

	budget := len(body) - 1 - mimeConsumed - 1
	desc, descConsumed, _, err := text.Decode(enc, budget, r.Rest())
	if err != nil {
		return nil, err
	}
	if err := r.Skip(descConsumed, "description"); err != nil {
		return nil, err
	}

	return types.Picture{
		MIMEType:    mime,
		PictureType: picType,
		Description: desc,
		Data:        bytes.Clone(r.Rest()),
	}, nil
}

// encodingByte splits the leading text-encoding byte off a frame body.
func encodingByte(body []byte) (types.TextEncoding, []byte, error) {
	if len(body) < 1 {
		return 0, nil, &types.CorruptFrameError{
			Reason: "frame too short for text encoding byte",
		}
	}
	return types.TextEncoding(body[0]), body[1:], nil
}

// describe fills in frame context on corrupt-frame errors raised by the
// body decoders, which only know offsets relative to the body.
func describe(id types.FrameID, off int64, err error) error {
	if err == nil {
		return nil
	}
	var corrupt *types.CorruptFrameError
	if errors.As(err, &corrupt) {
		corrupt.FrameID = id
		corrupt.Offset = off
	}
	return err
}
