// Package types defines the data model shared across the decoder packages.
package types

import "slices"

// FrameID identifies an ID3v2 frame by its 4-character code (e.g. "TIT2").
type FrameID string

// Tag represents a decoded ID3v2 tag.
//
// Frames maps frame identifiers to their decoded values. Frame IDs are
// unique within a tag; when the raw tag carries two frames with the same
// identifier, the later one wins.
//
// A Tag owns all of its data: strings and image bytes are copies, never
// views into the buffer it was decoded from. The caller may discard or
// reuse the input buffer as soon as decoding returns.
type Tag struct {
	// Frames holds the decoded frames, keyed by frame ID.
	Frames map[FrameID]FrameValue

	// Version is the ID3v2 major version (3 or 4).
	Version byte
}

// NewTag returns an empty tag with an initialized frame map.
func NewTag() *Tag {
	return &Tag{Frames: make(map[FrameID]FrameValue)}
}

// Len reports the number of decoded frames.
func (t *Tag) Len() int {
	return len(t.Frames)
}

// IDs returns the decoded frame identifiers in sorted order.
func (t *Tag) IDs() []FrameID {
	ids := make([]FrameID, 0, len(t.Frames))
	for id := range t.Frames {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TextValue returns the first string of a text frame, or "" if the frame
// is absent or not a text frame.
//
// Useful for the common single-valued frames:
//
//	title := tag.TextValue("TIT2")
func (t *Tag) TextValue(id FrameID) string {
	list, ok := t.Frames[id].(TextList)
	if !ok || len(list) == 0 {
		return ""
	}
	return list[0]
}

// FrameValue is a decoded frame body. Exactly one of the concrete types
// below is stored per frame:
//
//   - TextList for generic text frames (T*)
//   - UserText for TXXX
//   - Comment for COMM
//   - Picture for APIC
type FrameValue interface {
	frameValue()
}

// TextList holds the values of a generic text frame. Text frames may pack
// several NUL-delimited strings into one body; each becomes one element.
type TextList []string

func (TextList) frameValue() {}

// UserText is a user-defined text frame (TXXX).
type UserText struct {
	// Description is the user-chosen key for this value.
	Description string

	// Value is the text content.
	Value string
}

func (UserText) frameValue() {}

// Comment is a comment frame (COMM).
type Comment struct {
	// Language is the 3-byte language code, copied verbatim from the
	// frame. It is not validated or interpreted.
	Language string

	// ShortDescription identifies the comment.
	ShortDescription string

	// Value is the comment text.
	Value string
}

func (Comment) frameValue() {}

// Picture is an attached picture frame (APIC).
type Picture struct {
	// MIMEType is the image MIME type (e.g. "image/jpeg"). Always
	// stored as Latin-1 regardless of the frame's text encoding.
	MIMEType string

	// Description is the picture description in the frame's declared
	// text encoding.
	Description string

	// Data is the raw image payload.
	Data []byte

	// PictureType is the raw picture-type code (0x03 = front cover).
	// It is not interpreted by the decoder.
	PictureType byte
}

func (Picture) frameValue() {}
