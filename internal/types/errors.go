package types

import "fmt"

// CorruptFrameError is returned when frame or tag size bookkeeping does not
// add up: a declared size reaching past the end of the buffer, or a nested
// field (description, MIME type) consuming more than its frame declared.
//
// The original format arithmetic underflows silently in these cases; this
// decoder reports them instead of reading out of range.
type CorruptFrameError struct {
	// Reason describes what went wrong.
	Reason string

	// FrameID is the frame being decoded, if known ("" for tag-level
	// corruption such as a bad extended header).
	FrameID FrameID

	// Offset is the byte offset into the input buffer where the frame
	// (or tag structure) began.
	Offset int64
}

func (e *CorruptFrameError) Error() string {
	if e.FrameID != "" {
		return fmt.Sprintf("corrupt frame %s at offset %d: %s", e.FrameID, e.Offset, e.Reason)
	}
	return fmt.Sprintf("corrupt tag at offset %d: %s", e.Offset, e.Reason)
}

// UnsupportedVersionError is returned when the tag header carries a valid
// "ID3" marker but a major version this decoder does not handle. Only
// ID3v2.3 and ID3v2.4 are supported.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported ID3v2 version: 2.%d", e.Version)
}
