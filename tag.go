package id3meta

import "github.com/simonhull/id3meta/internal/types"

// Tag is an alias to types.Tag.
// Re-exporting from internal/types keeps the data model in one place.
type Tag = types.Tag

// FrameID is an alias to types.FrameID.
type FrameID = types.FrameID

// FrameValue is an alias to types.FrameValue.
type FrameValue = types.FrameValue

// TextList is an alias to types.TextList.
type TextList = types.TextList

// UserText is an alias to types.UserText.
type UserText = types.UserText

// Comment is an alias to types.Comment.
type Comment = types.Comment

// Picture is an alias to types.Picture.
type Picture = types.Picture

// TextEncoding is an alias to types.TextEncoding.
type TextEncoding = types.TextEncoding

// Re-export the text-encoding byte values.
const (
	EncodingLatin1  = types.EncodingLatin1
	EncodingUTF16   = types.EncodingUTF16
	EncodingUTF16BE = types.EncodingUTF16BE
	EncodingUTF8    = types.EncodingUTF8
)
