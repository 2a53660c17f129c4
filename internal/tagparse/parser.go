// Package tagparse drives the ID3v2 tag parse: header, extended header,
// then the frame loop.
package tagparse

import (
	"fmt"

	"github.com/simonhull/id3meta/internal/binio"
	"github.com/simonhull/id3meta/internal/frame"
	"github.com/simonhull/id3meta/internal/types"
)

const (
	headerLen      = 10
	frameHeaderLen = 10

	flagUnsync         = 0x80
	flagExtendedHeader = 0x40
	flagExperimental   = 0x20
	flagFooter         = 0x10
)

// Parse decodes an ID3v2 tag from the front of buf.
//
// A buffer that does not begin with the "ID3" marker is not an error: it
// yields an empty tag and the whole input as remainder. Otherwise Parse
// returns the decoded tag and the suffix following the tag region, or, when
// an unrecognized frame halts the parse early, the suffix starting at that
// frame's header.
func Parse(buf []byte, known frame.Set) (*types.Tag, []byte, error) {
	tag := types.NewTag()

	if len(buf) < headerLen || string(buf[0:3]) != "ID3" {
		// Not an ID3 tag. Deliberate signal, not an error.
		return tag, buf, nil
	}

	version := buf[3]
	// buf[4] is the revision, which nothing downstream needs.
	flags := buf[5]
	size := binio.DecodeSynchsafe(buf[6:10])

	if version != 3 && version != 4 {
		return tag, buf, &types.UnsupportedVersionError{Version: version}
	}
	tag.Version = version

	tagEnd := headerLen + int(size)
	if tagEnd > len(buf) {
		return tag, buf, &types.CorruptFrameError{
			Reason: fmt.Sprintf("declared tag size %d exceeds buffer (%d bytes)", size, len(buf)),
		}
	}

	r := binio.NewReader(buf)
	if err := r.Skip(headerLen, "tag header"); err != nil {
		return tag, buf, err
	}
	remaining := int(size)

	if flags&flagExtendedHeader != 0 {
		consumed, err := skipExtendedHeader(r, version)
		if err != nil {
			return tag, buf, err
		}
		remaining -= consumed
	}

	for remaining >= frameHeaderLen {
		start := r.Offset()
		if r.Rest()[0] == 0 {
			// Padding: the tag region's frame sequence has ended.
			break
		}

		idBytes, err := r.Take(4, "frame ID")
		if err != nil {
			return tag, buf[start:], err
		}
		id := types.FrameID(idBytes)

		sizeBytes, err := r.Take(4, "frame size")
		if err != nil {
			return tag, buf[start:], err
		}
		var declared uint32
		if version == 4 {
			declared = binio.DecodeSynchsafe(sizeBytes)
		} else {
			declared = binio.DecodeUint32(sizeBytes)
		}

		// Frame flags: 14 defined bits, none of which this decoder honors.
		if err := r.Skip(2, "frame flags"); err != nil {
			return tag, buf[start:], err
		}

		outcome, value, _, err := frame.Decode(id, int(declared), r.Rest(), known, start)
		if err != nil {
			return tag, buf[start:], err
		}

		switch outcome {
		case frame.Halt:
			return tag, buf[start:], nil
		case frame.Decoded:
			// Last write wins on duplicate frame IDs.
			tag.Frames[id] = value
		}

		if err := r.Skip(int(declared), "frame body"); err != nil {
			return tag, buf[start:], err
		}
		remaining -= frameHeaderLen + int(declared)
	}

	return tag, buf[tagEnd:], nil
}

// skipExtendedHeader consumes the version-specific extended header and
// returns how many bytes it occupied, to be charged against the frame
// budget. The decoder does not interpret any of its contents.
func skipExtendedHeader(r *binio.Reader, version byte) (int, error) {
	if version == 4 {
		// v2.4: synchsafe size counts the size field itself.
		extSize, err := binio.ReadSynchsafe(r, "extended header size")
		if err != nil {
			return 0, err
		}
		marker, err := binio.Read[uint8](r, "extended header flag count")
		if err != nil {
			return 0, err
		}
		if marker != 1 {
			return 0, &types.CorruptFrameError{
				Offset: r.Offset() - 1,
				Reason: fmt.Sprintf("extended header flag count = %d, want 1", marker),
			}
		}
		if err := r.Skip(1, "extended header flags"); err != nil {
			return 0, err
		}
		if err := r.Skip(int(extSize)-6, "extended header body"); err != nil {
			return 0, err
		}
		return int(extSize), nil
	}

	// v2.3: plain size, not counting the size field.
	extSize, err := binio.Read[uint32](r, "extended header size")
	if err != nil {
		return 0, err
	}
	if err := r.Skip(2, "extended header flags"); err != nil {
		return 0, err
	}
	if err := r.Skip(4, "padding size"); err != nil {
		return 0, err
	}
	if err := r.Skip(int(extSize)-6, "extended header body"); err != nil {
		return 0, err
	}
	return int(extSize) + 4, nil
}
