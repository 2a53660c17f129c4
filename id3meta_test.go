package id3meta_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/simonhull/id3meta"
)

// createSimpleTag creates a minimal ID3v2.3 tag with one TIT2 frame
// followed by fake audio data.
func createSimpleTag(title string) []byte {
	body := append([]byte{0x00}, title...)
	body = append(body, 0x00)

	frame := []byte("TIT2")
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(body)))
	frame = append(frame, size[:]...)
	frame = append(frame, 0x00, 0x00)
	frame = append(frame, body...)

	buf := []byte("ID3")
	buf = append(buf, 0x03, 0x00, 0x00)
	buf = append(buf,
		byte(len(frame)>>21&0x7F),
		byte(len(frame)>>14&0x7F),
		byte(len(frame)>>7&0x7F),
		byte(len(frame)&0x7F),
	)
	buf = append(buf, frame...)
	buf = append(buf, []byte("\xFF\xFBaudio")...)
	return buf
}

func TestDecode(t *testing.T) {
	buf := createSimpleTag("Song")

	tag, rest, err := id3meta.Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got := tag.TextValue("TIT2"); got != "Song" {
		t.Errorf("TIT2 = %q, want Song", got)
	}
	if !bytes.Equal(rest, []byte("\xFF\xFBaudio")) {
		t.Errorf("rest = % x, want the audio suffix", rest)
	}
}

func TestDecode_NotATag(t *testing.T) {
	input := []byte("RIFF....WAVE")

	tag, rest, err := id3meta.Decode(input)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if tag.Len() != 0 {
		t.Errorf("expected empty tag, got %d frames", tag.Len())
	}
	if !bytes.Equal(rest, input) {
		t.Error("expected full input unconsumed")
	}
}

func TestDecode_InputBufferNotAliased(t *testing.T) {
	buf := createSimpleTag("Original")

	tag, _, err := id3meta.Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	for i := range buf {
		buf[i] = 0xFF
	}

	if got := tag.TextValue("TIT2"); got != "Original" {
		t.Errorf("TIT2 = %q after clobbering the input; tag aliases the buffer", got)
	}
}

func TestDecode_WithKnownFrames(t *testing.T) {
	// An "NCON" frame is outside the default allow-list and halts the
	// parse unless explicitly allowed.
	frame := []byte("NCON")
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], 4)
	frame = append(frame, size[:]...)
	frame = append(frame, 0x00, 0x00)
	frame = append(frame, []byte{1, 2, 3, 4}...)

	tit2 := createSimpleTag("Song")
	frames := append(frame, tit2[10:10+16]...) // splice in the 16-byte TIT2 frame

	buf := []byte("ID3")
	buf = append(buf, 0x03, 0x00, 0x00)
	buf = append(buf,
		byte(len(frames)>>21&0x7F),
		byte(len(frames)>>14&0x7F),
		byte(len(frames)>>7&0x7F),
		byte(len(frames)&0x7F),
	)
	buf = append(buf, frames...)

	// Default set: halt at NCON, nothing decoded.
	tag, rest, err := id3meta.Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if tag.Len() != 0 {
		t.Errorf("frame count = %d, want 0 before the halt", tag.Len())
	}
	if !bytes.HasPrefix(rest, []byte("NCON")) {
		t.Error("rest should start at the NCON header")
	}

	// Allow-listed: NCON is skipped and TIT2 decodes.
	tag, _, err = id3meta.Decode(buf, id3meta.WithKnownFrames("NCON"))
	if err != nil {
		t.Fatalf("Decode with option failed: %v", err)
	}
	if got := tag.TextValue("TIT2"); got != "Song" {
		t.Errorf("TIT2 = %q, want Song", got)
	}
}

func TestDecode_WithKnownFrameSet(t *testing.T) {
	buf := createSimpleTag("Song")

	// Replacing the allow-list does not affect text-frame dispatch.
	tag, _, err := id3meta.Decode(buf, id3meta.WithKnownFrameSet(nil))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got := tag.TextValue("TIT2"); got != "Song" {
		t.Errorf("TIT2 = %q, want Song", got)
	}
}

func TestDecodeMany(t *testing.T) {
	buffers := [][]byte{
		createSimpleTag("One"),
		createSimpleTag("Two"),
		[]byte("no tag here"),
		createSimpleTag("Four"),
	}

	tags, err := id3meta.DecodeMany(context.Background(), buffers)
	if err != nil {
		t.Fatalf("DecodeMany failed: %v", err)
	}
	if len(tags) != 4 {
		t.Fatalf("got %d tags, want 4", len(tags))
	}

	want := []string{"One", "Two", "", "Four"}
	for i, tag := range tags {
		if got := tag.TextValue("TIT2"); got != want[i] {
			t.Errorf("tags[%d].TIT2 = %q, want %q", i, got, want[i])
		}
	}
}

func TestDecodeMany_Empty(t *testing.T) {
	tags, err := id3meta.DecodeMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("DecodeMany failed: %v", err)
	}
	if tags != nil {
		t.Errorf("expected nil result for empty input, got %v", tags)
	}
}

func TestDecodeMany_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := id3meta.DecodeMany(ctx, [][]byte{createSimpleTag("X")})
	if err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestTag_IDs(t *testing.T) {
	buf := createSimpleTag("Song")

	tag, _, err := id3meta.Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	ids := tag.IDs()
	if len(ids) != 1 || ids[0] != "TIT2" {
		t.Errorf("IDs = %v, want [TIT2]", ids)
	}
}
