// Package id3meta decodes ID3v2 metadata tags from in-memory byte buffers.
//
// id3meta is a pure decoder: given the prefix of an MP3 (or other audio)
// file, it produces the tag's frames as typed values plus the unconsumed
// remainder of the buffer, which is where the audio payload begins.
//
// # Quick Start
//
// Decoding a tag from a buffer:
//
//	tag, audio, err := id3meta.Decode(buf)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println("Title:", tag.TextValue("TIT2"))
//	fmt.Println("Artist:", tag.TextValue("TPE1"))
//	fmt.Printf("Audio starts after %d tag bytes\n", len(buf)-len(audio))
//
// # Supported Input
//
//   - ID3v2.3 and ID3v2.4 tags
//   - Generic text frames (T*), user text (TXXX), comments (COMM), and
//     attached pictures (APIC)
//   - Extended headers (skipped, not interpreted)
//
// ID3v2.2, ID3v1, tag footers, and unsynchronized tags are out of scope.
//
// # Philosophy
//
// id3meta embodies three principles:
//
// 1. Purity: decoding is a function of its input buffer. No I/O, no shared
// state, no surprises. Concurrent calls need no synchronization.
//
// 2. Graceful Degradation: a buffer that is not an ID3 tag yields an empty
// tag, not an error. An unrecognized frame stops the parse and returns
// everything decoded up to that point.
//
// 3. No Out-of-Range Reads: every size field in the input is checked
// against the buffer before use. Corrupt bookkeeping inside a tag is
// reported as a CorruptFrameError instead of a panic.
//
// # Frame Values
//
// Decoded frames are typed:
//
//	switch v := tag.Frames["APIC"].(type) {
//	case id3meta.TextList:
//		fmt.Println(v)
//	case id3meta.Picture:
//		os.WriteFile("cover.jpg", v.Data, 0644)
//	}
//
// # Unhandled Frames
//
// Frames the decoder recognizes but does not interpret (PRIV, UFID, lyric
// and URL frames, and so on) are skipped whole. An identifier outside this
// allow-list halts the parse; the remainder then points at that frame's
// header. The allow-list defaults to the standard ID3v2.3/2.4 registries
// and can be extended or replaced:
//
//	tag, rest, err := id3meta.Decode(buf,
//	    id3meta.WithKnownFrames("XYZ1"),
//	)
//
// # Error Handling
//
// id3meta distinguishes three conditions:
//
//   - Not a tag (no "ID3" marker): empty tag, full input returned, no error
//   - Unrecognized frame: partial tag, remainder at the frame, no error
//   - Corrupt size bookkeeping: CorruptFrameError with frame and offset
//
// # Concurrency
//
// Decode is safe for concurrent use. DecodeMany decodes a batch of buffers
// in parallel:
//
//	tags, err := id3meta.DecodeMany(ctx, buffers)
package id3meta
