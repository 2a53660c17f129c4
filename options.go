package id3meta

import "github.com/simonhull/id3meta/internal/frame"

// Option configures decoding behavior.
//
// Options use the functional options pattern:
//
//	tag, rest, err := id3meta.Decode(buf,
//	    id3meta.WithKnownFrames("XYZ1", "XYZ2"),
//	)
type Option func(*decodeOptions)

// decodeOptions holds configuration for a decode call.
type decodeOptions struct {
	known frame.Set
}

// defaultOptions returns the default configuration.
func defaultOptions() *decodeOptions {
	return &decodeOptions{
		known: frame.DefaultSet(),
	}
}

// WithKnownFrames adds identifiers to the allow-list of frames that are
// skipped rather than halting the parse.
//
// By default the allow-list holds the standard ID3v2.3/2.4 frame
// identifiers the decoder does not interpret. Use this to accept
// nonstandard frames found in the wild:
//
//	tag, _, err := id3meta.Decode(buf, id3meta.WithKnownFrames("NCON"))
func WithKnownFrames(ids ...FrameID) Option {
	return func(o *decodeOptions) {
		o.known = o.known.Clone()
		for _, id := range ids {
			o.known[id] = struct{}{}
		}
	}
}

// WithKnownFrameSet replaces the allow-list entirely.
//
// An empty set makes the decoder halt on the first frame that is not a
// text frame, TXXX, COMM, or APIC.
//
//	// Skip only PRIV frames; halt on anything else unhandled.
//	tag, _, err := id3meta.Decode(buf,
//	    id3meta.WithKnownFrameSet([]id3meta.FrameID{"PRIV"}),
//	)
func WithKnownFrameSet(ids []FrameID) Option {
	return func(o *decodeOptions) {
		o.known = frame.NewSet(ids...)
	}
}
