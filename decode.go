package id3meta

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3meta/internal/tagparse"
)

// Decode parses an ID3v2 tag from the front of buf.
//
// It returns the decoded tag and the unconsumed suffix of buf, which is
// where the audio payload begins. The returned tag owns copies of all of
// its data; buf may be reused or discarded once Decode returns.
//
// Three outcomes are possible:
//
//   - buf does not start with "ID3": an empty tag and all of buf. Not an
//     error; the buffer simply carries no tag.
//   - a frame identifier the decoder does not recognize: the frames parsed
//     so far and the suffix starting at that frame's header. Also not an
//     error.
//   - corrupt size bookkeeping inside the tag: the frames parsed so far
//     and a CorruptFrameError.
//
// Example:
//
//	tag, audio, err := id3meta.Decode(buf)
//	if err != nil {
//		return err
//	}
//	fmt.Println(tag.TextValue("TIT2"))
func Decode(buf []byte, opts ...Option) (*Tag, []byte, error) {
	// Apply options
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return tagparse.Parse(buf, options.known)
}

// DecodeMany decodes tags from multiple buffers concurrently.
//
// Buffers are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input buffers. If any
// buffer fails to decode, DecodeMany returns the first error.
//
// DecodeMany returns tags only; callers that need the audio remainder of
// each buffer should call Decode per buffer instead.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	tags, err := id3meta.DecodeMany(ctx, buffers)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tag := range tags {
//		fmt.Println(tag.TextValue("TIT2"))
//	}
func DecodeMany(ctx context.Context, buffers [][]byte, opts ...Option) ([]*Tag, error) {
	if len(buffers) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*Tag, len(buffers))

	for i, buf := range buffers {
		i, buf := i, buf // Capture loop variables
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, _, err := Decode(buf, opts...)
			if err != nil {
				return fmt.Errorf("buffer %d: %w", i, err)
			}

			results[i] = tag
			return nil
		})
	}

	// Wait for all to complete
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
