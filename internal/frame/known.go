package frame

import (
	"maps"

	"github.com/simonhull/id3meta/internal/types"
)

// Set is an allow-list of frame identifiers that the decoder recognizes
// but does not interpret. Members are skipped whole; identifiers outside
// the set (and not matching the text-frame pattern) halt the tag parse.
type Set map[types.FrameID]struct{}

// NewSet builds a Set from the given identifiers.
func NewSet(ids ...types.FrameID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s Set) Contains(id types.FrameID) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	return maps.Clone(s)
}

// defaultKnown is the standard ID3v2.3/2.4 frame registry minus the frames
// this decoder interprets (text frames, TXXX, COMM, APIC). Text frames are
// matched by pattern and need no entries here.
var defaultKnown = NewSet(
	"AENC", // Audio encryption
	"ASPI", // Audio seek point index (v2.4)
	"CHAP", // Chapter
	"COMR", // Commercial frame
	"CTOC", // Table of contents
	"ENCR", // Encryption method registration
	"EQU2", // Equalisation (v2.4)
	"EQUA", // Equalization (v2.3)
	"ETCO", // Event timing codes
	"GEOB", // General encapsulated object
	"GRID", // Group identification registration
	"IPLS", // Involved people list (v2.3)
	"LINK", // Linked information
	"MCDI", // Music CD identifier
	"MLLT", // MPEG location lookup table
	"OWNE", // Ownership frame
	"PCNT", // Play counter
	"POPM", // Popularimeter
	"POSS", // Position synchronisation frame
	"PRIV", // Private frame
	"RBUF", // Recommended buffer size
	"RVA2", // Relative volume adjustment (v2.4)
	"RVAD", // Relative volume adjustment (v2.3)
	"RVRB", // Reverb
	"SEEK", // Seek frame (v2.4)
	"SIGN", // Signature frame (v2.4)
	"SYLT", // Synchronized lyric/text
	"SYTC", // Synchronized tempo codes
	"UFID", // Unique file identifier
	"USER", // Terms of use
	"USLT", // Unsynchronized lyric/text transcription
	"WCOM", // Commercial information
	"WCOP", // Copyright/legal information
	"WOAF", // Official audio file webpage
	"WOAR", // Official artist webpage
	"WOAS", // Official audio source webpage
	"WORS", // Official internet radio station homepage
	"WPAY", // Payment
	"WPUB", // Publishers official webpage
	"WXXX", // User defined URL link frame
)

// DefaultSet returns the default allow-list. Callers that modify the set
// must Clone it first.
func DefaultSet() Set {
	return defaultKnown
}
