package id3meta

import "github.com/simonhull/id3meta/internal/types"

// CorruptFrameError is an alias to types.CorruptFrameError.
// Re-exporting from internal/types to keep the public API at the root.
type CorruptFrameError = types.CorruptFrameError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
// Re-exporting from internal/types to keep the public API at the root.
type UnsupportedVersionError = types.UnsupportedVersionError
