package persist

import "errors"

// Sentinel errors for the cache layer.
var (
	// ErrNotFound is returned when a requested artifact has no cached entry.
	ErrNotFound = errors.New("persist: artifact not found")

	// ErrShortBuffer is returned when a cached artifact's bytes are too
	// short to decode, signaling a corrupt or truncated entry.
	ErrShortBuffer = errors.New("persist: truncated artifact bytes")

	// ErrClosed is returned when a Store method is called after Close.
	ErrClosed = errors.New("persist: store is closed")
)
