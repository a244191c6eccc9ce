package store

import "errors"

var (
	// ErrContactTooLarge is returned when a stored contact blob exceeds
	// maxContactBlobSize on read. Callers treat the contact as absent so
	// incoming feed data overwrites it.
	ErrContactTooLarge = errors.New("store: contact blob too large")
)

// maxContactBlobSize bounds the encoded contact card a single read is
// willing to materialize.
const maxContactBlobSize = 1 << 20
