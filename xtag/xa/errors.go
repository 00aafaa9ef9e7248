package xa

import "errors"

// Sentinel errors forming the attribute-store taxonomy. Callers discriminate
// with errors.Is; anything not matching one of these is a plain I/O error.
var (
	// ErrNotFound means the attribute is absent. This is the expected
	// condition for files that have never been tagged, not corruption.
	ErrNotFound = errors.New("attribute not found")

	// ErrInvalid means the attribute is present but malformed: wrong
	// length, non-hex characters, or an unparsable timestamp. It signals
	// data corruption or tooling drift and is always reported.
	ErrInvalid = errors.New("attribute contains invalid data")

	// ErrUnsupported means the filesystem does not support extended
	// attributes at all. Non-retryable for every file on that volume.
	ErrUnsupported = errors.New("extended attributes not supported")
)
