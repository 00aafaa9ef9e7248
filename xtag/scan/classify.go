package scan

import (
	"errors"

	"github.com/ZanzyTHEbar/xtag/xtag/xa"
)

// tsCompare compares a stored timestamp against the actual one and returns
// a three-way result: 0 when equal, positive when the stored timestamp is
// newer (the file was backdated), negative when the actual one is newer.
//
// When fuzzy is set the stored value was written with reduced precision, so
// same-second differences under one microsecond count as equal. That keeps
// tags written by the original python shatag utility classifying as OK.
func tsCompare(stored, actual xa.Timespec, fuzzy bool) int {
	sec := stored.Sec - actual.Sec
	nsec := stored.Nsec - actual.Nsec

	if sec > 0 {
		return 2
	}
	if sec < 0 {
		return -2
	}

	if fuzzy {
		nsec /= 1000
	}

	if nsec > 0 {
		return 1
	}
	if nsec < 0 {
		return -1
	}
	return 0
}

// Classify decides which State a file is in.
//
// stored is the record read from the file's attributes (readErr carries the
// outcome of that read); actual must arrive with its mtime populated.
// rehash computes the content hash into actual when the decision needs it;
// keeping the hashing behind a callback preserves the fast path: when the
// timestamps already match and check is false, the content cannot have
// changed without the mtime changing too, so the expensive hash is skipped.
//
// Both records must reference the same algorithm; a mismatch is a caller
// bug, not a data state.
func Classify(stored, actual *xa.Record, readErr error, check bool, rehash func() error) State {
	switch {
	case readErr == nil:
	case errors.Is(readErr, xa.ErrNotFound):
		if rehash() != nil {
			return StateFault
		}
		return StateNew
	case errors.Is(readErr, xa.ErrInvalid):
		if rehash() != nil {
			return StateFault
		}
		return StateInvalid
	default:
		// Unsupported volumes and plain I/O failures are terminal.
		return StateFault
	}

	comparison := tsCompare(stored.Mtime, actual.Mtime, stored.Fuzzy)

	// Quick check. If stored timestamps match, skip hashing.
	if comparison == 0 && !check {
		return StateOK
	}

	if rehash() != nil {
		return StateFault
	}

	if stored.Hash == actual.Hash {
		if comparison == 0 {
			return StateOK
		}
		return StateSame
	}

	if comparison < 0 {
		return StateOutdated
	}
	if comparison > 0 {
		return StateBackdated
	}

	// Same timestamp, different hashes.
	return StateCorrupt
}
