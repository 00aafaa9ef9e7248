// Package scan implements the file-state classification engine: deciding,
// per file, whether its content still matches the hash recorded in its
// extended attributes, plus the orchestration and recursive walking around
// that decision.
package scan

// State is a file's classification after comparing its stored metadata
// against freshly observed values. States are mutually exclusive.
type State int

const (
	// StateFault is an OS-level read or stat failure, distinct from any
	// attribute-format problem. It aborts processing of the file.
	StateFault State = iota
	// StateOK means stored hash and mtime both match.
	StateOK
	// StateSame means the hash matches but the mtime moved; the tag is
	// refreshed with the new timestamp.
	StateSame
	// StateNew means the file has no stored attributes yet.
	StateNew
	// StateOutdated means the content changed and the mtime is newer: a
	// legitimate edit since the last tagging.
	StateOutdated
	// StateBackdated means the content changed yet the file claims to be
	// older than the tag: a put-back timestamp, clock skew, or a restore
	// from backup.
	StateBackdated
	// StateCorrupt means the content changed while the mtime did not.
	// Under normal filesystem semantics this is silent data corruption.
	StateCorrupt
	// StateInvalid means the stored attributes themselves are malformed.
	StateInvalid
)

var stateNames = [...]string{
	StateFault:     "FAULT",
	StateOK:        "OK",
	StateSame:      "HASH OK",
	StateNew:       "NEW",
	StateOutdated:  "OUTDATED",
	StateBackdated: "BACKDATED",
	StateCorrupt:   "CORRUPT",
	StateInvalid:   "INVALID",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

// Elevated reports whether s signals possible corruption or damage: states
// that print even in quiet mode and that are never overwritten without an
// explicit force flag.
func (s State) Elevated() bool {
	switch s {
	case StateBackdated, StateCorrupt, StateFault, StateInvalid:
		return true
	}
	return false
}
