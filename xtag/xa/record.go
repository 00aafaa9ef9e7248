// Package xa translates between a file's two logical metadata fields
// (content hash and modification timestamp) and the byte-string extended
// attribute storage the filesystem provides.
package xa

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/xtag/xtag/digest"
)

// Timespec is a (seconds, nanoseconds) modification timestamp.
//
// The zero value is reserved to mean "timestamp attribute absent". A file
// whose true mtime is exactly the Unix epoch is indistinguishable from an
// untagged one; this is a known edge case inherited from the on-disk format.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// TimespecOf extracts the modification timestamp from stat information.
func TimespecOf(fi os.FileInfo) Timespec {
	mtime := fi.ModTime()
	return Timespec{Sec: mtime.Unix(), Nsec: int64(mtime.Nanosecond())}
}

// IsZero reports whether t is the reserved "absent" sentinel.
func (t Timespec) IsZero() bool { return t.Sec == 0 && t.Nsec == 0 }

// Record is what we know about one file: which algorithm produced the hash,
// whether the data is trustworthy, the recorded mtime, and the hex hash.
type Record struct {
	// Alg identifies the digest algorithm for Hash.
	Alg digest.Algorithm

	// Valid is true only after a complete, successfully parsed read or a
	// freshly computed hash.
	Valid bool

	// Fuzzy is true when the stored timestamp was written with fewer than
	// nine fractional digits by a less precise writer. Equality checks
	// against a fuzzy timestamp tolerate sub-microsecond differences.
	Fuzzy bool

	// Mtime is the recorded modification timestamp.
	Mtime Timespec

	// Hash is the lowercase hex digest, always exactly Alg.HexSize()
	// characters. Invalid records carry an all-zero placeholder so
	// formatting never needs a null case.
	Hash string
}

// NewRecord returns an empty, invalid record for the given algorithm with
// the zero-filled hash placeholder in place.
func NewRecord(alg digest.Algorithm) Record {
	return Record{
		Alg:  alg,
		Hash: strings.Repeat("0", alg.HexSize()),
	}
}

// Clear resets r to the state NewRecord returns, keeping the algorithm.
func (r *Record) Clear() {
	*r = NewRecord(r.Alg)
}

// Format renders the record for diagnostic output. The returned string is
// owned by the caller; no shared buffers are involved.
func (r Record) Format() string {
	if !r.Valid {
		return "<empty>"
	}
	return fmt.Sprintf("%s %010d.%09d", r.Hash, r.Mtime.Sec, r.Mtime.Nsec)
}
