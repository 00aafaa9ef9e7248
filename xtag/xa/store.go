package xa

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/ZanzyTHEbar/xtag/xtag/digest"
)

// timestampAttr is the attribute name suffix holding the recorded mtime.
const timestampAttr = "ts"

// Store reads and writes the two per-file metadata attributes under a
// configurable namespace prefix (default "user.shatag." for compatibility
// with the wider shatag tool family).
type Store struct {
	namespace string
}

// NewStore creates a store rooted at the given xattr namespace prefix.
// The prefix must end with the name separator, e.g. "user.shatag.".
func NewStore(namespace string) *Store {
	return &Store{namespace: namespace}
}

// TimestampName returns the full attribute name of the timestamp field.
func (s *Store) TimestampName() string {
	return s.namespace + timestampAttr
}

// ChecksumName returns the full attribute name of the hash field for alg.
// The name is derived from the canonical algorithm name, so aliases like
// "blake2" and "blake2b512" resolve to the same attribute.
func (s *Store) ChecksumName(alg digest.Algorithm) string {
	return s.namespace + alg.Name()
}

// ReadTimestamp reads and decodes the stored timestamp.
func (s *Store) ReadTimestamp(f *os.File) (ts Timespec, fuzzy bool, err error) {
	raw, err := s.get(f, s.TimestampName())
	if err != nil {
		return Timespec{}, false, err
	}
	return parseTimestamp(raw)
}

// WriteTimestamp encodes ts at full nanosecond precision and stores it.
func (s *Store) WriteTimestamp(f *os.File, ts Timespec) error {
	return s.set(f, s.TimestampName(), []byte(formatTimestamp(ts)))
}

// RemoveTimestamp deletes the stored timestamp attribute.
func (s *Store) RemoveTimestamp(f *os.File) error {
	return s.remove(f, s.TimestampName())
}

// ReadChecksum reads the stored hex digest for alg, validating that it is
// exactly the expected length and hex-only. Uppercase digits are normalized
// to lowercase; anything else malformed is ErrInvalid, never silently kept.
func (s *Store) ReadChecksum(f *os.File, alg digest.Algorithm) (string, error) {
	raw, err := s.get(f, s.ChecksumName(alg))
	if err != nil {
		return "", err
	}

	if len(raw) != alg.HexSize() {
		return "", fmt.Errorf("%w: stored hash size mismatch: %d != %d",
			ErrInvalid, len(raw), alg.HexSize())
	}

	for i, c := range raw {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
			raw[i] = c - 'A' + 'a'
		default:
			return "", fmt.Errorf("%w: non-hex character %#02x in stored hash", ErrInvalid, c)
		}
	}

	return string(raw), nil
}

// WriteChecksum stores the hex digest for alg.
func (s *Store) WriteChecksum(f *os.File, alg digest.Algorithm, hexdigest string) error {
	return s.set(f, s.ChecksumName(alg), []byte(hexdigest))
}

// RemoveChecksum deletes the stored hash attribute for alg.
func (s *Store) RemoveChecksum(f *os.File, alg digest.Algorithm) error {
	return s.remove(f, s.ChecksumName(alg))
}

// ReadRecord builds the stored record for f by reading both attributes.
//
// On success the returned record is valid. Otherwise the record is the
// cleared placeholder and the error discriminates the cases: ErrNotFound if
// either attribute is absent, ErrInvalid if either is malformed,
// ErrUnsupported or a plain I/O error for storage-level failures.
func (s *Store) ReadRecord(f *os.File, alg digest.Algorithm) (Record, error) {
	rec := NewRecord(alg)

	ts, fuzzy, err := s.ReadTimestamp(f)
	if err != nil {
		return rec, err
	}

	hash, err := s.ReadChecksum(f, alg)
	if err != nil {
		return rec, err
	}

	rec.Mtime = ts
	rec.Fuzzy = fuzzy
	rec.Hash = hash
	rec.Valid = true
	return rec, nil
}

// WriteRecord persists both attributes of rec to f.
//
// The hash is written first, then the timestamp. The two writes are not
// transactionally linked: a crash between them leaves a (new hash, old
// timestamp) pair that will misclassify on the next run. This matches the
// historical on-disk behavior; there is no recovery path.
func (s *Store) WriteRecord(f *os.File, rec Record) error {
	if !rec.Valid {
		return fmt.Errorf("refusing to write invalid record for %s", f.Name())
	}

	if err := s.WriteChecksum(f, rec.Alg, rec.Hash); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.ChecksumName(rec.Alg), err)
	}
	if err := s.WriteTimestamp(f, rec.Mtime); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.TimestampName(), err)
	}
	return nil
}

// get retrieves one attribute value, retrying with a larger buffer when the
// stored value outgrows the current one.
func (s *Store) get(f *os.File, name string) ([]byte, error) {
	fd := int(f.Fd())
	size := 256
	for {
		buf := make([]byte, size)
		n, err := unix.Fgetxattr(fd, name, buf)
		if errors.Is(err, unix.ERANGE) {
			size *= 2
			continue
		}
		if err != nil {
			return nil, wrapXattrErr(name, err)
		}
		return buf[:n], nil
	}
}

func (s *Store) set(f *os.File, name string, value []byte) error {
	if err := unix.Fsetxattr(int(f.Fd()), name, value, 0); err != nil {
		return wrapXattrErr(name, err)
	}
	return nil
}

func (s *Store) remove(f *os.File, name string) error {
	if err := unix.Fremovexattr(int(f.Fd()), name); err != nil {
		return wrapXattrErr(name, err)
	}
	return nil
}

// wrapXattrErr folds the errno-style multiplexed failures of the xattr
// syscalls into the package's explicit error taxonomy.
func wrapXattrErr(name string, err error) error {
	switch {
	case errors.Is(err, errNoAttr):
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	case errors.Is(err, unix.ENOTSUP):
		return fmt.Errorf("%w: %s", ErrUnsupported, name)
	default:
		return fmt.Errorf("xattr %s: %w", name, err)
	}
}
