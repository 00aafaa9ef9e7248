package scan

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/ZanzyTHEbar/assert-lib"

	"github.com/ZanzyTHEbar/xtag/xtag/digest"
	"github.com/ZanzyTHEbar/xtag/xtag/xa"
)

// fadviseThreshold is the file size above which the kernel is advised of
// sequential access before hashing.
const fadviseThreshold = 64 * 1024

// Processor orchestrates one regular file end to end: read the stored
// record, classify, optionally re-hash, report, and decide whether the
// fresh record is persisted.
type Processor struct {
	store   *xa.Store
	alg     digest.Algorithm
	opts    *Options
	rep     *Reporter
	asserts *assert.AssertHandler
}

// NewProcessor creates a processor bound to one attribute store, algorithm,
// and option set.
func NewProcessor(store *xa.Store, alg digest.Algorithm, opts *Options, rep *Reporter) *Processor {
	return &Processor{
		store:   store,
		alg:     alg,
		opts:    opts,
		rep:     rep,
		asserts: assert.NewAssertHandler(),
	}
}

// ProcessFile checks one open regular file against its stored attributes.
//
// The return value follows the per-file contract: 0 for fully OK or
// successfully remediated, positive for a recoverable problem that must not
// abort a multi-file run, negative for a fatal condition that must.
func (p *Processor) ProcessFile(f *os.File, path string, fi os.FileInfo) int {
	if p.opts.Untag {
		return p.untagFile(f, path)
	}

	slog.Debug("processing file", "path", path, "size", fi.Size())

	// Performance hint only; a failure must never change control flow.
	if fi.Size() > fadviseThreshold {
		if err := adviseSequential(f); err != nil {
			p.rep.Warnf("Warning: fadvise failed for %q: %v", path, err)
		}
	}

	actual := xa.NewRecord(p.alg)
	actual.Mtime = xa.TimespecOf(fi)

	stored, readErr := p.store.ReadRecord(f, p.alg)
	p.asserts.Assert(context.TODO(), stored.Alg.Name() == actual.Alg.Name(),
		"stored and actual records must use the same algorithm")

	rehash := func() error {
		if actual.Valid {
			return nil
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			p.rep.Errorf("Error: could not rewind %q: %v", path, err)
			return err
		}
		sum, err := p.alg.SumReader(f)
		if err != nil {
			p.rep.Errorf("Error: could not hash %q: %v", path, err)
			return err
		}
		actual.Hash = sum
		actual.Valid = true
		return nil
	}

	state := Classify(&stored, &actual, readErr, p.opts.Check, rehash)

	if state == StateFault {
		switch {
		case errors.Is(readErr, xa.ErrUnsupported):
			p.rep.Errorf("Error: filesystem does not support extended attributes: %q", path)
			return 1
		case readErr != nil && !errors.Is(readErr, xa.ErrNotFound) && !errors.Is(readErr, xa.ErrInvalid):
			// The fault came from the attribute read itself; hashing
			// faults already reported their own cause.
			p.rep.Errorf("Error: could not read extended attributes of %q: %v", path, readErr)
		}
		return -1
	}

	if p.opts.Print {
		p.rep.Sum(path, &stored, &actual)
	} else {
		p.rep.FileState(path, state, &stored, &actual)
	}

	if state == StateOK {
		return 0
	}

	ret := 0
	if state.Elevated() {
		ret = 1

		// Stored attributes of damaged files are evidence; only an
		// explicit force flag may overwrite them.
		if !p.opts.Force {
			return 1
		}
	}

	if p.opts.DryRun {
		return ret
	}

	if err := p.store.WriteRecord(f, actual); err != nil {
		p.rep.Errorf("Error: could not write extended attributes to %q: %v", path, err)
		return 2
	}

	return 0
}

// untagFile removes both metadata attributes from f. Absent attributes are
// fine; the point is the end state, not the transition.
func (p *Processor) untagFile(f *os.File, path string) int {
	ret := 0

	if err := p.store.RemoveChecksum(f, p.alg); err != nil && !errors.Is(err, xa.ErrNotFound) {
		p.rep.Errorf("Error: could not remove %s from %q: %v", p.store.ChecksumName(p.alg), path, err)
		ret = 1
	}
	if err := p.store.RemoveTimestamp(f); err != nil && !errors.Is(err, xa.ErrNotFound) {
		p.rep.Errorf("Error: could not remove %s from %q: %v", p.store.TimestampName(), path, err)
		ret = 1
	}

	if ret == 0 {
		p.rep.Statusf(path, "UNTAGGED")
	}
	return ret
}
