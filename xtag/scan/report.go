package scan

import (
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/xtag/xtag/xa"
)

// Verbosity thresholds. A message prints when the configured verbosity is
// at or above its level: -q lowers the configured value, -v raises it.
const (
	levelCrit  = -1
	levelErr   = 0
	levelWarn  = 1
	levelDebug = 2
)

// Reporter writes the per-file status lines and diagnostics for a scan.
// Status lines go to out, diagnostics to errOut, gated by verbosity.
type Reporter struct {
	out       io.Writer
	errOut    io.Writer
	verbosity int
}

// NewReporter creates a reporter at the given verbosity.
func NewReporter(out, errOut io.Writer, verbosity int) *Reporter {
	return &Reporter{out: out, errOut: errOut, verbosity: verbosity}
}

// FileState prints the one-line classification for a file, plus the stored
// and actual records at debug verbosity. Elevated states print even in
// quiet mode; everything else requires normal verbosity.
func (r *Reporter) FileState(path string, state State, stored, actual *xa.Record) {
	level := levelErr
	if state.Elevated() {
		level = levelCrit
	}
	if r.verbosity < level {
		return
	}

	fmt.Fprintf(r.out, "%s: %s\n", path, state)

	if r.verbosity >= levelDebug {
		if stored != nil && stored.Valid {
			fmt.Fprintf(r.out, "# stored: %s\n", stored.Format())
		}
		if actual != nil && actual.Valid {
			fmt.Fprintf(r.out, "# actual: %s\n", actual.Format())
		}
	}
}

// Sum prints a digest line compatible with the coreutils sha*sum tools,
// preferring the freshly computed hash over the stored one.
func (r *Reporter) Sum(path string, stored, actual *xa.Record) {
	switch {
	case actual != nil && actual.Valid:
		fmt.Fprintf(r.out, "%s  %s\n", actual.Hash, path)
	case stored != nil && stored.Valid:
		fmt.Fprintf(r.out, "%s  %s\n", stored.Hash, path)
	default:
		r.Errorf("Error: no hash found for %q", path)
	}
}

// Statusf prints a bare status line for path at normal verbosity.
func (r *Reporter) Statusf(path, status string) {
	if r.verbosity < levelErr {
		return
	}
	fmt.Fprintf(r.out, "%s: %s\n", path, status)
}

// Critf reports a corruption-class condition; visible even in quiet mode.
func (r *Reporter) Critf(format string, args ...any) {
	r.printf(levelCrit, format, args...)
}

// Errorf reports a recoverable per-file failure.
func (r *Reporter) Errorf(format string, args ...any) {
	r.printf(levelErr, format, args...)
}

// Warnf reports a condition worth noting but not acting on.
func (r *Reporter) Warnf(format string, args ...any) {
	r.printf(levelWarn, format, args...)
}

// Debugf reports processing detail.
func (r *Reporter) Debugf(format string, args ...any) {
	r.printf(levelDebug, format, args...)
}

func (r *Reporter) printf(level int, format string, args ...any) {
	if r.verbosity < level {
		return
	}
	fmt.Fprintf(r.errOut, format+"\n", args...)
}
