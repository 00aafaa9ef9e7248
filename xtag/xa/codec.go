package xa

import "fmt"

// parseTimestamp decodes the on-disk timestamp encoding: ASCII decimal
// seconds, a literal '.', then 1-9 decimal digits of nanoseconds.
//
// Writers that predate nanosecond precision stored fewer fractional digits;
// those values are right-padded by scaling and flagged fuzzy so that later
// comparisons relax to microsecond granularity. Ten or more fractional
// digits, or a fractional value of a full second or more, are corruption.
func parseTimestamp(raw []byte) (ts Timespec, fuzzy bool, err error) {
	i := 0
	n := len(raw)

	if i < n && raw[i] == '-' {
		// A negative mtime predates 1970; nothing legitimate writes one.
		return Timespec{}, false, fmt.Errorf("%w: negative seconds", ErrInvalid)
	}

	start := i
	for i < n && raw[i] >= '0' && raw[i] <= '9' {
		// 18 digits keep the accumulator comfortably inside int64; a
		// longer run cannot be an mtime, so it must not wrap silently.
		if i-start >= 18 {
			return Timespec{}, false, fmt.Errorf("%w: timestamp seconds too long in %q", ErrInvalid, raw)
		}
		ts.Sec = ts.Sec*10 + int64(raw[i]-'0')
		i++
	}
	if i == start {
		return Timespec{}, false, fmt.Errorf("%w: malformed timestamp %q", ErrInvalid, raw)
	}

	if i >= n || raw[i] != '.' {
		return Timespec{}, false, fmt.Errorf("%w: malformed timestamp %q", ErrInvalid, raw)
	}
	i++

	digits := 0
	for i < n && raw[i] >= '0' && raw[i] <= '9' {
		ts.Nsec = ts.Nsec*10 + int64(raw[i]-'0')
		i++
		digits++
		if digits > 9 {
			return Timespec{}, false, fmt.Errorf("%w: timestamp fraction too long in %q", ErrInvalid, raw)
		}
	}
	if digits == 0 || i != n {
		return Timespec{}, false, fmt.Errorf("%w: malformed timestamp %q", ErrInvalid, raw)
	}

	if digits < 9 {
		fuzzy = true
		for ; digits < 9; digits++ {
			ts.Nsec *= 10
		}
	}

	if ts.Nsec >= 1_000_000_000 {
		return Timespec{}, false, fmt.Errorf("%w: timestamp nanoseconds out of range in %q", ErrInvalid, raw)
	}

	return ts, fuzzy, nil
}

// formatTimestamp encodes ts at full precision: seconds, '.', exactly nine
// nanosecond digits. Reads of our own writes are never fuzzy.
func formatTimestamp(ts Timespec) string {
	return fmt.Sprintf("%d.%09d", ts.Sec, ts.Nsec)
}
