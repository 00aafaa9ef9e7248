package xa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampFullPrecision(t *testing.T) {
	ts, fuzzy, err := parseTimestamp([]byte("1335974989.123456789"))
	require.NoError(t, err)
	assert.False(t, fuzzy)
	assert.Equal(t, Timespec{Sec: 1335974989, Nsec: 123456789}, ts)
}

func TestParseTimestampLargeSeconds(t *testing.T) {
	// Far-future but representable; the longest seconds run accepted.
	ts, fuzzy, err := parseTimestamp([]byte("999999999999999999.000000001"))
	require.NoError(t, err)
	assert.False(t, fuzzy)
	assert.Equal(t, Timespec{Sec: 999999999999999999, Nsec: 1}, ts)
}

func TestParseTimestampShortFractionIsFuzzy(t *testing.T) {
	tests := []struct {
		raw  string
		want Timespec
	}{
		// Historical writers stored second or microsecond precision;
		// the fraction is right-padded by scaling.
		{"1335974989.1", Timespec{Sec: 1335974989, Nsec: 100000000}},
		{"1335974989.123456", Timespec{Sec: 1335974989, Nsec: 123456000}},
		{"1335974989.0", Timespec{Sec: 1335974989, Nsec: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ts, fuzzy, err := parseTimestamp([]byte(tt.raw))
			require.NoError(t, err)
			assert.True(t, fuzzy)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	tests := []string{
		"",
		".",
		"123",
		"123.",
		".5",
		"12a.123456789",
		"123.12345678x",
		"1335974989.1234567891", // ten fractional digits
		"-1.123456789",
		"1.123456789 ",
		"9999999999999999999999999.123456789", // seconds would wrap int64
		"1000000000000000000.123456789",       // nineteen digits of seconds
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, _, err := parseTimestamp([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestFormatTimestampFullPrecision(t *testing.T) {
	assert.Equal(t, "1335974989.123456789", formatTimestamp(Timespec{Sec: 1335974989, Nsec: 123456789}))
	assert.Equal(t, "1335974989.000000001", formatTimestamp(Timespec{Sec: 1335974989, Nsec: 1}))
	assert.Equal(t, "0.000000000", formatTimestamp(Timespec{}))
}

func TestTimestampRoundTrip(t *testing.T) {
	orig := Timespec{Sec: 1700000000, Nsec: 42}

	ts, fuzzy, err := parseTimestamp([]byte(formatTimestamp(orig)))
	require.NoError(t, err)
	assert.False(t, fuzzy, "our own writes are always full precision")
	assert.Equal(t, orig, ts)
}
