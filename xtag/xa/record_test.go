package xa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/xtag/xtag/digest"
)

func TestNewRecordPlaceholder(t *testing.T) {
	for _, name := range digest.Names() {
		alg, err := digest.ByName(name)
		require.NoError(t, err)

		rec := NewRecord(alg)
		assert.False(t, rec.Valid)
		assert.False(t, rec.Fuzzy)
		assert.True(t, rec.Mtime.IsZero())
		assert.Equal(t, strings.Repeat("0", alg.HexSize()), rec.Hash,
			"invalid records carry the zero placeholder for %q", name)
	}
}

func TestRecordClearKeepsAlgorithm(t *testing.T) {
	alg := digest.Default()

	rec := NewRecord(alg)
	rec.Valid = true
	rec.Fuzzy = true
	rec.Mtime = Timespec{Sec: 12, Nsec: 34}
	rec.Hash = strings.Repeat("a", alg.HexSize())

	rec.Clear()
	assert.Equal(t, alg.Name(), rec.Alg.Name())
	assert.False(t, rec.Valid)
	assert.False(t, rec.Fuzzy)
	assert.True(t, rec.Mtime.IsZero())
	assert.Equal(t, strings.Repeat("0", alg.HexSize()), rec.Hash)
}

func TestRecordFormat(t *testing.T) {
	alg := digest.Default()

	rec := NewRecord(alg)
	assert.Equal(t, "<empty>", rec.Format())

	rec.Valid = true
	rec.Mtime = Timespec{Sec: 1335974989, Nsec: 42}
	rec.Hash = strings.Repeat("ab", 32)
	assert.Equal(t, strings.Repeat("ab", 32)+" 1335974989.000000042", rec.Format())
}
