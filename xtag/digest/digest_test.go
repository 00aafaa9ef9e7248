package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByNameCanonical(t *testing.T) {
	tests := []struct {
		name    string
		hexSize int
	}{
		{"md5", 32},
		{"sha1", 40},
		{"sha256", 64},
		{"sha512", 128},
		{"blake2b512", 128},
		{"blake2s256", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alg, err := ByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, alg.Name())
			assert.Equal(t, tt.hexSize, alg.HexSize())
			assert.Equal(t, tt.hexSize/2, alg.Size())
			assert.False(t, alg.IsZero())
		})
	}
}

func TestByNameAliases(t *testing.T) {
	tests := []struct {
		alias     string
		canonical string
	}{
		{"blake2", "blake2b512"},
		{"blake2b", "blake2b512"},
		{"blake2s", "blake2s256"},
	}

	for _, tt := range tests {
		alg, err := ByName(tt.alias)
		require.NoError(t, err)
		assert.Equal(t, tt.canonical, alg.Name(), "alias %q", tt.alias)
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("crc32")
	assert.Error(t, err)

	_, err = ByName("")
	assert.Error(t, err)
}

func TestDefaultIsSha256(t *testing.T) {
	assert.Equal(t, "sha256", Default().Name())
}

func TestSumReaderKnownVectors(t *testing.T) {
	tests := []struct {
		alg   string
		input string
		want  string
	}{
		{"sha256", "Hello World!\n", "03ba204e50d126e4674c005e04d82e84c21366780af1f43bd54a37816b6ab340"},
		{"sha256", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"md5", "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"sha1", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	}

	for _, tt := range tests {
		t.Run(tt.alg+"/"+tt.input, func(t *testing.T) {
			alg, err := ByName(tt.alg)
			require.NoError(t, err)

			sum, err := alg.SumReader(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, sum)
		})
	}
}

func TestSumReaderLengthMatchesHexSize(t *testing.T) {
	for _, name := range Names() {
		alg, err := ByName(name)
		require.NoError(t, err)

		sum, err := alg.SumReader(strings.NewReader("payload"))
		require.NoError(t, err)
		assert.Len(t, sum, alg.HexSize(), "algorithm %q", name)
	}
}

func TestSumReaderZeroAlgorithm(t *testing.T) {
	var zero Algorithm
	_, err := zero.SumReader(strings.NewReader("x"))
	assert.Error(t, err)
}
