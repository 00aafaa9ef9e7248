// Package digest provides the content-hashing engine: a fixed registry of
// named algorithms and streaming hex-digest computation over file contents.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// Algorithm identifies one supported hash algorithm. The zero value is not
// usable; obtain instances via ByName or Default.
//
// An Algorithm carries its canonical name, raw digest size, and constructor
// in one value so callers never consult parallel lookup tables.
type Algorithm struct {
	name    string
	size    int
	factory func() hash.Hash
}

var algorithms = []Algorithm{
	{"md5", md5.Size, md5.New},
	{"sha1", sha1.Size, sha1.New},
	{"sha256", sha256.Size, sha256.New},
	{"sha512", sha512.Size, sha512.New},
	{"blake2b512", blake2b.Size, func() hash.Hash {
		h, _ := blake2b.New512(nil)
		return h
	}},
	{"blake2s256", blake2s.Size, func() hash.Hash {
		h, _ := blake2s.New256(nil)
		return h
	}},
}

// aliases maps accepted alternate spellings to canonical names. The xattr
// name is always derived from the canonical name, so "blake2" and
// "blake2b512" tag the same attribute.
var aliases = map[string]string{
	"blake2":  "blake2b512",
	"blake2b": "blake2b512",
	"blake2s": "blake2s256",
}

// Default returns the default algorithm (sha256, shatag compatible).
func Default() Algorithm {
	alg, _ := ByName("sha256")
	return alg
}

// ByName resolves a canonical algorithm name or a known alias.
func ByName(name string) (Algorithm, error) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	for _, alg := range algorithms {
		if alg.name == name {
			return alg, nil
		}
	}
	return Algorithm{}, fmt.Errorf("unknown hash algorithm %q", name)
}

// Names returns the canonical names of all supported algorithms, sorted.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for _, alg := range algorithms {
		names = append(names, alg.name)
	}
	sort.Strings(names)
	return names
}

// Name returns the canonical lowercase name of the algorithm.
func (a Algorithm) Name() string { return a.name }

// Size returns the raw digest size in bytes.
func (a Algorithm) Size() int { return a.size }

// HexSize returns the length of the hex string representation of a digest.
func (a Algorithm) HexSize() int { return a.size * 2 }

// IsZero reports whether a is the unusable zero Algorithm.
func (a Algorithm) IsZero() bool { return a.factory == nil }

// SumReader hashes r to EOF and returns the lowercase hex digest.
func (a Algorithm) SumReader(r io.Reader) (string, error) {
	if a.factory == nil {
		return "", fmt.Errorf("no hash algorithm selected")
	}
	h := a.factory()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash contents: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
