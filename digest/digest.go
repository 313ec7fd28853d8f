// Package digest computes MD5, SHA-256, and BLAKE3 checksums.
//
// Two modes are supported: one-shot digesting of an independent byte
// buffer via Sum, and incremental accumulation across many buffers via
// Accumulator. Output is always the algorithm's default digest width;
// no extended (XOF) output is exposed.
package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
)

// Algorithm selects the hash function for a run.
type Algorithm int

// Supported algorithms.
const (
	MD5 Algorithm = iota
	SHA256
	BLAKE3
)

// Default is the algorithm used when none is selected.
const Default = SHA256

// ParseAlgorithm parses an algorithm name, case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "md5":
		return MD5, nil
	case "sha256":
		return SHA256, nil
	case "blake3":
		return BLAKE3, nil
	default:
		return Default, fmt.Errorf("unknown algorithm: %q (must be md5, sha256, or blake3)", s)
	}
}

// String returns the canonical upper-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "MD5"
	case SHA256:
		return "SHA256"
	case BLAKE3:
		return "BLAKE3"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Size returns the digest width in bytes.
func (a Algorithm) Size() int {
	if a == MD5 {
		return md5.Size
	}
	return 32
}

// newHash returns a fresh hash state for the algorithm. Each call is an
// independent computation; no state leaks across calls.
func (a Algorithm) newHash() hash.Hash {
	switch a {
	case MD5:
		return md5.New()
	case BLAKE3:
		return blake3.New()
	default:
		return sha256.New()
	}
}

// Digest is a fixed-length hash output. Immutable once produced.
type Digest []byte

// Hex renders the digest as lowercase hex, two characters per byte,
// no separators.
func (d Digest) Hex() string {
	return hex.EncodeToString(d)
}

// Sum computes the one-shot digest of data under the given algorithm.
// Deterministic: identical bytes and algorithm always produce identical
// output.
func Sum(data []byte, algo Algorithm) Digest {
	h := algo.newHash()
	h.Write(data)
	return Digest(h.Sum(nil))
}
