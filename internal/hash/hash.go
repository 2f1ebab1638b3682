// Package hash computes digests of puzzle inputs.
//
// Every result reports the SHA-256 of the input it was computed from, so two
// runs can be compared without diffing input files. A fake implementation is
// provided for tests.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher digests input contents.
type Hasher interface {
	// Sum returns the hex-encoded digest of data.
	Sum(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum returns the hex-encoded SHA-256 of data.
func (h *SHA256Hasher) Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with predetermined digests for testing.
type FakeHasher struct {
	digests map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		digests: make(map[string]string),
	}
}

// SetDigest sets the digest returned for exact contents (for testing).
func (h *FakeHasher) SetDigest(data, digest string) {
	h.digests[data] = digest
}

// Sum returns the predetermined digest for data, or "fakehash".
func (h *FakeHasher) Sum(data []byte) string {
	if digest, ok := h.digests[string(data)]; ok {
		return digest
	}
	return "fakehash"
}
