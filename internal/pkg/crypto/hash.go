// Package crypto provides credential hashing and key generation for
// Alexander Directory.
package crypto

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Digest sizes. Every hasher renders its digest as DigestHexLength lowercase
// hex characters so stored credential material has a single fixed shape.
const (
	// DigestSize is the raw digest length in bytes (128 bits).
	DigestSize = 16

	// DigestHexLength is the length of a hex-encoded digest.
	DigestHexLength = DigestSize * 2
)

// Hasher names accepted by NewHasher.
const (
	HasherMD5      = "md5"
	HasherArgon2ID = "argon2id"
)

// Hasher derives a one-way credential digest from a salt and a secret and
// verifies candidate secrets against a stored digest.
type Hasher interface {
	// Hash returns the digest of (salt, secret) as 32 lowercase hex characters.
	Hash(salt, secret string) string

	// Verify recomputes the digest for (salt, secret) and compares it
	// against digest in constant time.
	Verify(salt, secret, digest string) bool
}

// NewHasher returns the hasher registered under name.
func NewHasher(name string) (Hasher, error) {
	switch name {
	case HasherMD5:
		return MD5Hasher{}, nil
	case HasherArgon2ID:
		return NewArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("unknown hasher %q", name)
	}
}

// MD5Hasher digests md5(salt + secret). This preserves the shape of legacy
// credential records (variable-length salt followed by a 32-hex-char hash)
// and is the only hasher that can verify them. MD5 is a fast hash; prefer
// Argon2Hasher where legacy compatibility is not required.
type MD5Hasher struct{}

// Hash implements Hasher.
func (MD5Hasher) Hash(salt, secret string) string {
	sum := md5.Sum([]byte(salt + secret))
	return hex.EncodeToString(sum[:])
}

// Verify implements Hasher.
func (h MD5Hasher) Verify(salt, secret, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(salt, secret)), []byte(digest)) == 1
}

// Argon2Hasher digests argon2id(secret, salt) with a 16-byte output, the
// memory-hard alternative to MD5Hasher. Digests it produces are
// interchangeable in storage format but not in value, so records hashed with
// one algorithm only verify under that same algorithm.
type Argon2Hasher struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// NewArgon2Hasher returns an Argon2Hasher with the RFC 9106 second
// recommended parameter set (64 MiB, 3 passes).
func NewArgon2Hasher() Argon2Hasher {
	return Argon2Hasher{
		Time:    3,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

// Hash implements Hasher.
func (h Argon2Hasher) Hash(salt, secret string) string {
	key := argon2.IDKey([]byte(secret), []byte(salt), h.Time, h.Memory, h.Threads, DigestSize)
	return hex.EncodeToString(key)
}

// Verify implements Hasher.
func (h Argon2Hasher) Verify(salt, secret, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Hash(salt, secret)), []byte(digest)) == 1
}

// ValidDigest reports whether s is a well-formed hex credential digest.
func ValidDigest(s string) bool {
	if len(s) != DigestHexLength {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
