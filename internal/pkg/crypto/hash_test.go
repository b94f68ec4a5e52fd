package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMD5HasherHash(t *testing.T) {
	h := MD5Hasher{}

	// md5("") reference vector.
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", h.Hash("", ""))

	digest := h.Hash("abcdef", "secret")
	require.Len(t, digest, DigestHexLength)
	assert.True(t, ValidDigest(digest))

	// Deterministic, and salt participates in the digest.
	assert.Equal(t, digest, h.Hash("abcdef", "secret"))
	assert.NotEqual(t, digest, h.Hash("fedcba", "secret"))
	assert.NotEqual(t, digest, h.Hash("abcdef", "other"))
}

func TestMD5HasherVerify(t *testing.T) {
	h := MD5Hasher{}
	digest := h.Hash("salt", "secret")

	assert.True(t, h.Verify("salt", "secret", digest))
	assert.False(t, h.Verify("salt", "wrong", digest))
	assert.False(t, h.Verify("other", "secret", digest))
	assert.False(t, h.Verify("salt", "secret", ""))
}

func TestArgon2Hasher(t *testing.T) {
	h := NewArgon2Hasher()

	digest := h.Hash("salt", "secret")
	require.Len(t, digest, DigestHexLength)
	assert.True(t, ValidDigest(digest))

	assert.Equal(t, digest, h.Hash("salt", "secret"))
	assert.True(t, h.Verify("salt", "secret", digest))
	assert.False(t, h.Verify("salt", "wrong", digest))

	// Digests are format-compatible but not value-compatible across hashers.
	assert.NotEqual(t, digest, MD5Hasher{}.Hash("salt", "secret"))
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher(HasherMD5)
	require.NoError(t, err)
	assert.IsType(t, MD5Hasher{}, h)

	h, err = NewHasher(HasherArgon2ID)
	require.NoError(t, err)
	assert.IsType(t, Argon2Hasher{}, h)

	_, err = NewHasher("bcrypt")
	assert.Error(t, err)
}

func TestValidDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
		want   bool
	}{
		{"lowercase hex", "0123456789abcdef0123456789abcdef", true},
		{"uppercase hex", "0123456789ABCDEF0123456789ABCDEF", true},
		{"too short", "0123456789abcdef", false},
		{"too long", "0123456789abcdef0123456789abcdef00", false},
		{"non-hex character", "0123456789abcdef0123456789abcdeg", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDigest(tt.digest))
		})
	}
}
