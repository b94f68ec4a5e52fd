package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Character sets and default lengths for key generation.
const (
	// accessCodeChars contains the 62 symbols access codes are drawn from.
	accessCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// DefaultAccessCodeLength is the length of a generated access code.
	DefaultAccessCodeLength = 6

	// DefaultSaltBytes is the number of random bytes in a generated salt.
	DefaultSaltBytes = 16
)

// GenerateAccessCode generates a random alphanumeric one-time code of the
// given length. Safe for concurrent use; calls are independent.
func GenerateAccessCode(length int) (string, error) {
	return generateRandomString(length, accessCodeChars)
}

// GenerateSalt generates n random bytes and returns them hex-encoded.
// The encoding is stable and reversible, so salts survive export/import
// unchanged.
func GenerateSalt(n int) (string, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// generateRandomString generates a random string of the specified length
// using characters from the provided character set.
func generateRandomString(length int, charset string) (string, error) {
	result := make([]byte, length)
	charsetLen := len(charset)

	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	for i := 0; i < length; i++ {
		result[i] = charset[int(randomBytes[i])%charsetLen]
	}

	return string(result), nil
}

// KeySource bundles salt and access-code generation with configured sizes.
// It satisfies the directory's domain.KeySource dependency.
type KeySource struct {
	SaltBytes        int
	AccessCodeLength int
}

// NewKeySource returns a KeySource with the default sizes.
func NewKeySource() KeySource {
	return KeySource{
		SaltBytes:        DefaultSaltBytes,
		AccessCodeLength: DefaultAccessCodeLength,
	}
}

// NewSalt generates a fresh hex-encoded salt.
func (k KeySource) NewSalt() (string, error) {
	return GenerateSalt(k.SaltBytes)
}

// NewAccessCode generates a fresh one-time code.
func (k KeySource) NewAccessCode() (string, error) {
	return GenerateAccessCode(k.AccessCodeLength)
}
