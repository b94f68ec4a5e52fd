package crypto

import (
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateAccessCode(DefaultAccessCodeLength)
		require.NoError(t, err)
		require.Len(t, code, DefaultAccessCodeLength)

		for _, c := range code {
			assert.True(t, strings.ContainsRune(accessCodeChars, c),
				"unexpected character %q in code %q", c, code)
		}
	}
}

func TestGenerateAccessCodeLength(t *testing.T) {
	code, err := GenerateAccessCode(12)
	require.NoError(t, err)
	assert.Len(t, code, 12)
}

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt(DefaultSaltBytes)
	require.NoError(t, err)
	require.Len(t, salt, DefaultSaltBytes*2)

	// Hex encoding is reversible.
	raw, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, raw, DefaultSaltBytes)

	other, err := GenerateSalt(DefaultSaltBytes)
	require.NoError(t, err)
	assert.NotEqual(t, salt, other, "two generated salts should not collide")
}

func TestKeySource(t *testing.T) {
	keys := NewKeySource()

	salt, err := keys.NewSalt()
	require.NoError(t, err)
	assert.Len(t, salt, DefaultSaltBytes*2)

	code, err := keys.NewAccessCode()
	require.NoError(t, err)
	assert.Len(t, code, DefaultAccessCodeLength)
}

func TestKeySourceConcurrent(t *testing.T) {
	keys := KeySource{SaltBytes: 16, AccessCodeLength: 6}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := keys.NewSalt(); err != nil {
				t.Errorf("NewSalt: %v", err)
			}
			if _, err := keys.NewAccessCode(); err != nil {
				t.Errorf("NewAccessCode: %v", err)
			}
		}()
	}
	wg.Wait()
}
