package cryptox

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyPassword(t *testing.T) {
	password := []byte("Secr3t!")

	stored, err := HashPassword(password)
	require.NoError(t, err)

	ok, err := VerifyPassword(password, stored)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword([]byte("Secr3t!x"), stored)
	require.NoError(t, err)
	assert.False(t, ok, "wrong password must not verify")
}

func TestHashPassword_FreshSalt(t *testing.T) {
	password := []byte("same password")

	h1, err := HashPassword(password)
	require.NoError(t, err)
	h2, err := HashPassword(password)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "each hash must use a fresh salt")

	for _, h := range []string{h1, h2} {
		ok, err := VerifyPassword(password, h)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestHashPassword_BlobLayout(t *testing.T) {
	stored, err := HashPassword([]byte("w"))
	require.NoError(t, err)

	data, err := base64.StdEncoding.DecodeString(stored)
	require.NoError(t, err)
	assert.Len(t, data, SaltSize+KeySize)
}

func TestVerifyPassword_MalformedBlob(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"not base64", "***"},
		{"empty", ""},
		{"truncated", base64.StdEncoding.EncodeToString(make([]byte, SaltSize))},
		{"too long", base64.StdEncoding.EncodeToString(make([]byte, SaltSize+KeySize+1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword([]byte("w"), tt.stored)
			assert.ErrorIs(t, err, ErrInvalidBlob)
			assert.False(t, ok)
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		p := GenerateStrongPassword()
		require.Len(t, p, GeneratedPasswordLength)
		for _, r := range p {
			assert.True(t, strings.ContainsRune(passwordAlphabet, r), "unexpected character %q", r)
		}
		assert.False(t, seen[p], "generated password repeated")
		seen[p] = true
	}
}
