package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

// passwordAlphabet is the character set used by GenerateStrongPassword.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()-_=+"

// GeneratedPasswordLength is the length of passwords produced by
// GenerateStrongPassword.
const GeneratedPasswordLength = 16

// HashPassword hashes a plain-text password with PBKDF2-HMAC-SHA-256 under
// a fresh random salt and returns base64(salt||derived).
//
// A new salt is generated on every call, so hashing the same password twice
// yields different blobs; both verify true via VerifyPassword.
func HashPassword(password []byte) (string, error) {
	salt := GenerateSalt()
	derived := pbkdf2.Key(password, salt, Iterations, KeySize, sha256.New)

	combined := make([]byte, 0, SaltSize+KeySize)
	combined = append(combined, salt...)
	combined = append(combined, derived...)

	return base64.StdEncoding.EncodeToString(combined), nil
}

// VerifyPassword checks a plain-text password against a stored hash blob.
//
// A normal mismatch returns (false, nil). ErrInvalidBlob is returned only
// when the stored blob is structurally invalid. The comparison is constant
// time to avoid leaking the position of the first differing byte.
func VerifyPassword(password []byte, stored string) (bool, error) {
	data, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return false, ErrInvalidBlob
	}
	if len(data) != SaltSize+KeySize {
		return false, ErrInvalidBlob
	}

	salt := data[:SaltSize]
	derived := pbkdf2.Key(password, salt, Iterations, KeySize, sha256.New)

	return subtle.ConstantTimeCompare(derived, data[SaltSize:]) == 1, nil
}

// GenerateStrongPassword returns a 16-character random password drawn
// uniformly from a mixed alphanumeric+symbol alphabet. Convenience only:
// it is not part of any security boundary.
func GenerateStrongPassword() string {
	max := big.NewInt(int64(len(passwordAlphabet)))
	b := make([]byte, GeneratedPasswordLength)
	for i := range b {
		// rand.Int is uniform over [0, max), no modulo bias.
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = passwordAlphabet[n.Int64()]
	}
	return string(b)
}
