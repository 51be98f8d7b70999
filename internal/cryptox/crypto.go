// Package cryptox implements the cryptographic primitives of vaultnotes:
// PBKDF2 key derivation, AES-256-GCM field encryption, salted password
// hashing and random password generation.
//
// Wire formats (stable, must not change):
//
//	encrypted field = base64(nonce[12] || ciphertext || tag[16])
//	password hash   = base64(salt[16] || derived[32])
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of key-derivation and password-hash salts.
	SaltSize = 16
	// KeySize is the AES-256 key length produced by DeriveKey.
	KeySize = 32
	// NonceSize is the GCM nonce length.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16

	// Iterations is the PBKDF2-HMAC-SHA-256 iteration count, shared by
	// key derivation and password hashing. Raising it invalidates no
	// stored data for derivation (salt is stored, count is fixed here),
	// but existing password hashes would stop verifying, so treat it as
	// part of the wire format.
	Iterations = 65536
)

var (
	// ErrInvalidBlob reports a structurally malformed blob: bad base64 or
	// a decoded payload shorter than the minimum layout.
	ErrInvalidBlob = errors.New("malformed crypto blob")

	// ErrAuthenticationFailed reports an AEAD open failure: wrong key, or
	// a tampered/corrupted ciphertext. No plaintext is ever returned
	// alongside it.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// GenerateSalt returns a fresh random salt for key derivation or password
// hashing.
func GenerateSalt() []byte {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		panic(err)
	}
	return salt
}

// DeriveKey stretches a master password and salt into a 32-byte AES key
// using PBKDF2-HMAC-SHA-256. It is deterministic: the same (password, salt)
// pair always yields the same key.
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, Iterations, KeySize, sha256.New)
}

// Encrypt seals plaintext with AES-256-GCM under key and returns the
// base64-encoded blob nonce||ciphertext||tag.
//
// A fresh random nonce is generated on every call. Nonce reuse under the
// same key breaks both confidentiality and authenticity of GCM, so callers
// must never cache or replay blobs produced here as nonce sources.
func Encrypt(plaintext, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("new gcm: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends ciphertext||tag to the nonce, producing the stored layout.
	sealed := aesgcm.Seal(nonce, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a blob produced by Encrypt.
//
// It returns ErrInvalidBlob if the blob is not valid base64 or is shorter
// than nonce+tag, and ErrAuthenticationFailed if the authentication tag
// does not verify (wrong key or tampered data). Partial plaintext is never
// returned.
func Decrypt(blob string, key []byte) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, ErrInvalidBlob
	}
	if len(data) < NonceSize+TagSize {
		return nil, ErrInvalidBlob
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	plaintext, err := aesgcm.Open(nil, data[:NonceSize], data[NonceSize:], nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
