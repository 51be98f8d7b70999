// Package common contains shared constants, sentinel errors and small
// utility functions used across vaultnotes components. Callers should use
// errors.Is to match the sentinel values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Identity errors.
	ErrorValidation        = errors.New("validation error")
	ErrorDuplicateUsername = errors.New("username already taken")
	ErrorUnauthorized      = errors.New("unauthorized")
	ErrorTooManyAttempts   = errors.New("too many login attempts")

	// Vault errors.
	ErrorOwnershipMismatch = errors.New("item does not belong to this vault")

	// Session errors: an operation needed the derived key but no key is
	// materialized (before login or after logout).
	ErrorKeyNotAvailable = errors.New("session key not available")

	// Generic internal flow control.
	ErrorInternal = errors.New("internal error")
)
