// Package models defines the persistent data types of vaultnotes: users
// and encrypted vault items.
package models

import "time"

// User is an account record. PasswordHash is a cryptox password blob
// (base64 of salt||derived); the master password itself is never stored.
type User struct {
	// ID is a globally unique identifier (uuid).
	ID string

	// Username is unique and matched case-sensitively at login.
	Username string

	// PasswordHash is the salted PBKDF2 hash of the master password.
	// It is replaced in place by a password reset.
	PasswordHash string

	// CreatedAt is the registration time in UTC.
	CreatedAt time.Time
}
