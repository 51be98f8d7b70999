// Package users persists account records.
package users

import (
	"context"

	"github.com/vaultnotes/vaultnotes/internal/models"
)

// Repository describes storage operations for User records.
type Repository interface {
	// Add stores a new user. A username collision returns
	// common.ErrorDuplicateUsername.
	Add(ctx context.Context, user *models.User) error

	// GetByUsername returns the user with the exact (case-sensitive)
	// username, or common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdatePasswordHash replaces the stored password hash for a user id.
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}
