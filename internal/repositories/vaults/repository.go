// Package vaults persists vault records and their items.
package vaults

import (
	"context"

	"github.com/vaultnotes/vaultnotes/internal/models"
)

// Record is the persisted part of a vault: its owner and key-derivation
// salt. Raw key material is deliberately not part of the record; the key
// is re-derived from the master password on every unlock.
type Record struct {
	OwnerID string
	Salt    []byte
}

// Repository describes storage operations for vault records and items.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Create stores a new vault record. One vault per owner.
	Create(ctx context.Context, ownerID string, salt []byte) error

	// Get returns the vault record for an owner, or common.ErrorNotFound.
	Get(ctx context.Context, ownerID string) (*Record, error)

	// ListItems returns the owner's items in insertion order.
	ListItems(ctx context.Context, ownerID string) ([]*models.Item, error)

	// UpsertItem inserts a new item or replaces an existing one by id.
	UpsertItem(ctx context.Context, item *models.Item) error

	// DeleteItem removes an item and reports whether it was present.
	DeleteItem(ctx context.Context, ownerID, itemID string) (bool, error)
}
