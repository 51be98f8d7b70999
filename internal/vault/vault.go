// Package vault implements the per-user container of encrypted items:
// ownership-checked insertion, removal by identity, and lazy search over
// non-sensitive metadata.
package vault

import (
	"iter"
	"strings"

	"github.com/vaultnotes/vaultnotes/internal/common"
	"github.com/vaultnotes/vaultnotes/internal/cryptox"
	"github.com/vaultnotes/vaultnotes/internal/models"
)

// Vault is one user's ordered collection of items plus the key-derivation
// salt for that user's session key. The salt is generated once at vault
// creation and never rotates; a password change re-derives the key from
// the same salt so existing items stay decryptable.
type Vault struct {
	OwnerID string
	Salt    []byte

	items []*models.Item
}

// New creates an empty vault for the given owner with a fresh salt.
func New(ownerID string) *Vault {
	return &Vault{OwnerID: ownerID, Salt: cryptox.GenerateSalt()}
}

// Restore rebuilds a vault from persisted state.
func Restore(ownerID string, salt []byte, items []*models.Item) *Vault {
	return &Vault{OwnerID: ownerID, Salt: salt, items: items}
}

// AddItem appends an item to the vault. Items owned by a different user
// are rejected with common.ErrorOwnershipMismatch.
func (v *Vault) AddItem(item *models.Item) error {
	if item.OwnerID != v.OwnerID {
		return common.ErrorOwnershipMismatch
	}
	v.items = append(v.items, item)
	return nil
}

// RemoveItem deletes the item with the given id, preserving the order of
// the rest. It reports whether an item was actually present.
func (v *Vault) RemoveItem(id string) bool {
	for n, item := range v.items {
		if item.ID == id {
			v.items = append(v.items[:n], v.items[n+1:]...)
			return true
		}
	}
	return false
}

// Items returns the items in insertion order. The returned slice is a
// copy; mutating it does not affect the vault.
func (v *Vault) Items() []*models.Item {
	out := make([]*models.Item, len(v.items))
	copy(out, v.items)
	return out
}

// Len returns the number of items in the vault.
func (v *Vault) Len() int {
	return len(v.items)
}

// Search returns a lazy, order-preserving sequence of items whose title or
// summary contains keyword (case-insensitive). Encrypted content is never
// searched. The sequence is restartable: each range re-scans the current
// items.
func (v *Vault) Search(keyword string) iter.Seq[*models.Item] {
	needle := strings.ToLower(keyword)
	return func(yield func(*models.Item) bool) {
		for _, item := range v.items {
			if strings.Contains(strings.ToLower(item.Title), needle) ||
				strings.Contains(strings.ToLower(item.Summary()), needle) {
				if !yield(item) {
					return
				}
			}
		}
	}
}
