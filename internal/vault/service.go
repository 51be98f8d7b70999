package vault

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vaultnotes/vaultnotes/internal/logging"
	"github.com/vaultnotes/vaultnotes/internal/models"
	"github.com/vaultnotes/vaultnotes/internal/repositories"
)

// Service loads vaults from the repository and keeps the persisted state
// in step with in-memory container changes.
type Service struct {
	db    *sql.DB
	repos repositories.Manager
	log   logging.Logger
}

func NewService(db *sql.DB, repos repositories.Manager, log logging.Logger) *Service {
	return &Service{db: db, repos: repos, log: log}
}

// Load restores the vault for the given owner: its salt and all items in
// insertion order. Returns common.ErrorNotFound if the owner has no vault.
func (s *Service) Load(ctx context.Context, ownerID string) (*Vault, error) {
	repo := s.repos.Vaults(s.db)

	rec, err := repo.Get(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}

	items, err := repo.ListItems(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	return Restore(rec.OwnerID, rec.Salt, items), nil
}

// AddItem inserts an item into the container (enforcing ownership) and
// persists it.
func (s *Service) AddItem(ctx context.Context, v *Vault, item *models.Item) error {
	if err := v.AddItem(item); err != nil {
		return err
	}
	if err := s.repos.Vaults(s.db).UpsertItem(ctx, item); err != nil {
		return fmt.Errorf("persist item: %w", err)
	}
	s.log.Info(ctx, "item added", "id", item.ID, "kind", string(item.Kind))
	return nil
}

// UpdateItem persists a modified item, e.g. after SetSecret re-encrypted a
// field.
func (s *Service) UpdateItem(ctx context.Context, item *models.Item) error {
	if err := s.repos.Vaults(s.db).UpsertItem(ctx, item); err != nil {
		return fmt.Errorf("persist item: %w", err)
	}
	return nil
}

// RemoveItem deletes an item from the container and the store, reporting
// whether it was present.
func (s *Service) RemoveItem(ctx context.Context, v *Vault, itemID string) (bool, error) {
	present := v.RemoveItem(itemID)

	deleted, err := s.repos.Vaults(s.db).DeleteItem(ctx, v.OwnerID, itemID)
	if err != nil {
		return present, fmt.Errorf("delete item: %w", err)
	}
	if present || deleted {
		s.log.Info(ctx, "item removed", "id", itemID)
	}
	return present || deleted, nil
}
