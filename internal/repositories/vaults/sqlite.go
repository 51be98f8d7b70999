package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vaultnotes/vaultnotes/internal/common"
	"github.com/vaultnotes/vaultnotes/internal/dbx"
	"github.com/vaultnotes/vaultnotes/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, ownerID string, salt []byte) error {
	query := `INSERT INTO vaults (owner_id, salt) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, ownerID, salt); err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, ownerID string) (*Record, error) {
	query := `SELECT owner_id, salt FROM vaults WHERE owner_id = ?`
	row := r.db.QueryRowContext(ctx, query, ownerID)

	rec := &Record{}
	if err := row.Scan(&rec.OwnerID, &rec.Salt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rec, nil
}

// ListItems returns items in insertion order (rowid). Rows with an unknown
// kind or unparsable timestamp are skipped rather than failing the whole
// load: malformed persisted data degrades to absent.
func (r *SQLiteRepository) ListItems(ctx context.Context, ownerID string) ([]*models.Item, error) {
	query := `SELECT id, owner_id, kind, title, site, username, secret, note, created_at
		FROM items WHERE owner_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		var (
			id, owner, kind, title       string
			site, username, secret, note sql.NullString
			createdAt                    string
		)
		if err := rows.Scan(&id, &owner, &kind, &title, &site, &username, &secret, &note, &createdAt); err != nil {
			return nil, err
		}

		item := &models.Item{
			ID:      id,
			OwnerID: owner,
			Kind:    models.ItemKind(kind),
			Title:   title,
		}
		item.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

		switch item.Kind {
		case models.ItemKindCredential:
			item.Credential = &models.Credential{
				Site:     site.String,
				Username: username.String,
				Secret:   secret.String,
			}
		case models.ItemKindNote:
			item.Note = &models.Note{Text: note.String}
		default:
			continue
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) UpsertItem(ctx context.Context, item *models.Item) error {
	var site, username, secret, note sql.NullString
	switch item.Kind {
	case models.ItemKindCredential:
		site = sql.NullString{String: item.Credential.Site, Valid: true}
		username = sql.NullString{String: item.Credential.Username, Valid: true}
		secret = sql.NullString{String: item.Credential.Secret, Valid: true}
	case models.ItemKindNote:
		note = sql.NullString{String: item.Note.Text, Valid: true}
	default:
		return models.ErrUnknownItemKind
	}

	query := `INSERT INTO items (id, owner_id, kind, title, site, username, secret, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			site = excluded.site,
			username = excluded.username,
			secret = excluded.secret,
			note = excluded.note`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.OwnerID, string(item.Kind), item.Title,
		site, username, secret, note,
		item.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteItem(ctx context.Context, ownerID, itemID string) (bool, error) {
	query := `DELETE FROM items WHERE owner_id = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query, ownerID, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}
