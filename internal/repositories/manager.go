// Package repositories wires concrete repository implementations to a
// database handle. Services receive a Manager plus a *sql.DB and can bind
// repositories either to the DB itself or to a transaction (any dbx.DBTX).
package repositories

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/vaultnotes/vaultnotes/internal/dbx"
	"github.com/vaultnotes/vaultnotes/internal/migrations"
	"github.com/vaultnotes/vaultnotes/internal/repositories/users"
	"github.com/vaultnotes/vaultnotes/internal/repositories/vaults"
)

// Manager is a factory for repositories bound to a DB or transaction handle.
type Manager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Vaults(db dbx.DBTX) vaults.Repository
}

// SQLiteManager is the Manager for the local SQLite store.
type SQLiteManager struct{}

func NewSQLiteManager() *SQLiteManager {
	return &SQLiteManager{}
}

func (m *SQLiteManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteManager) Vaults(db dbx.DBTX) vaults.Repository {
	return vaults.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded goose migrations to the database.
func (m *SQLiteManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
