// Package cli implements the interactive vaultnotes REPL: account
// commands (register, login, resetpw), item commands (addlogin, addnote,
// list, show, search, delete) and utilities (genpass).
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/vaultnotes/vaultnotes/internal/config"
	"github.com/vaultnotes/vaultnotes/internal/identity"
	"github.com/vaultnotes/vaultnotes/internal/keyring"
	"github.com/vaultnotes/vaultnotes/internal/logging"
	"github.com/vaultnotes/vaultnotes/internal/models"
	"github.com/vaultnotes/vaultnotes/internal/repositories"
	"github.com/vaultnotes/vaultnotes/internal/vault"
)

// App ties the services, the session key and the interactive input
// together. One App corresponds to one terminal session.
type App struct {
	config   *config.Config
	identity *identity.Service
	vaults   *vault.Service
	log      logging.Logger

	session keyring.Session
	user    *models.User
	vault   *vault.Vault

	reader *bufio.Reader
	db     *sql.DB
}

// NewApp opens (and migrates) the local database and wires the services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := sql.Open("sqlite", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	repos := repositories.NewSQLiteManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:   cfg,
		identity: identity.NewService(db, repos, log),
		vaults:   vault.NewService(db, repos, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		db:       db,
	}, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
// The session key is wiped on the way out.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close locks the session and releases the database handle.
func (a *App) Close() {
	a.session.Lock()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Unlocked()
}

func (a *App) getStatus() string {
	if a.user != nil {
		return "(" + a.user.Username + ")"
	}
	return ""
}
