// Package identity implements registration, login and master-password
// reset on top of the users repository and the cryptox password hashing
// primitives.
package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/vaultnotes/vaultnotes/internal/common"
	"github.com/vaultnotes/vaultnotes/internal/cryptox"
	"github.com/vaultnotes/vaultnotes/internal/dbx"
	"github.com/vaultnotes/vaultnotes/internal/logging"
	"github.com/vaultnotes/vaultnotes/internal/models"
	"github.com/vaultnotes/vaultnotes/internal/repositories"
)

// Default throttle: a login attempt per username every 2 seconds with a
// burst of 5, matching the cost profile of the KDF.
const (
	loginRatePerSec = 0.5
	loginBurst      = 5
	limiterTTL      = 15 * time.Minute
)

// Service provides account operations. Passwords cross its boundary only
// as transient byte slices; what is stored is a salted PBKDF2 hash.
type Service struct {
	db      *sql.DB
	repos   repositories.Manager
	limiter *loginLimiter
	log     logging.Logger
}

// NewService constructs an identity Service bound to the given database
// and repository manager.
func NewService(db *sql.DB, repos repositories.Manager, log logging.Logger) *Service {
	return &Service{
		db:      db,
		repos:   repos,
		limiter: newLoginLimiter(rate.Limit(loginRatePerSec), loginBurst, limiterTTL),
		log:     log,
	}
}

// Register creates a new user and, atomically with it, the user's vault
// record with a fresh key-derivation salt. A taken username yields
// common.ErrorDuplicateUsername and leaves existing state untouched.
func (s *Service) Register(ctx context.Context, username string, password []byte) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", common.ErrorValidation)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: empty password", common.ErrorValidation)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Users(tx).Add(ctx, user); err != nil {
			return err
		}
		return s.repos.Vaults(tx).Create(ctx, user.ID, cryptox.GenerateSalt())
	})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			return nil, common.ErrorDuplicateUsername
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info(ctx, "user registered", "username", username)
	return user, nil
}

// Login authenticates a user by exact username match and password
// verification against the stored hash. Bad credentials (absent user or
// wrong password) yield common.ErrorUnauthorized; only a structurally
// corrupt stored hash produces a different error. Attempts are throttled
// per username before the expensive derivation runs.
func (s *Service) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	if !s.limiter.allow(username) {
		s.log.Warn(ctx, "login throttled", "username", username)
		return nil, common.ErrorTooManyAttempts
	}

	user, err := s.repos.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("stored hash for %q: %w", username, err)
	}
	if !ok {
		s.log.Warn(ctx, "login failed", "username", username)
		return nil, common.ErrorUnauthorized
	}

	s.log.Info(ctx, "login successful", "username", username)
	return user, nil
}

// ResetPassword verifies the current master password and, on success,
// replaces the stored hash with a fresh one (new hash salt) and returns
// true. A wrong current password returns false and mutates nothing.
//
// The vault's key-derivation salt is intentionally untouched: the session
// key is re-derived from the new password and the existing salt, so stored
// items remain decryptable without re-encryption.
func (s *Service) ResetPassword(ctx context.Context, username string, current, newPassword []byte) (bool, error) {
	if len(newPassword) == 0 {
		return false, fmt.Errorf("%w: empty new password", common.ErrorValidation)
	}

	user, err := s.repos.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(current, user.PasswordHash)
	if err != nil {
		return false, fmt.Errorf("stored hash for %q: %w", username, err)
	}
	if !ok {
		return false, nil
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repos.Users(s.db).UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return false, fmt.Errorf("update password hash: %w", err)
	}

	s.log.Info(ctx, "password reset", "username", username)
	return true, nil
}
