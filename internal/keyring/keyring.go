// Package keyring owns the lifetime of a vault's session key: the AES key
// derived from the master password at login, held in memory while the
// session lasts and wiped at logout.
//
// The Session type is a capability object: code that needs to encrypt or
// decrypt item fields asks it for the key and must be prepared for
// common.ErrorKeyNotAvailable once the session is locked. The raw key is
// never persisted; only the derivation salt is stored with the vault.
package keyring

import (
	"github.com/vaultnotes/vaultnotes/internal/common"
	"github.com/vaultnotes/vaultnotes/internal/cryptox"
)

// Session holds the per-session derived key for one vault.
// The zero value is a locked session; use Unlock to materialize a key.
type Session struct {
	key  []byte
	salt []byte
}

// Unlock derives the session key from the master password and the vault's
// persisted salt, replacing (and wiping) any previously held key.
//
// Derivation is deterministic, so unlocking with the same password and salt
// always materializes the same key. It is also deliberately expensive
// (PBKDF2 with tens of thousands of iterations); callers on interactive
// paths should not run it on a UI thread.
func (s *Session) Unlock(password, salt []byte) {
	s.wipe()
	s.salt = make([]byte, len(salt))
	copy(s.salt, salt)
	s.key = cryptox.DeriveKey(password, salt)
}

// Key returns the materialized session key, or common.ErrorKeyNotAvailable
// if the session was never unlocked or has been locked. It always fails
// closed; there is no stale-key fallback.
func (s *Session) Key() ([]byte, error) {
	if s.key == nil {
		return nil, common.ErrorKeyNotAvailable
	}
	return s.key, nil
}

// Unlocked reports whether a key is currently materialized.
func (s *Session) Unlocked() bool {
	return s.key != nil
}

// Rekey re-derives the session key from a new master password and the salt
// captured at Unlock. Used after a password reset: the salt does not
// rotate, so previously encrypted items stay decryptable.
func (s *Session) Rekey(newPassword []byte) error {
	if s.key == nil {
		return common.ErrorKeyNotAvailable
	}
	common.WipeByteArray(s.key)
	s.key = cryptox.DeriveKey(newPassword, s.salt)
	return nil
}

// Lock wipes and drops the key. Any subsequent Key call fails with
// common.ErrorKeyNotAvailable. Locking an already locked session is a no-op.
func (s *Session) Lock() {
	s.wipe()
}

func (s *Session) wipe() {
	common.WipeByteArray(s.key)
	s.key = nil
	common.WipeByteArray(s.salt)
	s.salt = nil
}
