package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vaultnotes/vaultnotes/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and master password and creates a new
// account together with its empty vault. It does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return nil
	}

	if _, err := a.identity.Register(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			printlnFn("Username is already taken.")
			return nil
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	printlnFn("Account created. Use 'login' to open your vault.")
	return nil
}

// Login prompts for credentials, authenticates, loads the vault and
// unlocks the session key. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.identity.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			printlnFn("Invalid username or password.")
		case errors.Is(err, common.ErrorTooManyAttempts):
			printlnFn("Too many attempts, try again later.")
		default:
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	v, err := a.vaults.Load(ctx, user.ID)
	if err != nil {
		a.log.Error(ctx, "vault load failed", "error", err)
		return err
	}

	a.session.Unlock(password, v.Salt)
	a.user = user
	a.vault = v

	printlnFn(fmt.Sprintf("Welcome, %s! Vault contains %d item(s).", user.Username, v.Len()))
	return nil
}

// Logout wipes the in-memory session key and forgets the loaded vault.
// Any later item operation fails closed until the next login.
func (a *App) Logout(ctx context.Context) error {
	a.session.Lock()
	a.user = nil
	a.vault = nil
	printlnFn("Logged out.")
	return nil
}

// ResetPassword verifies the current master password and replaces it.
// On success the session key is re-derived in place from the vault's
// original salt, so the open vault stays usable.
func (a *App) ResetPassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	current, err := getPassword("Enter current master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	newPassword, err := getPassword("Enter new master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	ok, err := a.identity.ResetPassword(ctx, a.user.Username, current, newPassword)
	if err != nil {
		a.log.Error(ctx, "password reset failed", "error", err)
		return err
	}
	if !ok {
		printlnFn("Current password is incorrect.")
		return nil
	}

	if err := a.session.Rekey(newPassword); err != nil {
		return err
	}

	printlnFn("Master password changed.")
	return nil
}
