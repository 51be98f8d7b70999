package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/vaultnotes/vaultnotes/internal/common"
	"github.com/vaultnotes/vaultnotes/internal/cryptox"
	"github.com/vaultnotes/vaultnotes/internal/models"
)

// AddLogin collects site credentials and stores them as an encrypted
// credential item.
func (a *App) AddLogin(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	site, err := getSimpleText(a.reader, "Enter site", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	secret, err := getPassword("Enter password to store", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	key, err := a.session.Key()
	if err != nil {
		return err
	}

	item, err := models.NewCredentialItem(a.user.ID, title, site, username, secret, key)
	if err != nil {
		printlnFn(fmt.Sprintf("Cannot create item: %v", err))
		return err
	}

	if err := a.vaults.AddItem(ctx, a.vault, item); err != nil {
		a.log.Error(ctx, "add item failed", "error", err)
		return err
	}

	printlnFn("Saved:", item.ID)
	return nil
}

// AddNote collects a note body and stores it as an encrypted note item.
func (a *App) AddNote(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "Enter note text", os.Stdout)
	if err != nil {
		return err
	}

	key, err := a.session.Key()
	if err != nil {
		return err
	}

	item, err := models.NewNoteItem(a.user.ID, title, []byte(text), key)
	if err != nil {
		printlnFn(fmt.Sprintf("Cannot create item: %v", err))
		return err
	}

	if err := a.vaults.AddItem(ctx, a.vault, item); err != nil {
		a.log.Error(ctx, "add item failed", "error", err)
		return err
	}

	printlnFn("Saved:", item.ID)
	return nil
}

// List prints a short, non-sensitive line for each item.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	for _, item := range a.vault.Items() {
		printlnFn(fmt.Sprintf("%s  %s", item.ID, item.Summary()))
	}
	return nil
}

// Show prints the details of a single item, decrypting its sensitive
// field on demand. The decrypted bytes are wiped after printing.
func (a *App) Show(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter item id to show", os.Stdout)
	if err != nil {
		return err
	}

	var found *models.Item
	for _, item := range a.vault.Items() {
		if item.ID == id {
			found = item
			break
		}
	}
	if found == nil {
		printlnFn("No such item.")
		return nil
	}

	key, err := a.session.Key()
	if err != nil {
		return err
	}

	secret, err := found.Reveal(key)
	if err != nil {
		a.log.Error(ctx, "decrypt failed", "id", found.ID, "error", err)
		printlnFn("Cannot decrypt item (wrong key or corrupted data).")
		return err
	}
	defer common.WipeByteArray(secret)

	printlnFn(found.DisplayDetails())
	switch found.Kind {
	case models.ItemKindCredential:
		printlnFn("Password:", string(secret))
	case models.ItemKindNote:
		printlnFn("Note:", string(secret))
	}
	return nil
}

// Search prints items whose title or summary contains the keyword.
func (a *App) Search(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	keyword, err := getSimpleText(a.reader, "Enter keyword", os.Stdout)
	if err != nil {
		return err
	}

	n := 0
	for item := range a.vault.Search(keyword) {
		printlnFn(fmt.Sprintf("%s  %s", item.ID, item.Summary()))
		n++
	}
	if n == 0 {
		printlnFn("No matches.")
	}
	return nil
}

// Delete removes an item by id.
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter item id to delete", os.Stdout)
	if err != nil {
		return err
	}

	removed, err := a.vaults.RemoveItem(ctx, a.vault, id)
	if err != nil {
		a.log.Error(ctx, "delete failed", "error", err)
		return err
	}
	if removed {
		printlnFn("Deleted.")
	} else {
		printlnFn("No such item.")
	}
	return nil
}

// GenPass prints a freshly generated strong password. Available without
// login; the generator is a convenience, not a security boundary.
func (a *App) GenPass(ctx context.Context) error {
	printlnFn(cryptox.GenerateStrongPassword())
	return nil
}
