package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vaultnotes/vaultnotes/internal/cryptox"
)

// ItemKind classifies a vault item. The set is closed: code that
// dispatches on it switches exhaustively over the constants below.
type ItemKind string

const (
	ItemKindCredential ItemKind = "credential"
	ItemKindNote       ItemKind = "note"
)

var (
	ErrEmptyTitle      = errors.New("item title must not be empty")
	ErrNoOwner         = errors.New("item owner id must not be empty")
	ErrUnknownItemKind = errors.New("unknown item kind")
)

// Credential stores site credentials. Secret is an encrypted cryptox blob;
// Site and Username are searchable metadata and stay in the clear.
type Credential struct {
	Site     string
	Username string
	Secret   string
}

// Note stores free-form text as an encrypted cryptox blob.
type Note struct {
	Text string
}

// Item is one vault entry. Exactly one of Credential/Note is set,
// according to Kind. Title and OwnerID are immutable after construction;
// the encrypted field may be replaced via SetSecret.
type Item struct {
	ID        string
	OwnerID   string
	Kind      ItemKind
	Title     string
	CreatedAt time.Time

	Credential *Credential
	Note       *Note
}

// NewCredentialItem builds a credential item, encrypting the secret under
// the session key. The plaintext secret is not retained.
func NewCredentialItem(ownerID, title, site, username string, secret, key []byte) (*Item, error) {
	if err := validate(ownerID, title); err != nil {
		return nil, err
	}

	blob, err := cryptox.Encrypt(secret, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt secret: %w", err)
	}

	return &Item{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Kind:       ItemKindCredential,
		Title:      title,
		CreatedAt:  time.Now().UTC(),
		Credential: &Credential{Site: site, Username: username, Secret: blob},
	}, nil
}

// NewNoteItem builds a note item, encrypting the text under the session
// key. The plaintext text is not retained.
func NewNoteItem(ownerID, title string, text, key []byte) (*Item, error) {
	if err := validate(ownerID, title); err != nil {
		return nil, err
	}

	blob, err := cryptox.Encrypt(text, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt note: %w", err)
	}

	return &Item{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Kind:      ItemKindNote,
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Note:      &Note{Text: blob},
	}, nil
}

func validate(ownerID, title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if ownerID == "" {
		return ErrNoOwner
	}
	return nil
}

// Reveal decrypts and returns the item's sensitive field: the secret for a
// credential, the text for a note. The caller should wipe the returned
// bytes when done.
func (i *Item) Reveal(key []byte) ([]byte, error) {
	switch i.Kind {
	case ItemKindCredential:
		return cryptox.Decrypt(i.Credential.Secret, key)
	case ItemKindNote:
		return cryptox.Decrypt(i.Note.Text, key)
	default:
		return nil, ErrUnknownItemKind
	}
}

// SetSecret re-encrypts the item's sensitive field with a new plaintext.
func (i *Item) SetSecret(plaintext, key []byte) error {
	blob, err := cryptox.Encrypt(plaintext, key)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	switch i.Kind {
	case ItemKindCredential:
		i.Credential.Secret = blob
	case ItemKindNote:
		i.Note.Text = blob
	default:
		return ErrUnknownItemKind
	}
	return nil
}

// Summary returns a short, non-sensitive string for list views and search.
// It never contains decrypted content.
func (i *Item) Summary() string {
	switch i.Kind {
	case ItemKindCredential:
		return fmt.Sprintf("Credential: %s (%s)", i.Title, i.Credential.Site)
	case ItemKindNote:
		return fmt.Sprintf("Note: %s", i.Title)
	default:
		return i.Title
	}
}

// DisplayDetails returns the non-sensitive detail lines for the item.
// Sensitive fields are only available through Reveal.
func (i *Item) DisplayDetails() string {
	switch i.Kind {
	case ItemKindCredential:
		return fmt.Sprintf("Title: %s\nSite: %s\nUsername: %s\nCreated: %s",
			i.Title, i.Credential.Site, i.Credential.Username, i.CreatedAt.Format(time.RFC3339))
	default:
		return fmt.Sprintf("Title: %s\nCreated: %s", i.Title, i.CreatedAt.Format(time.RFC3339))
	}
}
