package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultnotes/vaultnotes/internal/cryptox"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	return cryptox.DeriveKey([]byte("master"), cryptox.GenerateSalt())
}

func TestNewCredentialItem(t *testing.T) {
	key := testKey(t)

	item, err := NewCredentialItem("user-1", "GitHub", "github.com", "alice", []byte("p@ss"), key)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, ItemKindCredential, item.Kind)
	assert.False(t, item.CreatedAt.IsZero())
	require.NotNil(t, item.Credential)
	assert.NotContains(t, item.Credential.Secret, "p@ss", "secret must not be stored in the clear")

	secret, err := item.Reveal(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("p@ss"), secret)
}

func TestNewNoteItem(t *testing.T) {
	key := testKey(t)

	item, err := NewNoteItem("user-1", "Recovery codes", []byte("one two three"), key)
	require.NoError(t, err)

	assert.Equal(t, ItemKindNote, item.Kind)
	require.NotNil(t, item.Note)

	text, err := item.Reveal(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("one two three"), text)
}

func TestNewItem_Validation(t *testing.T) {
	key := testKey(t)

	_, err := NewNoteItem("user-1", "", []byte("x"), key)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = NewCredentialItem("", "Title", "s", "u", []byte("x"), key)
	assert.ErrorIs(t, err, ErrNoOwner)
}

func TestItem_RevealWithWrongKey(t *testing.T) {
	key := testKey(t)
	otherKey := cryptox.DeriveKey([]byte("wrong"), cryptox.GenerateSalt())

	item, err := NewNoteItem("user-1", "n", []byte("secret text"), key)
	require.NoError(t, err)

	_, err = item.Reveal(otherKey)
	assert.ErrorIs(t, err, cryptox.ErrAuthenticationFailed)
}

func TestItem_SetSecretReplacesField(t *testing.T) {
	key := testKey(t)

	item, err := NewCredentialItem("user-1", "t", "s", "u", []byte("old"), key)
	require.NoError(t, err)
	before := *item.Credential

	require.NoError(t, item.SetSecret([]byte("new"), key))

	secret, err := item.Reveal(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), secret)

	// Only the encrypted field changed.
	diff := cmp.Diff(before, *item.Credential, cmpopts.IgnoreFields(Credential{}, "Secret"))
	assert.Empty(t, diff)
}

func TestItem_Summary(t *testing.T) {
	key := testKey(t)

	cred, err := NewCredentialItem("u", "GitHub", "github.com", "alice", []byte("x"), key)
	require.NoError(t, err)
	assert.Equal(t, "Credential: GitHub (github.com)", cred.Summary())

	note, err := NewNoteItem("u", "Shopping", []byte("x"), key)
	require.NoError(t, err)
	assert.Equal(t, "Note: Shopping", note.Summary())

	assert.NotContains(t, cred.Summary(), "x")
	assert.NotContains(t, note.Summary(), "x")
}

func TestItem_UnknownKind(t *testing.T) {
	item := &Item{ID: "i", OwnerID: "u", Kind: ItemKind("bogus"), Title: "t"}

	_, err := item.Reveal(testKey(t))
	assert.ErrorIs(t, err, ErrUnknownItemKind)

	err = item.SetSecret([]byte("x"), testKey(t))
	assert.ErrorIs(t, err, ErrUnknownItemKind)
}
