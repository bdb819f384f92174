package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRegisterAndLogin(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Register("alice", "password123"))
	assert.NoError(t, store.Login("alice", "password123"))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Register("alice", "password123"))
	err := store.Register("alice", "other")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Register("alice", "password123"))
	err := store.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	store := newTestStore(t)

	err := store.Login("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_EmptyUsername(t *testing.T) {
	store := newTestStore(t)

	assert.Error(t, store.Register("  ", "password123"))
}
