package directory_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userstore/internal/domain"
	"userstore/internal/services/directory"
	"userstore/internal/store"
)

func newService(t *testing.T) *directory.Service {
	t.Helper()
	s := store.NewUserFileStore(filepath.Join(t.TempDir(), "users.json"), nil)
	return directory.New(s, nil)
}

func TestAdd_RejectsUndeliverableEmail(t *testing.T) {
	svc := newService(t)

	// "a@b" satisfies the structural record invariant but fails the
	// stricter dotted-domain check applied before persisting.
	u, err := domain.NewUser(1, "Alice", "a@b", nil)
	require.NoError(t, err)

	err = svc.Add(u)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, ok := svc.Get(1)
	assert.False(t, ok, "rejected record must not be stored")
}

func TestAddGetRemove(t *testing.T) {
	svc := newService(t)

	u, err := domain.NewUser(1, "Alice", "alice@example.com", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Add(u))

	got, ok := svc.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name)

	removed, err := svc.Remove(1)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Remove(1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSeed(t *testing.T) {
	svc := newService(t)

	users, err := svc.Seed()
	require.NoError(t, err)
	require.Len(t, users, 3)

	all := svc.List(0, 0)
	require.Len(t, all, 3)
	assert.Equal(t, "Alice Johnson", all[0].Name)
	assert.Equal(t, "dark", all[0].Preference("theme", ""))
	assert.Equal(t, "Bob Smith", all[1].Name)
	assert.Empty(t, all[2].Preferences)
}
