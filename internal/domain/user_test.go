package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userstore/internal/domain"
)

func TestNewUser_RejectsMalformedEmail(t *testing.T) {
	bad := []string{
		"",
		"nodomain",
		"@example.com",
		"alice@",
		"alice@@example.com",
		"a@b@c",
	}
	for _, email := range bad {
		_, err := domain.NewUser(1, "Alice", email, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail, "email %q", email)
	}
}

func TestNewUser_CopiesPreferences(t *testing.T) {
	prefs := map[string]any{"theme": "dark"}
	u, err := domain.NewUser(1, "Alice", "alice@example.com", prefs)
	require.NoError(t, err)

	prefs["theme"] = "light"
	assert.Equal(t, "dark", u.Preferences["theme"])
}

func TestDisplayName(t *testing.T) {
	u, err := domain.NewUser(1, "Alice Johnson", "alice@example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", u.DisplayName())

	require.NoError(t, u.SetPreference("display_name", "alice"))
	assert.Equal(t, "alice", u.DisplayName())
}

func TestEmailDomain(t *testing.T) {
	u, err := domain.NewUser(1, "Alice", "alice@example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.EmailDomain())

	u.Email = "malformed"
	assert.Equal(t, "", u.EmailDomain())
}

func TestPreferenceOperations(t *testing.T) {
	u, err := domain.NewUser(1, "Alice", "alice@example.com", nil)
	require.NoError(t, err)

	t.Run("set rejects blank keys", func(t *testing.T) {
		assert.ErrorIs(t, u.SetPreference("", "x"), domain.ErrInvalidKey)
		assert.ErrorIs(t, u.SetPreference("   ", "x"), domain.ErrInvalidKey)
		assert.False(t, u.HasPreference("   "))
	})

	t.Run("set get remove", func(t *testing.T) {
		require.NoError(t, u.SetPreference("theme", "dark"))
		assert.True(t, u.HasPreference("theme"))
		assert.Equal(t, "dark", u.Preference("theme", "light"))
		assert.Equal(t, "light", u.Preference("absent", "light"))

		u.RemovePreference("theme")
		u.RemovePreference("theme") // absent: no-op
		assert.False(t, u.HasPreference("theme"))
	})

	t.Run("bulk set validates every key", func(t *testing.T) {
		err := u.SetPreferences(map[string]any{"ok": 1, " ": 2})
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
		assert.False(t, u.HasPreference("ok"), "nothing merged on invalid key")

		require.NoError(t, u.SetPreferences(map[string]any{"a": 1, "b": true}))
		assert.Equal(t, 1, u.Preference("a", 0))
		assert.Equal(t, true, u.Preference("b", false))
	})

	t.Run("clear", func(t *testing.T) {
		u.ClearPreferences()
		assert.Empty(t, u.Preferences)
	})
}

func TestSetPreference_Notifies(t *testing.T) {
	var lines []string
	domain.SetObserver(func(line string) { lines = append(lines, line) })
	defer domain.SetObserver(nil)

	u, err := domain.NewUser(1, "Alice", "alice@example.com", nil)
	require.NoError(t, err)
	require.NoError(t, u.SetPreference("theme", "dark"))

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "theme")
	assert.Contains(t, lines[0], "dark")
}

func TestMapRoundTrip(t *testing.T) {
	u, err := domain.NewUser(7, "Alice", "alice@example.com",
		map[string]any{"theme": "dark", "notifications": true, "retries": 3})
	require.NoError(t, err)

	got, err := domain.UserFromMap(u.ToMap())
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.Preferences, got.Preferences)
}

func TestUserFromMap(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{
			"id":    float64(1), // decoded JSON numbers arrive as float64
			"name":  "Alice",
			"email": "alice@example.com",
		}
	}

	t.Run("missing required fields", func(t *testing.T) {
		for _, field := range []string{"id", "name", "email"} {
			data := base()
			delete(data, field)
			_, err := domain.UserFromMap(data)
			assert.ErrorIs(t, err, domain.ErrMissingField, "field %s", field)
		}
	})

	t.Run("preferences tolerated when missing or mistyped", func(t *testing.T) {
		u, err := domain.UserFromMap(base())
		require.NoError(t, err)
		assert.Empty(t, u.Preferences)

		data := base()
		data["preferences"] = "not a map"
		u, err = domain.UserFromMap(data)
		require.NoError(t, err)
		assert.Empty(t, u.Preferences)
	})

	t.Run("integral floats normalise to int", func(t *testing.T) {
		data := base()
		data["preferences"] = map[string]any{"retries": float64(3)}
		u, err := domain.UserFromMap(data)
		require.NoError(t, err)
		assert.Equal(t, 3, u.Preferences["retries"])
	})

	t.Run("email validated like direct construction", func(t *testing.T) {
		data := base()
		data["email"] = "not-an-email"
		_, err := domain.UserFromMap(data)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})
}

func TestClone_DoesNotShareBag(t *testing.T) {
	u, err := domain.NewUser(1, "Alice", "alice@example.com",
		map[string]any{"theme": "dark"})
	require.NoError(t, err)

	c := u.Clone()
	require.NoError(t, c.SetPreference("theme", "light"))
	assert.Equal(t, "dark", u.Preferences["theme"])
}
