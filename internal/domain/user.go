package domain

import (
	"fmt"
	"strings"
)

// User is one user record: a fixed integer identity, a display fallback
// name, a contact email and a free-form preference bag. Preference values
// are strings, bools or ints.
type User struct {
	ID          int
	Name        string
	Email       string
	Preferences map[string]any
}

// NewUser validates the email shape (exactly one "@" with non-empty local
// and domain parts) and returns a record with its own copy of prefs. A nil
// prefs means an empty bag. The email invariant is checked here only;
// direct field mutation afterwards is the caller's problem.
func NewUser(id int, name, email string, prefs map[string]any) (*User, error) {
	if !wellFormed(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	u := &User{
		ID:          id,
		Name:        name,
		Email:       email,
		Preferences: make(map[string]any, len(prefs)),
	}
	for k, v := range prefs {
		u.Preferences[k] = v
	}
	return u, nil
}

func wellFormed(email string) bool {
	local, dom, ok := strings.Cut(email, "@")
	return ok && local != "" && dom != "" && !strings.Contains(dom, "@")
}

// DisplayName returns the "display_name" preference when set, otherwise
// the record's name.
func (u *User) DisplayName() string {
	if v, ok := u.Preferences["display_name"]; ok {
		return fmt.Sprint(v)
	}
	return u.Name
}

// EmailDomain returns the part of the email after the "@", or "" if the
// address is malformed.
func (u *User) EmailDomain() string {
	if _, dom, ok := strings.Cut(u.Email, "@"); ok {
		return dom
	}
	return ""
}

// SetPreference inserts or overwrites a single preference. The change is
// reported to the notification sink (see SetObserver).
func (u *User) SetPreference(key string, value any) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	u.Preferences[key] = value
	notify(fmt.Sprintf("updated preference: %s = %v", key, value))
	return nil
}

// SetPreferences merges prefs into the bag, overwriting existing keys.
// Every key is validated with the same rule as SetPreference; on the
// first invalid key nothing is merged.
func (u *User) SetPreferences(prefs map[string]any) error {
	for k := range prefs {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: %q", ErrInvalidKey, k)
		}
	}
	for k, v := range prefs {
		u.Preferences[k] = v
	}
	return nil
}

// HasPreference reports whether key is set.
func (u *User) HasPreference(key string) bool {
	_, ok := u.Preferences[key]
	return ok
}

// Preference returns the value for key, or def when absent.
func (u *User) Preference(key string, def any) any {
	if v, ok := u.Preferences[key]; ok {
		return v
	}
	return def
}

// RemovePreference deletes key from the bag; absent keys are a no-op.
func (u *User) RemovePreference(key string) {
	delete(u.Preferences, key)
}

// ClearPreferences empties the bag.
func (u *User) ClearPreferences() {
	u.Preferences = make(map[string]any)
}

// Clone returns a deep copy; the preference bag is not shared.
func (u *User) Clone() *User {
	c := *u
	c.Preferences = make(map[string]any, len(u.Preferences))
	for k, v := range u.Preferences {
		c.Preferences[k] = v
	}
	return &c
}
