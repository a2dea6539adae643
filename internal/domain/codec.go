package domain

import "fmt"

// ToMap returns the structural form of the record. The derived
// display_name is included for consumers; UserFromMap ignores it.
func (u *User) ToMap() map[string]any {
	prefs := make(map[string]any, len(u.Preferences))
	for k, v := range u.Preferences {
		prefs[k] = v
	}
	return map[string]any{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"preferences":  prefs,
		"display_name": u.DisplayName(),
	}
}

// UserFromMap rebuilds a record from its structural form, typically a
// decoded JSON object. It fails with ErrMissingField when id, name or
// email is absent or mistyped, and tolerates a missing or wrong-typed
// preferences field by substituting an empty bag. Construction goes
// through NewUser, so the email invariant applies here too.
func UserFromMap(data map[string]any) (*User, error) {
	id, ok := asInt(data["id"])
	if !ok {
		return nil, fmt.Errorf("%w: id", ErrMissingField)
	}
	name, ok := data["name"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	email, ok := data["email"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: email", ErrMissingField)
	}
	prefs, _ := data["preferences"].(map[string]any)
	return NewUser(id, name, email, normalizePreferences(prefs))
}

// normalizePreferences maps decoded JSON values back onto the preference
// value set: integral float64s become ints, everything else passes through.
func normalizePreferences(prefs map[string]any) map[string]any {
	if prefs == nil {
		return nil
	}
	out := make(map[string]any, len(prefs))
	for k, v := range prefs {
		if f, ok := v.(float64); ok && f == float64(int(f)) {
			out[k] = int(f)
			continue
		}
		out[k] = v
	}
	return out
}

// asInt accepts the integer encodings seen in structural data: native ints
// and the float64s produced by encoding/json.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
