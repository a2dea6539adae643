package validate_test

import (
	"testing"

	"userstore/internal/validate"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"  alice@example.com  ", true},
		{"a.b+c@sub.example.org", true},
		{"", false},
		{"   ", false},
		{"nodomain", false},
		{"@example.com", false},
		{"alice@", false},
		{"a@b@c.com", false},
		{"alice@nodot", false},
		{"alice@.example.com", false},
		{"alice@example.com.", false},
	}
	for _, c := range cases {
		if got := validate.IsValid(c.email); got != c.want {
			t.Errorf("IsValid(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}
