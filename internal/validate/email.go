// Package validate provides the email deliverability check applied before
// records are persisted. It is stricter than the structural invariant
// enforced by domain.NewUser, which only requires a local@domain shape.
package validate

import "strings"

// IsValid reports whether email looks deliverable: one "@" separating a
// non-empty local part from a dotted domain with no leading or trailing
// dot. It is not full RFC validation.
func IsValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	local, dom, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(dom, "@") {
		return false
	}
	if local == "" || dom == "" {
		return false
	}
	if !strings.Contains(dom, ".") {
		return false
	}
	return !strings.HasPrefix(dom, ".") && !strings.HasSuffix(dom, ".")
}
