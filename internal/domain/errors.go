package domain

import "errors"

var (
	// ErrInvalidEmail is returned when an email address is not shaped like
	// local@domain with a single "@" and non-empty sides.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidKey is returned when a preference key is empty or blank.
	ErrInvalidKey = errors.New("preference key must be a non-blank string")

	// ErrMissingField is returned when a stored record lacks one of the
	// required id, name or email fields.
	ErrMissingField = errors.New("missing required field")
)
