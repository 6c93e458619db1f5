package store

import "errors"

var (
	// ErrNotFound: a referenced post or comment does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrForbidden: an owner-scoped mutation matched zero rows.
	ErrForbidden = errors.New("store: forbidden")
	// ErrInvalid: input failed validation before touching the database.
	ErrInvalid = errors.New("store: invalid input")
)
