package gallery

import "errors"

var (
	// ErrValidation is returned for malformed or missing input.
	ErrValidation = errors.New("invalid input")
	// ErrConflict is returned when a unique name is already taken.
	ErrConflict = errors.New("already exists")
	// ErrNotFound is returned when a referenced id has no document.
	ErrNotFound = errors.New("not found")
	// ErrDependency is returned when a downstream store fails.
	ErrDependency = errors.New("store unavailable")
)
