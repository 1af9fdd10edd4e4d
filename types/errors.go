package types

import "errors"

const (
	ErrInvalidInput  = "Invalid input"
	ErrDatabaseError = "Database error"
	ErrUnauthorized  = "Unauthorized access"
	ErrNotFound      = "Driver not found"
	ErrInternalError = "internal server error"
)

// ErrDriverNotFound is returned by the repository when no driver matches
// the identity triple. Callers must treat it differently from a store
// failure.
var ErrDriverNotFound = errors.New("driver not found")
