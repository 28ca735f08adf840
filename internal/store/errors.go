package store

import "errors"

// Error Handling Guidelines:
// - Stores: return these sentinels or fmt.Errorf("context: %w", err)
// - Models: translate sentinels into apperrors.* for HTTP-appropriate errors

// Predefined errors for the store layer.
var (
	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden indicates that the user is not authorized to perform the requested action.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates a conflict, e.g. a unique constraint violation.
	ErrConflict = errors.New("conflict")
)
