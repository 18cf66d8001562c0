// Package errs holds the sentinel errors shared by services and handlers.
// Handlers translate them to HTTP statuses at the boundary: validation → 400,
// not found → 404, not authorized → 401, anything else → 500.
package errs

import "errors"

var (
	// ErrNotFound covers a missing target entity and any missing link in
	// the ownership chain (a task whose column is gone, a column whose
	// board is gone).
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized means the ownership chain resolved but the board
	// owner is not the requester.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrValidation covers malformed or missing request fields caught
	// past DTO validation.
	ErrValidation = errors.New("validation failed")
)
