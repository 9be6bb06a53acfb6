package util

import "errors"

// Domain error taxonomy. Services wrap these with fmt.Errorf("...: %w", ...)
// so controllers can map them to HTTP codes with errors.Is.
var (
	// ErrInvalidAnswerValue marks a submitted value outside the question
	// type's accepted domain. Raised before any persistence side effect.
	ErrInvalidAnswerValue = errors.New("invalid answer value")

	// ErrInvalidIDReference marks a referenced entity that does not exist
	// or belongs to a different tenant.
	ErrInvalidIDReference = errors.New("invalid id reference")

	// ErrAlreadyExists marks a duplicate employee assessment for the same
	// matrix and email.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSaveFailed marks an upsert for which the store reported no result.
	// Non-retryable from the core's point of view.
	ErrSaveFailed = errors.New("save failed")

	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
