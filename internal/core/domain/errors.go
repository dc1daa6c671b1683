package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCancelled indicates the user aborted the questionnaire.
	ErrCancelled = errors.New("cancelled")

	// ErrNothingToCommit indicates the repository has no staged changes.
	ErrNothingToCommit = errors.New("nothing to commit")
)
