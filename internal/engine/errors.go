package engine

import "errors"

var (
	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownPuzzle indicates no solver is registered for the requested day.
	ErrUnknownPuzzle = errors.New("unknown puzzle")
)
