package domain

import "errors"

// Sentinel errors shared across the engines and the API layer.
var (
	// ErrNotFound marks lookups for entities that do not exist
	// (programs, career nodes).
	ErrNotFound = errors.New("not found")
	// ErrValidation marks rejected caller input (bad enums, ranges,
	// malformed entities).
	ErrValidation = errors.New("validation failed")
)
