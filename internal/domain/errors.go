package domain

import "errors"

// Error kinds. Package errors wrap one of these so callers can classify
// a failure with errors.Is regardless of which layer produced it.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrSchedulingPolicy = errors.New("scheduling policy violation")
)
