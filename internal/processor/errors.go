package processor

import "errors"

// Error classes of a flatten run. Every returned error wraps exactly one of them.
var (
	ErrNotFound     = errors.New("input not readable")
	ErrParse        = errors.New("input is not valid json")
	ErrValidation   = errors.New("input failed validation")
	ErrMissingField = errors.New("feature is missing a required field")
	ErrWrite        = errors.New("output not writable")
)
