package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrTableEmpty    = errors.New("path table is empty")
	ErrInvalidConfig = errors.New("invalid configuration")
)
