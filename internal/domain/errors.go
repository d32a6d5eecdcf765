package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity or key was not found.
	ErrNotFound = errors.New("not found")
)
