package core

import "errors"

var (
	// ErrNotAvailable marks a source that could not be reached at all,
	// ErrNotFound a source that answered but had no matching record.
	ErrNotAvailable = errors.New("not available")
	ErrNotFound     = errors.New("not found")
)
