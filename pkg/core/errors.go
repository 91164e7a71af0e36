package core

import "errors"

// Common errors.
var (
	ErrKeyNotFound   = errors.New("key not found")
	ErrCorrupt       = errors.New("persisted collection is corrupt")
	ErrReadOnly      = errors.New("backend is in read-only mode")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrInvalidFilter = errors.New("invalid filter criterion")
)
