package repository

import "errors"

var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey indicates an insert violated a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)
