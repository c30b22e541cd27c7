package store

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("not found")
	// ErrClosed indicates the store was closed
	ErrClosed = errors.New("store closed")
)
