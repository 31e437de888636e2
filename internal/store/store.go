// internal/store/store.go
//
// Document interface and the ErrNotFound sentinel shared by all backends.

// Package store holds the single-document persistence used for daily progress.
// Implementations may be backed by a file (this package), memory, etc.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when nothing has been written yet.
// It is the only "empty state" condition callers may recover from.
var ErrNotFound = errors.New("not found")

// Document is a whole-document store: callers read, merge and write back.
type Document interface {
	// Read returns the current contents or ErrNotFound.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the contents. A failed Write leaves the previous
	// contents in place.
	Write(ctx context.Context, data []byte) error
}
