// internal/store/memory.go
//
// In-memory implementation of the Document interface.
// Used where progress should not touch the disk, e.g. tests.
//
// Characteristics:
//   - Holds a single byte slice; copies on read and write.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Read returns ErrNotFound until the first Write.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory Document.
type memory struct {
	mu   sync.RWMutex // guards data
	data []byte       // nil until first Write
}

// NewMemory constructs an empty in-memory Document.
func NewMemory() Document {
	return &memory{}
}

// Read returns a copy of the stored bytes.
func (m *memory) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

// Write replaces the stored bytes.
func (m *memory) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append(make([]byte, 0, len(data)), data...)
	return nil
}
