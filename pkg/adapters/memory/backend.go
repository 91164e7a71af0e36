// Package memory provides a process-local core.Backend, the counterpart of a
// browser's localStorage. It is used by tests and by `--adapter memory`.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/docket/pkg/core"
)

// Backend keeps values in a map.
type Backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

// Initialize implements core.Backend.
func (b *Backend) Initialize(ctx context.Context) error {
	return nil
}

// Get implements core.Backend.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.data[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements core.Backend.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = append([]byte(nil), value...)
	return nil
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "memory"
}
