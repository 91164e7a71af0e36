package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultKey is the storage key holding the persisted collection.
const DefaultKey = "tasks"

// Collection reads and writes the whole ordered task list under one key.
type Collection struct {
	backend Backend
	key     string
}

// NewCollection creates a Collection stored under key (DefaultKey if empty).
func NewCollection(backend Backend, key string) *Collection {
	if key == "" {
		key = DefaultKey
	}
	return &Collection{backend: backend, key: key}
}

// Key returns the storage key of the collection.
func (c *Collection) Key() string {
	return c.key
}

// Backend returns the underlying backend.
func (c *Collection) Backend() Backend {
	return c.backend
}

// Load reads the full collection. An absent key is an empty collection.
// Malformed data is reported as ErrCorrupt.
func (c *Collection) Load(ctx context.Context) ([]Task, error) {
	data, err := c.backend.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []Task{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Task{}, nil
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, c.key, err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// Store rewrites the full collection.
func (c *Collection) Store(ctx context.Context, tasks []Task) error {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.Links == nil {
			t.Links = []string{}
		}
		out[i] = t
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.backend.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, err)
	}
	return nil
}

// update performs one read-modify-write cycle. fn reports whether it changed
// the slice; unchanged collections are not rewritten.
func (c *Collection) update(ctx context.Context, fn func([]Task) ([]Task, bool)) error {
	tasks, err := c.Load(ctx)
	if err != nil {
		return err
	}
	next, changed := fn(tasks)
	if !changed {
		return nil
	}
	return c.Store(ctx, next)
}
