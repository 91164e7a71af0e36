package core

import "context"

// Backend defines the contract for the key-value store holding the collection.
// Adhering to this interface keeps the Manager independent of the underlying
// storage mechanism (files, Redis, SQLite, memory).
type Backend interface {
	// Initialize ensures the underlying storage is ready (directories, schema, ping).
	Initialize(ctx context.Context) error

	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// Watchable defines an interface for backends that can report external changes.
type Watchable interface {
	// Watch emits an Event whenever a key is changed by another process.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Surface is the UI collaborator that displays task rows.
// Rows are addressed by Task.Key.
type Surface interface {
	// Append renders a new row at the end of the list.
	Append(t Task)
	// Remove drops the row.
	Remove(key string)
	// SetStatus marks status as the single active status indicator of the row.
	SetStatus(key string, status Status)
	// SetCompleted toggles the completed styling of the row.
	SetCompleted(key string, completed bool)
	// SetVisible shows or hides the row.
	SetVisible(key string, visible bool)
	// Reset removes every row.
	Reset()
}
