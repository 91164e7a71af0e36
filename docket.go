package docket

import (
	"context"
	"log/slog"

	"github.com/aretw0/docket/internal/platform"
	"github.com/aretw0/docket/pkg/core"
)

// --- Types ---

// Manager is a public alias for the task store manager.
type Manager = core.Manager

// Task is a public alias for a persisted task record.
type Task = core.Task

// --- Configuration ---

// Option defines a functional option for configuring a task list.
type Option = platform.Option

// WithLogger sets the logger for the manager and the backend.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithBackend allows injecting a custom storage backend.
func WithBackend(b core.Backend) Option {
	return platform.WithBackend(b)
}

// WithAdapter selects the storage adapter by name ("fs", "redis", "sqlite", "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSurface sets the surface rows are rendered into.
func WithSurface(s core.Surface) Option {
	return platform.WithSurface(s)
}

// WithKey sets the storage key of the collection.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithIDGenerator overrides the generator of task IDs.
func WithIDGenerator(fn func() string) Option {
	return platform.WithIDGenerator(fn)
}

// WithNamespace sets the key prefix used by the redis adapter.
func WithNamespace(ns string) Option {
	return platform.WithNamespace(ns)
}

// WithSystemDir sets the hidden directory used by the fs adapter (e.g. ".docket").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithMustExist requires the fs root to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly opens the fs adapter in read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the fs root into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the fs sandbox applied under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithWatcherErrorHandler registers a callback for fs watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a Manager without loading rows.
func New(ctx context.Context, uri string, opts ...Option) (*core.Manager, error) {
	return platform.New(ctx, uri, opts...)
}

// Open creates a Manager and renders the persisted tasks.
func Open(ctx context.Context, uri string, opts ...Option) (*core.Manager, error) {
	return platform.Open(ctx, uri, opts...)
}

// OpenBackend builds and initializes a storage backend.
func OpenBackend(ctx context.Context, uri string, opts ...Option) (core.Backend, error) {
	return platform.OpenBackend(ctx, uri, opts...)
}

// Close releases the resources held by a backend, if any.
func Close(b core.Backend) error {
	return platform.Close(b)
}

// --- Safety & Utils ---

// ResolveRootPath determines the actual fs root based on safety rules.
func ResolveRootPath(userPath string, forceTemp bool) string {
	return platform.ResolveRootPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards for a .docket directory or docket.yaml file.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
