package platform

import (
	"log/slog"

	"github.com/aretw0/docket/pkg/core"
)

// options holds the internal configuration for a task list.
type options struct {
	backend core.Backend
	surface core.Surface
	logger  *slog.Logger
	adapter string
	key     string
	newID   func() string
	config  map[string]interface{} // adapter specific settings
}

// Option defines a functional option for configuring a task list.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
		key:     core.DefaultKey,
		config:  make(map[string]interface{}),
	}
}

func (o *options) apply(opts []Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// WithLogger sets the logger for the manager and the backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBackend allows injecting a custom storage backend (e.g. mock).
// If provided, adapter selection is skipped.
func WithBackend(b core.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithAdapter selects the storage adapter by name: "fs", "redis", "sqlite" or "memory".
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		if name != "" {
			o.adapter = name
		}
	}
}

// WithSurface sets the UI surface rows are rendered into.
func WithSurface(s core.Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithKey sets the storage key of the collection. Defaults to "tasks".
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithIDGenerator overrides the generator of task IDs.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// WithNamespace sets the key prefix used by the redis adapter.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.config["namespace"] = ns
	}
}

// WithSystemDir sets the hidden directory used by the fs adapter (e.g. ".docket").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.config["system_dir"] = name
	}
}

// WithMustExist requires the fs root to exist already.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithReadOnly enables read-only mode for the fs adapter.
// Writes return core.ErrReadOnly, nothing is created on disk and the dev
// sandbox is bypassed.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithForceTemp forces the fs root into a temporary directory.
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithDevSafety controls the sandbox applied to the fs root under `go run`
// and `go test`. Enabled by default.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

// WithWatcherErrorHandler registers a callback for fs watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
