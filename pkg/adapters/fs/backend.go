// Package fs implements core.Backend on the local filesystem: every key is one
// JSON file under the system directory of a root, replaced atomically on Set.
package fs

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/docket/pkg/core"
)

const (
	// DefaultSystemDir is the hidden directory holding the key files.
	DefaultSystemDir = ".docket"

	fileExt = ".json"
)

// Config holds the configuration for the filesystem backend.
type Config struct {
	Path      string
	SystemDir string // e.g. ".docket"
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger

	// ErrorHandler receives runtime watcher failures, which are otherwise only logged.
	ErrorHandler func(error)
}

// Backend implements core.Backend and core.Watchable using the filesystem.
type Backend struct {
	Path   string
	config Config

	mu            sync.RWMutex
	written       map[string][sha256.Size]byte // last content this process wrote, per key
	watcherActive bool
	lastEvent     *time.Time
}

// New creates a new filesystem-backed Backend.
func New(config Config) *Backend {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Backend{
		Path:    config.Path,
		config:  config,
		written: make(map[string][sha256.Size]byte),
	}
}

// Dir returns the directory holding the key files.
func (b *Backend) Dir() string {
	return filepath.Join(b.Path, b.config.SystemDir)
}

// Initialize creates the system directory. In read-only mode nothing is
// created and the root only has to exist.
func (b *Backend) Initialize(ctx context.Context) error {
	if b.config.MustExist || b.config.ReadOnly {
		info, err := os.Stat(b.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("root path does not exist: %s", b.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat root: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("root path is not a directory: %s", b.Path)
		}
	}

	if b.config.ReadOnly {
		b.config.Logger.Debug("read-only mode, skipping initialization", "path", b.Path)
		return nil
	}

	if err := os.MkdirAll(b.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create system directory: %w", err)
	}
	return nil
}

// Get reads the file for key.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := b.keyPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Set atomically replaces the file for key.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if b.config.ReadOnly {
		return core.ErrReadOnly
	}

	path, err := b.keyPath(key)
	if err != nil {
		return err
	}

	if err := replaceFile(path, value); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	b.mu.Lock()
	b.written[key] = sha256.Sum256(value)
	b.mu.Unlock()

	b.config.Logger.Debug("key written", "key", key, "bytes", len(value))
	return nil
}

// Watch observes the key files for changes made by other processes.
// Writes made through this Backend are not reported.
func (b *Backend) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event)
	w := newWatchWorker(b, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

// keyPath maps key to its file, rejecting keys that would escape the system directory.
func (b *Backend) keyPath(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) || isTempFile(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(b.Dir(), key+fileExt), nil
}

// keyOf maps a file in the system directory back to its key.
func (b *Backend) keyOf(path string) (string, bool) {
	if filepath.Dir(path) != filepath.Clean(b.Dir()) || isTempFile(path) {
		return "", false
	}
	name := filepath.Base(path)
	if filepath.Ext(name) != fileExt {
		return "", false
	}
	return strings.TrimSuffix(name, fileExt), true
}

// isOwnWrite reports whether the current content of key is what this process last wrote.
func (b *Backend) isOwnWrite(key string) bool {
	b.mu.RLock()
	sum, ok := b.written[key]
	b.mu.RUnlock()
	if !ok {
		return false
	}

	path, err := b.keyPath(key)
	if err != nil {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return sha256.Sum256(data) == sum
}

var _ core.Backend = (*Backend)(nil)
var _ core.Watchable = (*Backend)(nil)
