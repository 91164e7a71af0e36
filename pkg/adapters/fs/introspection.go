package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// BackendState exposes internal state for observability.
type BackendState struct {
	Path          string     `json:"path"`
	SystemDir     string     `json:"system_dir"`
	ReadOnly      bool       `json:"read_only"`
	WrittenKeys   int        `json:"written_keys"`
	WatcherActive bool       `json:"watcher_active"`
	LastEvent     *time.Time `json:"last_event,omitempty"`
}

// State implements introspection.Introspectable.
func (b *Backend) State() any {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return BackendState{
		Path:          b.Path,
		SystemDir:     b.config.SystemDir,
		ReadOnly:      b.config.ReadOnly,
		WrittenKeys:   len(b.written),
		WatcherActive: b.watcherActive,
		LastEvent:     b.lastEvent,
	}
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Backend)(nil)
var _ introspection.Component = (*Backend)(nil)

func (b *Backend) setWatcherActive(active bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.watcherActive = active
}

func (b *Backend) recordEvent() {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	b.lastEvent = &now
}
