package platform

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/docket/pkg/adapters/fs"
	"github.com/aretw0/docket/pkg/adapters/memory"
	"github.com/aretw0/docket/pkg/adapters/redis"
	"github.com/aretw0/docket/pkg/adapters/sqlite"
	"github.com/aretw0/docket/pkg/core"
)

// Adapters lists the backend names accepted by WithAdapter.
var Adapters = []string{"fs", "redis", "sqlite", "memory"}

// OpenBackend builds and initializes the backend selected by the options.
// The uri argument is adapter specific: a root directory for "fs", a
// redis:// URL for "redis", a database file for "sqlite"; "memory" ignores it.
func OpenBackend(ctx context.Context, uri string, opts ...Option) (core.Backend, error) {
	return openBackend(ctx, uri, defaultOptions().apply(opts))
}

func openBackend(ctx context.Context, uri string, o *options) (core.Backend, error) {
	if o.backend != nil {
		return o.backend, nil
	}

	var b core.Backend
	var err error

	switch o.adapter {
	case "fs":
		b = newFS(uri, o)
	case "redis":
		if uri == "" {
			uri = "redis://localhost:6379/0"
		}
		ns, _ := o.config["namespace"].(string)
		b, err = redis.Open(uri, ns)
	case "sqlite":
		if uri == "" {
			uri = "docket.db"
		}
		b, err = sqlite.Open(uri)
	case "memory":
		b = memory.New()
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if err := b.Initialize(ctx); err != nil {
		_ = Close(b)
		return nil, err
	}
	o.logger.Debug("backend ready", "adapter", o.adapter, "uri", uri)
	return b, nil
}

// newFS resolves the root and dev sandbox for the filesystem adapter.
func newFS(path string, o *options) *fs.Backend {
	tempDir, _ := o.config["temp_dir"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	systemDir, _ := o.config["system_dir"].(string)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	// Read-only roots cannot be damaged, so they skip the sandbox.
	useTemp := tempDir || (IsDevRun() && devSafety && !readOnly)
	resolved := ResolveRootPath(path, useTemp)
	if useTemp && resolved != path {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolved)
	}

	return fs.New(fs.Config{
		Path:         resolved,
		SystemDir:    systemDir,
		MustExist:    mustExist,
		ReadOnly:     readOnly,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})
}

// Close releases the backend if it holds resources (connections, files).
func Close(b core.Backend) error {
	if c, ok := b.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
