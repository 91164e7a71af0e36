package platform

import (
	"context"

	"github.com/aretw0/docket/pkg/core"
)

// New builds a Manager over the backend selected by the options. Rows are not
// rendered until Load is called.
//
//	m, err := platform.New(ctx, "./work", platform.WithAdapter("fs"))
func New(ctx context.Context, uri string, opts ...Option) (*core.Manager, error) {
	o := defaultOptions().apply(opts)

	backend, err := openBackend(ctx, uri, o)
	if err != nil {
		return nil, err
	}

	return core.NewManager(
		core.NewCollection(backend, o.key),
		o.surface,
		core.WithManagerLogger(o.logger),
		core.WithIDGenerator(o.newID),
	), nil
}

// Open is New followed by Load. A corrupt collection is returned as an
// error wrapping core.ErrCorrupt.
func Open(ctx context.Context, uri string, opts ...Option) (*core.Manager, error) {
	m, err := New(ctx, uri, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.Load(ctx); err != nil {
		_ = Close(m.Collection().Backend())
		return nil, err
	}
	return m, nil
}
