// Package lifecycle exposes backend change notifications as a lifecycle.Source.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/docket/pkg/core"
)

type watchSource struct {
	backend core.Watchable
	out     chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits a core.Event for every
// external change to the backend. Watching starts with Start.
func NewSource(backend core.Watchable) lifecycle.Source {
	return &watchSource{
		backend: backend,
		out:     make(chan lifecycle.Event),
	}
}

func (s *watchSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start begins watching. The Events channel is closed once ctx is done or the
// backend stops reporting.
func (s *watchSource) Start(ctx context.Context) error {
	events, err := s.backend.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch backend: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
