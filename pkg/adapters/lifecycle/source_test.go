package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/docket/pkg/core"
)

type fakeWatchable struct {
	events chan core.Event
	err    error
}

func (f *fakeWatchable) Watch(ctx context.Context) (<-chan core.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func TestSource(t *testing.T) {
	t.Run("Bridges Events", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		fake := &fakeWatchable{events: make(chan core.Event, 1)}
		src := NewSource(fake)
		require.NoError(t, src.Start(ctx))

		fake.events <- core.Event{Type: core.EventModify, Key: "tasks"}

		select {
		case e := <-src.Events():
			ev, ok := e.(core.Event)
			require.True(t, ok)
			assert.Equal(t, "tasks", ev.Key)
			assert.Equal(t, "MODIFY tasks", e.String())
		case <-ctx.Done():
			t.Fatal("timed out waiting for bridged event")
		}

		close(fake.events)
		select {
		case _, ok := <-src.Events():
			assert.False(t, ok, "source should close when the backend stops")
		case <-ctx.Done():
			t.Fatal("source was not closed")
		}
	})

	t.Run("Propagates Watch Errors", func(t *testing.T) {
		src := NewSource(&fakeWatchable{err: errors.New("unsupported")})
		assert.Error(t, src.Start(context.Background()))
	})
}
