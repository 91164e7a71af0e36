package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/docket/internal/platform"
	"github.com/aretw0/docket/pkg/adapters/fs"
	"github.com/aretw0/docket/pkg/adapters/memory"
	"github.com/aretw0/docket/pkg/core"
	"github.com/aretw0/docket/pkg/surface"
)

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := platform.OpenBackend(ctx, "", platform.WithAdapter("s3"))
		assert.Error(t, err)
	})

	t.Run("Injected Backend Wins", func(t *testing.T) {
		injected := memory.New()
		b, err := platform.OpenBackend(ctx, "ignored", platform.WithAdapter("redis"), platform.WithBackend(injected))
		require.NoError(t, err)
		assert.Same(t, injected, b)
	})

	t.Run("FS Root In Temp Dir", func(t *testing.T) {
		root := t.TempDir()
		b, err := platform.OpenBackend(ctx, root, platform.WithSystemDir(".todo"))
		require.NoError(t, err)

		fsb, ok := b.(*fs.Backend)
		require.True(t, ok)
		assert.Equal(t, root, fsb.Path, "paths already in the temp dir are not re-homed")

		_, err = os.Stat(filepath.Join(root, ".todo"))
		assert.NoError(t, err)
	})

	t.Run("SQLite File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.db")
		b, err := platform.OpenBackend(ctx, path, platform.WithAdapter("sqlite"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = platform.Close(b) })

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("Redis URL", func(t *testing.T) {
		mr := miniredis.RunT(t)
		b, err := platform.OpenBackend(ctx, "redis://"+mr.Addr()+"/0", platform.WithAdapter("redis"), platform.WithNamespace("test:"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = platform.Close(b) })

		require.NoError(t, b.Set(ctx, "tasks", []byte(`[]`)))
		assert.True(t, mr.Exists("test:tasks"))
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Renders Persisted Rows", func(t *testing.T) {
		backend := memory.New()
		require.NoError(t, backend.Set(ctx, "work", []byte(`[{"id":"1","text":"a","status":"in-review","important":false,"notes":"","links":[]}]`)))

		list := surface.NewList()
		m, err := platform.Open(ctx, "", platform.WithBackend(backend), platform.WithSurface(list), platform.WithKey("work"))
		require.NoError(t, err)

		assert.Equal(t, "work", m.Collection().Key())
		require.Equal(t, 1, list.Len())
		row, _ := list.Row("1")
		assert.Equal(t, core.StatusInReview, row.Status)
	})

	t.Run("Corrupt Collection Fails", func(t *testing.T) {
		backend := memory.New()
		require.NoError(t, backend.Set(ctx, core.DefaultKey, []byte(`[{]`)))

		_, err := platform.Open(ctx, "", platform.WithBackend(backend))
		assert.ErrorIs(t, err, core.ErrCorrupt)
	})

	t.Run("Read-Only FS", func(t *testing.T) {
		root := t.TempDir()
		m, err := platform.Open(ctx, root, platform.WithReadOnly(true))
		require.NoError(t, err)

		_, err = m.Create(ctx, "nope")
		assert.ErrorIs(t, err, core.ErrReadOnly)
		assert.Empty(t, m.Tasks())
	})

	t.Run("IDs From Generator", func(t *testing.T) {
		m, err := platform.Open(ctx, "", platform.WithAdapter("memory"), platform.WithIDGenerator(func() string { return "fixed" }))
		require.NoError(t, err)

		task, err := m.Create(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "fixed", task.ID)
	})
}
