package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Missing File Yields Defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), FileName))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Empty File Yields Defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Overrides Defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("adapter: redis\nuri: redis://localhost:6379/0\nnamespace: \"me:\"\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "redis", cfg.Adapter)
		assert.Equal(t, "redis://localhost:6379/0", cfg.URI)
		assert.Equal(t, "me:", cfg.Namespace)
		assert.Equal(t, "tasks", cfg.Key, "unset fields keep their default")
	})

	t.Run("Rejects Unknown Fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("adaptor: fs\n"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Save Round Trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		want := Config{Adapter: "sqlite", URI: "tasks.db", Key: "work", ReadOnly: true}
		require.NoError(t, Save(path, want))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
