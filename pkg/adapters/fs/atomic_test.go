package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReplaceFile(t *testing.T) {
	t.Run("Creates Then Replaces", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "tasks.json")

		for _, content := range []string{`[]`, `[{"text":"a"}]`} {
			if err := replaceFile(path, []byte(content)); err != nil {
				t.Fatalf("replaceFile failed: %v", err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read file: %v", err)
			}
			if string(got) != content {
				t.Errorf("expected %q, got %q", content, got)
			}
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		if err := replaceFile(filepath.Join(dir, "tasks.json"), []byte(`[]`)); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if isTempFile(e.Name()) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("expected exactly one file, got %d", len(entries))
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "tasks.json")
		if err := replaceFile(path, []byte(`[]`)); err == nil {
			t.Error("expected error when directory is missing, got nil")
		}
	})
}
