package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// TempFilePrefix marks in-flight writes. The watcher never reports them.
	TempFilePrefix = "docket-tmp-"

	filePerm = 0644
)

// replaceFile swaps data into path: it is written and synced to a sibling
// temp file which is then renamed over the target. Readers observe either
// the old or the new collection, never a partial one.
func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	return nil
}

func isTempFile(path string) bool {
	return strings.HasPrefix(filepath.Base(path), TempFilePrefix)
}
