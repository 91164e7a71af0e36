package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/docket/pkg/adapters/fs"
	"github.com/aretw0/docket/pkg/config"
)

// FindRoot walks upwards from startDir looking for a task list root, marked
// by a .docket directory or a docket.yaml file. It returns the absolute path
// of the first match.
//
// Only the default system directory is recognised. A root that keeps a custom
// system_dir is found through its docket.yaml, which `docket init` writes.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for dir := abs; ; {
		if exists(filepath.Join(dir, fs.DefaultSystemDir)) || exists(filepath.Join(dir, config.FileName)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("root not found from %s", abs)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
