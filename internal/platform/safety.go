package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// Both build their binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveRootPath returns the fs root to use. With forceTemp the root is
// re-homed under the temp directory, unless it already lives there.
func ResolveRootPath(userPath string, forceTemp bool) string {
	if userPath == "" {
		userPath = "."
	}
	if !forceTemp {
		return userPath
	}

	clean := filepath.Clean(userPath)
	if rel, err := filepath.Rel(os.TempDir(), clean); err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if name == "." || name == string(os.PathSeparator) {
		name = "default"
	}
	return filepath.Join(os.TempDir(), "docket-dev", name)
}
