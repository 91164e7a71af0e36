package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	// base/
	//   list/ (.docket)
	//     a/b/
	//   configured/ (docket.yaml)
	//     c/
	//   empty/
	//   custom/ (.todo only)
	base := t.TempDir()
	list := filepath.Join(base, "list")
	nested := filepath.Join(list, "a", "b")
	configured := filepath.Join(base, "configured")
	empty := filepath.Join(base, "empty")
	custom := filepath.Join(base, "custom")

	for _, dir := range []string{nested, filepath.Join(configured, "c"), empty, filepath.Join(list, ".docket"), filepath.Join(custom, ".todo")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(configured, "docket.yaml"), []byte("adapter: fs\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		start    string
		wantRoot string
		wantErr  bool
	}{
		{"Start At Root", list, list, false},
		{"Start Nested", nested, list, false},
		{"Config File Marks Root", filepath.Join(configured, "c"), configured, false},
		{"No Root Found", empty, "", true},
		{"Custom System Dir Needs Config", custom, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.start)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindRoot() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && filepath.Clean(got) != filepath.Clean(tt.wantRoot) {
				t.Errorf("FindRoot() = %v, want %v", got, tt.wantRoot)
			}
		})
	}
}

func TestResolveRootPath(t *testing.T) {
	inTemp := filepath.Join(os.TempDir(), "somewhere")

	tests := []struct {
		name      string
		path      string
		forceTemp bool
		want      string
	}{
		{"Untouched Without Safety", "/srv/tasks", false, "/srv/tasks"},
		{"Empty Means Current Dir", "", false, "."},
		{"Temp Paths Are Trusted", inTemp, true, inTemp},
		{"Re-homed Into Sandbox", "/srv/tasks", true, filepath.Join(os.TempDir(), "docket-dev", "tasks")},
		{"Current Dir Sandbox", ".", true, filepath.Join(os.TempDir(), "docket-dev", "default")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRootPath(tt.path, tt.forceTemp); got != tt.want {
				t.Errorf("ResolveRootPath(%q, %v) = %q, want %q", tt.path, tt.forceTemp, got, tt.want)
			}
		})
	}
}
