// Package config loads the optional docket.yaml file that supplies defaults
// for the CLI. Flags given on the command line take precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the root.
const FileName = "docket.yaml"

// Config holds the persistent settings of a task list.
type Config struct {
	// Adapter selects the backend: fs, redis, sqlite or memory.
	Adapter string `yaml:"adapter"`
	// URI is adapter specific: a root directory, a redis:// URL or a database file.
	URI string `yaml:"uri,omitempty"`
	// Key is the storage key holding the collection.
	Key string `yaml:"key"`
	// Namespace prefixes redis keys.
	Namespace string `yaml:"namespace,omitempty"`
	// SystemDir is the fs adapter's hidden directory.
	SystemDir string `yaml:"system_dir,omitempty"`
	ReadOnly  bool   `yaml:"read_only,omitempty"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Adapter: "fs",
		Key:     "tasks",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
