package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/docket"
	"github.com/aretw0/docket/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a task list in the current directory",
	Long: `Init writes a docket.yaml with the selected adapter and key. For the fs
adapter it also creates the .docket directory that holds the collection files.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		cfg := config.Default()
		if adapter != "" {
			cfg.Adapter = adapter
		}
		if uri != "" {
			cfg.URI = uri
		}
		if key != "" {
			cfg.Key = key
		}

		path := filepath.Join(cwd, config.FileName)
		if _, err := os.Stat(path); err == nil {
			fatal("Cannot initialize", fmt.Errorf("%s already exists", path))
		}

		if cfg.Adapter == "fs" {
			b, err := docket.OpenBackend(context.Background(), initRoot(cwd, cfg.URI),
				docket.WithAdapter("fs"),
				docket.WithLogger(slog.Default()),
			)
			if err != nil {
				fatal("Failed to initialize storage", err)
			}
			_ = docket.Close(b)
		}

		if err := config.Save(path, cfg); err != nil {
			fatal("Failed to write config", err)
		}
		fmt.Println("Initialized empty task list in", cwd)
	},
}

// initRoot is the fs root that the written config will resolve to.
func initRoot(cwd, uri string) string {
	if uri == "" {
		return cwd
	}
	if filepath.IsAbs(uri) {
		return uri
	}
	return filepath.Join(cwd, uri)
}

func init() {
	rootCmd.AddCommand(initCmd)
}
