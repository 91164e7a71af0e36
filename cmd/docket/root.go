package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/docket"
	"github.com/aretw0/docket/pkg/config"
	"github.com/aretw0/docket/pkg/core"
)

var (
	verbose    bool
	configPath string
	adapter    string
	uri        string
	key        string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docket",
	Short: "A task list kept as a single JSON collection",
	Long: `Docket manages a list of tasks with a status, an importance flag and
optional notes, links or an image. The whole list lives under one storage key
(a file, a redis key or a sqlite row) and is rewritten on every change.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default <root>/docket.yaml)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: fs, redis, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&uri, "uri", "", "Adapter specific location (directory, redis URL or database file)")
	rootCmd.PersistentFlags().StringVar(&key, "key", "", "Storage key of the collection")
}

// settings merges the config file found at the root with the command line flags.
type settings struct {
	root string
	cfg  config.Config
}

func resolveSettings() (settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return settings{}, err
	}

	root, err := docket.FindRoot(wd)
	if err != nil {
		slog.Debug("no root found, using working directory", "dir", wd)
		root = wd
	}

	path := configPath
	if path == "" {
		path = filepath.Join(root, config.FileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return settings{}, err
	}

	// Paths in the config file are relative to the root, flags to the working directory.
	if cfg.URI != "" && cfg.Adapter != "redis" && !filepath.IsAbs(cfg.URI) {
		cfg.URI = filepath.Join(root, cfg.URI)
	}

	if adapter != "" {
		cfg.Adapter = adapter
	}
	if uri != "" {
		cfg.URI = uri
	}
	if key != "" {
		cfg.Key = key
	}

	if cfg.URI == "" {
		switch cfg.Adapter {
		case "fs":
			cfg.URI = root
		case "sqlite":
			cfg.URI = filepath.Join(root, "docket.db")
		}
	}
	return settings{root: root, cfg: cfg}, nil
}

// openManager opens the configured collection and renders it into s.
func openManager(ctx context.Context, s core.Surface) (*core.Manager, error) {
	st, err := resolveSettings()
	if err != nil {
		return nil, err
	}

	slog.Debug("opening collection", "adapter", st.cfg.Adapter, "uri", st.cfg.URI, "key", st.cfg.Key)
	return docket.Open(ctx, st.cfg.URI,
		docket.WithAdapter(st.cfg.Adapter),
		docket.WithKey(st.cfg.Key),
		docket.WithNamespace(st.cfg.Namespace),
		docket.WithSystemDir(st.cfg.SystemDir),
		docket.WithReadOnly(st.cfg.ReadOnly),
		docket.WithSurface(s),
		docket.WithLogger(slog.Default()),
	)
}

// mustOpen is openManager for commands that cannot continue without a collection.
func mustOpen(ctx context.Context, s core.Surface) *core.Manager {
	m, err := openManager(ctx, s)
	if err != nil {
		fatal("Failed to open task list", err)
	}
	return m
}

// closeManager releases the backend behind m. fatal exits without it.
func closeManager(m *core.Manager) {
	if err := docket.Close(m.Collection().Backend()); err != nil {
		slog.Warn("failed to close backend", "error", err)
	}
}

// refArg joins the positional arguments so task text can be given unquoted.
func refArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
