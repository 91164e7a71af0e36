package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/docket/pkg/adapters/lifecycle"
	"github.com/aretw0/docket/pkg/core"
	"github.com/aretw0/docket/pkg/surface"
)

var watchFilter string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the list again whenever it changes on disk",
	Long: `Watch renders the list, then reloads and renders it again every time
another process rewrites the collection. Only the fs adapter can be watched.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := core.ParseFilter(watchFilter)
		if err != nil {
			fatal("Invalid filter", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := surface.NewText(os.Stdout)
		m := mustOpen(ctx, out)
		defer closeManager(m)

		watchable, ok := m.Collection().Backend().(core.Watchable)
		if !ok {
			fatal("Cannot watch", fmt.Errorf("adapter does not report changes"))
		}

		if _, err := m.Filter(filter); err != nil {
			fatal("Failed to filter tasks", err)
		}
		if err := out.Render(); err != nil {
			fatal("Failed to render tasks", err)
		}

		source := lifecycle.NewSource(watchable)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start watcher", err)
		}
		slog.Info("watching for changes", "key", m.Collection().Key())

		for e := range source.Events() {
			ev, ok := e.(core.Event)
			if ok && ev.Key != m.Collection().Key() {
				continue
			}
			slog.Debug("change detected", "event", e.String())

			if err := m.Reload(ctx); err != nil {
				// A half-written or hand-edited file stays on screen as it was.
				slog.Error("reload failed", "error", err)
				continue
			}
			fmt.Println()
			if err := out.Render(); err != nil {
				fatal("Failed to render tasks", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchFilter, "filter", "all", "Filter: all, important, notes or links")
}
