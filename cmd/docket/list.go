package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/docket/pkg/core"
	"github.com/aretw0/docket/pkg/surface"
)

var (
	listJSON   bool
	listKeys   bool
	listFilter string
	listMatch  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List prints the tasks as a checkbox list. --filter keeps only important
tasks, tasks with notes or tasks with links; --match keeps tasks whose text
matches a glob pattern (e.g. "release *").`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := core.ParseFilter(listFilter)
		if err != nil {
			fatal("Invalid filter", err)
		}
		if listMatch != "" && !doublestar.ValidatePattern(listMatch) {
			fatal("Invalid pattern", doublestar.ErrBadPattern)
		}

		ctx := context.Background()
		out := surface.NewText(os.Stdout)
		out.ShowKeys = listKeys
		m := mustOpen(ctx, out)
		defer closeManager(m)

		visible, err := m.Filter(filter)
		if err != nil {
			fatal("Failed to filter tasks", err)
		}
		visible = matchText(out.List, visible, listMatch)

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(visible); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if err := out.Render(); err != nil {
			fatal("Failed to render tasks", err)
		}
	},
}

// matchText hides the rows whose text does not match pattern.
func matchText(rows *surface.List, tasks []core.Task, pattern string) []core.Task {
	if pattern == "" {
		return tasks
	}
	kept := make([]core.Task, 0, len(tasks))
	for _, t := range tasks {
		if ok, _ := doublestar.Match(pattern, t.Text); ok {
			kept = append(kept, t)
			continue
		}
		rows.SetVisible(t.Key(), false)
	}
	return kept
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listKeys, "keys", false, "Show task IDs")
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "Filter: all, important, notes or links")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Glob pattern the task text must match")
}
