package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id or text]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long:    `Delete removes the task with the given ID, or else the first task with exactly that text.`,
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ref := refArg(args)
		ctx := context.Background()
		m := mustOpen(ctx, nil)
		defer closeManager(m)

		found, err := m.Delete(ctx, ref)
		if err != nil {
			fatal("Failed to delete task", err)
		}
		report(found, ref, fmt.Sprintf("Task deleted: %s", ref))
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
