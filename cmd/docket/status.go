package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/docket/pkg/core"
)

func statusNames() string {
	names := make([]string, len(core.Statuses))
	for i, s := range core.Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

var statusCmd = &cobra.Command{
	Use:   "status [id or text] [status]",
	Short: "Set the status of a task",
	Long:  fmt.Sprintf("Status moves a task to any status: %s.", statusNames()),
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		status, err := core.ParseStatus(args[len(args)-1])
		if err != nil {
			fatal("Invalid status", err)
		}
		ref := refArg(args[:len(args)-1])

		ctx := context.Background()
		m := mustOpen(ctx, nil)
		defer closeManager(m)

		found, err := m.SetStatus(ctx, ref, status)
		if err != nil {
			fatal("Failed to set status", err)
		}
		report(found, ref, fmt.Sprintf("Task %s is now %s", ref, status))
	},
}

var doneCmd = &cobra.Command{
	Use:   "done [id or text]",
	Short: "Check a task off as completed",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		toggle(refArg(args), true)
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone [id or text]",
	Short: "Uncheck a task",
	Long:  `Undone clears the completion checkbox. The task goes back to not-yet-started, whatever it was before completion.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		toggle(refArg(args), false)
	},
}

func toggle(ref string, checked bool) {
	ctx := context.Background()
	m := mustOpen(ctx, nil)
	defer closeManager(m)

	found, err := m.ToggleCompletion(ctx, ref, checked)
	if err != nil {
		fatal("Failed to update task", err)
	}
	if checked {
		report(found, ref, fmt.Sprintf("Task completed: %s", ref))
	} else {
		report(found, ref, fmt.Sprintf("Task reopened: %s", ref))
	}
}

// report prints msg, or fails when no task matched ref.
func report(found bool, ref, msg string) {
	if !found {
		fatal("No such task", fmt.Errorf("%q", ref))
	}
	fmt.Println(msg)
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
}
