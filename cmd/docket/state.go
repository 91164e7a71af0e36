package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the internal state of the manager and backend as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		m := mustOpen(ctx, nil)
		defer closeManager(m)

		out := map[string]any{
			m.ComponentType(): m.State(),
		}
		if c, ok := m.Collection().Backend().(introspection.Component); ok {
			if i, ok := c.(introspection.Introspectable); ok {
				out[c.ComponentType()] = i.State()
			}
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
