package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/docket"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of docket",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docket version %s\n", strings.TrimSpace(docket.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
