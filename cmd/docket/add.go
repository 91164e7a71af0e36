package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a text task",
	Long:  `Add creates a task that has not yet been started. Surrounding whitespace is trimmed and blank text is ignored.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		m := mustOpen(ctx, nil)
		defer closeManager(m)

		task, err := m.Create(ctx, refArg(args))
		if err != nil {
			fatal("Failed to add task", err)
		}
		if task == nil {
			fmt.Println("Nothing to add.")
			return
		}
		fmt.Printf("Task added: %s\n", task.ID)
	},
}

var addImageCmd = &cobra.Command{
	Use:   "add-image [file]",
	Short: "Add an image task from a file",
	Long: `Add-image reads the file and stores it inline as a data URI on a new,
important task labelled "Image Task".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		m := mustOpen(ctx, nil)
		defer closeManager(m)

		f, err := os.Open(args[0])
		if err != nil {
			fatal("Failed to open image", err)
		}
		defer f.Close()

		task, err := m.CreateImage(ctx, filepath.Base(args[0]), f)
		if err != nil {
			fatal("Failed to add image task", err)
		}
		fmt.Printf("Image task added: %s\n", task.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addImageCmd)
}
