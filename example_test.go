package docket_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/docket"
	"github.com/aretw0/docket/pkg/core"
	"github.com/aretw0/docket/pkg/surface"
)

// Example_basic creates a task, moves it through its statuses and prints the rendered list.
func Example_basic() {
	ctx := context.Background()
	list := surface.NewText(os.Stdout)

	m, err := docket.Open(ctx, "", docket.WithAdapter("memory"), docket.WithSurface(list))
	if err != nil {
		log.Fatal(err)
	}

	task, err := m.Create(ctx, "write the report")
	if err != nil {
		log.Fatal(err)
	}
	if _, err := m.Create(ctx, "file expenses"); err != nil {
		log.Fatal(err)
	}

	if _, err := m.SetStatus(ctx, task.ID, core.StatusInProgress); err != nil {
		log.Fatal(err)
	}
	if _, err := m.ToggleCompletion(ctx, "file expenses", true); err != nil {
		log.Fatal(err)
	}

	if err := list.Render(); err != nil {
		log.Fatal(err)
	}
	// Output:
	// [ ] doing     write the report
	// [x] done      file expenses
}

// ExampleManager_Filter hides rows that do not match the criterion without touching storage.
func ExampleManager_Filter() {
	ctx := context.Background()
	list := surface.NewText(os.Stdout)

	m, err := docket.Open(ctx, "", docket.WithAdapter("memory"), docket.WithSurface(list))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := m.Create(ctx, "plain"); err != nil {
		log.Fatal(err)
	}

	// Image tasks are always important.
	png := []byte("\x89PNG\r\n\x1a\n")
	if _, err := m.CreateImage(ctx, "shot.png", bytes.NewReader(png)); err != nil {
		log.Fatal(err)
	}

	visible, err := m.Filter(core.FilterImportant)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(visible), "of", len(m.Tasks()))

	if err := list.Render(); err != nil {
		log.Fatal(err)
	}
	// Output:
	// 1 of 2
	// [ ] todo    ! Image Task [img]
}
