package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/docket/pkg/core"
)

var statusLabels = map[core.Status]string{
	core.StatusNotYetStarted: "todo",
	core.StatusInProgress:    "doing",
	core.StatusInReview:      "review",
	core.StatusCompleted:     "done",
}

// Text is a List that can print its visible rows as a checkbox list.
type Text struct {
	*List
	w io.Writer

	// ShowKeys appends the row key to each line.
	ShowKeys bool
}

// NewText creates a Text surface writing to w.
func NewText(w io.Writer) *Text {
	return &Text{List: NewList(), w: w}
}

// Render writes every visible row, one per line.
func (t *Text) Render() error {
	rows := t.Visible()
	if len(rows) == 0 {
		_, err := fmt.Fprintln(t.w, "No tasks.")
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(t.w, FormatRow(r, t.ShowKeys)); err != nil {
			return err
		}
	}
	return nil
}

// FormatRow renders a single row, e.g. "[x] done    ! Image Task [img]".
func FormatRow(r Row, showKey bool) string {
	var b strings.Builder

	if r.Completed {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}

	label, ok := statusLabels[r.Status]
	if !ok {
		label = string(r.Status)
	}
	fmt.Fprintf(&b, "%-7s ", label)

	if r.Important {
		b.WriteString("! ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(r.Text)

	if r.HasImage {
		b.WriteString(" [img]")
	}
	if r.HasNotes {
		b.WriteString(" [notes]")
	}
	if r.HasLinks {
		b.WriteString(" [links]")
	}
	if showKey && r.Key != r.Text {
		fmt.Fprintf(&b, "  (%s)", r.Key)
	}
	return b.String()
}

var _ core.Surface = (*Text)(nil)
