package core

import (
	"fmt"
	"strings"
)

// Status is the progress state of a task. Any status may follow any other.
type Status string

const (
	StatusNotYetStarted Status = "not-yet-started"
	StatusInProgress    Status = "in-progress"
	StatusInReview      Status = "in-review"
	StatusCompleted     Status = "completed"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusInProgress, StatusInReview, StatusNotYetStarted, StatusCompleted}

// ParseStatus validates s against the status enumeration.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Statuses {
		if st == v {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// ImageTaskText is the label given to tasks created from an image.
const ImageTaskText = "Image Task"

// Task is the persisted unit representing one to-do item.
type Task struct {
	// ID is assigned at creation. Records written without one fall back to
	// Text as their key.
	ID        string   `json:"id,omitempty"`
	Text      string   `json:"text"`
	Status    Status   `json:"status"`
	Important bool     `json:"important"`
	Notes     string   `json:"notes"`
	Links     []string `json:"links"`
	Image     string   `json:"image,omitempty"`
}

// Key returns the identity used to address the task on the surface and in storage.
func (t Task) Key() string {
	if t.ID != "" {
		return t.ID
	}
	return t.Text
}

// Completed reports whether the completion checkbox is checked.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// HasNotes reports whether the task carries non-empty notes.
func (t Task) HasNotes() bool {
	return t.Notes != ""
}

// HasLinks reports whether the task carries at least one link.
func (t Task) HasLinks() bool {
	return len(t.Links) > 0
}

func (t Task) clone() Task {
	if t.Links != nil {
		t.Links = append([]string(nil), t.Links...)
	}
	return t
}

// Filter is a visibility criterion applied to rendered rows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterImportant Filter = "important"
	FilterNotes     Filter = "notes"
	FilterLinks     Filter = "links"
)

// ParseFilter validates s against the filter criteria.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterImportant, FilterNotes, FilterLinks:
		return f, nil
	case "":
		return FilterAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Match reports whether t is visible under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterImportant:
		return t.Important
	case FilterNotes:
		return t.HasNotes()
	case FilterLinks:
		return t.HasLinks()
	case FilterAll, "":
		return true
	}
	return false
}

// find returns the index of the record addressed by ref: an exact ID match
// wins, otherwise the first record whose text equals ref.
func find(tasks []Task, ref string) int {
	if ref == "" {
		return -1
	}
	for i, t := range tasks {
		if t.ID != "" && t.ID == ref {
			return i
		}
	}
	for i, t := range tasks {
		if t.Text == ref {
			return i
		}
	}
	return -1
}
