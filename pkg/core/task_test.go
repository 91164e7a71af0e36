package core

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"not-yet-started", StatusNotYetStarted, false},
		{"In-Progress", StatusInProgress, false},
		{" in-review ", StatusInReview, false},
		{"completed", StatusCompleted, false},
		{"done", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("expected ErrInvalidStatus, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{"": FilterAll, "ALL": FilterAll, "important": FilterImportant, "notes": FilterNotes, "links": FilterLinks} {
		got, err := ParseFilter(in)
		if err != nil || got != want {
			t.Errorf("ParseFilter(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFilter("images"); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestFilterMatch(t *testing.T) {
	plain := Task{Text: "a"}
	rich := Task{Text: "b", Important: true, Notes: "n", Links: []string{"l"}}

	for _, f := range []Filter{FilterImportant, FilterNotes, FilterLinks} {
		if f.Match(plain) {
			t.Errorf("%s should not match a plain task", f)
		}
		if !f.Match(rich) {
			t.Errorf("%s should match a rich task", f)
		}
	}
	if !FilterAll.Match(plain) {
		t.Error("all should match everything")
	}
	if Filter("Important").Match(rich) {
		t.Error("unparsed filters should match nothing")
	}
}

func TestFind(t *testing.T) {
	tasks := []Task{
		{Text: "legacy"},
		{ID: "x1", Text: "dup"},
		{ID: "x2", Text: "dup"},
		{ID: "legacy", Text: "shadow"},
	}

	if i := find(tasks, "x2"); i != 2 {
		t.Errorf("ID lookup: got %d, want 2", i)
	}
	if i := find(tasks, "dup"); i != 1 {
		t.Errorf("text lookup should return first match: got %d, want 1", i)
	}
	if i := find(tasks, "legacy"); i != 3 {
		t.Errorf("exact ID should win over text: got %d, want 3", i)
	}
	if i := find(tasks, ""); i != -1 {
		t.Errorf("empty ref: got %d, want -1", i)
	}
	if i := find(tasks, "missing"); i != -1 {
		t.Errorf("missing ref: got %d, want -1", i)
	}
}

func TestEncodeDataURI(t *testing.T) {
	got := EncodeDataURI("notes.txt", []byte("hi"))
	if got != "data:text/plain;base64,aGk=" {
		t.Errorf("unexpected data URI: %s", got)
	}

	got = EncodeDataURI("blob", []byte{0x00, 0x01})
	if got != "data:application/octet-stream;base64,AAE=" {
		t.Errorf("unexpected data URI: %s", got)
	}
}
