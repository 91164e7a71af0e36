// Package surface provides core.Surface implementations: an in-memory row
// model and a plain-text renderer over it.
package surface

import (
	"sync"

	"github.com/aretw0/docket/pkg/core"
)

// Row is one rendered task, carrying the flags the filters act on.
type Row struct {
	Key       string
	Text      string
	Status    core.Status // active status indicator
	Completed bool        // checkbox and strike-through styling
	Important bool
	HasNotes  bool
	HasLinks  bool
	HasImage  bool
	Visible   bool
}

// List is an ordered, concurrency-safe row model.
type List struct {
	mu   sync.RWMutex
	rows []Row
}

// NewList creates an empty List.
func NewList() *List {
	return &List{}
}

// Append implements core.Surface.
func (l *List) Append(t core.Task) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rows = append(l.rows, Row{
		Key:       t.Key(),
		Text:      t.Text,
		Status:    t.Status,
		Completed: t.Completed(),
		Important: t.Important,
		HasNotes:  t.HasNotes(),
		HasLinks:  t.HasLinks(),
		HasImage:  t.Image != "",
		Visible:   true,
	})
}

// Remove implements core.Surface.
func (l *List) Remove(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.index(key); i >= 0 {
		l.rows = append(l.rows[:i], l.rows[i+1:]...)
	}
}

// SetStatus implements core.Surface.
func (l *List) SetStatus(key string, status core.Status) {
	l.mutate(key, func(r *Row) { r.Status = status })
}

// SetCompleted implements core.Surface.
func (l *List) SetCompleted(key string, completed bool) {
	l.mutate(key, func(r *Row) { r.Completed = completed })
}

// SetVisible implements core.Surface.
func (l *List) SetVisible(key string, visible bool) {
	l.mutate(key, func(r *Row) { r.Visible = visible })
}

// Reset implements core.Surface.
func (l *List) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = nil
}

// Rows returns a snapshot of every row in order.
func (l *List) Rows() []Row {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Row(nil), l.rows...)
}

// Visible returns a snapshot of the visible rows in order.
func (l *List) Visible() []Row {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Row, 0, len(l.rows))
	for _, r := range l.rows {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out
}

// Row returns the row with the given key.
func (l *List) Row(key string) (Row, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.index(key); i >= 0 {
		return l.rows[i], true
	}
	return Row{}, false
}

// Len returns the number of rows.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.rows)
}

func (l *List) mutate(key string, fn func(*Row)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.index(key); i >= 0 {
		fn(&l.rows[i])
	}
}

func (l *List) index(key string) int {
	for i := range l.rows {
		if l.rows[i].Key == key {
			return i
		}
	}
	return -1
}

var _ core.Surface = (*List)(nil)
