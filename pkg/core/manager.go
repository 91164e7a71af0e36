package core

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Manager is the Task Store Manager. It keeps the rendered rows of a Surface
// and the persisted Collection in agreement after every operation.
//
// Operations are serialized: each one runs its read-modify-write cycle and its
// surface update to completion before the next starts. The backend is written
// first; the surface only changes once the write succeeded.
type Manager struct {
	mu      sync.Mutex
	col     *Collection
	surface Surface
	logger  *slog.Logger
	newID   func() string

	rows   []Task
	filter Filter
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger used for per-operation debug output.
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithIDGenerator overrides the generator of task IDs (uuid by default).
func WithIDGenerator(fn func() string) ManagerOption {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// NewManager creates a Manager over col rendering into surface.
// A nil surface discards all rendering.
func NewManager(col *Collection, surface Surface, opts ...ManagerOption) *Manager {
	if surface == nil {
		surface = nopSurface{}
	}
	m := &Manager{
		col:     col,
		surface: surface,
		logger:  slog.New(slog.DiscardHandler),
		newID:   uuid.NewString,
		filter:  FilterAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Collection returns the persisted collection the manager writes to.
func (m *Manager) Collection() *Collection {
	return m.col
}

// Load reads the persisted collection and renders one row per record in
// persisted order, replacing whatever was rendered before.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx)
}

// Reload re-renders from storage and re-applies the active filter.
// Hosts call it after an external change to the backing store.
func (m *Manager) Reload(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.load(ctx); err != nil {
		return err
	}
	m.applyFilter(m.filter)
	return nil
}

func (m *Manager) load(ctx context.Context) error {
	tasks, err := m.col.Load(ctx)
	if err != nil {
		return err
	}

	m.surface.Reset()
	m.rows = tasks
	for _, t := range tasks {
		m.surface.Append(t.clone())
	}
	m.logger.Debug("collection loaded", "key", m.col.Key(), "count", len(tasks))
	return nil
}

// Create adds a text task. Blank input is ignored and returns a nil task.
func (m *Manager) Create(ctx context.Context, text string) (*Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := Task{
		ID:     m.newID(),
		Text:   text,
		Status: StatusNotYetStarted,
		Links:  []string{},
	}
	if err := m.append(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateImage adds an important "Image Task" carrying the contents of r as a
// data URI. name is only used to guess the media type. A nil reader means no
// file was selected and is ignored.
//
// The read happens before the operation takes its turn, so a slow reader does
// not hold up other operations.
func (m *Manager) CreateImage(ctx context.Context, name string, r io.Reader) (*Task, error) {
	if r == nil {
		return nil, nil
	}

	uri, err := ReadDataURI(name, r)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := Task{
		ID:        m.newID(),
		Text:      ImageTaskText,
		Status:    StatusNotYetStarted,
		Important: true,
		Links:     []string{},
		Image:     uri,
	}
	if err := m.append(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ImageResult is delivered by CreateImageAsync once the read has completed.
type ImageResult struct {
	Task *Task
	Err  error
}

// CreateImageAsync runs CreateImage in the background. The returned channel
// receives exactly one result and is then closed. In-flight reads cannot be
// cancelled.
func (m *Manager) CreateImageAsync(ctx context.Context, name string, r io.Reader) <-chan ImageResult {
	out := make(chan ImageResult, 1)
	go func() {
		defer close(out)
		t, err := m.CreateImage(ctx, name, r)
		out <- ImageResult{Task: t, Err: err}
	}()
	return out
}

func (m *Manager) append(ctx context.Context, t Task) error {
	err := m.col.update(ctx, func(tasks []Task) ([]Task, bool) {
		return append(tasks, t), true
	})
	if err != nil {
		return err
	}

	m.rows = append(m.rows, t)
	m.surface.Append(t.clone())
	m.logger.Debug("task created", "key", t.Key(), "important", t.Important)
	return nil
}

// Delete removes the row and the first record addressed by ref.
// It reports whether anything was removed; unknown refs are a no-op.
func (m *Manager) Delete(ctx context.Context, ref string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stored bool
	err := m.col.update(ctx, func(tasks []Task) ([]Task, bool) {
		i := find(tasks, ref)
		if i < 0 {
			return tasks, false
		}
		stored = true
		return append(tasks[:i], tasks[i+1:]...), true
	})
	if err != nil {
		return false, err
	}

	i := find(m.rows, ref)
	if i >= 0 {
		key := m.rows[i].Key()
		m.rows = append(m.rows[:i], m.rows[i+1:]...)
		m.surface.Remove(key)
	}

	removed := stored || i >= 0
	if removed {
		m.logger.Debug("task deleted", "ref", ref)
	}
	return removed, nil
}

// SetStatus makes status the single active status of the task addressed by ref.
// Any transition is allowed. It reports whether a task was found.
func (m *Manager) SetStatus(ctx context.Context, ref string, status Status) (bool, error) {
	status, err := ParseStatus(string(status))
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setStatus(ctx, ref, status, "status changed")
}

// ToggleCompletion sets or clears the completed state of the task addressed
// by ref. Unchecking always resets the status to not-yet-started; an earlier
// in-progress or in-review status is not restored.
func (m *Manager) ToggleCompletion(ctx context.Context, ref string, checked bool) (bool, error) {
	status := StatusNotYetStarted
	if checked {
		status = StatusCompleted
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setStatus(ctx, ref, status, "completion toggled")
}

func (m *Manager) setStatus(ctx context.Context, ref string, status Status, msg string) (bool, error) {
	var stored bool
	err := m.col.update(ctx, func(tasks []Task) ([]Task, bool) {
		i := find(tasks, ref)
		if i < 0 {
			return tasks, false
		}
		stored = true
		if tasks[i].Status == status {
			return tasks, false
		}
		tasks[i].Status = status
		return tasks, true
	})
	if err != nil {
		return false, err
	}

	i := find(m.rows, ref)
	if i >= 0 {
		m.rows[i].Status = status
		key := m.rows[i].Key()
		m.surface.SetStatus(key, status)
		m.surface.SetCompleted(key, status == StatusCompleted)
	}

	found := stored || i >= 0
	if found {
		m.logger.Debug(msg, "ref", ref, "status", status)
	}
	return found, nil
}

// Filter shows only the rendered rows matching f and returns them in order.
// It never touches the persisted collection.
func (m *Manager) Filter(f Filter) ([]Task, error) {
	f, err := ParseFilter(string(f))
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.filter = f
	return m.applyFilter(f), nil
}

func (m *Manager) applyFilter(f Filter) []Task {
	visible := make([]Task, 0, len(m.rows))
	for _, t := range m.rows {
		match := f.Match(t)
		m.surface.SetVisible(t.Key(), match)
		if match {
			visible = append(visible, t.clone())
		}
	}
	return visible
}

// Tasks returns a copy of the rendered rows in order.
func (m *Manager) Tasks() []Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Task, len(m.rows))
	for i, t := range m.rows {
		out[i] = t.clone()
	}
	return out
}

// ActiveFilter returns the last applied filter.
func (m *Manager) ActiveFilter() Filter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

type nopSurface struct{}

func (nopSurface) Append(Task) {}
func (nopSurface) Remove(string) {}
func (nopSurface) SetStatus(string, Status) {}
func (nopSurface) SetCompleted(string, bool) {}
func (nopSurface) SetVisible(string, bool) {}
func (nopSurface) Reset() {}
