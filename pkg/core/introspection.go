package core

import (
	"github.com/aretw0/introspection"
)

// ManagerState exposes internal state for observability.
type ManagerState struct {
	Key         string `json:"key"`
	Rows        int    `json:"rows"`
	Visible     int    `json:"visible"`
	Filter      Filter `json:"filter"`
	BackendType string `json:"backend_type"`
}

// State implements introspection.Introspectable.
func (m *Manager) State() any {
	m.mu.Lock()
	defer m.mu.Unlock()

	backendType := "unknown"
	if b := m.col.Backend(); b != nil {
		backendType = "backend"
		// Try to get component type if backend implements introspection.Component
		if comp, ok := b.(introspection.Component); ok {
			backendType = comp.ComponentType()
		}
	}

	visible := 0
	for _, t := range m.rows {
		if m.filter.Match(t) {
			visible++
		}
	}

	return ManagerState{
		Key:         m.col.Key(),
		Rows:        len(m.rows),
		Visible:     visible,
		Filter:      m.filter,
		BackendType: backendType,
	}
}

// ComponentType implements introspection.Component.
func (m *Manager) ComponentType() string {
	return "manager"
}

var _ introspection.Introspectable = (*Manager)(nil)
var _ introspection.Component = (*Manager)(nil)
