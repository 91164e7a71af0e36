// Package core holds the task domain and the Task Store Manager.
package core

// EventType represents the type of change observed on a backend key.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored key made outside this process.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and lifecycle.Event).
func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}
