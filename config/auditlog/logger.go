package auditlog

import "time"

// QueryFilter specifies criteria for querying audit events.
type QueryFilter struct {
	Project  string
	PersonID string
	Kinds    []EventKind
	Limit    int
	Before   time.Time
	After    time.Time
}

// Logger is the interface for emitting and querying audit events.
type Logger interface {
	Emit(event Event)
	Query(filter QueryFilter) ([]Event, error)
	Close() error
}

// EventOption is a functional option for configuring optional Event fields.
type EventOption func(*Event)

// WithPerson sets the person fields on the event.
func WithPerson(id, name string) EventOption {
	return func(e *Event) {
		e.PersonID = id
		e.PersonName = name
	}
}

// WithGroup sets the group name on the event.
func WithGroup(name string) EventOption {
	return func(e *Event) { e.GroupName = name }
}

// WithSource sets the Source field on the event ("ui", "sync", "cli").
func WithSource(source string) EventOption {
	return func(e *Event) { e.Source = source }
}

// WithDetail sets the Detail field on the event (JSON-encoded extra data).
func WithDetail(detail string) EventOption {
	return func(e *Event) { e.Detail = detail }
}

// WithLevel sets the Level field on the event (info, warn, error).
func WithLevel(level string) EventOption {
	return func(e *Event) { e.Level = level }
}

// NewEvent builds an event from a kind, project, message, and options.
func NewEvent(kind EventKind, project, message string, opts ...EventOption) Event {
	e := Event{Kind: kind, Project: project, Message: message}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// nopLogger is a no-op Logger used when the audit database is unavailable.
type nopLogger struct{}

// NopLogger returns a Logger that discards all events.
func NopLogger() Logger {
	return &nopLogger{}
}

func (n *nopLogger) Emit(_ Event) {}

func (n *nopLogger) Query(_ QueryFilter) ([]Event, error) {
	return nil, nil
}

func (n *nopLogger) Close() error {
	return nil
}
