package auditlog

import "time"

// EventKind identifies the type of audit event.
type EventKind string

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	return string(k)
}

// Roster events.
const (
	EventPersonAdded   EventKind = "person_added"
	EventPersonUpdated EventKind = "person_updated"
	EventPersonRemoved EventKind = "person_removed"
)

// Group events.
const (
	EventGroupCreated  EventKind = "group_created"
	EventGroupRenamed  EventKind = "group_renamed"
	EventGroupDeleted  EventKind = "group_deleted"
	EventMemberAdded   EventKind = "member_added"
	EventMemberRemoved EventKind = "member_removed"
)

// Photo events.
const (
	EventPhotoAssigned EventKind = "photo_assigned"
	EventPhotoCleared  EventKind = "photo_cleared"
)

// Operational events.
const (
	EventSyncStarted   EventKind = "sync_started"
	EventSyncCompleted EventKind = "sync_completed"
	EventSyncFailed    EventKind = "sync_failed"
	EventRosterReset   EventKind = "roster_reset"
	EventError         EventKind = "error"
)

// Event is a single audit log entry.
type Event struct {
	ID         int64
	Kind       EventKind
	Timestamp  time.Time
	Project    string
	PersonID   string
	PersonName string
	GroupName  string
	Source     string // "ui", "sync", "cli"
	Message    string
	Detail     string // JSON-encoded extra data
	Level      string // info, warn, error
}
