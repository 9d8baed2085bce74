package roster

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role classifies a person on the roster.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

// PhotoSource identifies where an assigned photo came from.
type PhotoSource string

const (
	SourceRepository PhotoSource = "repository"
	SourceCamera     PhotoSource = "camera"
	SourceFile       PhotoSource = "file"
)

// PhotoRef points at a photo file assigned to a person. Path is relative to
// the project photo directory.
type PhotoRef struct {
	Path       string      `json:"path"`
	Source     PhotoSource `json:"source"`
	AssignedAt time.Time   `json:"assigned_at"`
}

// Person is a single roster entry.
type Person struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	GroupIDs  []string  `json:"group_ids,omitempty"`
	Photo     *PhotoRef `json:"photo,omitempty"`
	// Notes holds free-form markdown shown in the detail pane.
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPerson creates a person with a fresh ID and timestamps.
func NewPerson(firstName, lastName string, role Role) Person {
	now := time.Now()
	if role == "" {
		role = RoleStudent
	}
	return Person{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FullName returns "First Last", tolerating a missing half.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// SortName returns "Last, First", the roster display and sort form.
func (p Person) SortName() string {
	switch {
	case p.LastName == "":
		return p.FirstName
	case p.FirstName == "":
		return p.LastName
	default:
		return p.LastName + ", " + p.FirstName
	}
}

// HasPhoto reports whether a photo is assigned.
func (p Person) HasPhoto() bool {
	return p.Photo != nil && p.Photo.Path != ""
}

// InGroup reports membership in the given group.
func (p Person) InGroup(groupID string) bool {
	for _, id := range p.GroupIDs {
		if id == groupID {
			return true
		}
	}
	return false
}

// Matches reports whether the person matches a case-insensitive search query
// against name and email.
func (p Person) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.FullName()), q) ||
		strings.Contains(strings.ToLower(p.Email), q)
}
