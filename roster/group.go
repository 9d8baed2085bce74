package roster

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Group is a named collection of people (a class, a department, a team).
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGroup creates a group with a fresh ID.
func NewGroup(name, description string) Group {
	return Group{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}
}
