package roster

import (
	"encoding/json"
	"fmt"

	"github.com/classkit/rollcall/config"
)

// Storage persists the roster through the app state layer.
type Storage struct {
	state config.RosterStorage
}

// NewStorage creates a storage backed by the given app state.
func NewStorage(state config.RosterStorage) (*Storage, error) {
	if state == nil {
		return nil, fmt.Errorf("storage requires app state")
	}
	return &Storage{state: state}, nil
}

// Save serializes the roster into the app state.
func (s *Storage) Save(r *Roster) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}
	if err := s.state.SaveRoster(data); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}

// Load deserializes the roster from the app state. Missing or empty data
// yields an empty roster, not an error.
func (s *Storage) Load() (*Roster, error) {
	data := s.state.GetRoster()
	if len(data) == 0 {
		return New(), nil
	}
	r := New()
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("failed to parse stored roster: %w", err)
	}
	return r, nil
}

// DeleteAll wipes the stored roster.
func (s *Storage) DeleteAll() error {
	return s.state.DeleteAllData()
}
