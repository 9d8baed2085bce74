package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/classkit/rollcall/log"
)

const stateFileName = "state.json"

// RosterStorage is the subset of application state used by the roster storage
// layer.
type RosterStorage interface {
	SaveRoster(data json.RawMessage) error
	GetRoster() json.RawMessage
	DeleteAllData() error
}

// AppState is the full application state interface. The app reads and writes
// durable UI state (seen help screens, recent projects) through it.
type AppState interface {
	RosterStorage

	GetHelpScreensSeen() uint32
	SetHelpScreensSeen(seen uint32) error
	AddRecentProject(name string)
	GetRecentProjects() []string
}

// State holds persistent application state, stored as state.json next to the
// config file.
type State struct {
	// HelpScreensSeen is a bitmask tracking which help screens have been shown.
	HelpScreensSeen uint32 `json:"help_screens_seen"`
	// RecentProjects holds project names, most recent first.
	RecentProjects []string `json:"recent_projects,omitempty"`
	// RosterData is the serialized roster (people and groups).
	RosterData json.RawMessage `json:"roster,omitempty"`
}

// DefaultState returns the default empty state.
func DefaultState() *State {
	return &State{RosterData: json.RawMessage("{}")}
}

// LoadState reads state.json, returning defaults when missing or unreadable.
func LoadState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultState()
	}

	statePath := filepath.Join(configDir, stateFileName)
	data, err := os.ReadFile(statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read state file: %v", err)
		}
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return DefaultState()
	}
	return &state
}

// SaveState persists the state to disk.
func SaveState(state *State) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	return os.WriteFile(filepath.Join(configDir, stateFileName), data, 0644)
}

// SaveRoster stores the serialized roster and persists the state.
func (s *State) SaveRoster(data json.RawMessage) error {
	s.RosterData = data
	return SaveState(s)
}

// GetRoster returns the stored serialized roster.
func (s *State) GetRoster() json.RawMessage {
	return s.RosterData
}

// DeleteAllData clears the stored roster and persists the state.
func (s *State) DeleteAllData() error {
	s.RosterData = json.RawMessage("{}")
	return SaveState(s)
}

// GetHelpScreensSeen returns the bitmask of seen help screens.
func (s *State) GetHelpScreensSeen() uint32 {
	return s.HelpScreensSeen
}

// SetHelpScreensSeen updates the bitmask and persists the state.
func (s *State) SetHelpScreensSeen(seen uint32) error {
	s.HelpScreensSeen = seen
	return SaveState(s)
}

// AddRecentProject moves name to the front of the recent projects list,
// keeping at most ten entries. The caller is responsible for persisting.
func (s *State) AddRecentProject(name string) {
	out := []string{name}
	for _, p := range s.RecentProjects {
		if p != name {
			out = append(out, p)
		}
	}
	if len(out) > 10 {
		out = out[:10]
	}
	s.RecentProjects = out
}

// GetRecentProjects returns project names, most recent first.
func (s *State) GetRecentProjects() []string {
	return s.RecentProjects
}
