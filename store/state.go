package store

import (
	"time"

	"github.com/classkit/rollcall/repository"
	"github.com/classkit/rollcall/roster"
)

// Key names a top-level slice of the state tree. The set of keys is fixed for
// the lifetime of a store; no slice is ever created or removed at runtime.
type Key string

const (
	KeyProject    Key = "project"
	KeyUsers      Key = "users"
	KeyGroups     Key = "groups"
	KeyImages     Key = "images"
	KeyRepository Key = "repository"
	KeyCamera     Key = "camera"
	KeyUI         Key = "ui"
	KeyApp        Key = "app"
)

// Keys lists every slice key in canonical order.
var Keys = []Key{KeyProject, KeyUsers, KeyGroups, KeyImages, KeyRepository, KeyCamera, KeyUI, KeyApp}

// Slice is implemented by every top-level partition of the state tree.
// Subscribers receive the current slice value through this interface and
// type-switch on the concrete slice they care about.
type Slice interface {
	StoreKey() Key
}

// ProjectSlice describes the roster project currently loaded.
type ProjectSlice struct {
	Name     string
	Term     string // e.g. "2026/27"
	Dirty    bool   // unsaved roster changes exist
	LoadedAt time.Time
	SavedAt  time.Time
}

// UsersSlice holds the people on the roster plus the list view parameters.
type UsersSlice struct {
	All        []roster.Person
	SelectedID string // empty = no selection
	Query      string
	Filter     roster.StatusFilter
	Sort       roster.SortMode
}

// Selected returns the selected person, or nil when nothing is selected.
func (u UsersSlice) Selected() *roster.Person {
	for i := range u.All {
		if u.All[i].ID == u.SelectedID {
			p := u.All[i]
			return &p
		}
	}
	return nil
}

// GroupsSlice holds the groups and the sidebar selection.
type GroupsSlice struct {
	All        []roster.Group
	SelectedID string // empty = all groups
}

// ImagesSlice tracks photo assignment bookkeeping.
type ImagesSlice struct {
	// ByPerson maps person ID to the assigned photo.
	ByPerson map[string]roster.PhotoRef
	Coverage roster.Coverage
	// LastAssignedID is the person whose photo changed most recently.
	LastAssignedID string
}

// RepositorySlice mirrors the photo repository sync state.
type RepositorySlice struct {
	Status     repository.Status
	Queued     int
	Done       int
	Failed     int
	CurrentKey string
	LastSyncAt time.Time
	LastError  string
}

// Fraction returns sync completion as 0.0-1.0 for the progress bar.
func (r RepositorySlice) Fraction() float64 {
	if r.Queued == 0 {
		return 0
	}
	return float64(r.Done) / float64(r.Queued)
}

// CameraSlice carries camera availability metadata. Capture itself happens
// outside this application.
type CameraSlice struct {
	Available     bool
	Device        string
	LastCaptureAt time.Time
}

// UISlice holds cross-component view state.
type UISlice struct {
	FocusedPanel  int // 0=sidebar, 1=list, 2=detail
	SidebarHidden bool
	StatusMessage string
}

// AppSlice holds process-level facts set once at startup.
type AppSlice struct {
	Version       string
	Debug         bool
	Notifications bool
}

func (ProjectSlice) StoreKey() Key    { return KeyProject }
func (UsersSlice) StoreKey() Key      { return KeyUsers }
func (GroupsSlice) StoreKey() Key     { return KeyGroups }
func (ImagesSlice) StoreKey() Key     { return KeyImages }
func (RepositorySlice) StoreKey() Key { return KeyRepository }
func (CameraSlice) StoreKey() Key     { return KeyCamera }
func (UISlice) StoreKey() Key         { return KeyUI }
func (AppSlice) StoreKey() Key        { return KeyApp }

// State is the full application state tree. It is a plain value: copying the
// struct shallow-copies every slice one level deep, which is exactly the
// snapshot semantics getState-style reads rely on. Collections inside a slice
// (the person list, the photo map) share backing with the store's copy;
// readers treat them as read-only.
type State struct {
	Project    ProjectSlice
	Users      UsersSlice
	Groups     GroupsSlice
	Images     ImagesSlice
	Repository RepositorySlice
	Camera     CameraSlice
	UI         UISlice
	App        AppSlice
}

// DefaultState returns the slice defaults used at construction.
func DefaultState() State {
	return State{
		Images: ImagesSlice{ByPerson: map[string]roster.PhotoRef{}},
		Users:  UsersSlice{All: []roster.Person{}},
		Groups: GroupsSlice{All: []roster.Group{}},
	}
}

// slice returns the named slice by value, with ok=false for unknown keys.
func (s State) slice(k Key) (Slice, bool) {
	switch k {
	case KeyProject:
		return s.Project, true
	case KeyUsers:
		return s.Users, true
	case KeyGroups:
		return s.Groups, true
	case KeyImages:
		return s.Images, true
	case KeyRepository:
		return s.Repository, true
	case KeyCamera:
		return s.Camera, true
	case KeyUI:
		return s.UI, true
	case KeyApp:
		return s.App, true
	default:
		return nil, false
	}
}
