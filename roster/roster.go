// Package roster holds the domain model: people, groups, memberships, and the
// queries the UI runs over them.
package roster

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrNotFound  = errors.New("roster: not found")
	ErrEmptyName = errors.New("roster: name must not be empty")
	ErrDuplicate = errors.New("roster: duplicate name")
)

// StatusFilter narrows the person list by photo status.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterMissingPhoto
)

// SortMode orders the person list.
type SortMode int

const (
	SortByName SortMode = iota
	SortByRole
	SortByUpdated
)

// String returns the short label shown in the list header.
func (m SortMode) String() string {
	switch m {
	case SortByName:
		return "name"
	case SortByRole:
		return "role"
	case SortByUpdated:
		return "recent"
	default:
		return "?"
	}
}

// Coverage summarizes photo assignment across a set of people.
type Coverage struct {
	Total     int
	WithPhoto int
}

// Percent returns photo coverage as 0-100. An empty roster counts as full.
func (c Coverage) Percent() int {
	if c.Total == 0 {
		return 100
	}
	return c.WithPhoto * 100 / c.Total
}

// Roster is the in-memory aggregate of people and groups. It is plain data;
// the observable state store holds the canonical copy the UI reads.
type Roster struct {
	People []Person `json:"people"`
	Groups []Group  `json:"groups"`
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{}
}

// Clone returns a roster whose backing arrays are independent of the
// receiver's, down to each person's GroupIDs. Mutating the clone leaves
// slices shared with earlier snapshots untouched.
func (r *Roster) Clone() *Roster {
	people := make([]Person, len(r.People))
	copy(people, r.People)
	for i := range people {
		people[i].GroupIDs = append([]string(nil), people[i].GroupIDs...)
	}
	return &Roster{
		People: people,
		Groups: append([]Group(nil), r.Groups...),
	}
}

// FindPerson returns the person with the given ID.
func (r *Roster) FindPerson(id string) (Person, error) {
	for _, p := range r.People {
		if p.ID == id {
			return p, nil
		}
	}
	return Person{}, fmt.Errorf("person %q: %w", id, ErrNotFound)
}

// AddPerson appends a person. The name must be non-empty.
func (r *Roster) AddPerson(p Person) error {
	if p.FullName() == "" {
		return ErrEmptyName
	}
	r.People = append(r.People, p)
	return nil
}

// UpdatePerson replaces the person with the same ID and bumps UpdatedAt.
func (r *Roster) UpdatePerson(p Person) error {
	for i := range r.People {
		if r.People[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			r.People[i] = p
			return nil
		}
	}
	return fmt.Errorf("person %q: %w", p.ID, ErrNotFound)
}

// RemovePerson deletes the person with the given ID.
func (r *Roster) RemovePerson(id string) error {
	for i := range r.People {
		if r.People[i].ID == id {
			r.People = append(r.People[:i], r.People[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("person %q: %w", id, ErrNotFound)
}

// FindGroup returns the group with the given ID.
func (r *Roster) FindGroup(id string) (Group, error) {
	for _, g := range r.Groups {
		if g.ID == id {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("group %q: %w", id, ErrNotFound)
}

// AddGroup appends a group. Group names are unique case-insensitively.
func (r *Roster) AddGroup(g Group) error {
	if g.Name == "" {
		return ErrEmptyName
	}
	for _, existing := range r.Groups {
		if strings.EqualFold(existing.Name, g.Name) {
			return fmt.Errorf("group %q: %w", g.Name, ErrDuplicate)
		}
	}
	r.Groups = append(r.Groups, g)
	return nil
}

// RenameGroup changes a group's name, keeping uniqueness.
func (r *Roster) RenameGroup(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	for _, g := range r.Groups {
		if g.ID != id && strings.EqualFold(g.Name, name) {
			return fmt.Errorf("group %q: %w", name, ErrDuplicate)
		}
	}
	for i := range r.Groups {
		if r.Groups[i].ID == id {
			r.Groups[i].Name = name
			return nil
		}
	}
	return fmt.Errorf("group %q: %w", id, ErrNotFound)
}

// RemoveGroup deletes a group and strips its membership from every person.
func (r *Roster) RemoveGroup(id string) error {
	found := false
	for i := range r.Groups {
		if r.Groups[i].ID == id {
			r.Groups = append(r.Groups[:i], r.Groups[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("group %q: %w", id, ErrNotFound)
	}
	for i := range r.People {
		ids := r.People[i].GroupIDs
		for j := 0; j < len(ids); j++ {
			if ids[j] == id {
				ids = append(ids[:j], ids[j+1:]...)
				j--
			}
		}
		r.People[i].GroupIDs = ids
	}
	return nil
}

// SetMembership adds or removes a person from a group.
func (r *Roster) SetMembership(personID, groupID string, member bool) error {
	if _, err := r.FindGroup(groupID); err != nil {
		return err
	}
	for i := range r.People {
		if r.People[i].ID != personID {
			continue
		}
		p := &r.People[i]
		if member {
			if !p.InGroup(groupID) {
				p.GroupIDs = append(p.GroupIDs, groupID)
				p.UpdatedAt = time.Now()
			}
		} else {
			for j, id := range p.GroupIDs {
				if id == groupID {
					p.GroupIDs = append(p.GroupIDs[:j], p.GroupIDs[j+1:]...)
					p.UpdatedAt = time.Now()
					break
				}
			}
		}
		return nil
	}
	return fmt.Errorf("person %q: %w", personID, ErrNotFound)
}

// GroupSize returns the number of people in a group.
func (r *Roster) GroupSize(groupID string) int {
	n := 0
	for _, p := range r.People {
		if p.InGroup(groupID) {
			n++
		}
	}
	return n
}

// PhotoCoverage summarizes photo assignment over the whole roster.
func (r *Roster) PhotoCoverage() Coverage {
	c := Coverage{Total: len(r.People)}
	for _, p := range r.People {
		if p.HasPhoto() {
			c.WithPhoto++
		}
	}
	return c
}

// FilterPeople returns the people visible under the given group, status
// filter, and search query. The input slice is never modified.
func FilterPeople(people []Person, groupID string, filter StatusFilter, query string) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if groupID != "" && !p.InGroup(groupID) {
			continue
		}
		if filter == FilterMissingPhoto && p.HasPhoto() {
			continue
		}
		if !p.Matches(query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortPeople orders people in place by the given mode. Ties fall back to
// sort name so output is stable across runs.
func SortPeople(people []Person, mode SortMode) {
	sort.SliceStable(people, func(i, j int) bool {
		a, b := people[i], people[j]
		switch mode {
		case SortByRole:
			if a.Role != b.Role {
				// staff before students
				return a.Role == RoleStaff
			}
		case SortByUpdated:
			if !a.UpdatedAt.Equal(b.UpdatedAt) {
				return a.UpdatedAt.After(b.UpdatedAt)
			}
		}
		return strings.ToLower(a.SortName()) < strings.ToLower(b.SortName())
	})
}
