// Package check audits roster and photo directory health: every assigned
// photo should exist on disk, and the photo directory should not accumulate
// files nobody references.
package check

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/classkit/rollcall/roster"
)

// PhotoCheck summarizes assigned-photo file health.
type PhotoCheck struct {
	// Assigned is the number of people with a photo reference.
	Assigned int
	// Present is how many of those references resolve to a file on disk.
	Present int
	// Missing lists people whose referenced photo file is gone.
	Missing []string
}

// Result is the full audit outcome.
type Result struct {
	People int
	Groups int

	// EmptyGroups lists groups with no members.
	EmptyGroups []string
	// NoEmail lists people without an email address. They can never be
	// matched by a repository sync.
	NoEmail []string

	Photos PhotoCheck

	// Orphans lists files in the photo directory no person references.
	Orphans []string

	// PhotoDirMissing is set when the photo directory does not exist.
	PhotoDirMissing bool
}

// Healthy reports whether the audit found nothing actionable. Empty groups
// and missing emails are warnings; missing photo files and orphans are not.
func (r Result) Healthy() bool {
	return !r.PhotoDirMissing && len(r.Photos.Missing) == 0 && len(r.Orphans) == 0
}

// Audit inspects the roster against the photo directory.
func Audit(r *roster.Roster, photoDir string) Result {
	result := Result{
		People: len(r.People),
		Groups: len(r.Groups),
	}

	for _, g := range r.Groups {
		if r.GroupSize(g.ID) == 0 {
			result.EmptyGroups = append(result.EmptyGroups, g.Name)
		}
	}

	referenced := make(map[string]bool)
	for _, p := range r.People {
		if p.Email == "" {
			result.NoEmail = append(result.NoEmail, p.FullName())
		}
		if !p.HasPhoto() {
			continue
		}
		result.Photos.Assigned++
		referenced[p.Photo.Path] = true
		if _, err := os.Stat(filepath.Join(photoDir, p.Photo.Path)); err != nil {
			result.Photos.Missing = append(result.Photos.Missing, p.FullName())
		} else {
			result.Photos.Present++
		}
	}

	entries, err := os.ReadDir(photoDir)
	if err != nil {
		result.PhotoDirMissing = true
		return result
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !referenced[entry.Name()] {
			result.Orphans = append(result.Orphans, entry.Name())
		}
	}
	sort.Strings(result.Orphans)

	return result
}
