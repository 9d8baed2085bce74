package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/classkit/rollcall/log"
	"github.com/classkit/rollcall/roster"
)

// Status is the repository slice's sync state.
type Status int

const (
	StatusIdle Status = iota
	StatusSyncing
	StatusError
)

// String returns the label shown in the status bar.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSyncing:
		return "syncing"
	case StatusError:
		return "error"
	default:
		return "?"
	}
}

// Progress is reported after every queue item during a sync.
type Progress struct {
	Total      int
	Done       int
	Failed     int
	CurrentKey string
}

// Result summarizes a completed sync run.
type Result struct {
	Matched    int // manifest entries matched to a roster person
	Downloaded int
	Skipped    int // already up to date
	Failed     int
	Assigned   []Assignment
}

// Assignment records one downloaded photo and the person it belongs to.
type Assignment struct {
	PersonID string
	Photo    roster.PhotoRef
}

// Syncer matches manifest entries to roster people and downloads missing or
// outdated photos into the photo directory, one at a time.
type Syncer struct {
	client   *Client
	photoDir string
}

// NewSyncer creates a syncer writing into photoDir.
func NewSyncer(client *Client, photoDir string) *Syncer {
	return &Syncer{client: client, photoDir: photoDir}
}

// photoFileName returns the local filename for a person's photo.
func photoFileName(personID string) string {
	return personID + ".jpg"
}

// needsDownload reports whether the local copy is missing or older than the
// manifest entry.
func (s *Syncer) needsDownload(entry ManifestEntry, personID string) bool {
	info, err := os.Stat(filepath.Join(s.photoDir, photoFileName(personID)))
	if err != nil {
		return true
	}
	return info.ModTime().Before(entry.UpdatedAt)
}

// Sync fetches the manifest, downloads photos for every matching person, and
// reports progress after each item. It keeps going past individual download
// failures; only a manifest failure aborts the run.
func (s *Syncer) Sync(ctx context.Context, people []roster.Person, onProgress func(Progress)) (*Result, error) {
	manifest, err := s.client.FetchManifest(ctx)
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string]roster.Person, len(people))
	for _, p := range people {
		if p.Email != "" {
			byEmail[strings.ToLower(p.Email)] = p
		}
	}

	queue := make([]ManifestEntry, 0, len(manifest.Photos))
	for _, entry := range manifest.Photos {
		if _, ok := byEmail[strings.ToLower(entry.Key)]; ok {
			queue = append(queue, entry)
		}
	}

	result := &Result{Matched: len(queue)}
	progress := Progress{Total: len(queue)}

	for _, entry := range queue {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		person := byEmail[strings.ToLower(entry.Key)]
		progress.CurrentKey = entry.Key
		if onProgress != nil {
			onProgress(progress)
		}

		if !s.needsDownload(entry, person.ID) {
			result.Skipped++
			progress.Done++
			continue
		}

		dest := filepath.Join(s.photoDir, photoFileName(person.ID))
		if err := s.client.Download(ctx, entry, dest); err != nil {
			log.WarningLog.Printf("sync: %v", err)
			result.Failed++
			progress.Failed++
			progress.Done++
			continue
		}

		result.Downloaded++
		result.Assigned = append(result.Assigned, Assignment{
			PersonID: person.ID,
			Photo: roster.PhotoRef{
				Path:       photoFileName(person.ID),
				Source:     roster.SourceRepository,
				AssignedAt: time.Now(),
			},
		})
		progress.Done++
	}

	if onProgress != nil {
		progress.CurrentKey = ""
		onProgress(progress)
	}
	return result, nil
}

// Summary returns the one-line result message shown as a toast.
func (r *Result) Summary() string {
	if r.Failed > 0 {
		return fmt.Sprintf("sync: %d downloaded, %d up to date, %d failed", r.Downloaded, r.Skipped, r.Failed)
	}
	return fmt.Sprintf("sync: %d downloaded, %d up to date", r.Downloaded, r.Skipped)
}
