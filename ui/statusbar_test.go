package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/classkit/rollcall/repository"
	"github.com/classkit/rollcall/roster"
)

func TestStatusBar_Baseline(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(80)
	sb.SetData(StatusBarData{
		ProjectName: "bio-101",
		People:      24,
		Groups:      3,
		Coverage:    roster.Coverage{Total: 24, WithPhoto: 20},
	})

	result := sb.String()
	assert.Contains(t, result, "rollcall")
	assert.Contains(t, result, "bio-101")
	assert.Contains(t, result, "24 people, 3 groups")
	assert.Contains(t, result, "photos 20/24")
	// Should be exactly 1 line (no newlines in output)
	assert.Equal(t, 0, strings.Count(result, "\n"))
}

func TestStatusBar_DirtyMarker(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(100)
	sb.SetData(StatusBarData{ProjectName: "bio-101", Dirty: true})
	assert.Contains(t, sb.String(), "*")

	sb.SetData(StatusBarData{ProjectName: "bio-101"})
	assert.NotContains(t, sb.String(), "*")
}

func TestStatusBar_SyncProgress(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(120)
	sb.SetData(StatusBarData{
		ProjectName: "bio-101",
		SyncStatus:  repository.StatusSyncing,
		SyncDone:    3,
		SyncTotal:   10,
	})
	assert.Contains(t, sb.String(), "syncing 3/10")
}

func TestStatusBar_IdleSyncHidden(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(120)
	sb.SetData(StatusBarData{ProjectName: "bio-101"})
	assert.NotContains(t, sb.String(), "idle")
}

func TestStatusBar_CameraSegment(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(120)
	sb.SetData(StatusBarData{CameraReady: true, LastCapture: "2026-08-20"})
	assert.Contains(t, sb.String(), "camera 2026-08-20")

	sb.SetData(StatusBarData{CameraReady: false, LastCapture: "2026-08-20"})
	assert.NotContains(t, sb.String(), "camera")
}

func TestStatusBar_TooNarrow(t *testing.T) {
	sb := NewStatusBar()
	sb.SetSize(5)
	assert.Equal(t, "", sb.String())
}
