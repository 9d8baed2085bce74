package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/classkit/rollcall/repository"
	"github.com/classkit/rollcall/roster"
)

// StatusBarData holds the contextual information displayed in the status bar.
type StatusBarData struct {
	ProjectName string
	Term        string
	Dirty       bool
	People      int
	Groups      int
	Coverage    roster.Coverage
	SyncStatus  repository.Status
	SyncDone    int
	SyncTotal   int
	CameraReady bool
	LastCapture string
}

// StatusBar is the top status bar component.
type StatusBar struct {
	width int
	data  StatusBarData
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSize sets the terminal width for the status bar.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetData updates the status bar content.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

var statusBarStyle = lipgloss.NewStyle().
	Background(ColorSurface).
	Foreground(ColorText).
	Padding(0, 1)

var statusBarAppNameStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Background(ColorSurface).
	Bold(true)

var statusBarSepStyle = lipgloss.NewStyle().
	Foreground(ColorOverlay).
	Background(ColorSurface)

var statusBarProjectStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorSurface)

var statusBarTermStyle = lipgloss.NewStyle().
	Foreground(ColorCyan).
	Background(ColorSurface)

var statusBarCountStyle = lipgloss.NewStyle().
	Foreground(ColorSubtle).
	Background(ColorSurface)

var statusBarDirtyStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Background(ColorSurface)

func coverageStyle(c roster.Coverage) string {
	var fg lipgloss.TerminalColor
	switch {
	case c.Percent() >= 100:
		fg = ColorGreen
	case c.Percent() >= 50:
		fg = ColorYellow
	default:
		fg = ColorRed
	}
	label := fmt.Sprintf("photos %d/%d", c.WithPhoto, c.Total)
	return lipgloss.NewStyle().Foreground(fg).Background(ColorSurface).Render(label)
}

func syncLabel(status repository.Status, done, total int) string {
	var fg lipgloss.TerminalColor
	label := status.String()
	switch status {
	case repository.StatusSyncing:
		fg = ColorCyan
		if total > 0 {
			label = fmt.Sprintf("syncing %d/%d", done, total)
		}
	case repository.StatusError:
		fg = ColorRed
	default:
		fg = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(fg).Background(ColorSurface).Render(label)
}

const statusBarSep = " │ "

func (s *StatusBar) String() string {
	if s.width < 10 {
		return ""
	}

	parts := make([]string, 0, 6)
	parts = append(parts, statusBarAppNameStyle.Render("rollcall"))

	if s.data.ProjectName != "" {
		name := statusBarProjectStyle.Render(s.data.ProjectName)
		if s.data.Dirty {
			name += statusBarDirtyStyle.Render(" *")
		}
		parts = append(parts, name)
	}

	if s.data.Term != "" {
		parts = append(parts, statusBarTermStyle.Render(s.data.Term))
	}

	parts = append(parts, statusBarCountStyle.Render(
		fmt.Sprintf("%d people, %d groups", s.data.People, s.data.Groups)))

	parts = append(parts, coverageStyle(s.data.Coverage))

	if s.data.SyncStatus != repository.StatusIdle {
		parts = append(parts, syncLabel(s.data.SyncStatus, s.data.SyncDone, s.data.SyncTotal))
	}

	if s.data.CameraReady {
		label := "camera"
		if s.data.LastCapture != "" {
			label += " " + s.data.LastCapture
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(ColorGreen).Background(ColorSurface).Render(label))
	}

	sep := statusBarSepStyle.Render(statusBarSep)
	content := strings.Join(parts, sep)

	return statusBarStyle.Width(s.width).Render(content)
}
