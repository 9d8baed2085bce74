package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/classkit/rollcall/roster"
)

const photoIcon = "● "
const noPhotoIcon = "○ "
const staffIcon = " "

var photoStyle = lipgloss.NewStyle().
	Foreground(ColorGreen)

var noPhotoStyle = lipgloss.NewStyle().
	Foreground(ColorMuted)

var staffBadgeStyle = lipgloss.NewStyle().
	Foreground(ColorOrange)

var titleStyle = lipgloss.NewStyle().
	Padding(1, 1, 0, 1).
	Foreground(ColorText)

var listDescStyle = lipgloss.NewStyle().
	Padding(0, 1, 1, 1).
	Foreground(ColorSubtle)

var evenRowTitleStyle = lipgloss.NewStyle().
	Padding(1, 1, 0, 1).
	Background(ColorSurface).
	Foreground(ColorText)

var evenRowDescStyle = lipgloss.NewStyle().
	Padding(0, 1, 1, 1).
	Background(ColorSurface).
	Foreground(ColorSubtle)

var selectedTitleStyle = lipgloss.NewStyle().
	Padding(1, 1, 0, 1).
	Background(ColorBlue).
	Foreground(ColorBase)

var selectedDescStyle = lipgloss.NewStyle().
	Padding(0, 1, 1, 1).
	Background(ColorBlue).
	Foreground(ColorBase)

// Selected but unfocused row styles.
var activeTitleStyle = lipgloss.NewStyle().
	Padding(1, 1, 0, 1).
	Background(ColorOverlay).
	Foreground(ColorText)

var activeDescStyle = lipgloss.NewStyle().
	Padding(0, 1, 1, 1).
	Background(ColorOverlay).
	Foreground(ColorText)

// Status filter tab styles
var activeFilterTab = lipgloss.NewStyle().
	Background(ColorBlue).
	Foreground(ColorBase).
	Padding(0, 1)

var inactiveFilterTab = lipgloss.NewStyle().
	Background(ColorOverlay).
	Foreground(ColorSubtle).
	Padding(0, 1)

var sortModeLabels = map[roster.SortMode]string{
	roster.SortByName:    "Name",
	roster.SortByRole:    "Role",
	roster.SortByUpdated: "Updated",
}

var sortDropdownStyle = lipgloss.NewStyle().
	Foreground(ColorCyan).
	Padding(0, 1)

var searchBadgeStyle = lipgloss.NewStyle().
	Background(ColorYellow).
	Foreground(ColorBase).
	Padding(0, 1)

// listBorderStyle wraps the people list in a subtle rounded border matching the sidebar.
var listBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorOverlay).
	Padding(0, 1)
