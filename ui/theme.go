package ui

import "github.com/charmbracelet/lipgloss"

// Nord palette
// https://www.nordtheme.com/docs/colors-and-palettes
var (
	// Polar night
	ColorBase    = lipgloss.Color("#2e3440")
	ColorSurface = lipgloss.Color("#3b4252")
	ColorOverlay = lipgloss.Color("#434c5e")
	ColorMuted   = lipgloss.Color("#4c566a")

	// Snow storm
	ColorSubtle = lipgloss.Color("#d8dee9")
	ColorText   = lipgloss.Color("#eceff4")

	// Semantic colors
	ColorRed    = lipgloss.Color("#bf616a") // error, danger
	ColorYellow = lipgloss.Color("#ebcb8b") // warning
	ColorOrange = lipgloss.Color("#d08770") // accent, secondary
	ColorTeal   = lipgloss.Color("#8fbcbb") // link
	ColorCyan   = lipgloss.Color("#88c0d0") // info, syncing
	ColorBlue   = lipgloss.Color("#81a1c1") // highlight, primary
	ColorGreen  = lipgloss.Color("#a3be8c") // success, photo present

	// Gradient endpoints for the banner and focused panel title
	GradientStart = "#88c0d0" // cyan
	GradientEnd   = "#81a1c1" // blue
)
