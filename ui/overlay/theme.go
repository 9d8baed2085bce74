package overlay

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Nord palette; mirrors ui/theme.go.
// https://www.nordtheme.com/docs/colors-and-palettes
var (
	// Base tones
	colorBase    = lipgloss.Color("#2e3440")
	colorOverlay = lipgloss.Color("#434c5e")
	colorMuted   = lipgloss.Color("#4c566a")
	colorSubtle  = lipgloss.Color("#d8dee9")
	colorText    = lipgloss.Color("#eceff4")

	// Semantic colors
	colorRed    = lipgloss.Color("#bf616a") // error, danger
	colorYellow = lipgloss.Color("#ebcb8b") // warning
	colorCyan   = lipgloss.Color("#88c0d0") // info
	colorBlue   = lipgloss.Color("#81a1c1") // highlight, primary
	colorGreen  = lipgloss.Color("#a3be8c") // success
)

// ThemeNord returns a huh theme matching the app's Nord palette.
func ThemeNord() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(colorBlue)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(colorBlue).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(colorBlue).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(colorMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(colorRed)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(colorRed)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(colorBlue)
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(colorBlue)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(colorBlue)
	t.Focused.Option = t.Focused.Option.Foreground(colorText)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(colorBlue)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(colorCyan)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(colorGreen).SetString("✓ ")
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(colorMuted).SetString("• ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(colorText)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(colorBase).Background(colorBlue)
	t.Focused.Next = t.Focused.FocusedButton
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(colorSubtle).Background(colorOverlay)

	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(colorCyan)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(colorMuted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(colorBlue)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(colorText)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
