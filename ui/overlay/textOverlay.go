package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextOverlay displays static text (help screens, notices) until any key is
// pressed.
type TextOverlay struct {
	// OnDismiss runs when the overlay closes, if set.
	OnDismiss func()

	content string
	width   int
}

// NewTextOverlay creates a text overlay with default width.
func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{
		content: content,
		width:   66,
	}
}

func (t *TextOverlay) SetWidth(width int) {
	if width > 0 {
		t.width = width
	}
}

// HandleKeyPress dismisses the overlay on any key. Always returns true.
func (t *TextOverlay) HandleKeyPress(_ tea.KeyMsg) bool {
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
	return true
}

func (t *TextOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2).
		Width(t.width)

	hint := lipgloss.NewStyle().Foreground(colorMuted).Render("press any key to close")

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, t.content, "", hint))
}
