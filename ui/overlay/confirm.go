package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationOverlay asks a yes/no question before a destructive action.
type ConfirmationOverlay struct {
	Message   string
	Confirmed bool
	Canceled  bool
	OnConfirm func()
	width     int
}

// NewConfirmationOverlay creates a confirmation overlay with the given message.
func NewConfirmationOverlay(message string) *ConfirmationOverlay {
	return &ConfirmationOverlay{
		Message: message,
		width:   50,
	}
}

// SetWidth sets the overlay width.
func (c *ConfirmationOverlay) SetWidth(width int) {
	c.width = width
}

// HandleKeyPress processes a key press. Returns true if the overlay should
// be closed.
func (c *ConfirmationOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "y", "Y", "enter":
		c.Confirmed = true
		if c.OnConfirm != nil {
			c.OnConfirm()
		}
		return true
	case "n", "N", "esc", "q":
		c.Canceled = true
		return true
	}
	return false
}

// Render renders the confirmation overlay.
func (c *ConfirmationOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorRed).
		Padding(1, 2).
		Width(c.width)

	messageStyle := lipgloss.NewStyle().
		Foreground(colorText).
		MarginBottom(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(colorMuted)

	content := messageStyle.Render(c.Message) + "\n" +
		hintStyle.Render("y confirm · n cancel")

	return style.Render(content)
}
