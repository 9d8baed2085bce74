package overlay

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputOverlay is a single-value input overlay used for group names,
// project names, and person notes.
type TextInputOverlay struct {
	textarea      textarea.Model
	Title         string
	FocusIndex    int // 0 for text input, 1 for enter button
	Submitted     bool
	Canceled      bool
	OnSubmit      func()
	width, height int
	multiline     bool
	sizeSet       bool // true after the first SetSize call
}

// NewTextInputOverlay creates a new text input overlay with the given title
// and initial value.
func NewTextInputOverlay(title string, initialValue string) *TextInputOverlay {
	ti := textarea.New()
	ti.SetValue(initialValue)
	ti.Focus()
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.CharLimit = 0
	ti.MaxHeight = 0

	return &TextInputOverlay{
		textarea:   ti,
		Title:      title,
		FocusIndex: 0,
	}
}

// SetMultiline enables multiline mode where Enter inserts newlines and the
// user must Tab to the submit button then press Enter to submit. Used for
// notes editing.
func (t *TextInputOverlay) SetMultiline(enabled bool) {
	t.multiline = enabled
}

// SetPlaceholder sets the textarea placeholder text.
func (t *TextInputOverlay) SetPlaceholder(text string) {
	t.textarea.Placeholder = text
}

func (t *TextInputOverlay) SetSize(width, height int) {
	if t.sizeSet {
		return // ignore resize events after initial sizing
	}
	t.sizeSet = true
	t.textarea.SetHeight(height)
	t.width = width
	t.height = height
}

// HandleKeyPress processes a key press and updates the state accordingly.
// Returns true if the overlay should be closed.
func (t *TextInputOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		t.FocusIndex = (t.FocusIndex + 1) % 2
		if t.FocusIndex == 0 {
			t.textarea.Focus()
		} else {
			t.textarea.Blur()
		}
		return false
	case tea.KeyEsc:
		t.Canceled = true
		return true
	case tea.KeyEnter:
		if t.multiline && t.FocusIndex == 0 {
			// In multiline mode, Enter inserts a newline when the textarea
			// is focused.
			t.textarea, _ = t.textarea.Update(msg)
			return false
		}
		t.Submitted = true
		if t.OnSubmit != nil {
			t.OnSubmit()
		}
		return true
	default:
		if t.FocusIndex == 0 {
			t.textarea, _ = t.textarea.Update(msg)
		}
		return false
	}
}

// GetValue returns the current value of the text input.
func (t *TextInputOverlay) GetValue() string {
	return t.textarea.Value()
}

// IsSubmitted returns whether the form was submitted.
func (t *TextInputOverlay) IsSubmitted() bool {
	return t.Submitted
}

// Render renders the text input overlay.
func (t *TextInputOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(colorBlue).
		Bold(true).
		MarginBottom(1)

	buttonStyle := lipgloss.NewStyle().
		Foreground(colorSubtle)

	focusedButtonStyle := buttonStyle.
		Background(colorBlue).
		Foreground(colorBase)

	w := t.width
	if w < 40 {
		w = 40
	}
	t.textarea.SetWidth(w - 6) // Account for padding and borders

	content := titleStyle.Render(t.Title) + "\n"
	content += t.textarea.View() + "\n\n"

	enterButton := " Enter "
	if t.FocusIndex == 1 {
		enterButton = focusedButtonStyle.Render(enterButton)
	} else {
		enterButton = buttonStyle.Render(enterButton)
	}
	content += enterButton
	if t.multiline {
		content += "  " + lipgloss.NewStyle().Foreground(colorMuted).Render("tab → enter submit · esc cancel")
	}

	return style.Render(content)
}
