package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PickerItem is a selectable row in a PickerOverlay.
type PickerItem struct {
	ID      string
	Label   string
	Checked bool
}

// PickerOverlay is a checklist overlay used to assign a person to groups.
// Space toggles membership, enter applies, esc cancels.
type PickerOverlay struct {
	title     string
	items     []PickerItem
	cursor    int
	submitted bool
	canceled  bool
	width     int
}

// NewPickerOverlay creates a picker with the given items.
func NewPickerOverlay(title string, items []PickerItem) *PickerOverlay {
	return &PickerOverlay{
		title: title,
		items: items,
		width: 44,
	}
}

// SetWidth sets the overlay width.
func (p *PickerOverlay) SetWidth(width int) {
	p.width = width
}

// HandleKeyPress processes a key press. Returns true if the overlay should
// be closed.
func (p *PickerOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case " ":
		if len(p.items) > 0 {
			p.items[p.cursor].Checked = !p.items[p.cursor].Checked
		}
	case "enter":
		p.submitted = true
		return true
	case "esc", "q":
		p.canceled = true
		return true
	}
	return false
}

// CheckedIDs returns the IDs of all checked items.
func (p *PickerOverlay) CheckedIDs() []string {
	var ids []string
	for _, item := range p.items {
		if item.Checked {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// IsSubmitted returns true when the picker was applied.
func (p *PickerOverlay) IsSubmitted() bool {
	return p.submitted
}

// IsCanceled returns true when the picker was dismissed.
func (p *PickerOverlay) IsCanceled() bool {
	return p.canceled
}

// Render renders the picker overlay.
func (p *PickerOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2).
		Width(p.width)

	titleStyle := lipgloss.NewStyle().
		Foreground(colorBlue).
		Bold(true).
		MarginBottom(1)

	cursorRowStyle := lipgloss.NewStyle().
		Background(colorBlue).
		Foreground(colorBase)

	rowStyle := lipgloss.NewStyle().
		Foreground(colorText)

	checkedStyle := lipgloss.NewStyle().
		Foreground(colorGreen)

	hintStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n")

	if len(p.items) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(colorMuted).Render("no groups yet"))
		b.WriteString("\n")
	}

	contentWidth := p.width - 6
	for i, item := range p.items {
		check := "· "
		if item.Checked {
			check = checkedStyle.Render("✓ ")
		}

		label := item.Label
		maxLabel := contentWidth - 2
		if maxLabel > 3 && runewidth.StringWidth(label) > maxLabel {
			label = runewidth.Truncate(label, maxLabel-1, "…")
		}

		line := check + label
		if i == p.cursor {
			line = cursorRowStyle.Render("· " + label)
			if item.Checked {
				line = cursorRowStyle.Render("✓ " + label)
			}
		} else {
			line = check + rowStyle.Render(label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("space toggle · enter apply · esc cancel"))

	return style.Render(b.String())
}
