package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInputOverlay_DefaultEnterSubmits(t *testing.T) {
	ti := NewTextInputOverlay("group name", "")
	closed := ti.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, closed)
	assert.True(t, ti.IsSubmitted())
}

func TestTextInputOverlay_MultilineEnterInsertsNewline(t *testing.T) {
	ti := NewTextInputOverlay("notes", "")
	ti.SetMultiline(true)
	// Enter when the textarea is focused should NOT submit in multiline mode
	closed := ti.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, closed)
	assert.False(t, ti.IsSubmitted())
}

func TestTextInputOverlay_MultilineEnterOnButtonSubmits(t *testing.T) {
	ti := NewTextInputOverlay("notes", "")
	ti.SetMultiline(true)
	ti.HandleKeyPress(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, ti.FocusIndex)
	closed := ti.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, closed)
	assert.True(t, ti.IsSubmitted())
}

func TestTextInputOverlay_EscCancels(t *testing.T) {
	ti := NewTextInputOverlay("notes", "")
	closed := ti.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, closed)
	assert.True(t, ti.Canceled)
}

func TestTextInputOverlay_InitialValuePreserved(t *testing.T) {
	ti := NewTextInputOverlay("rename group", "Section A")
	assert.Equal(t, "Section A", ti.GetValue())
}

func TestTextInputOverlay_SizeLockedAfterFirstSet(t *testing.T) {
	o := NewTextInputOverlay("notes", "initial value")
	o.SetSize(70, 8)

	// Simulate a window resize event re-calling SetSize
	o.SetSize(120, 40)

	rendered := o.Render()
	lines := strings.Split(rendered, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	require.Less(t, maxWidth, 90, "overlay should not have grown to window size")
}
