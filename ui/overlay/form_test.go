package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/classkit/rollcall/roster"
)

func TestPersonForm_EnterWithEmptyNameDoesNotSubmit(t *testing.T) {
	f := NewPersonFormOverlay("add person", 60, nil)
	closed := f.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, closed)
	assert.False(t, f.IsSubmitted())
}

func TestPersonForm_EscCancels(t *testing.T) {
	f := NewPersonFormOverlay("add person", 60, nil)
	closed := f.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, closed)
	assert.False(t, f.IsSubmitted())
}

func TestPersonForm_PrefillFromPerson(t *testing.T) {
	p := roster.NewPerson("Ana", "Ivanova", roster.RoleStaff)
	p.Email = "ana@example.edu"
	f := NewPersonFormOverlay("edit person", 60, &p)

	assert.Equal(t, "Ana", f.FirstName())
	assert.Equal(t, "Ivanova", f.LastName())
	assert.Equal(t, "ana@example.edu", f.Email())
	assert.Equal(t, roster.RoleStaff, f.Role())
}

func TestPersonForm_DefaultRoleIsStudent(t *testing.T) {
	f := NewPersonFormOverlay("add person", 60, nil)
	assert.Equal(t, roster.RoleStudent, f.Role())
}

func TestPersonForm_SubmitWithName(t *testing.T) {
	f := NewPersonFormOverlay("add person", 60, nil)
	f.firstVal = "Ana"
	closed := f.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, closed)
	assert.True(t, f.IsSubmitted())
}

func TestPersonForm_RenderContainsTitle(t *testing.T) {
	f := NewPersonFormOverlay("add person", 60, nil)
	assert.Contains(t, f.Render(), "add person")
}

func TestGroupForm_EnterWithEmptyNameDoesNotSubmit(t *testing.T) {
	f := NewGroupFormOverlay("new group", 60)
	closed := f.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, closed)
	assert.False(t, f.IsSubmitted())
}

func TestGroupForm_SubmitTrimsValues(t *testing.T) {
	f := NewGroupFormOverlay("new group", 60)
	f.nameVal = "  Section A  "
	f.descVal = " morning lab "
	closed := f.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, closed)
	assert.True(t, f.IsSubmitted())
	assert.Equal(t, "Section A", f.Name())
	assert.Equal(t, "morning lab", f.Description())
}
