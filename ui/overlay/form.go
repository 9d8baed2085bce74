package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/classkit/rollcall/roster"
)

// PersonFormOverlay is the add/edit person form backed by huh.Form.
type PersonFormOverlay struct {
	form      *huh.Form
	firstVal  string
	lastVal   string
	emailVal  string
	roleVal   string
	title     string
	submitted bool
	canceled  bool
	width     int
}

// NewPersonFormOverlay creates the person form. Pass an existing person to
// pre-fill the fields for editing, or nil for a blank add form.
func NewPersonFormOverlay(title string, width int, person *roster.Person) *PersonFormOverlay {
	f := &PersonFormOverlay{
		title:   title,
		width:   width,
		roleVal: string(roster.RoleStudent),
	}
	if person != nil {
		f.firstVal = person.FirstName
		f.lastVal = person.LastName
		f.emailVal = person.Email
		f.roleVal = string(person.Role)
	}

	formWidth := width - 6
	if formWidth < 34 {
		formWidth = 34
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("first").
				Title("first name").
				Value(&f.firstVal),
			huh.NewInput().
				Key("last").
				Title("last name").
				Value(&f.lastVal),
			huh.NewInput().
				Key("email").
				Title("email (optional)").
				Value(&f.emailVal),
			huh.NewSelect[string]().
				Key("role").
				Title("role").
				Options(
					huh.NewOption("student", string(roster.RoleStudent)),
					huh.NewOption("staff", string(roster.RoleStaff)),
				).
				Value(&f.roleVal),
		),
	).
		WithTheme(ThemeNord()).
		WithWidth(formWidth).
		WithShowHelp(false).
		WithShowErrors(false)

	_ = f.form.Init()

	return f
}

func (f *PersonFormOverlay) updateForm(msg tea.Msg) {
	updated, _ := f.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		f.form = form
	}
}

// HandleKeyPress processes a key and returns true when the overlay should close.
func (f *PersonFormOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		f.canceled = true
		return true

	case tea.KeyEnter:
		if strings.TrimSpace(f.firstVal) == "" && strings.TrimSpace(f.lastVal) == "" {
			return false
		}
		f.submitted = true
		return true

	case tea.KeyTab, tea.KeyDown:
		f.updateForm(huh.NextField())
		return false

	case tea.KeyShiftTab, tea.KeyUp:
		f.updateForm(huh.PrevField())
		return false

	default:
		f.updateForm(msg)
		return false
	}
}

// Render returns the styled overlay string.
func (f *PersonFormOverlay) Render() string {
	w := f.width
	if w < 40 {
		w = 40
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(colorBlue).
		Bold(true).
		MarginBottom(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1)

	content := titleStyle.Render(f.title) + "\n"
	content += f.form.View() + "\n"
	content += hintStyle.Render("tab/↑↓ navigate · enter save · esc cancel")

	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2).
		Width(w)

	return style.Render(content)
}

// FirstName returns the first name field value.
func (f *PersonFormOverlay) FirstName() string {
	return strings.TrimSpace(f.firstVal)
}

// LastName returns the last name field value.
func (f *PersonFormOverlay) LastName() string {
	return strings.TrimSpace(f.lastVal)
}

// Email returns the email field value.
func (f *PersonFormOverlay) Email() string {
	return strings.TrimSpace(f.emailVal)
}

// Role returns the selected role.
func (f *PersonFormOverlay) Role() roster.Role {
	return roster.Role(f.roleVal)
}

// IsSubmitted returns true when the form was submitted.
func (f *PersonFormOverlay) IsSubmitted() bool {
	return f.submitted
}

// GroupFormOverlay is a two-field form for creating groups.
type GroupFormOverlay struct {
	form      *huh.Form
	nameVal   string
	descVal   string
	title     string
	submitted bool
	canceled  bool
	width     int
}

// NewGroupFormOverlay creates a group form with name and description inputs.
func NewGroupFormOverlay(title string, width int) *GroupFormOverlay {
	f := &GroupFormOverlay{
		title: title,
		width: width,
	}

	formWidth := width - 6
	if formWidth < 34 {
		formWidth = 34
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("name").
				Value(&f.nameVal),
			huh.NewInput().
				Key("desc").
				Title("description (optional)").
				Value(&f.descVal),
		),
	).
		WithTheme(ThemeNord()).
		WithWidth(formWidth).
		WithShowHelp(false).
		WithShowErrors(false)

	_ = f.form.Init()

	return f
}

func (f *GroupFormOverlay) updateForm(msg tea.Msg) {
	updated, _ := f.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		f.form = form
	}
}

// HandleKeyPress processes a key and returns true when the overlay should close.
func (f *GroupFormOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		f.canceled = true
		return true

	case tea.KeyEnter:
		if strings.TrimSpace(f.nameVal) == "" {
			return false
		}
		f.submitted = true
		return true

	case tea.KeyTab, tea.KeyDown:
		f.updateForm(huh.NextField())
		return false

	case tea.KeyShiftTab, tea.KeyUp:
		f.updateForm(huh.PrevField())
		return false

	default:
		f.updateForm(msg)
		return false
	}
}

// Render returns the styled overlay string.
func (f *GroupFormOverlay) Render() string {
	w := f.width
	if w < 40 {
		w = 40
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(colorBlue).
		Bold(true).
		MarginBottom(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1)

	content := titleStyle.Render(f.title) + "\n"
	content += f.form.View() + "\n"
	content += hintStyle.Render("tab/↑↓ navigate · enter create")

	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorBlue).
		Padding(1, 2).
		Width(w)

	return style.Render(content)
}

// Name returns the name field value.
func (f *GroupFormOverlay) Name() string {
	return strings.TrimSpace(f.nameVal)
}

// Description returns the description field value.
func (f *GroupFormOverlay) Description() string {
	return strings.TrimSpace(f.descVal)
}

// IsSubmitted returns true when the form was submitted.
func (f *GroupFormOverlay) IsSubmitted() bool {
	return f.submitted
}
