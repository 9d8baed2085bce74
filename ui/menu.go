package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/classkit/rollcall/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(ColorSubtle)

var descStyle = lipgloss.NewStyle().Foreground(ColorMuted)

var sepStyle = lipgloss.NewStyle().Foreground(ColorOverlay)

var actionGroupStyle = lipgloss.NewStyle().Foreground(ColorOrange)

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(ColorCyan)

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateDefault MenuState = iota
	StateEmpty
	StateOverlay
	StateSearch
)

type Menu struct {
	options       []keys.KeyName
	height, width int
	state         MenuState
	hasSelection  bool
	focusSlot     int // which pane is focused (-1 = unknown)

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName

	// systemGroupSize is the number of items in the trailing system group
	// (used for separator placement).
	systemGroupSize int
}

// FocusSlot constants mirrored from the app package to avoid an import cycle.
const (
	MenuSlotSidebar = 0
	MenuSlotList    = 1
	MenuSlotDetail  = 2
)

var emptyMenuOptions = []keys.KeyName{keys.KeyAddPerson, keys.KeyNewGroup, keys.KeySync, keys.KeyHelp, keys.KeyQuit}
var emptySystemGroupSize = 2
var overlayMenuOptions = []keys.KeyName{keys.KeySubmitName}
var searchMenuOptions = []keys.KeyName{keys.KeySubmitName}

func NewMenu() *Menu {
	return &Menu{
		options: emptyMenuOptions,
		state:   StateEmpty,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	m.updateOptions()
}

// SetHasSelection updates whether a person is selected and refreshes options.
func (m *Menu) SetHasSelection(hasSelection bool) {
	m.hasSelection = hasSelection
	// Only change the state if we're not in a special state.
	if m.state != StateOverlay && m.state != StateSearch {
		if m.hasSelection {
			m.state = StateDefault
		} else {
			m.state = StateEmpty
		}
	}
	m.updateOptions()
}

// SetFocusSlot updates which pane is focused so the menu can show
// context-sensitive keybinds.
func (m *Menu) SetFocusSlot(slot int) {
	m.focusSlot = slot
	m.updateOptions()
}

// updateOptions updates the menu options based on current state and focus
func (m *Menu) updateOptions() {
	switch m.state {
	case StateEmpty:
		m.options = emptyMenuOptions
		m.systemGroupSize = emptySystemGroupSize
	case StateDefault:
		if m.focusSlot == MenuSlotSidebar {
			m.addGroupOptions()
		} else {
			m.addPersonOptions()
		}
	case StateOverlay:
		m.options = overlayMenuOptions
		m.systemGroupSize = 0
	case StateSearch:
		m.options = searchMenuOptions
		m.systemGroupSize = 0
	}
}

func (m *Menu) addGroupOptions() {
	options := []keys.KeyName{keys.KeyNewGroup, keys.KeyRenameGroup, keys.KeyDeleteGroup}
	actionGroup := []keys.KeyName{keys.KeyEnter}
	systemGroup := []keys.KeyName{keys.KeySearch, keys.KeyTab, keys.KeyHelp, keys.KeyQuit}

	options = append(options, actionGroup...)
	options = append(options, systemGroup...)
	m.options = options
	m.systemGroupSize = len(systemGroup)
}

func (m *Menu) addPersonOptions() {
	// Roster management group
	options := []keys.KeyName{keys.KeyAddPerson, keys.KeyRemovePerson}

	// Action group
	actionGroup := []keys.KeyName{keys.KeyEditPerson, keys.KeyAssignGroup, keys.KeyCopyEmail, keys.KeySync}

	// System group
	systemGroup := []keys.KeyName{keys.KeySearch, keys.KeyTab, keys.KeyHelp, keys.KeyQuit}

	options = append(options, actionGroup...)
	options = append(options, systemGroup...)

	m.options = options
	m.systemGroupSize = len(systemGroup)
}

// SetSize sets the width of the window. The menu will be centered horizontally
// within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	// Group boundaries: roster management (2 items), action group (variable),
	// system group (at the end).
	sysSize := m.systemGroupSize
	actionEnd := len(m.options) - sysSize

	var groups []struct {
		start int
		end   int
	}
	if m.state == StateEmpty || m.state == StateOverlay || m.state == StateSearch {
		// No group separators; all items are one flat group.
		groups = []struct {
			start int
			end   int
		}{
			{0, len(m.options)},
		}
	} else {
		groups = []struct {
			start int
			end   int
		}{
			{0, 2},
			{2, actionEnd},
			{actionEnd, len(m.options)},
		}
	}

	for i, k := range m.options {
		binding := keys.GlobalKeyBindings[k]
		help := binding.Help()
		helpKey := help.Key
		helpDesc := help.Desc

		var (
			localActionStyle = actionGroupStyle
			localKeyStyle    = keyStyle
			localDescStyle   = descStyle
		)
		if m.keyDown == k {
			localActionStyle = localActionStyle.Underline(true)
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		var inActionGroup bool
		switch m.state {
		case StateEmpty:
			inActionGroup = i < actionEnd
		default:
			inActionGroup = len(groups) == 3 && i >= groups[1].start && i < groups[1].end
		}

		if inActionGroup {
			s.WriteString(localActionStyle.Render(helpKey + " " + helpDesc))
		} else {
			s.WriteString(localKeyStyle.Render(helpKey))
			s.WriteString(descStyle.Render(" "))
			s.WriteString(localDescStyle.Render(helpDesc))
		}

		// Add appropriate separator
		if i != len(m.options)-1 {
			isGroupEnd := false
			for _, group := range groups {
				if i == group.end-1 {
					s.WriteString(sepStyle.Render(verticalSeparator))
					isGroupEnd = true
					break
				}
			}
			if !isGroupEnd {
				s.WriteString(sepStyle.Render(separator))
			}
		}
	}

	centeredMenuText := menuStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
}
