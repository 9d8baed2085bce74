package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyEnter
	KeyQuit
	KeyHelp

	KeyTab        // Tab cycles the focus ring between panels.
	KeySubmitName // SubmitName submits the active overlay form.

	KeyAddPerson
	KeyEditPerson
	KeyRemovePerson
	KeyCopyEmail

	KeyNewGroup
	KeyRenameGroup
	KeyDeleteGroup
	KeyAssignGroup // opens the group picker for the selected person

	KeyClearPhoto
	KeySync

	KeySearch
	KeyFilterAll
	KeyFilterMissing
	KeyCycleSort

	KeyFocusSidebar
	KeyFocusList
	KeyToggleSidebar
)

// GlobalKeyStringsMap maps raw key strings to key names.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"enter":  KeyEnter,
	"o":      KeyEnter,
	"q":      KeyQuit,
	"?":      KeyHelp,
	"tab":    KeyTab,
	"a":      KeyAddPerson,
	"e":      KeyEditPerson,
	"D":      KeyRemovePerson,
	"y":      KeyCopyEmail,
	"g":      KeyNewGroup,
	"R":      KeyRenameGroup,
	"X":      KeyDeleteGroup,
	"m":      KeyAssignGroup,
	"C":      KeyClearPhoto,
	"S":      KeySync,
	"/":      KeySearch,
	"1":      KeyFilterAll,
	"2":      KeyFilterMissing,
	"3":      KeyCycleSort,
	"s":      KeyFocusSidebar,
	"t":      KeyFocusList,
	"ctrl+s": KeyToggleSidebar,
}

// GlobalKeyBindings maps key names to their bindings, used to render the
// bottom menu help.
var GlobalKeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("↵/o", "open"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus next panel"),
	),
	KeySubmitName: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "submit"),
	),
	KeyAddPerson: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add person"),
	),
	KeyEditPerson: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	KeyRemovePerson: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "remove"),
	),
	KeyCopyEmail: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy email"),
	),
	KeyNewGroup: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "new group"),
	),
	KeyRenameGroup: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rename group"),
	),
	KeyDeleteGroup: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "delete group"),
	),
	KeyAssignGroup: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "groups"),
	),
	KeyClearPhoto: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear photo"),
	),
	KeySync: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "sync photos"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	KeyFilterAll: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "all"),
	),
	KeyFilterMissing: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "missing photo"),
	),
	KeyCycleSort: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "sort"),
	),
	KeyFocusSidebar: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "groups"),
	),
	KeyFocusList: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "people"),
	),
	KeyToggleSidebar: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "toggle sidebar"),
	),
}
