package app

import (
	"github.com/classkit/rollcall/log"
	"github.com/classkit/rollcall/ui"
	"github.com/classkit/rollcall/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent() string
	// mask returns the bit mask for this help text. These are used to track
	// which help screens have been seen in the app state.
	mask() uint32
}

type helpTypeGeneral struct{}

type helpTypeFirstRun struct{}

func (h helpTypeGeneral) toContent() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		ui.GradientText("rollcall", ui.GradientStart, ui.GradientEnd),
		"",
		helpDescStyle.Render("class roster and photo manager. keeps people, groups and"),
		helpDescStyle.Render("photos in sync with the school photo repository."),
		"",
		helpHeaderStyle.Render("people:"),
		helpKeyStyle.Render("a")+helpDescStyle.Render("             - add person"),
		helpKeyStyle.Render("e")+helpDescStyle.Render("             - edit selected person"),
		helpKeyStyle.Render("D")+helpDescStyle.Render("             - remove selected person"),
		helpKeyStyle.Render("↵/o")+helpDescStyle.Render("           - edit notes (markdown)"),
		helpKeyStyle.Render("y")+helpDescStyle.Render("             - copy email to clipboard"),
		helpKeyStyle.Render("m")+helpDescStyle.Render("             - assign groups"),
		"",
		helpHeaderStyle.Render("groups:"),
		helpKeyStyle.Render("g")+helpDescStyle.Render("             - new group"),
		helpKeyStyle.Render("R")+helpDescStyle.Render("             - rename selected group"),
		helpKeyStyle.Render("X")+helpDescStyle.Render("             - delete selected group"),
		"",
		helpHeaderStyle.Render("photos:"),
		helpKeyStyle.Render("S")+helpDescStyle.Render("             - sync photos from the repository"),
		helpKeyStyle.Render("C")+helpDescStyle.Render("             - clear assigned photo"),
		helpKeyStyle.Render("1/2")+helpDescStyle.Render("           - filter: all / missing photo"),
		helpKeyStyle.Render("3")+helpDescStyle.Render("             - cycle sort mode"),
		"",
		helpHeaderStyle.Render("navigation:"),
		helpKeyStyle.Render("s")+helpDescStyle.Render("             - focus sidebar"),
		helpKeyStyle.Render("t")+helpDescStyle.Render("             - focus people list"),
		helpKeyStyle.Render("tab")+helpDescStyle.Render("           - cycle panels"),
		helpKeyStyle.Render("↑↓ / jk")+helpDescStyle.Render("       - move within focused panel"),
		helpKeyStyle.Render("ctrl+s")+helpDescStyle.Render("        - toggle sidebar visibility"),
		helpKeyStyle.Render("/")+helpDescStyle.Render("             - search people"),
		helpKeyStyle.Render("q")+helpDescStyle.Render("             - quit"),
	)
	return content
}

func (h helpTypeFirstRun) toContent() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("welcome to rollcall"),
		"",
		helpDescStyle.Render("your roster is empty. to get going:"),
		"",
		helpKeyStyle.Render("a")+helpDescStyle.Render("  - add your first person"),
		helpKeyStyle.Render("g")+helpDescStyle.Render("  - create a group (e.g. a class)"),
		helpKeyStyle.Render("S")+helpDescStyle.Render("  - pull photos once a repository is configured"),
		"",
		helpDescStyle.Render("press ")+helpKeyStyle.Render("?")+helpDescStyle.Render(" any time for the full key reference."),
	)
	return content
}

func (h helpTypeGeneral) mask() uint32 {
	return 1
}

func (h helpTypeFirstRun) mask() uint32 {
	return 1 << 1
}

var (
	helpTitleStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(ui.ColorBlue)
	helpHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	helpKeyStyle    = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorYellow)
	helpDescStyle   = lipgloss.NewStyle().Foreground(ui.ColorText)
)

// showHelpScreen displays the help screen overlay if it hasn't been shown before
func (m *home) showHelpScreen(helpType helpText, onDismiss func()) (tea.Model, tea.Cmd) {
	// The general help screen always shows; one-shot screens only show until
	// their bit is recorded in the seen bitmask.
	var alwaysShow bool
	switch helpType.(type) {
	case helpTypeGeneral:
		alwaysShow = true
	}

	flag := helpType.mask()

	if alwaysShow || (m.appState.GetHelpScreensSeen()&flag) == 0 {
		if err := m.appState.SetHelpScreensSeen(m.appState.GetHelpScreensSeen() | flag); err != nil {
			log.WarningLog.Printf("Failed to save help screen state: %v", err)
		}

		content := helpType.toContent()

		m.textOverlay = overlay.NewTextOverlay(content)
		m.textOverlay.OnDismiss = onDismiss
		m.state = stateHelp
		return m, nil
	}

	// Skip displaying the help screen
	if onDismiss != nil {
		onDismiss()
	}
	return m, nil
}

// handleHelpState handles key events when in help state
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key press will close the help overlay
	shouldClose := m.textOverlay.HandleKeyPress(msg)
	if shouldClose {
		m.textOverlay = nil
		m.state = stateDefault
		m.menu.SetState(ui.StateDefault)
	}

	return m, nil
}
