package app

import (
	"time"

	"github.com/classkit/rollcall/keys"
	"github.com/classkit/rollcall/log"
	"github.com/classkit/rollcall/roster"
	"github.com/classkit/rollcall/store"
	"github.com/classkit/rollcall/ui"
	"github.com/classkit/rollcall/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *home) handleMenuHighlighting(msg tea.KeyMsg) (cmd tea.Cmd, returnEarly bool) {
	// Handle menu highlighting when you press a button. We intercept it here
	// and immediately return to update the ui while re-sending the keypress.
	// Then, on the next call to this, we actually handle the keypress.
	if m.keySent {
		m.keySent = false
		return nil, false
	}
	if m.state != stateDefault {
		return nil, false
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil, false
	}

	m.keySent = true
	return tea.Batch(
		func() tea.Msg { return msg },
		m.keydownCallback(name)), true
}

// handleMouse processes mouse events for click and scroll interactions.
func (m *home) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	// Scroll wheel always scrolls the detail pane.
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.detail.ScrollUp()
		case tea.MouseButtonWheelDown:
			m.detail.ScrollDown()
		}
		return m, nil
	}

	if m.state != stateDefault || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	x, y := msg.X, msg.Y

	// Account for the status bar (1 row) and PaddingTop(1) on columns.
	contentY := y - 2

	sidebarWidth := m.sidebarWidth
	if m.store.State().UI.SidebarHidden {
		sidebarWidth = 0
	}

	if x < sidebarWidth {
		// Click in sidebar
		m.setFocus(ui.MenuSlotSidebar)

		// Search bar occupies rows 0-2 of the sidebar content.
		if contentY >= 0 && contentY <= 2 {
			return m.enterSearch()
		}

		// Sidebar items start after search bar (3 rows) + blank line.
		itemRow := contentY - 4
		if itemRow >= 0 {
			m.sidebar.ClickItem(itemRow)
			m.applySidebarSelection()
		}
		return m, nil
	} else if x < sidebarWidth+m.listWidth {
		// Click in people list (center column)
		m.setFocus(ui.MenuSlotList)

		localX := x - sidebarWidth
		if filter, ok := m.list.HandleTabClick(localX, contentY); ok {
			m.store.Apply(store.Users(func(u *store.UsersSlice) {
				u.Filter = filter
			}))
			return m, nil
		}

		// List items start after the border row + tabs + blank lines.
		listY := contentY - 4
		if listY >= 0 {
			itemIdx := m.list.GetItemAtRow(listY)
			if itemIdx >= 0 {
				m.list.Select(itemIdx)
				return m, m.selectPerson(m.list.SelectedID())
			}
		}
		return m, nil
	}

	// Click in detail pane (right column)
	m.setFocus(ui.MenuSlotDetail)
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	cmd, returnEarly := m.handleMenuHighlighting(msg)
	if returnEarly {
		return m, cmd
	}

	if m.state == stateHelp {
		return m.handleHelpState(msg)
	}

	if m.state == stateConfirm {
		if m.confirmationOverlay == nil {
			m.state = stateDefault
			return m, nil
		}
		shouldClose := m.confirmationOverlay.HandleKeyPress(msg)
		if shouldClose {
			confirmed := m.confirmationOverlay.Confirmed
			action := m.pendingConfirmAction
			m.confirmationOverlay = nil
			m.pendingConfirmAction = nil
			m.state = stateDefault
			if confirmed && action != nil {
				return m, action
			}
			return m, nil
		}
		return m, nil
	}

	if m.state == statePersonForm {
		if m.personForm == nil {
			m.state = stateDefault
			return m, nil
		}
		if m.personForm.HandleKeyPress(msg) {
			return m.submitPersonForm()
		}
		return m, nil
	}

	if m.state == stateGroupForm {
		if m.groupForm == nil {
			m.state = stateDefault
			return m, nil
		}
		if m.groupForm.HandleKeyPress(msg) {
			return m.submitGroupForm()
		}
		return m, nil
	}

	if m.state == stateRenameGroup {
		if m.textInputOverlay == nil {
			m.state = stateDefault
			return m, nil
		}
		if m.textInputOverlay.HandleKeyPress(msg) {
			return m.submitRenameGroup()
		}
		return m, nil
	}

	if m.state == stateEditNotes {
		if m.textInputOverlay == nil {
			m.state = stateDefault
			return m, nil
		}
		if m.textInputOverlay.HandleKeyPress(msg) {
			return m.submitNotes()
		}
		return m, nil
	}

	if m.state == stateAssignGroups {
		if m.pickerOverlay == nil {
			m.state = stateDefault
			return m, nil
		}
		if m.pickerOverlay.HandleKeyPress(msg) {
			return m.submitAssignGroups()
		}
		return m, nil
	}

	if m.state == stateSearch {
		return m.handleSearchState(msg)
	}

	// Default state: dispatch through the global keymap.
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyHelp:
		return m.showHelpScreen(helpTypeGeneral{}, nil)
	case keys.KeyUp:
		return m.navigate(-1)
	case keys.KeyDown:
		return m.navigate(1)
	case keys.KeyTab:
		next := (m.focusedPanelFromState() + 1) % 3
		if next == ui.MenuSlotSidebar && m.store.State().UI.SidebarHidden {
			next = ui.MenuSlotList
		}
		m.setFocus(next)
		return m, nil
	case keys.KeyFocusSidebar:
		if !m.store.State().UI.SidebarHidden {
			m.setFocus(ui.MenuSlotSidebar)
		}
		return m, nil
	case keys.KeyFocusList:
		m.setFocus(ui.MenuSlotList)
		return m, nil
	case keys.KeyToggleSidebar:
		m.store.Apply(store.UI(func(u *store.UISlice) {
			u.SidebarHidden = !u.SidebarHidden
		}))
		if m.store.State().UI.SidebarHidden && m.focusedPanelFromState() == ui.MenuSlotSidebar {
			m.setFocus(ui.MenuSlotList)
		}
		return m, tea.WindowSize()
	case keys.KeyEnter:
		if m.focusedPanelFromState() == ui.MenuSlotSidebar {
			m.applySidebarSelection()
			return m, nil
		}
		return m.openEditNotes()
	case keys.KeyAddPerson:
		return m.openAddPerson()
	case keys.KeyEditPerson:
		return m.openEditPerson()
	case keys.KeyRemovePerson:
		return m.confirmRemovePerson()
	case keys.KeyCopyEmail:
		return m.copySelectedEmail()
	case keys.KeyNewGroup:
		return m.openNewGroup()
	case keys.KeyRenameGroup:
		return m.openRenameGroup()
	case keys.KeyDeleteGroup:
		return m.confirmDeleteGroup()
	case keys.KeyAssignGroup:
		return m.openAssignGroups()
	case keys.KeyClearPhoto:
		return m.confirmClearPhoto()
	case keys.KeySync:
		return m.startSync()
	case keys.KeySearch:
		return m.enterSearch()
	case keys.KeyFilterAll:
		m.store.Apply(store.Users(func(u *store.UsersSlice) {
			u.Filter = roster.FilterAll
		}))
		return m, nil
	case keys.KeyFilterMissing:
		m.store.Apply(store.Users(func(u *store.UsersSlice) {
			u.Filter = roster.FilterMissingPhoto
		}))
		return m, nil
	case keys.KeyCycleSort:
		m.store.Apply(store.Users(func(u *store.UsersSlice) {
			u.Sort = (u.Sort + 1) % 3
		}))
		return m, nil
	default:
		return m, nil
	}
}

// focusedPanelFromState reads the focus slot out of the store.
func (m *home) focusedPanelFromState() int {
	return m.store.State().UI.FocusedPanel
}

// navigate moves the selection in whichever panel has focus.
func (m *home) navigate(delta int) (tea.Model, tea.Cmd) {
	switch m.focusedPanelFromState() {
	case ui.MenuSlotSidebar:
		if delta < 0 {
			m.sidebar.Up()
		} else {
			m.sidebar.Down()
		}
		m.applySidebarSelection()
		return m, nil
	case ui.MenuSlotList:
		if delta < 0 {
			m.list.Up()
		} else {
			m.list.Down()
		}
		return m, m.selectPerson(m.list.SelectedID())
	default:
		if delta < 0 {
			m.detail.ScrollUp()
		} else {
			m.detail.ScrollDown()
		}
		return m, nil
	}
}

// applySidebarSelection pushes the sidebar's selected group into the store.
func (m *home) applySidebarSelection() {
	groupID := m.sidebar.GetSelectedGroupID()
	m.store.Apply(store.Groups(func(g *store.GroupsSlice) {
		g.SelectedID = groupID
	}))
}

// enterSearch activates the sidebar search bar and search input mode.
func (m *home) enterSearch() (tea.Model, tea.Cmd) {
	m.sidebar.ActivateSearch()
	m.state = stateSearch
	m.menu.SetState(ui.StateSearch)
	m.store.Apply(store.Users(func(u *store.UsersSlice) {
		u.Query = ""
	}))
	return m, nil
}

// handleSearchState routes keys while the search bar is active. The query is
// applied live so the list and sidebar match counts follow each keystroke.
func (m *home) handleSearchState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	applyQuery := func(query string) {
		m.sidebar.SetSearchQuery(query)
		m.store.Apply(store.Users(func(u *store.UsersSlice) {
			u.Query = query
		}))
	}

	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.sidebar.DeactivateSearch()
		m.state = stateDefault
		m.menu.SetState(ui.StateDefault)
		applyQuery("")
		return m, nil
	case tea.KeyEnter:
		// Keep the query as a list filter; the badge in the list header
		// shows it until cleared.
		m.sidebar.DeactivateSearch()
		m.state = stateDefault
		m.menu.SetState(ui.StateDefault)
		return m, nil
	case tea.KeyBackspace:
		query := m.sidebar.GetSearchQuery()
		if len(query) > 0 {
			runes := []rune(query)
			applyQuery(string(runes[:len(runes)-1]))
		}
		return m, nil
	case tea.KeyRunes:
		applyQuery(m.sidebar.GetSearchQuery() + string(msg.Runes))
		return m, nil
	case tea.KeySpace:
		applyQuery(m.sidebar.GetSearchQuery() + " ")
		return m, nil
	default:
		return m, nil
	}
}

func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.toastManager.Error(err.Error())
	return m.toastTickCmd()
}

// confirmAction shows a confirmation modal and stores the action to execute on
// confirm. The action is a tea.Cmd returned from Update() so it runs
// asynchronously instead of blocking the UI.
func (m *home) confirmAction(message string, action tea.Cmd) tea.Cmd {
	m.state = stateConfirm
	m.pendingConfirmAction = action

	m.confirmationOverlay = overlay.NewConfirmationOverlay(message)
	m.confirmationOverlay.SetWidth(50)

	return nil
}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}
