package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/classkit/rollcall/config"
	"github.com/classkit/rollcall/config/auditlog"
	"github.com/classkit/rollcall/internal/sentry"
	"github.com/classkit/rollcall/log"
	"github.com/classkit/rollcall/repository"
	"github.com/classkit/rollcall/roster"
	"github.com/classkit/rollcall/store"
	"github.com/classkit/rollcall/ui"
	"github.com/classkit/rollcall/ui/overlay"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, projectName string, version string, debug bool) error {
	// Set the terminal's default background to the theme base color so every
	// ANSI reset and unstyled cell falls back to #2e3440 instead of black.
	restore := ui.SetTerminalBackground(string(ui.ColorBase))
	defer restore()

	p := tea.NewProgram(
		newHome(ctx, projectName, version, debug),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when a help screen is displayed.
	stateHelp
	// stateConfirm is the state when a confirmation modal is displayed.
	stateConfirm
	// stateSearch is the state when the user is typing a search query.
	stateSearch
	// statePersonForm is the state when the add/edit person form is open.
	statePersonForm
	// stateGroupForm is the state when the new-group form is open.
	stateGroupForm
	// stateRenameGroup is the state when the user is renaming a group.
	stateRenameGroup
	// stateAssignGroups is the state when the group picker is open.
	stateAssignGroups
	// stateEditNotes is the state when the notes editor overlay is open.
	stateEditNotes
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig stores persistent application configuration
	appConfig *config.Config
	// appState stores persistent application state like seen help screens
	appState config.AppState
	// storage persists the roster through the app state layer
	storage *roster.Storage
	// audit records roster mutations for the audit trail
	audit auditlog.Logger
	// photoDir is the resolved photo directory
	photoDir string

	// -- State --

	// store holds the canonical application state. Every mutation goes
	// through store.Apply; the UI components below are refreshed by
	// subscribers registered in wireStore.
	store *store.Store

	// state is the current discrete state of the application
	state state
	// keySent is used to manage underlining menu items
	keySent bool
	// editPersonID is the person being edited while the form is open.
	// Empty means the form is adding a new person.
	editPersonID string
	// renameGroupID is the group being renamed while the overlay is open
	renameGroupID string

	// -- UI Components --

	// statusBar displays the top project/coverage/sync summary
	statusBar *ui.StatusBar
	// sidebar displays the group sidebar
	sidebar *ui.Sidebar
	// list displays the filtered people
	list *ui.List
	// detail displays the selected person
	detail *ui.DetailPane
	// menu displays the bottom menu
	menu *ui.Menu
	// toastManager manages toast notifications
	toastManager *overlay.ToastManager
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model

	// personForm is the add/edit person overlay
	personForm *overlay.PersonFormOverlay
	// groupForm is the new-group overlay
	groupForm *overlay.GroupFormOverlay
	// textInputOverlay handles single-field text input with state
	textInputOverlay *overlay.TextInputOverlay
	// textOverlay displays text information
	textOverlay *overlay.TextOverlay
	// confirmationOverlay displays confirmation modals
	confirmationOverlay *overlay.ConfirmationOverlay
	// pickerOverlay is the group picker for membership assignment
	pickerOverlay *overlay.PickerOverlay
	// pendingConfirmAction stores the tea.Cmd to run when confirmed
	pendingConfirmAction tea.Cmd

	// Layout dimensions for mouse hit-testing
	sidebarWidth  int
	listWidth     int
	detailWidth   int
	contentHeight int

	// Terminal dimensions for the global background fill.
	termWidth  int
	termHeight int

	// -- Sync --

	// syncMu guards syncProgress, written by the sync goroutine and read
	// by the sync ticker.
	syncMu       sync.Mutex
	syncProgress repository.Progress
	syncActive   bool
	// pendingSyncToastID is the loading toast shown while a sync runs
	pendingSyncToastID string

	// cachedNotesID is the person whose notes were last rendered.
	cachedNotesID string
	// cachedNotesRendered is the glamour-rendered markdown for cachedNotesID.
	cachedNotesRendered string
}

func newHome(ctx context.Context, projectName, version string, debug bool) *home {
	appConfig := config.LoadConfig()
	appState := config.LoadState()

	storage, err := roster.NewStorage(appState)
	if err != nil {
		fmt.Printf("Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	photoDir, err := appConfig.ResolvePhotoDir()
	if err != nil {
		fmt.Printf("Failed to resolve photo directory: %v\n", err)
		os.Exit(1)
	}

	audit := openAuditLogger()

	h := &home{
		ctx:       ctx,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		appConfig: appConfig,
		appState:  appState,
		storage:   storage,
		audit:     audit,
		photoDir:  photoDir,
		state:     stateDefault,
		statusBar: ui.NewStatusBar(),
		sidebar:   ui.NewSidebar(),
		list:      ui.NewList(),
		detail:    ui.NewDetailPane(),
		menu:      ui.NewMenu(),
	}
	h.toastManager = overlay.NewToastManager(&h.spinner)
	h.toastManager.SetAnimate(appConfig.AnimateUI)

	loaded, err := storage.Load()
	if err != nil {
		fmt.Printf("Failed to load roster: %v\n", err)
		os.Exit(1)
	}
	sentry.SetContext(projectName, len(loaded.People))

	h.store = store.NewWithState(initialState(loaded, projectName, version, appConfig, debug))
	h.store.SetDebug(debug)
	h.wireStore()

	// Prime every component from the loaded state.
	h.store.Notify(store.Keys...)
	h.setFocus(0)

	appState.AddRecentProject(projectName)

	if len(loaded.People) == 0 {
		h.showHelpScreen(helpTypeFirstRun{}, nil)
	}

	return h
}

// initialState builds the store state from the loaded roster and config.
func initialState(r *roster.Roster, projectName, version string, cfg *config.Config, debug bool) store.State {
	s := store.DefaultState()
	s.Project = store.ProjectSlice{
		Name:     projectName,
		Term:     currentTerm(time.Now()),
		LoadedAt: time.Now(),
	}
	s.Users.All = r.People
	s.Groups.All = r.Groups
	s.Images.Coverage = r.PhotoCoverage()
	s.Images.ByPerson = photosByPerson(r.People)
	s.Camera = store.CameraSlice{
		Available:     false,
		LastCaptureAt: lastCameraCapture(r.People),
	}
	if dev, ok := detectCamera(); ok {
		s.Camera.Available = true
		s.Camera.Device = dev
	}
	s.App = store.AppSlice{
		Version:       version,
		Debug:         debug,
		Notifications: cfg.AreNotificationsEnabled(),
	}
	return s
}

// currentTerm derives the school-year label from a date. Years starting in
// August belong to the term of that calendar year.
func currentTerm(now time.Time) string {
	year := now.Year()
	if now.Month() < time.August {
		year--
	}
	return fmt.Sprintf("%d/%02d", year, (year+1)%100)
}

func photosByPerson(people []roster.Person) map[string]roster.PhotoRef {
	byPerson := make(map[string]roster.PhotoRef)
	for _, p := range people {
		if p.Photo != nil {
			byPerson[p.ID] = *p.Photo
		}
	}
	return byPerson
}

// lastCameraCapture returns the newest AssignedAt among camera-sourced photos.
func lastCameraCapture(people []roster.Person) time.Time {
	var last time.Time
	for _, p := range people {
		if p.Photo != nil && p.Photo.Source == roster.SourceCamera && p.Photo.AssignedAt.After(last) {
			last = p.Photo.AssignedAt
		}
	}
	return last
}

// detectCamera probes for a capture device. Capture itself is out of scope;
// only availability is reported.
func detectCamera() (string, bool) {
	for _, dev := range []string{"/dev/video0", "/dev/video1"} {
		if _, err := os.Stat(dev); err == nil {
			return dev, true
		}
	}
	return "", false
}

// openAuditLogger opens the sqlite audit log, falling back to a no-op logger
// when the database cannot be opened.
func openAuditLogger() auditlog.Logger {
	dir, err := config.GetConfigDir()
	if err != nil {
		log.WarningLog.Printf("audit log disabled: %v", err)
		return auditlog.NopLogger()
	}
	logger, err := auditlog.NewSQLiteLogger(fmt.Sprintf("%s/audit.db", dir))
	if err != nil {
		log.WarningLog.Printf("audit log disabled: %v", err)
		return auditlog.NopLogger()
	}
	return logger
}

// wireStore registers the store subscribers that push state into the UI
// components. Subscribers run synchronously inside Apply/Notify on the
// update loop, so they can touch the components directly.
func (m *home) wireStore() {
	subscribe := func(fn store.Subscriber, keys ...store.Key) {
		if _, err := m.store.Subscribe(fn, keys...); err != nil {
			log.ErrorLog.Printf("store subscription failed: %v", err)
		}
	}

	subscribe(func(_ store.Slice, s store.State) { m.refreshList(s) },
		store.KeyUsers, store.KeyGroups, store.KeyImages)
	subscribe(func(_ store.Slice, s store.State) { m.refreshSidebar(s) },
		store.KeyGroups, store.KeyUsers, store.KeyImages)
	subscribe(func(_ store.Slice, s store.State) { m.refreshDetail(s) },
		store.KeyUsers, store.KeyGroups, store.KeyImages)
	subscribe(func(_ store.Slice, s store.State) { m.refreshStatusBar(s) },
		store.KeyProject, store.KeyUsers, store.KeyGroups, store.KeyImages,
		store.KeyRepository, store.KeyCamera)
	subscribe(func(_ store.Slice, s store.State) { m.refreshFocus(s) },
		store.KeyUI)
}

// visiblePeople applies the group, status filter, query and sort from state.
func visiblePeople(s store.State) []roster.Person {
	people := roster.FilterPeople(s.Users.All, s.Groups.SelectedID, s.Users.Filter, s.Users.Query)
	roster.SortPeople(people, s.Users.Sort)
	return people
}

func (m *home) refreshList(s store.State) {
	m.list.SetPeople(visiblePeople(s), s.Users.SelectedID)
	m.list.SetFilterContext(s.Users.Filter, s.Users.Sort, s.Users.Query)
	m.menu.SetHasSelection(m.list.Selected() != nil)
}

func (m *home) refreshSidebar(s store.State) {
	counts := make(map[string]int, len(s.Groups.All))
	for _, g := range s.Groups.All {
		for _, p := range s.Users.All {
			if p.InGroup(g.ID) {
				counts[g.ID]++
			}
		}
	}
	m.sidebar.SetGroups(s.Groups.All, counts, len(s.Users.All))
	m.sidebar.SetCoverage(s.Images.Coverage)
	if !m.sidebar.SelectByID(s.Groups.SelectedID) && s.Groups.SelectedID == "" {
		m.sidebar.SelectFirst()
	}

	if s.Users.Query != "" {
		matches := make(map[string]int, len(s.Groups.All))
		total := 0
		for _, p := range s.Users.All {
			if !p.Matches(s.Users.Query) {
				continue
			}
			total++
			for _, gid := range p.GroupIDs {
				matches[gid]++
			}
		}
		m.sidebar.UpdateMatchCounts(matches, total)
	}
}

func (m *home) refreshStatusBar(s store.State) {
	m.statusBar.SetData(ui.StatusBarData{
		ProjectName: s.Project.Name,
		Term:        s.Project.Term,
		Dirty:       s.Project.Dirty,
		People:      len(s.Users.All),
		Groups:      len(s.Groups.All),
		Coverage:    s.Images.Coverage,
		SyncStatus:  s.Repository.Status,
		SyncDone:    s.Repository.Done,
		SyncTotal:   s.Repository.Queued,
		CameraReady: s.Camera.Available,
		LastCapture: formatCaptureTime(s.Camera.LastCaptureAt),
	})
}

func formatCaptureTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func (m *home) refreshFocus(s store.State) {
	m.sidebar.SetFocused(s.UI.FocusedPanel == ui.MenuSlotSidebar)
	m.list.SetFocused(s.UI.FocusedPanel == ui.MenuSlotList)
	m.menu.SetFocusSlot(s.UI.FocusedPanel)
}

// setFocus moves keyboard focus to the given panel through the store.
func (m *home) setFocus(panel int) {
	m.store.Apply(store.UI(func(u *store.UISlice) {
		u.FocusedPanel = panel
	}))
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	// Three-column layout: sidebar (22%), people list (36%), detail (rest)
	var sidebarWidth int
	sidebarHidden := m.store.State().UI.SidebarHidden
	if sidebarHidden {
		sidebarWidth = 0
	} else {
		sidebarWidth = int(float32(msg.Width) * 0.22)
		if sidebarWidth < 24 {
			sidebarWidth = 24
		}
	}
	listWidth := int(float32(msg.Width) * 0.36)
	detailWidth := msg.Width - sidebarWidth - listWidth

	// Status bar on top, keybind rail at the bottom.
	barHeight := 2
	if msg.Height < 4 {
		barHeight = 0
	}
	contentHeight := msg.Height - barHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.termWidth = msg.Width
	m.termHeight = msg.Height
	m.toastManager.SetSize(msg.Width, msg.Height)

	m.statusBar.SetSize(msg.Width)
	m.sidebar.SetSize(sidebarWidth, contentHeight)
	m.list.SetSize(listWidth, contentHeight)
	m.detail.SetSize(detailWidth, contentHeight)
	m.menu.SetSize(msg.Width, 1)

	// Store for mouse hit-testing
	m.sidebarWidth = sidebarWidth
	m.listWidth = listWidth
	m.detailWidth = detailWidth
	m.contentHeight = contentHeight

	if m.textInputOverlay != nil {
		m.textInputOverlay.SetSize(int(float32(msg.Width)*0.6), int(float32(msg.Height)*0.4))
	}
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(int(float32(msg.Width) * 0.6))
	}
}

func (m *home) Init() tea.Cmd {
	// Upon starting, we want to start the spinner. Whenever we get a
	// spinner.TickMsg, we update the spinner, which sends a new spinner.TickMsg.
	return tea.Batch(
		m.spinner.Tick,
		m.toastTickCmd(),
		m.syncReminderCmd(),
	)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overlay.ToastTickMsg:
		m.toastManager.Tick()
		if m.toastManager.HasActiveToasts() {
			return m, m.toastTickCmd()
		}
		return m, nil
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case syncTickMsg:
		return m.handleSyncTick()
	case syncReminderMsg:
		return m.handleSyncReminder()
	case syncDoneMsg:
		return m.handleSyncDone(msg)
	case removePersonMsg:
		return m.removePerson(msg)
	case deleteGroupMsg:
		return m.deleteGroup(msg)
	case clearPhotoMsg:
		return m.clearPhoto(msg)
	case notesRenderedMsg:
		if msg.err != nil {
			log.WarningLog.Printf("notes render failed: %v", msg.err)
			return m, nil
		}
		m.cachedNotesID = msg.personID
		m.cachedNotesRendered = msg.rendered
		m.refreshDetail(m.store.State())
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		// Handle errors from confirmation actions
		return m, m.handleError(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	if err := m.saveRoster(m.currentRoster()); err != nil {
		return m, m.handleError(err)
	}
	if err := m.audit.Close(); err != nil {
		log.WarningLog.Printf("could not close audit log: %v", err)
	}
	return m, tea.Quit
}

func (m *home) View() string {
	sidebarHidden := m.store.State().UI.SidebarHidden

	colStyle := lipgloss.NewStyle().PaddingTop(1).Height(m.contentHeight)
	sidebarView := colStyle.Render(m.sidebar.String())
	listView := colStyle.Render(m.list.String())
	detailView := colStyle.Render(m.detail.String())

	var columns string
	if sidebarHidden {
		columns = lipgloss.JoinHorizontal(lipgloss.Top, listView, detailView)
	} else {
		columns = lipgloss.JoinHorizontal(lipgloss.Top, sidebarView, listView, detailView)
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.statusBar.String(),
		columns,
		m.menu.String(),
	)

	var result string
	switch {
	case m.state == statePersonForm && m.personForm != nil:
		result = overlay.PlaceOverlay(0, 0, m.personForm.Render(), mainView, true)
	case m.state == stateGroupForm && m.groupForm != nil:
		result = overlay.PlaceOverlay(0, 0, m.groupForm.Render(), mainView, true)
	case m.state == stateRenameGroup && m.textInputOverlay != nil:
		result = overlay.PlaceOverlay(0, 0, m.textInputOverlay.Render(), mainView, true)
	case m.state == stateEditNotes && m.textInputOverlay != nil:
		result = overlay.PlaceOverlay(0, 0, m.textInputOverlay.Render(), mainView, true)
	case m.state == stateAssignGroups && m.pickerOverlay != nil:
		result = overlay.PlaceOverlay(0, 0, m.pickerOverlay.Render(), mainView, true)
	case m.state == stateHelp:
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
		}
		result = overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true)
	case m.state == stateConfirm:
		if m.confirmationOverlay == nil {
			log.ErrorLog.Printf("confirmation overlay is nil")
		}
		result = overlay.PlaceOverlay(0, 0, m.confirmationOverlay.Render(), mainView, true)
	default:
		result = mainView
	}

	if toastView := m.toastManager.View(); toastView != "" {
		x, y := m.toastManager.GetPosition()
		result = overlay.PlaceOverlay(x, y, toastView, result, false)
	}

	// Height-fill so bubbletea's alt-screen renderer has enough lines.
	// OSC 11 handles the actual background color; this just pads vertically.
	return ui.FillBackground(result, m.termWidth, m.termHeight, ui.ColorBase)
}

// keyupMsg clears the menu keydown underline.
type keyupMsg struct{}

// syncTickMsg polls sync progress into the store while a sync runs.
type syncTickMsg struct{}

// syncReminderMsg fires on the configured sync interval to nudge a stale
// roster toward a fresh photo sync.
type syncReminderMsg struct{}

// syncDoneMsg is sent when the async photo sync completes.
type syncDoneMsg struct {
	result *repository.Result
	err    error
}

// notesRenderedMsg delivers the async glamour render result back to the
// Update loop.
type notesRenderedMsg struct {
	personID string
	rendered string
	err      error
}

func (m *home) toastTickCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(50 * time.Millisecond)
		return overlay.ToastTickMsg{}
	}
}

func (m *home) syncTickCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(100 * time.Millisecond)
		return syncTickMsg{}
	}
}

func (m *home) syncReminderCmd() tea.Cmd {
	interval := time.Duration(m.appConfig.SyncIntervalMinutes) * time.Minute
	if interval <= 0 {
		return nil
	}
	return func() tea.Msg {
		time.Sleep(interval)
		return syncReminderMsg{}
	}
}
