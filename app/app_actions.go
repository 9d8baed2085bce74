package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/classkit/rollcall/config/auditlog"
	"github.com/classkit/rollcall/log"
	"github.com/classkit/rollcall/repository"
	"github.com/classkit/rollcall/roster"
	"github.com/classkit/rollcall/store"
	"github.com/classkit/rollcall/ui"
	"github.com/classkit/rollcall/ui/overlay"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const auditSource = "ui"

// currentRoster materializes a roster aggregate from the store state.
// Mutations run against the aggregate and are applied back via saveRoster.
// The aggregate is a clone; the sync goroutine may still be reading the
// store's backing arrays, so in-place element writes must never touch them.
func (m *home) currentRoster() *roster.Roster {
	s := m.store.State()
	return (&roster.Roster{People: s.Users.All, Groups: s.Groups.All}).Clone()
}

// saveRoster pushes the mutated roster back into the store and persists it.
// The dirty flag stays set when persistence fails so the status bar shows
// unsaved changes.
func (m *home) saveRoster(r *roster.Roster) error {
	coverage := r.PhotoCoverage()
	byPerson := photosByPerson(r.People)

	m.store.Apply(
		store.Users(func(u *store.UsersSlice) { u.All = r.People }),
		store.Groups(func(g *store.GroupsSlice) { g.All = r.Groups }),
		store.Images(func(i *store.ImagesSlice) {
			i.Coverage = coverage
			i.ByPerson = byPerson
		}),
		store.Camera(func(c *store.CameraSlice) { c.LastCaptureAt = lastCameraCapture(r.People) }),
		store.Project(func(p *store.ProjectSlice) { p.Dirty = true }),
	)

	if err := m.storage.Save(r); err != nil {
		return err
	}

	m.store.Apply(store.Project(func(p *store.ProjectSlice) {
		p.Dirty = false
		p.SavedAt = time.Now()
	}))
	return nil
}

func (m *home) emitAudit(kind auditlog.EventKind, message string, opts ...auditlog.EventOption) {
	opts = append(opts, auditlog.WithSource(auditSource))
	m.audit.Emit(auditlog.NewEvent(kind, m.store.State().Project.Name, message, opts...))
}

// -- Selection --

// selectPerson updates the selection through the store and kicks off a notes
// render for the newly selected person.
func (m *home) selectPerson(id string) tea.Cmd {
	m.store.Apply(store.Users(func(u *store.UsersSlice) {
		u.SelectedID = id
	}))
	return m.renderNotesCmd()
}

// refreshDetail pushes the selected person into the detail pane.
func (m *home) refreshDetail(s store.State) {
	selected := s.Users.Selected()
	if selected == nil {
		m.detail.SetData(ui.DetailData{})
		return
	}

	data := ui.DetailData{
		HasPerson: true,
		Name:      selected.FullName(),
		Email:     selected.Email,
		Role:      string(selected.Role),
		Created:   selected.CreatedAt.Format("2006-01-02"),
		Updated:   selected.UpdatedAt.Format("2006-01-02 15:04"),
		RawNotes:  selected.Notes,
	}

	for _, gid := range selected.GroupIDs {
		for _, g := range s.Groups.All {
			if g.ID == gid {
				data.Groups = append(data.Groups, g.Name)
			}
		}
	}

	if photo, ok := s.Images.ByPerson[selected.ID]; ok {
		data.PhotoPath = filepath.Join(m.photoDir, photo.Path)
		data.PhotoSource = string(photo.Source)
		data.PhotoAssigned = photo.AssignedAt.Format("2006-01-02")
		data.ThumbnailPx = m.appConfig.ThumbnailSize
	}

	if m.cachedNotesID == selected.ID {
		data.RenderedNotes = m.cachedNotesRendered
	}

	m.detail.SetData(data)
}

// renderNotesCmd renders the selected person's notes markdown async via a
// tea.Cmd so the UI stays responsive. The result is cached per person.
func (m *home) renderNotesCmd() tea.Cmd {
	selected := m.store.State().Users.Selected()
	if selected == nil || selected.Notes == "" {
		return nil
	}
	if selected.ID == m.cachedNotesID {
		return nil
	}

	personID := selected.ID
	notes := selected.Notes
	wordWrap := m.detailWidth - 4
	if wordWrap < 40 {
		wordWrap = 40
	}

	return func() tea.Msg {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wordWrap),
		)
		if err != nil {
			return notesRenderedMsg{err: fmt.Errorf("could not create markdown renderer: %w", err)}
		}

		rendered, err := renderer.Render(notes)
		if err != nil {
			return notesRenderedMsg{err: fmt.Errorf("could not render notes: %w", err)}
		}

		return notesRenderedMsg{personID: personID, rendered: rendered}
	}
}

// invalidateNotesCache forces a re-render after the notes changed.
func (m *home) invalidateNotesCache() {
	m.cachedNotesID = ""
	m.cachedNotesRendered = ""
}

// -- Person actions --

func (m *home) openAddPerson() (tea.Model, tea.Cmd) {
	m.editPersonID = ""
	m.personForm = overlay.NewPersonFormOverlay("Add person", 52, nil)
	m.state = statePersonForm
	m.menu.SetState(ui.StateOverlay)
	return m, nil
}

func (m *home) openEditPerson() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}
	m.editPersonID = selected.ID
	m.personForm = overlay.NewPersonFormOverlay("Edit person", 52, selected)
	m.state = statePersonForm
	m.menu.SetState(ui.StateOverlay)
	return m, nil
}

// submitPersonForm applies the person form as an add or an update.
func (m *home) submitPersonForm() (tea.Model, tea.Cmd) {
	form := m.personForm
	m.personForm = nil
	m.state = stateDefault
	m.menu.SetState(ui.StateDefault)

	if !form.IsSubmitted() {
		m.editPersonID = ""
		return m, nil
	}

	r := m.currentRoster()

	if m.editPersonID == "" {
		person := roster.NewPerson(form.FirstName(), form.LastName(), form.Role())
		person.Email = form.Email()
		if err := r.AddPerson(person); err != nil {
			return m, m.handleError(err)
		}
		if err := m.saveRoster(r); err != nil {
			return m, m.handleError(err)
		}
		m.emitAudit(auditlog.EventPersonAdded, "added "+person.FullName(),
			auditlog.WithPerson(person.ID, person.FullName()))
		return m, tea.Batch(m.selectPerson(person.ID), m.toast(m.toastManager.Success("person added")))
	}

	person, err := r.FindPerson(m.editPersonID)
	m.editPersonID = ""
	if err != nil {
		return m, m.handleError(err)
	}
	person.FirstName = form.FirstName()
	person.LastName = form.LastName()
	person.Email = form.Email()
	person.Role = form.Role()
	if err := r.UpdatePerson(person); err != nil {
		return m, m.handleError(err)
	}
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}
	m.emitAudit(auditlog.EventPersonUpdated, "updated "+person.FullName(),
		auditlog.WithPerson(person.ID, person.FullName()))
	return m, m.toast(m.toastManager.Success("person updated"))
}

func (m *home) confirmRemovePerson() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}
	id, name := selected.ID, selected.FullName()
	message := fmt.Sprintf("Remove %s from the roster?", name)
	return m, m.confirmAction(message, func() tea.Msg {
		return removePersonMsg{id: id, name: name}
	})
}

// removePersonMsg is sent when a person removal is confirmed.
type removePersonMsg struct {
	id   string
	name string
}

func (m *home) removePerson(msg removePersonMsg) (tea.Model, tea.Cmd) {
	r := m.currentRoster()
	if err := r.RemovePerson(msg.id); err != nil {
		return m, m.handleError(err)
	}
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}
	m.emitAudit(auditlog.EventPersonRemoved, "removed "+msg.name,
		auditlog.WithPerson(msg.id, msg.name))

	// Move selection to whatever the list re-anchored to.
	return m, tea.Batch(m.selectPerson(m.list.SelectedID()),
		m.toast(m.toastManager.Success("person removed")))
}

func (m *home) copySelectedEmail() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}
	if selected.Email == "" {
		return m, m.toast(m.toastManager.Info("no email on file"))
	}
	if err := clipboard.WriteAll(selected.Email); err != nil {
		return m, m.handleError(err)
	}
	return m, m.toast(m.toastManager.Success("email copied"))
}

// -- Notes --

func (m *home) openEditNotes() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}
	m.textInputOverlay = overlay.NewTextInputOverlay("Notes for "+selected.FullName(), selected.Notes)
	m.textInputOverlay.SetMultiline(true)
	m.textInputOverlay.SetSize(int(float32(m.termWidth)*0.6), int(float32(m.termHeight)*0.4))
	m.state = stateEditNotes
	m.menu.SetState(ui.StateOverlay)
	return m, nil
}

func (m *home) submitNotes() (tea.Model, tea.Cmd) {
	notes := m.textInputOverlay.GetValue()
	submitted := m.textInputOverlay.IsSubmitted()
	m.textInputOverlay = nil
	m.state = stateDefault
	m.menu.SetState(ui.StateDefault)

	if !submitted {
		return m, nil
	}
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}

	r := m.currentRoster()
	person, err := r.FindPerson(selected.ID)
	if err != nil {
		return m, m.handleError(err)
	}
	person.Notes = notes
	if err := r.UpdatePerson(person); err != nil {
		return m, m.handleError(err)
	}
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}
	m.invalidateNotesCache()
	m.emitAudit(auditlog.EventPersonUpdated, "edited notes for "+person.FullName(),
		auditlog.WithPerson(person.ID, person.FullName()))
	return m, m.renderNotesCmd()
}

// -- Group actions --

func (m *home) openNewGroup() (tea.Model, tea.Cmd) {
	m.groupForm = overlay.NewGroupFormOverlay("New group", 52)
	m.state = stateGroupForm
	m.menu.SetState(ui.StateOverlay)
	return m, nil
}

func (m *home) submitGroupForm() (tea.Model, tea.Cmd) {
	form := m.groupForm
	m.groupForm = nil
	m.state = stateDefault
	m.menu.SetState(ui.StateDefault)

	if !form.IsSubmitted() {
		return m, nil
	}

	r := m.currentRoster()
	group := roster.NewGroup(form.Name(), form.Description())
	if err := r.AddGroup(group); err != nil {
		return m, m.handleError(err)
	}
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}
	m.emitAudit(auditlog.EventGroupCreated, "created group "+group.Name,
		auditlog.WithGroup(group.Name))
	m.store.Apply(store.Groups(func(g *store.GroupsSlice) {
		g.SelectedID = group.ID
	}))
	return m, m.toast(m.toastManager.Success("group created"))
}

func (m *home) openRenameGroup() (tea.Model, tea.Cmd) {
	groupID := m.sidebar.GetSelectedGroupID()
	if groupID == "" {
		return m, m.toast(m.toastManager.Info("select a group first"))
	}
	group, err := m.currentRoster().FindGroup(groupID)
	if err != nil {
		return m, m.handleError(err)
	}
	m.renameGroupID = groupID
	m.textInputOverlay = overlay.NewTextInputOverlay("Rename group", group.Name)
	m.textInputOverlay.SetSize(50, 5)
	m.state = stateRenameGroup
	m.menu.SetState(ui.StateOverlay)
	return m, nil
}

func (m *home) submitRenameGroup() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.textInputOverlay.GetValue())
	submitted := m.textInputOverlay.IsSubmitted()
	groupID := m.renameGroupID
	m.textInputOverlay = nil
	m.renameGroupID = ""
	m.state = stateDefault
	m.menu.SetState(ui.StateDefault)

	if !submitted || name == "" {
		return m, nil
	}

	r := m.currentRoster()
	if err := r.RenameGroup(groupID, name); err != nil {
		return m, m.handleError(err)
	}
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}
	m.emitAudit(auditlog.EventGroupRenamed, "renamed group to "+name,
		auditlog.WithGroup(name))
	return m, m.toast(m.toastManager.Success("group renamed"))
}

func (m *home) confirmDeleteGroup() (tea.Model, tea.Cmd) {
	groupID := m.sidebar.GetSelectedGroupID()
	if groupID == "" {
		return m, m.toast(m.toastManager.Info("select a group first"))
	}
	group, err := m.currentRoster().FindGroup(groupID)
	if err != nil {
		return m, m.handleError(err)
	}
	size := m.currentRoster().GroupSize(groupID)
	message := fmt.Sprintf("Delete group '%s'? %d member(s) will be unassigned.", group.Name, size)
	return m, m.confirmAction(message, func() tea.Msg {
		return deleteGroupMsg{id: groupID, name: group.Name}
	})
}

// deleteGroupMsg is sent when a group deletion is confirmed.
type deleteGroupMsg struct {
	id   string
	name string
}

func (m *home) deleteGroup(msg deleteGroupMsg) (tea.Model, tea.Cmd) {
	r := m.currentRoster()
	if err := r.RemoveGroup(msg.id); err != nil {
		return m, m.handleError(err)
	}

	// Drop the sidebar selection back to "All people" before the slice
	// subscribers rebuild the views.
	m.store.Apply(store.Groups(func(g *store.GroupsSlice) {
		g.SelectedID = ""
	}))
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}
	m.emitAudit(auditlog.EventGroupDeleted, "deleted group "+msg.name,
		auditlog.WithGroup(msg.name))
	return m, m.toast(m.toastManager.Success("group deleted"))
}

// openAssignGroups shows the membership picker for the selected person.
func (m *home) openAssignGroups() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}
	groups := m.store.State().Groups.All
	items := make([]overlay.PickerItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, overlay.PickerItem{
			ID:      g.ID,
			Label:   g.Name,
			Checked: selected.InGroup(g.ID),
		})
	}
	m.pickerOverlay = overlay.NewPickerOverlay("Groups for "+selected.FullName(), items)
	m.state = stateAssignGroups
	m.menu.SetState(ui.StateOverlay)
	return m, nil
}

func (m *home) submitAssignGroups() (tea.Model, tea.Cmd) {
	picker := m.pickerOverlay
	m.pickerOverlay = nil
	m.state = stateDefault
	m.menu.SetState(ui.StateDefault)

	if !picker.IsSubmitted() {
		return m, nil
	}
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}

	checked := make(map[string]bool)
	for _, id := range picker.CheckedIDs() {
		checked[id] = true
	}

	r := m.currentRoster()
	changed := false
	for _, g := range r.Groups {
		member := selected.InGroup(g.ID)
		want := checked[g.ID]
		if member == want {
			continue
		}
		if err := r.SetMembership(selected.ID, g.ID, want); err != nil {
			return m, m.handleError(err)
		}
		kind := auditlog.EventMemberAdded
		if !want {
			kind = auditlog.EventMemberRemoved
		}
		m.emitAudit(kind, fmt.Sprintf("%s membership in %s", selected.FullName(), g.Name),
			auditlog.WithPerson(selected.ID, selected.FullName()), auditlog.WithGroup(g.Name))
		changed = true
	}

	if !changed {
		return m, nil
	}
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}
	return m, m.toast(m.toastManager.Success("groups updated"))
}

// -- Photo actions --

func (m *home) confirmClearPhoto() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}
	if !selected.HasPhoto() {
		return m, m.toast(m.toastManager.Info("no photo assigned"))
	}
	id, name := selected.ID, selected.FullName()
	message := fmt.Sprintf("Clear the photo for %s?", name)
	return m, m.confirmAction(message, func() tea.Msg {
		return clearPhotoMsg{id: id, name: name}
	})
}

// clearPhotoMsg is sent when a photo clear is confirmed.
type clearPhotoMsg struct {
	id   string
	name string
}

func (m *home) clearPhoto(msg clearPhotoMsg) (tea.Model, tea.Cmd) {
	r := m.currentRoster()
	person, err := r.FindPerson(msg.id)
	if err != nil {
		return m, m.handleError(err)
	}
	person.Photo = nil
	if err := r.UpdatePerson(person); err != nil {
		return m, m.handleError(err)
	}
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}
	m.emitAudit(auditlog.EventPhotoCleared, "cleared photo for "+msg.name,
		auditlog.WithPerson(msg.id, msg.name))
	return m, m.toast(m.toastManager.Success("photo cleared"))
}

// -- Sync --

// startSync kicks off an async photo repository sync. Progress from the sync
// goroutine is buffered behind syncMu and polled into the store by the sync
// ticker, so store mutations stay on the update loop.
func (m *home) startSync() (tea.Model, tea.Cmd) {
	if m.appConfig.RepositoryURL == "" {
		return m, m.toast(m.toastManager.Error("no repository configured (set repository_url)"))
	}
	if m.syncActive {
		return m, m.toast(m.toastManager.Info("sync already running"))
	}

	m.syncActive = true
	m.pendingSyncToastID = m.toastManager.Loading("Syncing photos...")
	m.store.Apply(store.Repository(func(r *store.RepositorySlice) {
		r.Status = repository.StatusSyncing
		r.Queued = 0
		r.Done = 0
		r.Failed = 0
		r.LastError = ""
	}))
	m.emitAudit(auditlog.EventSyncStarted, "photo sync started",
		auditlog.WithSource("sync"))

	client := repository.NewClient(m.appConfig.RepositoryURL, m.appConfig.RepositoryToken)
	syncer := repository.NewSyncer(client, m.photoDir)
	// Snapshot for the goroutine; the update loop keeps mutating the store.
	people := append([]roster.Person(nil), m.store.State().Users.All...)
	ctx := m.ctx

	syncCmd := func() tea.Msg {
		result, err := syncer.Sync(ctx, people, func(p repository.Progress) {
			m.syncMu.Lock()
			m.syncProgress = p
			m.syncMu.Unlock()
		})
		return syncDoneMsg{result: result, err: err}
	}

	return m, tea.Batch(syncCmd, m.syncTickCmd(), m.toastTickCmd())
}

// handleSyncReminder raises a nudge toast when the last completed sync is
// older than the configured interval. The reminder reschedules itself for
// the life of the program and stays quiet while a sync runs or no
// repository is configured.
func (m *home) handleSyncReminder() (tea.Model, tea.Cmd) {
	if m.appConfig.RepositoryURL == "" || m.syncActive {
		return m, m.syncReminderCmd()
	}
	interval := time.Duration(m.appConfig.SyncIntervalMinutes) * time.Minute
	last := m.store.State().Repository.LastSyncAt
	if !last.IsZero() && time.Since(last) < interval {
		return m, m.syncReminderCmd()
	}
	return m, tea.Batch(
		m.toast(m.toastManager.Info("photo sync is due (press S)")),
		m.syncReminderCmd(),
	)
}

// handleSyncTick copies the latest buffered progress into the store while a
// sync is active.
func (m *home) handleSyncTick() (tea.Model, tea.Cmd) {
	if !m.syncActive {
		return m, nil
	}
	m.syncMu.Lock()
	progress := m.syncProgress
	m.syncMu.Unlock()

	m.store.Apply(store.Repository(func(r *store.RepositorySlice) {
		r.Queued = progress.Total
		r.Done = progress.Done
		r.Failed = progress.Failed
		r.CurrentKey = progress.CurrentKey
	}))
	return m, m.syncTickCmd()
}

// handleSyncDone applies the sync result: photo assignments flow into the
// roster, the repository slice records the outcome, and the loading toast
// resolves.
func (m *home) handleSyncDone(msg syncDoneMsg) (tea.Model, tea.Cmd) {
	m.syncActive = false
	m.syncMu.Lock()
	m.syncProgress = repository.Progress{}
	m.syncMu.Unlock()

	toastID := m.pendingSyncToastID
	m.pendingSyncToastID = ""

	if msg.err != nil {
		m.store.Apply(store.Repository(func(r *store.RepositorySlice) {
			r.Status = repository.StatusError
			r.LastError = msg.err.Error()
		}))
		m.emitAudit(auditlog.EventSyncFailed, msg.err.Error(),
			auditlog.WithSource("sync"), auditlog.WithLevel("error"))
		m.toastManager.Resolve(toastID, overlay.ToastError, msg.err.Error())
		return m, m.toastTickCmd()
	}

	r := m.currentRoster()
	for _, a := range msg.result.Assigned {
		person, err := r.FindPerson(a.PersonID)
		if err != nil {
			log.WarningLog.Printf("sync assigned photo to unknown person %q", a.PersonID)
			continue
		}
		photo := a.Photo
		person.Photo = &photo
		if err := r.UpdatePerson(person); err != nil {
			log.WarningLog.Printf("could not record photo for %q: %v", a.PersonID, err)
		}
	}
	if err := m.saveRoster(r); err != nil {
		return m, m.handleError(err)
	}

	m.store.Apply(store.Repository(func(rs *store.RepositorySlice) {
		rs.Status = repository.StatusIdle
		rs.CurrentKey = ""
		rs.Failed = msg.result.Failed
		rs.LastSyncAt = time.Now()
	}))

	summary := msg.result.Summary()
	m.emitAudit(auditlog.EventSyncCompleted, summary, auditlog.WithSource("sync"))
	if msg.result.Failed > 0 {
		m.toastManager.Resolve(toastID, overlay.ToastError, summary)
	} else {
		m.toastManager.Resolve(toastID, overlay.ToastSuccess, summary)
	}
	return m, m.toastTickCmd()
}

// toast discards the toast id and returns the tick cmd that animates it.
func (m *home) toast(_ string) tea.Cmd {
	return m.toastTickCmd()
}
