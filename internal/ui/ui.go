package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fleetdeck/fleetdeck/internal/fleet"
	"github.com/fleetdeck/fleetdeck/internal/prefs"
	"github.com/fleetdeck/fleetdeck/internal/reload"
	"github.com/fleetdeck/fleetdeck/internal/state"
)

// statusTTL is how long a transient status message stays in the footer.
const statusTTL = 4 * time.Second

type panel int

const (
	panelDashboard panel = iota
	panelOwners
	panelVehicles
	panelMaintenance
)

func (p panel) String() string {
	switch p {
	case panelDashboard:
		return "Dashboard"
	case panelOwners:
		return "Owners"
	case panelVehicles:
		return "Vehicles"
	case panelMaintenance:
		return "Maintenance"
	default:
		return "Unknown"
	}
}

func (p panel) next() panel {
	if p == panelMaintenance {
		return panelDashboard
	}
	return p + 1
}

func (p panel) prev() panel {
	if p == panelDashboard {
		return panelMaintenance
	}
	return p - 1
}

// Options carries everything the interface needs to talk to the backend.
type Options struct {
	Context   context.Context
	API       fleet.API
	Store     *state.Store
	Refresher *reload.Refresher
	APIBind   string
	ThemeName string
	PrefsPath string
}

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusError
)

type statusMessage struct {
	text  string
	level statusLevel
}

// dataReloadedMsg reports the outcome of a collection refresh. Quiet
// reloads (panel switches) do not announce success in the footer.
type dataReloadedMsg struct {
	err   error
	quiet bool
}

// mutationResultMsg reports a create, update, or delete plus the
// follow-up reload that the mutation triggered.
type mutationResultMsg struct {
	entity    string
	verb      string
	message   string
	err       error
	reloadErr error
}

type statusExpiredMsg struct {
	seq int
}

// Model is the root bubbletea model for the admin interface.
type Model struct {
	opts   Options
	keys   keyMap
	help   help.Model
	theme  Theme
	styles Styles

	width  int
	height int

	panel    panel
	snapshot state.Snapshot

	ownersTable      table.Model
	vehiclesTable    table.Model
	maintenanceTable table.Model

	visibleOwners      []fleet.Owner
	visibleVehicles    []fleet.Vehicle
	visibleMaintenance []fleet.MaintenanceRecord

	searching   bool
	searchInput textinput.Model
	terms       map[panel]string

	modal Modal

	status    statusMessage
	statusSeq int
}

// NewModel builds the root model from an already-populated store.
func NewModel(opts Options) *Model {
	theme := themeByName(opts.ThemeName)
	styles := theme.Styles()

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	search.CharLimit = 64

	m := &Model{
		opts:             opts,
		keys:             DefaultKeyMap(),
		help:             help.New(),
		theme:            theme,
		styles:           styles,
		panel:            panelDashboard,
		ownersTable:      newCollectionTable(ownerColumns(), theme.TableStyles()),
		vehiclesTable:    newCollectionTable(vehicleColumns(), theme.TableStyles()),
		maintenanceTable: newCollectionTable(maintenanceColumns(), theme.TableStyles()),
		searchInput:      search,
		terms:            make(map[panel]string),
	}
	m.snapshot = opts.Store.Snapshot()
	m.rebuildTables()
	return m
}

// Run starts the interactive program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeTables()
		return m, nil

	case dataReloadedMsg:
		m.refreshSnapshot()
		if msg.err != nil {
			return m, m.setStatus(statusError, msg.err.Error())
		}
		if msg.quiet {
			return m, nil
		}
		return m, m.setStatus(statusInfo, "Data refreshed")

	case mutationResultMsg:
		m.refreshSnapshot()
		if msg.err != nil {
			return m, m.setStatus(statusError, msg.err.Error())
		}
		text := msg.entity + " " + msg.verb
		if msg.message != "" {
			text = msg.message
		}
		if msg.reloadErr != nil {
			text += " (refresh failed: " + msg.reloadErr.Error() + ")"
			return m, m.setStatus(statusError, text)
		}
		return m, m.setStatus(statusSuccess, text)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = statusMessage{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.modal != nil {
		var cmd tea.Cmd
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		return m, cmd
	}
	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.terms[m.panel] = ""
			m.rebuildTables()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.terms[m.panel] = m.searchInput.Value()
		m.rebuildTables()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(nextTheme(m.theme))
		_ = prefs.Save(m.opts.PrefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, m.setStatus(statusInfo, "Theme: "+m.theme.Name)

	case key.Matches(msg, m.keys.Tab):
		return m.switchPanel(m.panel.next())

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchPanel(m.panel.prev())

	case key.Matches(msg, m.keys.PanelDashboard):
		return m.switchPanel(panelDashboard)

	case key.Matches(msg, m.keys.PanelOwners):
		return m.switchPanel(panelOwners)

	case key.Matches(msg, m.keys.PanelVehicles):
		return m.switchPanel(panelVehicles)

	case key.Matches(msg, m.keys.PanelMaintenance):
		return m.switchPanel(panelMaintenance)

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.reloadAllCmd(), m.setStatus(statusInfo, "Refreshing..."))

	case key.Matches(msg, m.keys.Search):
		if m.panel == panelDashboard {
			return m, nil
		}
		m.searching = true
		m.searchInput.SetValue(m.terms[m.panel])
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.New):
		if m.openCreateForm() {
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.openEditForm() {
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.openDeleteConfirm()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.panel {
	case panelOwners:
		m.ownersTable, cmd = m.ownersTable.Update(msg)
	case panelVehicles:
		m.vehiclesTable, cmd = m.vehiclesTable.Update(msg)
	case panelMaintenance:
		m.maintenanceTable, cmd = m.maintenanceTable.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchPanel(p panel) (tea.Model, tea.Cmd) {
	if m.searching {
		m.searching = false
		m.searchInput.Blur()
	}
	m.panel = p
	return m, m.reloadPanelCmd(p)
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	m.styles = t.Styles()
	m.ownersTable.SetStyles(t.TableStyles())
	m.vehiclesTable.SetStyles(t.TableStyles())
	m.maintenanceTable.SetStyles(t.TableStyles())
}

func (m *Model) refreshSnapshot() {
	m.snapshot = m.opts.Store.Snapshot()
	m.rebuildTables()
}

func (m *Model) rebuildTables() {
	snap := m.snapshot

	rows := ownerRows(snap.Owners)
	idx := visibleIndexes(rows, m.terms[panelOwners])
	m.visibleOwners = pickEntities(snap.Owners, idx)
	m.ownersTable.SetRows(pickEntities(rows, idx))
	clampCursor(&m.ownersTable)

	rows = vehicleRows(snap.Vehicles)
	idx = visibleIndexes(rows, m.terms[panelVehicles])
	m.visibleVehicles = pickEntities(snap.Vehicles, idx)
	m.vehiclesTable.SetRows(pickEntities(rows, idx))
	clampCursor(&m.vehiclesTable)

	rows = maintenanceRows(snap.Maintenance)
	idx = visibleIndexes(rows, m.terms[panelMaintenance])
	m.visibleMaintenance = pickEntities(snap.Maintenance, idx)
	m.maintenanceTable.SetRows(pickEntities(rows, idx))
	clampCursor(&m.maintenanceTable)
}

// pickEntities keeps the entity slice aligned with the filtered table
// rows. A placeholder row has no backing entity, so out-of-range
// indexes are skipped.
func pickEntities[T any](items []T, indexes []int) []T {
	out := make([]T, 0, len(indexes))
	for _, i := range indexes {
		if i < len(items) {
			out = append(out, items[i])
		}
	}
	return out
}

func clampCursor(t *table.Model) {
	if len(t.Rows()) == 0 {
		t.SetCursor(0)
		return
	}
	if t.Cursor() >= len(t.Rows()) {
		t.SetCursor(len(t.Rows()) - 1)
	}
}

func (m *Model) resizeTables() {
	h := m.height - 9
	if h < 3 {
		h = 3
	}
	m.ownersTable.SetHeight(h)
	m.vehiclesTable.SetHeight(h)
	m.maintenanceTable.SetHeight(h)
}

func (m *Model) selectedOwner() *fleet.Owner {
	i := m.ownersTable.Cursor()
	if i < 0 || i >= len(m.visibleOwners) {
		return nil
	}
	return &m.visibleOwners[i]
}

func (m *Model) selectedVehicle() *fleet.Vehicle {
	i := m.vehiclesTable.Cursor()
	if i < 0 || i >= len(m.visibleVehicles) {
		return nil
	}
	return &m.visibleVehicles[i]
}

func (m *Model) selectedMaintenance() *fleet.MaintenanceRecord {
	i := m.maintenanceTable.Cursor()
	if i < 0 || i >= len(m.visibleMaintenance) {
		return nil
	}
	return &m.visibleMaintenance[i]
}

func (m *Model) selectedOwnerOrFirst() *fleet.Owner {
	if o := m.selectedOwner(); o != nil {
		return o
	}
	if len(m.snapshot.Owners) > 0 {
		return &m.snapshot.Owners[0]
	}
	return nil
}

func (m *Model) selectedVehicleOrFirst() *fleet.Vehicle {
	if v := m.selectedVehicle(); v != nil {
		return v
	}
	if len(m.snapshot.Vehicles) > 0 {
		return &m.snapshot.Vehicles[0]
	}
	return nil
}

func (m *Model) openCreateForm() bool {
	switch m.panel {
	case panelOwners:
		m.openOwnerForm(nil)
	case panelVehicles:
		if len(m.snapshot.Owners) == 0 {
			m.status = statusMessage{text: "Register an owner first", level: statusError}
			return false
		}
		m.openVehicleForm(nil)
	case panelMaintenance:
		if len(m.snapshot.Vehicles) == 0 {
			m.status = statusMessage{text: "Register a vehicle first", level: statusError}
			return false
		}
		m.openMaintenanceForm(nil)
	default:
		return false
	}
	return true
}

func (m *Model) openEditForm() bool {
	switch m.panel {
	case panelOwners:
		if o := m.selectedOwner(); o != nil {
			m.openOwnerForm(o)
			return true
		}
	case panelVehicles:
		if v := m.selectedVehicle(); v != nil {
			m.openVehicleForm(v)
			return true
		}
	case panelMaintenance:
		if r := m.selectedMaintenance(); r != nil {
			m.openMaintenanceForm(r)
			return true
		}
	}
	return false
}

func (m *Model) openDeleteConfirm() {
	switch m.panel {
	case panelOwners:
		if o := m.selectedOwner(); o != nil {
			prompt := fmt.Sprintf("Delete owner %s? Their vehicles and maintenance records go with them.", o.RUT)
			m.modal = &confirmModal{prompt: prompt, action: m.deleteCmd("Owner", o.ID, reload.MutationOwner)}
		}
	case panelVehicles:
		if v := m.selectedVehicle(); v != nil {
			prompt := fmt.Sprintf("Delete vehicle %s? Its maintenance records go with it.", v.DisplayName())
			m.modal = &confirmModal{prompt: prompt, action: m.deleteCmd("Vehicle", v.ID, reload.MutationVehicle)}
		}
	case panelMaintenance:
		if r := m.selectedMaintenance(); r != nil {
			prompt := fmt.Sprintf("Delete maintenance record #%d?", r.ID)
			m.modal = &confirmModal{prompt: prompt, action: m.deleteCmd("Maintenance record", r.ID, reload.MutationMaintenance)}
		}
	}
}

func (m *Model) setStatus(level statusLevel, text string) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.status = statusMessage{text: text, level: level}
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m *Model) reloadAllCmd() tea.Cmd {
	ctx, refresher := m.opts.Context, m.opts.Refresher
	return func() tea.Msg {
		return dataReloadedMsg{err: refresher.All(ctx)}
	}
}

func (m *Model) reloadPanelCmd(p panel) tea.Cmd {
	ctx, refresher := m.opts.Context, m.opts.Refresher
	return func() tea.Msg {
		var err error
		switch p {
		case panelDashboard:
			err = refresher.Stats(ctx)
		case panelOwners:
			err = refresher.Owners(ctx)
		case panelVehicles:
			err = refresher.Vehicles(ctx)
		case panelMaintenance:
			err = refresher.Maintenance(ctx)
		}
		return dataReloadedMsg{err: err, quiet: true}
	}
}

func (m *Model) saveOwnerCmd(id int64, payload fleet.OwnerPayload) tea.Cmd {
	ctx, api, refresher := m.opts.Context, m.opts.API, m.opts.Refresher
	return func() tea.Msg {
		verb := "created"
		var err error
		if id > 0 {
			verb = "updated"
			_, err = api.UpdateOwner(ctx, id, payload)
		} else {
			_, err = api.CreateOwner(ctx, payload)
		}
		if err != nil {
			return mutationResultMsg{entity: "Owner", verb: verb, err: err}
		}
		return mutationResultMsg{entity: "Owner", verb: verb, reloadErr: refresher.After(ctx, reload.MutationOwner)}
	}
}

func (m *Model) saveVehicleCmd(id int64, payload fleet.VehiclePayload) tea.Cmd {
	ctx, api, refresher := m.opts.Context, m.opts.API, m.opts.Refresher
	return func() tea.Msg {
		verb := "created"
		var err error
		if id > 0 {
			verb = "updated"
			_, err = api.UpdateVehicle(ctx, id, payload)
		} else {
			_, err = api.CreateVehicle(ctx, payload)
		}
		if err != nil {
			return mutationResultMsg{entity: "Vehicle", verb: verb, err: err}
		}
		return mutationResultMsg{entity: "Vehicle", verb: verb, reloadErr: refresher.After(ctx, reload.MutationVehicle)}
	}
}

func (m *Model) saveMaintenanceCmd(id int64, payload fleet.MaintenancePayload) tea.Cmd {
	ctx, api, refresher := m.opts.Context, m.opts.API, m.opts.Refresher
	return func() tea.Msg {
		verb := "created"
		var err error
		if id > 0 {
			verb = "updated"
			_, err = api.UpdateMaintenance(ctx, id, payload)
		} else {
			_, err = api.CreateMaintenance(ctx, payload)
		}
		if err != nil {
			return mutationResultMsg{entity: "Maintenance record", verb: verb, err: err}
		}
		return mutationResultMsg{entity: "Maintenance record", verb: verb, reloadErr: refresher.After(ctx, reload.MutationMaintenance)}
	}
}

func (m *Model) deleteCmd(entity string, id int64, mut reload.Mutation) tea.Cmd {
	ctx, api, refresher := m.opts.Context, m.opts.API, m.opts.Refresher
	return func() tea.Msg {
		var message string
		var err error
		switch mut {
		case reload.MutationOwner:
			message, err = api.DeleteOwner(ctx, id)
		case reload.MutationVehicle:
			message, err = api.DeleteVehicle(ctx, id)
		case reload.MutationMaintenance:
			message, err = api.DeleteMaintenance(ctx, id)
		}
		if err != nil {
			return mutationResultMsg{entity: entity, verb: "deleted", err: err}
		}
		return mutationResultMsg{entity: entity, verb: "deleted", message: message, reloadErr: refresher.After(ctx, mut)}
	}
}

func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch {
	case m.modal != nil:
		body = m.modal.View(m.styles, m.width, bodyHeight)
	case m.panel == panelDashboard:
		body = m.renderDashboard()
	default:
		body = m.renderTablePanel()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
