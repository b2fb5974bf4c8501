package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenForm
	screenDetail
	screenConfirmDelete
)

// appModel is the root Bubble Tea model. One screen is active at a time;
// the sync status footer and the build info overlay sit above whichever
// screen is showing.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	statusCh  <-chan models.SyncStatusEvent

	screen screen
	items  []models.Expense
	idx    int

	loading bool
	saving  bool
	syncing bool

	status string
	errMsg string

	lastSync models.SyncStatusEvent

	form      expenseForm
	confirmID string

	dark bool
	pal  palette

	showBuildInfo bool
}

func newAppModel(
	ctx context.Context,
	services *service.ClientServices,
	buildInfo models.AppBuildInfo,
	statusCh <-chan models.SyncStatusEvent,
	dark bool,
) appModel {
	return appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		statusCh:  statusCh,
		loading:   true,
		dark:      dark,
		pal:       paletteFor(dark),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadExpenses(), waitSyncStatus(m.statusCh))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case expenseSavedMsg:
		m.saving = false
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		m.screen = screenList
		m.status = "Saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadExpenses()

	case expenseDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadExpenses()

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeRemoteError(msg.err)
			return m, nil
		}
		m.status = "Sync finished"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadExpenses()

	case syncStatusMsg:
		m.lastSync = msg.event
		// Reconciliation may have imported remote-only records;
		// refresh the list when a pass finishes clean.
		if msg.event.Status == models.SyncStatusSynced && !m.loading {
			m.loading = true
			return m, tea.Batch(m.cmdLoadExpenses(), waitSyncStatus(m.statusCh))
		}
		return m, waitSyncStatus(m.statusCh)

	case themeSavedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("cannot save theme: %v", msg.err)
			return m, nil
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenForm {
			return m.updateForm(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.showBuildInfo {
			m.showBuildInfo = false
			return m, nil
		}
	}

	if m.showBuildInfo {
		return m, nil
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenDetail:
		return m.updateDetail(keyMsg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m appModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "a", "n":
		m.form = newExpenseForm(nil)
		m.screen = screenForm
		return m, nil
	case "e":
		item, ok := m.current()
		if !ok {
			m.status = "No records"
			return m, nil
		}
		m.form = newExpenseForm(&item)
		m.screen = screenForm
		return m, nil
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "No records"
			return m, nil
		}
		m.screen = screenDetail
	case "d", "ctrl+d":
		item, ok := m.current()
		if !ok {
			m.status = "No records"
			return m, nil
		}
		m.confirmID = item.ID
		m.screen = screenConfirmDelete
	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "Syncing..."
		m.errMsg = ""
		return m, m.cmdSync()
	case "t":
		m.dark = !m.dark
		m.pal = paletteFor(m.dark)
		return m, m.cmdSaveTheme(m.dark)
	case "v":
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenList
			return m, nil
		case "enter":
			if m.form.submitting {
				return m, nil
			}
			expense, err := m.form.expense()
			if err != nil {
				m.form.errMsg = err.Error()
				return m, nil
			}
			m.form.errMsg = ""
			m.form.submitting = true
			m.saving = true
			return m, m.cmdSave(expense, m.form.editing)
		}
	}

	form, cmd := m.form.update(msg)
	m.form = form
	return m, cmd
}

func (m appModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y", "enter":
		id := m.confirmID
		m.confirmID = ""
		m.screen = screenList
		return m, m.cmdDelete(id)
	case "n", "esc":
		m.confirmID = ""
		m.screen = screenList
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.screen {
	case screenForm:
		return m.form.view(m.pal)
	case screenDetail:
		item, ok := m.current()
		if !ok {
			return renderPage("EXPENSE", "record not found", "esc: back")
		}
		return m.viewDetail(item)
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m appModel) viewList() string {
	out := ""

	if m.loading {
		return renderPage("EXPENSES", "Loading...", listHotKeys)
	}

	if m.errMsg != "" {
		out += m.pal.errMsg.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += m.pal.status.Render(m.status) + "\n"
	}

	if len(m.items) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No expenses yet\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "    Date       │ Title                    │ Amount     │ Category        │ ⇅\n"
		out += "  ─────────────┼──────────────────────────┼────────────┼─────────────────┼───\n"
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %s │ %-24s │ %10s │ %-15s │ %s\n",
				cursor,
				item.Date.Format("2006-01-02"),
				fitText(item.Title, 24),
				item.Amount.StringFixed(2),
				fitText(valueOrDash(item.Category), 15),
				syncedMark(item.Synced),
			)
		}
	}

	out += "\n" + m.syncStatusLine()

	return renderPage("EXPENSES", out, listHotKeys)
}

const listHotKeys = "a: add │ e: edit │ enter: open │ d: delete │ s: sync │ t: theme │ v: about │ q: quit"

func (m appModel) viewConfirmDelete() string {
	item, ok := m.current()
	body := "Delete this expense?"
	if ok {
		body = fmt.Sprintf("Delete %q (%s)?", item.Title, item.Amount.StringFixed(2))
	}
	return renderPage("CONFIRM DELETE", body, "y/enter: delete │ n/esc: cancel")
}

func (m appModel) current() (models.Expense, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Expense{}, false
	}
	return m.items[m.idx], true
}

func syncedMark(synced bool) string {
	if synced {
		return "✓"
	}
	return "·"
}

func (m appModel) cmdLoadExpenses() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Expense

	return func() tea.Msg {
		items, err := svc.List(ctx)
		return expensesLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdSave(expense models.Expense, editing bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Expense

	return func() tea.Msg {
		var err error
		if editing {
			_, err = svc.Update(ctx, expense)
		} else {
			_, err = svc.Create(ctx, expense)
		}
		return expenseSavedMsg{err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Expense

	return func() tea.Msg {
		return expenseDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Sync

	return func() tea.Msg {
		return syncDoneMsg{err: svc.Sync(ctx)}
	}
}

func (m appModel) cmdSaveTheme(dark bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Prefs

	return func() tea.Msg {
		return themeSavedMsg{dark: dark, err: svc.SetDarkMode(ctx, dark)}
	}
}
