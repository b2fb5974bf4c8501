package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.screen = screenList
	case "e":
		m.form = newExpenseForm(&item)
		m.screen = screenForm
	case "d", "ctrl+d":
		m.confirmID = item.ID
		m.screen = screenConfirmDelete
	case "c":
		return m, cmdCopyExpense(item)
	}

	return m, nil
}

// cmdCopyExpense puts a one-line summary of the record on the system
// clipboard.
func cmdCopyExpense(item models.Expense) tea.Cmd {
	return func() tea.Msg {
		text := fmt.Sprintf("%s %s %s", item.Date.Format(formDateLayout), item.Title, item.Amount.StringFixed(2))
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m appModel) viewDetail(item models.Expense) string {
	out := ""
	out += "Title     │ " + item.Title + "\n"
	out += "Amount    │ " + item.Amount.StringFixed(2) + "\n"
	out += "Date      │ " + item.Date.Format(formDateLayout) + "\n"
	out += "Category  │ " + valueOrDash(item.Category) + "\n"
	out += "Payment   │ " + valueOrDash(item.PaymentMethod) + "\n"
	out += "Note      │ " + valueOrDash(item.Description) + "\n"
	out += "Synced    │ " + syncedMark(item.Synced) + "\n"
	out += "ID        │ " + m.pal.help.Render(item.ID) + "\n"

	if m.status != "" {
		out += "\n" + m.pal.status.Render(m.status) + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + m.pal.errMsg.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("EXPENSE", strings.TrimRight(out, "\n"), "e: edit │ d: delete │ c: copy │ esc: back")
}
