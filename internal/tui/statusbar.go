package tui

import (
	"github.com/MKhiriev/go-expense-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// waitSyncStatus blocks on the engine's status stream and hands the next
// event to the program. The model re-issues it after every event; a closed
// channel ends the loop quietly.
func waitSyncStatus(ch <-chan models.SyncStatusEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return syncStatusMsg{event: event}
	}
}

func (m appModel) syncStatusLine() string {
	label, style := "", m.pal.help

	switch m.lastSync.Status {
	case models.SyncStatusSynced:
		label, style = "✓ synced", m.pal.status
	case models.SyncStatusSyncing:
		label, style = "… syncing", m.pal.accent
	case models.SyncStatusPendingSync:
		label = "● pending sync"
		if m.lastSync.Err != nil {
			label += " (" + humanizeRemoteError(m.lastSync.Err) + ")"
		}
		style = m.pal.accent
	case models.SyncStatusOffline:
		label, style = "○ offline", m.pal.help
	case models.SyncStatusError:
		label = "✗ sync error"
		if m.lastSync.Err != nil {
			label += ": " + humanizeRemoteError(m.lastSync.Err)
		}
		style = m.pal.errMsg
	default:
		label = "○ waiting for first sync"
	}

	return style.Render(label)
}
