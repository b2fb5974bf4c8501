package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive terminal frontend of the expense keeper. It owns
// a single Bubble Tea program whose model covers the expense list, the
// create/edit form, the record detail view, and the sync status footer.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    log.GetChildLogger(),
	}
}

// Run blocks until the user quits. The sync status subscription lives for
// the whole program run; cancel is called on the way out so the engine
// does not keep broadcasting into a dead channel.
func (t *TUI) Run(ctx context.Context) error {
	dark, err := t.services.Prefs.DarkMode(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "TUI.Run").Msg("cannot read theme preference, using light palette")
		dark = false
	}

	statusCh, cancel := t.services.Sync.Subscribe()
	defer cancel()

	model := newAppModel(ctx, t.services, t.buildInfo, statusCh, dark)

	if _, err = tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}

	return nil
}
