package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/adapter"
	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/connectivity"
	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/tui"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
	"github.com/MKhiriev/go-expense-keeper/models"
)

type App struct {
	config    *config.ClientConfig
	logger    *logger.Logger
	buildInfo models.AppBuildInfo
}

func NewApp(buildInfo models.AppBuildInfo) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	return &App{
		config:    cfg,
		logger:    logger.NewClientLogger("client"),
		buildInfo: buildInfo,
	}, nil
}

// Run wires the whole client stack and blocks inside the terminal UI.
// Everything started here is stopped before Run returns: the connectivity
// probe loop, the engine's transition listener, the periodic sync job, and
// the local store connection.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewClientStorages(ctx, a.config.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing local store")
		}
	}()

	keyring, err := crypto.NewKeyringService(a.config.App.Secret)
	if err != nil {
		return fmt.Errorf("derive transport keys: %w", err)
	}

	remote := adapter.NewHTTPRemoteCollection(a.config.Remote, keyring.BodyHashKey(), a.logger)

	monitor, err := a.newMonitor()
	if err != nil {
		return fmt.Errorf("create connectivity monitor: %w", err)
	}

	services := service.NewClientServices(storages, remote, monitor, a.config.Remote, a.logger)

	clientID, err := services.Prefs.ClientID(ctx)
	if err != nil {
		return fmt.Errorf("resolve client id: %w", err)
	}
	a.logger.Info().Str("func", "App.Run").Str("client_id", clientID).Msg("client identity resolved")

	if a.config.Remote.URL != "" {
		token, tokenErr := utils.GenerateJWTToken(
			a.config.App.TokenIssuer,
			clientID,
			a.config.App.TokenDuration,
			keyring.TokenSignKey(),
		)
		if tokenErr != nil {
			return fmt.Errorf("mint session token: %w", tokenErr)
		}
		remote.SetToken(token.SignedString)
	}

	monitor.Start(ctx)
	defer monitor.Stop()
	_, _ = monitor.CheckNow(ctx)

	services.Sync.Start(ctx)
	defer services.Sync.Stop()

	// First reconciliation runs in the background so a cold offline start
	// does not delay the UI. Its outcome arrives on the status stream.
	go func() {
		if syncErr := services.Sync.Sync(ctx); syncErr != nil {
			a.logger.Warn().Err(syncErr).Str("func", "App.Run").Msg("initial sync did not complete")
		}
	}()

	services.SyncJob.Start(ctx, a.config.Sync.Interval)
	defer services.SyncJob.Stop()

	return tui.New(services, a.buildInfo, a.logger).Run(ctx)
}

// newMonitor picks the connectivity source: a real HTTP prober against the
// remote's ping endpoint, or the permanently-offline stub when no remote
// is configured.
func (a *App) newMonitor() (connectivity.Monitor, error) {
	if a.config.Remote.URL == "" {
		return connectivity.NewOfflineMonitor(a.logger), nil
	}

	checker, err := connectivity.NewHTTPChecker(a.config.Remote.URL, a.config.Remote.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return connectivity.NewMonitor(checker, a.config.Sync.ProbeInterval, a.logger), nil
}
