package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
)

// Keys of the prefs collection.
const (
	prefKeyClientID = "client_id"
	prefKeyDarkMode = "dark_mode"
)

type clientPrefsService struct {
	prefs store.PrefsRepository
	ids   *utils.UUIDGenerator

	logger *logger.Logger
}

// NewClientPrefsService wires the prefs service on the local prefs
// collection.
func NewClientPrefsService(prefs store.PrefsRepository, log *logger.Logger) ClientPrefsService {
	return &clientPrefsService{
		prefs:  prefs,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
}

// ClientID implements [ClientPrefsService]. The identifier is generated
// once per install and persisted, so it survives restarts and identifies
// this client to the remote collection.
func (p *clientPrefsService) ClientID(ctx context.Context) (string, error) {
	id, err := p.prefs.Get(ctx, prefKeyClientID)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, store.ErrPrefNotFound) {
		return "", fmt.Errorf("load client id: %w", err)
	}

	id = p.ids.Generate()
	if err := p.prefs.Set(ctx, prefKeyClientID, id); err != nil {
		return "", fmt.Errorf("persist client id: %w", err)
	}

	p.logger.Info().
		Str("func", "clientPrefsService.ClientID").
		Str("client_id", id).
		Msg("generated new client identity")

	return id, nil
}

// DarkMode implements [ClientPrefsService].
func (p *clientPrefsService) DarkMode(ctx context.Context) (bool, error) {
	value, err := p.prefs.Get(ctx, prefKeyDarkMode)
	if errors.Is(err, store.ErrPrefNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load dark mode flag: %w", err)
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("decode dark mode flag %q: %w", value, err)
	}
	return enabled, nil
}

// SetDarkMode implements [ClientPrefsService].
func (p *clientPrefsService) SetDarkMode(ctx context.Context, enabled bool) error {
	if err := p.prefs.Set(ctx, prefKeyDarkMode, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("persist dark mode flag: %w", err)
	}
	return nil
}
