package handler

import (
	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/handler/http"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
)

// Handlers aggregates the transport handlers of the server. The expense
// collection API is HTTP-only; the gRPC listener carries just the health
// service and is wired directly in the server package.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers from the server configuration.
// The keyring supplies the token-verification and body-hash keys shared
// with the clients.
func NewHandlers(services *service.Services, keyring crypto.KeyringService, cfg config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, keyring, cfg.App.TokenIssuer, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
