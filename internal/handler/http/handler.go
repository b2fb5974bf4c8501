package http

import (
	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	tokenSignKey []byte
	bodyHashKey  []byte
	tokenIssuer  string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. The keyring-derived keys are cached
// here: the token-sign key verifies inbound bearer tokens, the body-hash key
// verifies the integrity signature of write payloads.
func NewHandler(services *service.Services, keyring crypto.KeyringService, tokenIssuer string, logger *logger.Logger) *Handler {
	bodyHashKey := keyring.BodyHashKey()
	if len(bodyHashKey) > 0 {
		utils.InitHasherPool(bodyHashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: keyring.TokenSignKey(),
		bodyHashKey:  bodyHashKey,
		tokenIssuer:  tokenIssuer,
		logger:       logger,
	}
}
