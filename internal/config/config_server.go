package config

import (
	"fmt"
	"time"
)

// ServerApp holds server-side application settings derived from the shared
// structured config.
type ServerApp struct {
	// Secret is the shared transport secret the server keyring derives
	// its token-verification and body-hash keys from.
	Secret string
	// TokenIssuer is the expected "iss" claim of inbound session tokens.
	TokenIssuer string
}

// ServerNet holds listen addresses and inbound timeouts.
type ServerNet struct {
	// HTTPAddress is the HTTP listen address in "host:port" format.
	HTTPAddress string
	// GRPCAddress is the gRPC health listen address in "host:port" format.
	GRPCAddress string
	// RequestTimeout bounds every inbound request.
	RequestTimeout time.Duration
}

// ServerDB contains database connection settings for the server.
type ServerDB struct {
	// DSN is the PostgreSQL connection string.
	DSN string
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	// DB holds database settings.
	DB ServerDB
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains application-level server settings.
	App ServerApp
	// Server contains listen addresses and timeouts.
	Server ServerNet
	// Storage contains server storage settings.
	Storage ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration, mirroring [GetClientConfig].
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			Secret:      cfg.App.Secret,
			TokenIssuer: cfg.App.TokenIssuer,
		},
		Server: ServerNet{
			HTTPAddress:    cfg.Server.HTTPAddress,
			GRPCAddress:    cfg.Server.GRPCAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return serverCfg, serverCfg.validate()
}
