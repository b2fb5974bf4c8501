package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Secret is the shared transport secret the client keyring derives
	// its token-signing and body-hash keys from.
	Secret string
	// TokenIssuer is the "iss" claim for minted session tokens.
	TokenIssuer string
	// TokenDuration is the lifetime of a minted session token.
	TokenDuration time.Duration
}

// ClientRemote holds network settings used by the client transport layer.
type ClientRemote struct {
	// URL is the remote collection connection string; empty keeps the
	// remote disabled.
	URL string
	// RequestTimeout is the bound on every outbound remote call.
	RequestTimeout time.Duration
	// RetryCount is the number of transport-level retries per call.
	RetryCount int
	// RetryWait is the initial backoff between retries.
	RetryWait time.Duration
	// RetryMaxWait caps the retry backoff.
	RetryMaxWait time.Duration
}

// ClientLocal contains local store settings for the client.
type ClientLocal struct {
	// Path is the SQLite file backing the local collections.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Local holds local store settings.
	Local ClientLocal
}

// ClientSync contains client background job settings.
type ClientSync struct {
	// Interval defines how often the periodic reconciliation runs.
	Interval time.Duration
	// ProbeInterval defines how often connectivity is re-checked.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Remote contains remote collection addresses and call limits.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains background job settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Secret:        cfg.App.Secret,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Remote: ClientRemote{
			URL:            cfg.Remote.URL,
			RequestTimeout: cfg.Remote.RequestTimeout,
			RetryCount:     cfg.Remote.RetryCount,
			RetryWait:      cfg.Remote.RetryWait,
			RetryMaxWait:   cfg.Remote.RetryMaxWait,
		},
		Storage: ClientStorage{
			Local: ClientLocal{
				Path: cfg.Storage.Local.Path,
			},
		},
		Sync: ClientSync{
			Interval:      cfg.Sync.Interval,
			ProbeInterval: cfg.Sync.ProbeInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
