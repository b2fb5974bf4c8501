package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an empty local store path or an in-memory path that would
	// not survive a restart).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote collection settings
	// (for example, an unparseable URL or a zero request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a remote URL configured without the shared secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSyncConfigs indicates invalid background job settings
	// (for example, a zero sync or probe interval).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidServerConfigs indicates invalid server settings (for
	// example, a missing listen address or database DSN).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
