// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants common to every consumer. Role-specific requirements live in
// the client and server view validations.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.URL != "" {
		if _, err := url.ParseRequestURI(cfg.Remote.URL); err != nil {
			return ErrInvalidRemoteConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Local.Path == "" || strings.Contains(cfg.Storage.Local.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.URL != "" {
		if cfg.App.Secret == "" {
			return ErrInvalidAppConfigs
		}
		if cfg.Remote.RequestTimeout == 0 {
			return ErrInvalidRemoteConfigs
		}
	}

	if cfg.Sync.Interval == 0 || cfg.Sync.ProbeInterval == 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.Secret == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
