package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults substituted by withDefaults for optional fields left unset by
// every explicit source. Paths, DSNs, secrets, and the remote URL have no
// defaults and stay explicit.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultGRPCAddress    = "localhost:9095"
	defaultTokenIssuer    = "expense-keeper"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultRemoteTimeout  = 10 * time.Second
	defaultRetryCount     = 2
	defaultRetryWait      = 500 * time.Millisecond
	defaultRetryMaxWait   = 5 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultProbeInterval  = 30 * time.Second
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the defaults layer. Because mergo only fills fields
// still at their zero value, defaults apply strictly after every explicit
// source.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			GRPCAddress:    defaultGRPCAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Remote: Remote{
			RequestTimeout: defaultRemoteTimeout,
			RetryCount:     defaultRetryCount,
			RetryWait:      defaultRetryWait,
			RetryMaxWait:   defaultRetryMaxWait,
		},
		Sync: Sync{
			Interval:      defaultSyncInterval,
			ProbeInterval: defaultProbeInterval,
		},
	})

	return b
}
