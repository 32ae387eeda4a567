// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the validated view of StructuredConfig used by
// cmd/server.
type ServerConfig struct {
	App    App
	DB     DB
	Server Server
	Notify Notify
}

// GetServerConfig loads the structured config and validates the server part.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:    cfg.App,
		DB:     cfg.Storage.DB,
		Server: cfg.Server,
		Notify: cfg.Notify,
	}

	return serverCfg, serverCfg.validate()
}

// RequestTimeoutOrDefault is the per-request deadline applied by handlers.
func (c *ServerConfig) RequestTimeoutOrDefault() time.Duration {
	if c.Server.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.Server.RequestTimeout
}
