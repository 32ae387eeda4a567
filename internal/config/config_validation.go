// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	// The cache must persist across runs.
	if cfg.Storage.CacheDSN == "" || strings.Contains(cfg.Storage.CacheDSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if (cfg.Adapter.HTTPAddress == "" && cfg.Adapter.GRPCAddress == "") || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	g := cfg.Generation
	if g.URL == "" || g.Model == "" || g.Timeout <= 0 || g.RequestsPerMinute <= 0 {
		return ErrInvalidGenerationConfigs
	}
	if g.Temperature < 0 || g.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be within [0, 2]", ErrInvalidGenerationConfigs)
	}

	return nil
}
