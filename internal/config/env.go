// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// Variables set to an empty string are ignored, so `GENERATION_TIMEOUT=`
// keeps the default instead of failing to parse.
func parseEnv(cfg any) error {
	vars := make(map[string]string)
	for key, value := range env.ToMap(os.Environ()) {
		if value != "" {
			vars[key] = value
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
