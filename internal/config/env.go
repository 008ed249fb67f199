// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig]. Durations use Go syntax ("15s").
// It returns the explicit keys (see explicitFields) present in the
// environment.
//
// LOGGING_LEVEL is not read here: the level is resolved by the logger
// package because a hosting process may override it.
func parseEnv(cfg *StructuredConfig) ([]string, error) {
	var explicit []string
	opts := env.Options{
		OnSet: func(key string, value any, isDefault bool) {
			if _, ok := explicitFields[key]; !ok || isDefault {
				return
			}
			if s, ok := value.(string); ok && s != "" {
				explicit = append(explicit, key)
			}
		},
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	return explicit, nil
}
