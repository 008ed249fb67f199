// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. All violations are reported.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.API.Title) == "" {
		errs = append(errs, fmt.Errorf("%w: empty title", ErrInvalidAPIConfigs))
	}
	if strings.TrimSpace(cfg.API.Version) == "" {
		errs = append(errs, fmt.Errorf("%w: empty version", ErrInvalidAPIConfigs))
	}
	if !strings.HasPrefix(cfg.API.Swagger.URL, "/") {
		errs = append(errs, fmt.Errorf("%w: swagger url %q must start with '/'", ErrInvalidAPIConfigs, cfg.API.Swagger.URL))
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		errs = append(errs, fmt.Errorf("%w: address %q: %w", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err))
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 ||
		cfg.Server.IdleTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs))
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%w: unknown format %q", ErrInvalidLoggingConfigs, cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
