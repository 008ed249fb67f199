// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the service.
// It is populated once at startup and treated as read-only afterwards.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the metadata published by the documentation endpoint and
	// used to construct the domain core.
	API API `envPrefix:"API_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Logging holds output settings. The level itself is resolved from
	// LOGGING_LEVEL by the logger package.
	Logging Logging `envPrefix:"LOGGING_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API describes the published API.
type API struct {
	// Title is the human readable API name.
	// Env: API_TITLE
	Title string `env:"TITLE"`

	// Version is the semantic version string of the API (e.g. "1.2.3").
	// Env: API_VERSION
	Version string `env:"VERSION"`

	// Description is a free form API description.
	// Env: API_DESCRIPTION
	Description string `env:"DESCRIPTION"`

	// Swagger configures the interactive documentation.
	Swagger Swagger `envPrefix:"SWAGGER_"`
}

// Swagger configures the documentation sub-component.
type Swagger struct {
	// URL is the path the documentation UI is served on. The schema is
	// served under URL + "/swagger.json".
	// Env: API_SWAGGER_URL
	URL string `env:"URL"`

	// DisableUI turns off the HTML UI; the schema stays available.
	// Env: API_SWAGGER_DISABLE_UI
	DisableUI bool `env:"DISABLE_UI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Logging holds log output settings.
type Logging struct {
	// Format is "json" or "console".
	// Env: LOGGING_FORMAT
	Format string `env:"FORMAT"`

	// StrictLevel makes a malformed LOGGING_LEVEL a startup error instead of
	// silently falling back to debug.
	// Env: LOGGING_STRICT_LEVEL
	StrictLevel bool `env:"STRICT_LEVEL"`
}

// Defaults applied to fields no source has set.
const (
	DefaultHTTPAddress     = "0.0.0.0:5000"
	DefaultSwaggerURL      = "/api/doc"
	DefaultAPITitle        = "go-svc"
	DefaultAPIVersion      = "1.0.0"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogFormat       = "json"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			Title:   DefaultAPITitle,
			Version: DefaultAPIVersion,
			Swagger: Swagger{URL: DefaultSwaggerURL},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Logging: Logging{Format: DefaultLogFormat},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from the
// process environment, the command-line arguments and the optional config
// file. Any failure is meant to abort startup.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}

// Load is GetStructuredConfig with explicit command-line arguments.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
