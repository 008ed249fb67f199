// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package accesslog

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Probe endpoints polled by infrastructure.
const (
	HealthPath  = "/health"
	MetricsPath = "/metrics"
)

// Policy decides whether a completed request is written to the access log.
type Policy func(path string, status int, level zerolog.Level) bool

// IsProbe reports whether path is exactly one of the probe endpoints.
// Prefixes, trailing slashes and query strings do not match.
func IsProbe(path string) bool {
	return path == HealthPath || path == MetricsPath
}

// DefaultPolicy suppresses a request iff the level is stricter than debug,
// the status is 200 and the path is a probe endpoint.
func DefaultPolicy(path string, status int, level zerolog.Level) bool {
	suppress := level > zerolog.DebugLevel &&
		status == http.StatusOK &&
		IsProbe(path)

	return !suppress
}
