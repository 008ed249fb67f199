// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EnvLoggingLevel names the environment variable consulted by the resolver.
// It holds either a numeric code (10 debug, 20 info, 30 warning, 40 error,
// 50 critical) or a level name.
const EnvLoggingLevel = "LOGGING_LEVEL"

// DefaultLevel is used when neither a supervisor nor the environment provide
// a level.
const DefaultLevel = zerolog.DebugLevel

// ErrInvalidLevel is returned by ParseLevel for values that are neither a
// known level name nor a non-negative numeric code.
var ErrInvalidLevel = errors.New("invalid logging level")

// Supervisor is a logger pre-configured by a hosting process. When it has at
// least one output, its level is adopted verbatim.
type Supervisor interface {
	HasOutputs() bool
	GetLevel() zerolog.Level
}

// LevelResolver decides the effective process logging level.
//
// Resolution order, first match wins:
//  1. Supervisor with outputs: its level;
//  2. EnvLoggingLevel present, non-empty and parseable;
//  3. DefaultLevel.
//
// A malformed environment value falls through to DefaultLevel unless Strict
// is set, in which case Resolve returns an error wrapping ErrInvalidLevel.
type LevelResolver struct {
	Supervisor Supervisor
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	Strict    bool
}

// Resolve returns the effective level. It only reads ambient state.
func (r LevelResolver) Resolve() (zerolog.Level, error) {
	if r.Supervisor != nil && r.Supervisor.HasOutputs() {
		return r.Supervisor.GetLevel(), nil
	}

	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	raw, ok := lookup(EnvLoggingLevel)
	if !ok || strings.TrimSpace(raw) == "" {
		return DefaultLevel, nil
	}

	level, err := ParseLevel(raw)
	if err != nil {
		if r.Strict {
			return DefaultLevel, fmt.Errorf("%s=%q: %w", EnvLoggingLevel, raw, err)
		}
		return DefaultLevel, nil
	}

	return level, nil
}

// ParseLevel converts a numeric code or a level name into a zerolog.Level.
//
// Numeric codes map onto the first level whose code is not lower than the
// value: 0-10 debug, 11-20 info, 21-30 warn, 31-40 error, 41-50 fatal and
// anything above panic.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.NoLevel, ErrInvalidLevel
	}

	if code, err := strconv.Atoi(s); err == nil {
		return levelFromCode(code)
	}

	switch s {
	case "warning":
		s = zerolog.LevelWarnValue
	case "critical":
		s = zerolog.LevelFatalValue
	}

	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}

	return level, nil
}

func levelFromCode(code int) (zerolog.Level, error) {
	switch {
	case code < 0:
		return zerolog.NoLevel, ErrInvalidLevel
	case code <= 10:
		return zerolog.DebugLevel, nil
	case code <= 20:
		return zerolog.InfoLevel, nil
	case code <= 30:
		return zerolog.WarnLevel, nil
	case code <= 40:
		return zerolog.ErrorLevel, nil
	case code <= 50:
		return zerolog.FatalLevel, nil
	default:
		return zerolog.PanicLevel, nil
	}
}
