// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors, context-aware helpers and the logging level
// resolution used at process startup.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromRequest.
package logger

import (
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats accepted by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout at Debug level. It is used before the effective level is known
// (e.g. while configuration is still loading).
func NewLogger(role string) *Logger {
	return New(role, zerolog.DebugLevel, os.Stdout, FormatJSON)
}

// New configures process-wide logging and returns the root *Logger.
//
// The logger is configured with:
//   - global log level set to level (set once at startup, never changed);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     instead of the default file:line format.
//
// format selects JSON (default) or human readable console output. A nil out
// falls back to os.Stdout.
func New(role string, level zerolog.Level, out io.Writer, format string) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	if out == nil {
		out = os.Stdout
	}
	if format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Named returns a child logger tagged with a "logger" field and pinned to
// level. The access logger is derived this way so that its level matches the
// process level.
func (l *Logger) Named(name string, level zerolog.Level) *Logger {
	return &Logger{l.With().Str("logger", name).Logger().Level(level)}
}

// HasOutputs reports whether the logger was configured to emit anything.
// A nil or Nop logger has no outputs.
func (l *Logger) HasOutputs() bool {
	return l != nil && l.GetLevel() != zerolog.Disabled
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}
