package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates missing API metadata (title, version) or
	// a documentation URL that is not an absolute path.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidServerConfigs indicates an unusable listen address or a
	// negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLoggingConfigs indicates an unknown log output format.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
	// ErrUnsupportedConfigFile is returned for config files whose extension
	// is neither .json nor .yaml/.yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
