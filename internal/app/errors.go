package app

import "errors"

var (
	// ErrNilConfig is returned by New when no configuration is supplied.
	ErrNilConfig = errors.New("no configuration provided")

	errSetupFailed = errors.New("error setting up sub-component")
)
