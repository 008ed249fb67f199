package core

import "errors"

var (
	// ErrVersionIsNotSpecified is returned by New when the API version is empty.
	ErrVersionIsNotSpecified = errors.New("api version is not specified")
	// ErrUnhealthy is returned by Health when at least one checker fails.
	ErrUnhealthy = errors.New("service is unhealthy")
)
