// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlerProvided = errors.New("no handler provided")
	errNoAddressProvided = errors.New("no listen address provided")

	// ErrListen wraps failures to bind the listen address.
	ErrListen = errors.New("error binding listen address")
)
