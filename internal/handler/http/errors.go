// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrCoreNotBound is reported when a request arrives before the domain core
// was bound into the application state.
var ErrCoreNotBound = errors.New("core is not bound to application state")
