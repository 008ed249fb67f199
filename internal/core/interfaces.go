// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package core

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/checker_mock.go -package=mock

// Checker reports the health of one dependency of the service.
type Checker interface {
	// Name identifies the dependency in health reports.
	Name() string

	// Check returns nil when the dependency is usable.
	Check(ctx context.Context) error
}
