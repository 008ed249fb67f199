// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app composes the HTTP application.
//
// [New] resolves the logging level, configures process logging, installs the
// access-log filter, registers the API, metrics and documentation
// sub-components on a single chi router and finally constructs the domain
// core and binds it into the shared application state.
//
// Sub-components take part through the [Component] contract. A component may
// additionally contribute router middleware (installed before any route) and
// operation descriptions for the documentation.
package app
