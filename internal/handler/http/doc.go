// Package http implements the versioned (v1) HTTP API of the service.
//
// The API is registered on the application router through [Handler.Setup].
// Handlers obtain the shared domain core from the application state on every
// request; the state is handed to the package at registration time.
package http
