// Package server runs the application's HTTP transport.
//
// It binds the listener, serves the composed application handler and shuts
// the server down gracefully once the run context is cancelled.
package server
