// Package core contains the domain object shared by every request handler.
//
// A single *Core is built from configuration during startup and bound into
// the application state under [Key]. It describes the running service and
// aggregates health checks contributed by the rest of the process.
package core
