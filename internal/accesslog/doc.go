// Package accesslog implements request logging for the HTTP application.
//
// Every completed request is offered to a [Policy]. The default policy hides
// successful probe traffic (GET /health, GET /metrics answered with 200) unless
// the access logger runs at debug verbosity, so frequent infrastructure polls
// do not dominate the log while still being traceable when debugging.
package accesslog
