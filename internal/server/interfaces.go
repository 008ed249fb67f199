package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// Listen binds the listen address and returns the bound address. It is
	// called by Run when the caller has not done so.
	Listen() (net.Addr, error)

	// Run serves requests until ctx is cancelled, then shuts the server down
	// gracefully. It returns nil after a clean shutdown.
	Run(ctx context.Context) error
}
