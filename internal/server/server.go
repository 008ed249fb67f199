package server

import (
	"net/http"

	"github.com/MKhiriev/go-svc/internal/config"
	"github.com/MKhiriev/go-svc/internal/logger"
)

// NewServer creates the HTTP server for handler. Nothing is bound until
// Listen or Run is called.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandlerProvided
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoAddressProvided
	}

	return newHTTPServer(handler, cfg, logger), nil
}
