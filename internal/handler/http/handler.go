package http

import (
	"github.com/MKhiriev/go-svc/internal/core"
	"github.com/MKhiriev/go-svc/internal/logger"
	"github.com/MKhiriev/go-svc/internal/state"
)

type Handler struct {
	state *state.State

	logger *logger.Logger
}

func NewHandler(st *state.State, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		state:  st,
		logger: logger,
	}
}

// core returns the shared domain core bound into the application state.
func (h *Handler) core() (*core.Core, error) {
	c, ok := state.Get(h.state, core.Key)
	if !ok || c == nil {
		return nil, ErrCoreNotBound
	}
	return c, nil
}
