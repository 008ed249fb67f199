package http

import (
	"net/http"

	"github.com/MKhiriev/go-svc/internal/logger"
	"github.com/MKhiriev/go-svc/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	c, err := h.core()
	if err == nil {
		err = c.Health(r.Context())
	}

	if err != nil {
		log.Warn().Err(err).Msg("health check failed")
		utils.WriteJSON(w, healthResponse{Status: "unavailable", Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
