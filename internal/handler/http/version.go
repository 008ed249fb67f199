package http

import (
	"net/http"

	"github.com/MKhiriev/go-svc/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	c, err := h.core()
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteText(w, c.Version(), http.StatusOK)
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	c, err := h.core()
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, c.Info(r.Context()), http.StatusOK)
}
