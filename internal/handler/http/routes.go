package http

import (
	"net/http"

	"github.com/MKhiriev/go-svc/internal/docs"
	"github.com/go-chi/chi/v5"
)

// Route paths of the v1 API.
const (
	HealthPath  = "/health"
	APIPrefix   = "/api/v1"
	InfoPath    = APIPrefix + "/info"
	VersionPath = APIPrefix + "/version"
)

// Setup mounts the API routes on r.
func (h *Handler) Setup(r chi.Router) error {
	r.Get(HealthPath, h.health)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/info", h.info)
		r.Get("/version", h.version)
	})

	h.logger.Debug().Str("prefix", APIPrefix).Msg("api v1 routes registered")

	return nil
}

// Operations describes the API routes for the documentation.
func (h *Handler) Operations() []docs.Route {
	return []docs.Route{
		{
			Method: http.MethodGet,
			Path:   HealthPath,
			Operation: docs.Operation{
				Summary:  "Service health check",
				Tags:     []string{"health"},
				Produces: []string{"application/json"},
				Responses: map[string]docs.Response{
					"200": {Description: "service is healthy"},
					"503": {Description: "service is unhealthy"},
				},
			},
		},
		{
			Method: http.MethodGet,
			Path:   InfoPath,
			Operation: docs.Operation{
				Summary:  "Running service description",
				Tags:     []string{"v1"},
				Produces: []string{"application/json"},
				Responses: map[string]docs.Response{
					"200": {Description: "service info"},
				},
			},
		},
		{
			Method: http.MethodGet,
			Path:   VersionPath,
			Operation: docs.Operation{
				Summary:  "API version",
				Tags:     []string{"v1"},
				Produces: []string{"text/plain"},
				Responses: map[string]docs.Response{
					"200": {Description: "semantic version"},
				},
			},
		},
	}
}
