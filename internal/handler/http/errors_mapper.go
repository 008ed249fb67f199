package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-svc/internal/core"
)

var errorStatusMap = map[error]int{
	core.ErrUnhealthy: http.StatusServiceUnavailable,
	ErrCoreNotBound:   http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
