// Package probe checks a running instance through its health endpoint.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-svc/internal/utils"
)

// HealthPath is the endpoint queried by Check.
const HealthPath = "/health"

// ErrUnhealthy is returned when the endpoint answers with a non-200 status.
var ErrUnhealthy = errors.New("service is unhealthy")

// Check issues GET baseURL + HealthPath. It returns nil only for 200 OK.
func Check(ctx context.Context, baseURL string, timeout time.Duration) error {
	client := utils.NewHTTPClient(baseURL, timeout)

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(HealthPath)
	if err != nil {
		return fmt.Errorf("error requesting %s%s: %w", baseURL, HealthPath, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrUnhealthy, resp.StatusCode(), resp.String())
	}

	return nil
}
