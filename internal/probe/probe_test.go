package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthServer(t *testing.T, status int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != HealthPath {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"status":"x"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_Healthy(t *testing.T) {
	srv := newHealthServer(t, http.StatusOK)

	require.NoError(t, Check(context.Background(), srv.URL, time.Second))
}

func TestCheck_TrailingSlashBaseURL(t *testing.T) {
	srv := newHealthServer(t, http.StatusOK)

	assert.NoError(t, Check(context.Background(), srv.URL+"/", time.Second))
}

func TestCheck_Unhealthy(t *testing.T) {
	srv := newHealthServer(t, http.StatusServiceUnavailable)

	err := Check(context.Background(), srv.URL, time.Second)
	require.ErrorIs(t, err, ErrUnhealthy)
	assert.Contains(t, err.Error(), "503")
}

func TestCheck_Unreachable(t *testing.T) {
	srv := newHealthServer(t, http.StatusOK)
	url := srv.URL
	srv.Close()

	err := Check(context.Background(), url, time.Second)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnhealthy)
}

func TestCheck_CancelledContext(t *testing.T) {
	srv := newHealthServer(t, http.StatusOK)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, Check(ctx, srv.URL, time.Second))
}
