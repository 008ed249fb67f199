package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-svc/internal/config"
	"github.com/MKhiriev/go-svc/internal/core"
	"github.com/MKhiriev/go-svc/internal/docs"
	"github.com/MKhiriev/go-svc/internal/logger"
	"github.com/MKhiriev/go-svc/internal/mock"
	"github.com/MKhiriev/go-svc/internal/state"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fakeSupervisor struct {
	level zerolog.Level
}

func (f fakeSupervisor) HasOutputs() bool        { return true }
func (f fakeSupervisor) GetLevel() zerolog.Level { return f.level }

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		API: config.API{
			Title:       "svc",
			Version:     "2.0.0",
			Description: "test service",
			Swagger:     config.Swagger{URL: "/api/doc"},
		},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0"},
		Logging: config.Logging{Format: logger.FormatJSON},
	}
}

func envLevel(value string) Option {
	return WithLookupEnv(func(key string) (string, bool) {
		if key == logger.EnvLoggingLevel && value != "" {
			return value, true
		}
		return "", false
	})
}

func restoreGlobalLevel(t *testing.T) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func newTestApp(t *testing.T, out *syncBuffer, opts ...Option) *App {
	t.Helper()
	restoreGlobalLevel(t)

	opts = append([]Option{WithOutput(out), WithRegistry(prometheus.NewRegistry())}, opts...)
	a, err := New(testConfig(), opts...)
	require.NoError(t, err)
	return a
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// accessURIs returns the uri field of every access record in out.
func accessURIs(t *testing.T, out string) []string {
	t.Helper()

	var uris []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		if e["logger"] != "access" {
			continue
		}
		uri, _ := e["uri"].(string)
		uris = append(uris, uri)
	}
	return uris
}

// ─────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}

func TestNew_CoreBoundAndStateFrozen(t *testing.T) {
	a := newTestApp(t, &syncBuffer{})

	c, ok := state.Get(a.State(), core.Key)
	require.True(t, ok)
	assert.Same(t, a.Core(), c)

	err := state.Set(a.State(), state.NewKey[string]("late"), "value")
	assert.ErrorIs(t, err, state.ErrFrozen)
}

func TestNew_CoreError(t *testing.T) {
	restoreGlobalLevel(t)

	cfg := testConfig()
	cfg.API.Version = ""

	_, err := New(cfg, WithOutput(&syncBuffer{}), WithRegistry(prometheus.NewRegistry()))
	assert.ErrorIs(t, err, core.ErrVersionIsNotSpecified)
}

func TestNew_RegistryConflict(t *testing.T) {
	restoreGlobalLevel(t)

	registry := prometheus.NewRegistry()
	_, err := New(testConfig(), WithOutput(&syncBuffer{}), WithRegistry(registry))
	require.NoError(t, err)

	_, err = New(testConfig(), WithOutput(&syncBuffer{}), WithRegistry(registry))
	assert.Error(t, err)
}

func TestNew_DocsDescribeEarlierRoutes(t *testing.T) {
	a := newTestApp(t, &syncBuffer{})

	rec := get(a.Handler(), "/api/doc/swagger.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc docs.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "svc", doc.Info.Title)
	assert.Equal(t, "2.0.0", doc.Info.Version)
	for _, path := range []string{"/health", "/metrics", "/api/v1/info", "/api/v1/version"} {
		item, ok := doc.Paths[path]
		require.True(t, ok, "%s missing from document", path)
		assert.Contains(t, item, "get")
	}
	assert.NotContains(t, doc.Paths, "/api/doc/swagger.json")
	assert.Equal(t, "Service health check", doc.Paths["/health"]["get"].Summary)

	ui := get(a.Handler(), "/api/doc")
	assert.Equal(t, http.StatusOK, ui.Code)
	assert.Contains(t, ui.Body.String(), "/api/doc/swagger.json")
}

func TestNew_SameCoreAcrossConcurrentRequests(t *testing.T) {
	a := newTestApp(t, &syncBuffer{})
	want := a.Core().InstanceID()

	const n = 16
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := get(a.Handler(), "/api/v1/info")
			var info core.Info
			if err := json.Unmarshal(rec.Body.Bytes(), &info); err == nil {
				ids <- info.InstanceID
			}
		}()
	}
	wg.Wait()
	close(ids)

	count := 0
	for id := range ids {
		assert.Equal(t, want, id)
		count++
	}
	assert.Equal(t, n, count)
}

func TestNew_MetricsCountRoutes(t *testing.T) {
	a := newTestApp(t, &syncBuffer{})

	get(a.Handler(), "/api/v1/version")
	get(a.Handler(), "/api/v1/version")

	rec := get(a.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`go_svc_http_requests_total{method="GET",route="/api/v1/version",status="200"} 2`)
}

// ─────────────────────────────────────────────
// Logging level & access filter
// ─────────────────────────────────────────────

func TestNew_LevelResolution(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want zerolog.Level
	}{
		{"default debug", []Option{envLevel("")}, zerolog.DebugLevel},
		{"env numeric", []Option{envLevel("20")}, zerolog.InfoLevel},
		{"env name", []Option{envLevel("error")}, zerolog.ErrorLevel},
		{"malformed env lenient", []Option{envLevel("loud")}, zerolog.DebugLevel},
		{"supervisor wins", []Option{envLevel("10"), WithSupervisor(fakeSupervisor{level: zerolog.WarnLevel})}, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, &syncBuffer{}, tt.opts...)
			assert.Equal(t, tt.want, a.Level())
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNew_ConfigLoggedOnlyAtDebug(t *testing.T) {
	quiet := &syncBuffer{}
	newTestApp(t, quiet, envLevel("40"))
	assert.NotContains(t, quiet.String(), "received configs")

	verbose := &syncBuffer{}
	newTestApp(t, verbose, envLevel("10"))
	assert.Contains(t, verbose.String(), "received configs")
}

func TestNew_StrictLevel(t *testing.T) {
	restoreGlobalLevel(t)

	cfg := testConfig()
	cfg.Logging.StrictLevel = true

	_, err := New(cfg, WithOutput(&syncBuffer{}), envLevel("loud"))
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestNew_ProbeTrafficSuppressedAboveDebug(t *testing.T) {
	out := &syncBuffer{}
	a := newTestApp(t, out, envLevel("20"))

	get(a.Handler(), "/health")
	get(a.Handler(), "/metrics")
	get(a.Handler(), "/api/v1/info")
	get(a.Handler(), "/health/")

	assert.Equal(t, []string{"/api/v1/info", "/health/"}, accessURIs(t, out.String()))
}

func TestNew_ProbeTrafficLoggedAtDebug(t *testing.T) {
	out := &syncBuffer{}
	a := newTestApp(t, out, envLevel("10"))

	get(a.Handler(), "/health")
	get(a.Handler(), "/metrics")

	assert.Equal(t, []string{"/health", "/metrics"}, accessURIs(t, out.String()))
}

func TestNew_FailingProbeLoggedAtWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockChecker(ctrl)
	checker.EXPECT().Name().Return("cache").AnyTimes()
	checker.EXPECT().Check(gomock.Any()).Return(errors.New("down"))

	out := &syncBuffer{}
	a := newTestApp(t, out, envLevel("warning"), WithCoreOptions(core.WithChecker(checker)))

	rec := get(a.Handler(), "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, []string{"/health"}, accessURIs(t, out.String()))
}

func TestNew_CustomAccessPolicy(t *testing.T) {
	out := &syncBuffer{}
	never := func(string, int, zerolog.Level) bool { return false }
	a := newTestApp(t, out, envLevel("10"), WithAccessPolicy(never))

	get(a.Handler(), "/api/v1/info")
	assert.Empty(t, accessURIs(t, out.String()))
}
