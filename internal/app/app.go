package app

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-svc/internal/accesslog"
	"github.com/MKhiriev/go-svc/internal/config"
	"github.com/MKhiriev/go-svc/internal/core"
	"github.com/MKhiriev/go-svc/internal/docs"
	apihttp "github.com/MKhiriev/go-svc/internal/handler/http"
	"github.com/MKhiriev/go-svc/internal/logger"
	"github.com/MKhiriev/go-svc/internal/metrics"
	"github.com/MKhiriev/go-svc/internal/state"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Role is the "role" field of every process log record.
const Role = "go-svc"

// Component is a sub-component registered on the application router.
type Component interface {
	Setup(r chi.Router) error
}

// MiddlewareProvider is implemented by components that instrument every
// request. Their middleware is installed before any route is registered.
type MiddlewareProvider interface {
	Middleware() func(http.Handler) http.Handler
}

// OperationsProvider is implemented by components that describe their routes
// for the documentation.
type OperationsProvider interface {
	Operations() []docs.Route
}

// App is the composed application.
type App struct {
	router chi.Router
	state  *state.State
	core   *core.Core
	level  zerolog.Level

	logger *logger.Logger
}

// New composes the application from cfg. Every step runs exactly once and in
// order; the first failure aborts composition.
func New(cfg *config.StructuredConfig, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	level, err := logger.LevelResolver{
		Supervisor: o.supervisor,
		LookupEnv:  o.lookupEnv,
		Strict:     cfg.Logging.StrictLevel,
	}.Resolve()
	if err != nil {
		return nil, fmt.Errorf("error resolving logging level: %w", err)
	}

	log := logger.New(Role, level, o.output, cfg.Logging.Format)
	accessLog := log.Named("access", level)
	log.Info().Str("level", level.String()).Msg("logging configured")
	log.Debug().Any("config", cfg).Msg("received configs")

	st := state.New()

	m, err := metrics.New(o.registry)
	if err != nil {
		return nil, fmt.Errorf("error creating metrics: %w", err)
	}

	components := []Component{
		apihttp.NewHandler(st, log),
		m,
	}

	r := chi.NewRouter()
	r.Use(
		accesslog.TraceID(log),
		accesslog.Middleware(accessLog, o.policy),
		middleware.Recoverer,
	)
	for _, c := range components {
		if mp, ok := c.(MiddlewareProvider); ok {
			r.Use(mp.Middleware())
		}
	}

	var routes []docs.Route
	for _, c := range components {
		if err := c.Setup(r); err != nil {
			return nil, fmt.Errorf("%w %T: %w", errSetupFailed, c, err)
		}
		if op, ok := c.(OperationsProvider); ok {
			routes = append(routes, op.Operations()...)
		}
	}

	apiDocs := docs.New(docs.Options{
		Title:       cfg.API.Title,
		Version:     cfg.API.Version,
		Description: cfg.API.Description,
		URL:         cfg.API.Swagger.URL,
		DisableUI:   cfg.API.Swagger.DisableUI,
		Routes:      routes,
	})
	if err := apiDocs.Setup(r); err != nil {
		return nil, fmt.Errorf("%w %T: %w", errSetupFailed, apiDocs, err)
	}

	c, err := core.New(cfg.API, log, o.coreOptions...)
	if err != nil {
		return nil, fmt.Errorf("error creating core: %w", err)
	}
	if err := state.Set(st, core.Key, c); err != nil {
		return nil, fmt.Errorf("error binding core: %w", err)
	}
	st.Freeze()

	log.Info().
		Str("docs", apiDocs.SpecPath()).
		Int("operations", len(apiDocs.Document().Operations())).
		Msg("application composed")

	return &App{
		router: r,
		state:  st,
		core:   c,
		level:  level,
		logger: log,
	}, nil
}

// Handler returns the application router.
func (a *App) Handler() http.Handler {
	return a.router
}

// State returns the frozen application state.
func (a *App) State() *state.State {
	return a.state
}

// Core returns the domain core bound into the state.
func (a *App) Core() *core.Core {
	return a.core
}

// Logger returns the process logger.
func (a *App) Logger() *logger.Logger {
	return a.logger
}

// Level returns the resolved process logging level.
func (a *App) Level() zerolog.Level {
	return a.level
}
