package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-svc/internal/config"
	"github.com/MKhiriev/go-svc/internal/logger"
	"github.com/MKhiriev/go-svc/internal/state"
	"github.com/MKhiriev/go-svc/internal/utils"
)

// Key is the well-known state key of the shared *Core.
var Key = state.NewKey[*Core]("core")

// Info is the public description of the running service.
type Info struct {
	Title       string    `json:"title"`
	Version     string    `json:"version"`
	Description string    `json:"description,omitempty"`
	InstanceID  string    `json:"instance_id"`
	StartedAt   time.Time `json:"started_at"`
	Uptime      string    `json:"uptime"`
}

// Core is safe for concurrent use; it is immutable after New.
type Core struct {
	title       string
	version     string
	description string
	instanceID  string
	startedAt   time.Time

	checkers []Checker
	now      func() time.Time

	logger *logger.Logger
}

// Option customizes a Core.
type Option func(*Core)

// WithChecker adds a health checker.
func WithChecker(checker Checker) Option {
	return func(c *Core) {
		c.checkers = append(c.checkers, checker)
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Core) {
		c.now = now
	}
}

// New builds the Core from the API configuration.
func New(cfg config.API, logger *logger.Logger, opts ...Option) (*Core, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	c := &Core{
		title:       cfg.Title,
		version:     cfg.Version,
		description: cfg.Description,
		instanceID:  utils.NewUUIDGenerator().Generate(),
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startedAt = c.now()

	logger.Info().
		Str("instance_id", c.instanceID).
		Str("version", c.version).
		Int("checkers", len(c.checkers)).
		Msg("core created")

	return c, nil
}

// InstanceID identifies this process instance.
func (c *Core) InstanceID() string {
	return c.instanceID
}

// Version returns the API version.
func (c *Core) Version() string {
	return c.version
}

// Uptime returns the time elapsed since the Core was built.
func (c *Core) Uptime() time.Duration {
	return c.now().Sub(c.startedAt)
}

// Info describes the running service.
func (c *Core) Info(_ context.Context) Info {
	return Info{
		Title:       c.title,
		Version:     c.version,
		Description: c.description,
		InstanceID:  c.instanceID,
		StartedAt:   c.startedAt,
		Uptime:      c.Uptime().Truncate(time.Second).String(),
	}
}

// Health runs every checker. The returned error wraps ErrUnhealthy and each
// failing checker's error.
func (c *Core) Health(ctx context.Context) error {
	var errs []error
	for _, checker := range c.checkers {
		if err := checker.Check(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", checker.Name(), err))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	err := errors.Join(append([]error{ErrUnhealthy}, errs...)...)
	c.logger.Warn().Err(err).Msg("health check failed")

	return err
}
