package app

import (
	"io"
	"os"

	"github.com/MKhiriev/go-svc/internal/accesslog"
	"github.com/MKhiriev/go-svc/internal/core"
	"github.com/MKhiriev/go-svc/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	supervisor  logger.Supervisor
	lookupEnv   func(string) (string, bool)
	output      io.Writer
	registry    *prometheus.Registry
	policy      accesslog.Policy
	coreOptions []core.Option
}

func defaultOptions() options {
	return options{
		lookupEnv: os.LookupEnv,
		output:    os.Stdout,
		policy:    accesslog.DefaultPolicy,
	}
}

// Option customizes New.
type Option func(*options)

// WithSupervisor hands over a logger pre-configured by a hosting process.
// When it has outputs its level becomes the process level.
func WithSupervisor(supervisor logger.Supervisor) Option {
	return func(o *options) {
		o.supervisor = supervisor
	}
}

// WithLookupEnv replaces os.LookupEnv for the level resolution.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		if lookup != nil {
			o.lookupEnv = lookup
		}
	}
}

// WithOutput sets the destination of process and access logs.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithRegistry registers the metrics collectors in registry instead of a
// fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithAccessPolicy replaces accesslog.DefaultPolicy.
func WithAccessPolicy(policy accesslog.Policy) Option {
	return func(o *options) {
		if policy != nil {
			o.policy = policy
		}
	}
}

// WithCoreOptions passes options to core.New.
func WithCoreOptions(opts ...core.Option) Option {
	return func(o *options) {
		o.coreOptions = append(o.coreOptions, opts...)
	}
}
