// Command healthcheck probes a running server and exits 0 when it is
// healthy and 1 otherwise. It is meant for container HEALTHCHECK directives.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/go-svc/internal/logger"
	"github.com/MKhiriev/go-svc/internal/probe"
)

const (
	envProbeURL     = "PROBE_URL"
	defaultProbeURL = "http://127.0.0.1:5000"
)

func main() {
	url := defaultProbeURL
	if v, ok := os.LookupEnv(envProbeURL); ok && v != "" {
		url = v
	}

	flag.StringVar(&url, "url", url, "Base URL of the server")
	timeout := flag.Duration("timeout", 3*time.Second, "Request timeout")
	flag.Parse()

	log := logger.NewLogger("go-svc-healthcheck")

	if err := probe.Check(context.Background(), url, *timeout); err != nil {
		log.Error().Err(err).Str("url", url).Msg("health check failed")
		os.Exit(1)
	}
}
