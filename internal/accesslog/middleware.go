package accesslog

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-svc/internal/logger"
	"github.com/MKhiriev/go-svc/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// Middleware writes one access record per request allowed by policy. The
// policy sees the level of log, which the composer pins to the process level.
//
// Records are emitted without a level so that the policy alone decides what
// is written. A nil policy means DefaultPolicy.
func Middleware(log *logger.Logger, policy Policy) func(http.Handler) http.Handler {
	if policy == nil {
		policy = DefaultPolicy
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			uri := r.RequestURI
			if uri == "" {
				uri = r.URL.RequestURI()
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			status := rw.Status()
			if !policy(r.URL.Path, status, log.GetLevel()) {
				return
			}

			traceID, _ := utils.GetTraceIDFromContext(r.Context())

			log.Log().
				Str("method", r.Method).
				Str("uri", uri).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Int("size", rw.size).
				Str("remote_addr", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Str("trace_id", traceID).
				Send()
		})
	}
}

// TraceID attaches a trace identifier to every request: the incoming
// X-Trace-ID header or a fresh UUIDv7. The identifier is echoed in the
// response header, stored in the context and added to the request-scoped
// logger obtainable with logger.FromRequest.
func TraceID(log *logger.Logger) func(http.Handler) http.Handler {
	ids := utils.NewUUIDGenerator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(traceIDHeader)
			if traceID == "" {
				traceID = ids.Generate()
			}

			l := log.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})

			ctx := utils.WithTraceID(r.Context(), traceID)
			ctx = l.WithContext(ctx)

			w.Header().Set(traceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
