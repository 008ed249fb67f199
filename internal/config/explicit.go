package config

// Keys of the settings whose zero value is a real setting. A source that sets
// one of them explicitly overrides lower priority sources even with false or
// zero, which the non-zero merge cannot express.
const (
	keySwaggerDisableUI      = "API_SWAGGER_DISABLE_UI"
	keyServerReadTimeout     = "SERVER_READ_TIMEOUT"
	keyServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	keyServerIdleTimeout     = "SERVER_IDLE_TIMEOUT"
	keyServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	keyLoggingStrictLevel    = "LOGGING_STRICT_LEVEL"
)

var explicitFields = map[string]func(dst, src *StructuredConfig){
	keySwaggerDisableUI: func(dst, src *StructuredConfig) {
		dst.API.Swagger.DisableUI = src.API.Swagger.DisableUI
	},
	keyServerReadTimeout: func(dst, src *StructuredConfig) {
		dst.Server.ReadTimeout = src.Server.ReadTimeout
	},
	keyServerWriteTimeout: func(dst, src *StructuredConfig) {
		dst.Server.WriteTimeout = src.Server.WriteTimeout
	},
	keyServerIdleTimeout: func(dst, src *StructuredConfig) {
		dst.Server.IdleTimeout = src.Server.IdleTimeout
	},
	keyServerShutdownTimeout: func(dst, src *StructuredConfig) {
		dst.Server.ShutdownTimeout = src.Server.ShutdownTimeout
	},
	keyLoggingStrictLevel: func(dst, src *StructuredConfig) {
		dst.Logging.StrictLevel = src.Logging.StrictLevel
	},
}

// source is one configuration layer and the explicit keys it set.
type source struct {
	cfg      *StructuredConfig
	explicit []string
}

// applyExplicit copies the explicitly set fields of src into dst.
func (s source) applyExplicit(dst *StructuredConfig) {
	for _, key := range s.explicit {
		if apply, ok := explicitFields[key]; ok {
			apply(dst, s.cfg)
		}
	}
}
