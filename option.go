package raiser

import "log/slog"

// config holds bus configuration (unexported)
type config struct {
	logger          *slog.Logger
	diag            Diagnostics
	tracingEnabled  bool
	metricsEnabled  bool
	recoveryEnabled bool
}

// Option option function for bus configuration
type Option func(*config)

// newConfig creates a config with defaults and applies provided options
func newConfig(opts ...Option) *config {
	o := &config{
		logger:          slog.Default(),
		tracingEnabled:  true,
		metricsEnabled:  true,
		recoveryEnabled: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the bus
func WithLogger(l *slog.Logger) Option {
	return func(o *config) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDiagnostics sets the notice sink for the bus. The default writes one
// line per notice through the bus logger.
func WithDiagnostics(d Diagnostics) Option {
	return func(o *config) {
		if d != nil {
			o.diag = d
		}
	}
}

// WithTracing enables/disables OpenTelemetry tracing for dispatch
func WithTracing(enabled bool) Option {
	return func(o *config) {
		o.tracingEnabled = enabled
	}
}

// WithMetrics enables/disables OpenTelemetry metrics for the bus
func WithMetrics(enabled bool) Option {
	return func(o *config) {
		o.metricsEnabled = enabled
	}
}

// WithRecovery enables/disables panic recovery in callbacks.
// Recovery should always be enabled, can be disabled while debugging.
func WithRecovery(enabled bool) Option {
	return func(o *config) {
		o.recoveryEnabled = enabled
	}
}
