package raiser

import "log/slog"

// Diagnostics receives the non-fatal notices produced during dispatch. Every
// faulting callback invocation and every sync/async mismatch produces
// exactly one call; none of them ever surfaces as an error to the raiser's
// caller. Implementations must be safe for concurrent use if the host raises
// from multiple goroutines.
type Diagnostics interface {
	// CallbackError reports a callback execution fault: a returned error or
	// a recovered panic. Dispatch continues with the remaining callbacks.
	CallbackError(event string, err error)

	// AsyncNotAwaited reports that an asynchronous-capable callback was
	// invoked through the synchronous raiser and its continuation was not
	// awaited.
	AsyncNotAwaited(event string)
}

// slogDiagnostics is the default sink: one log line per notice through the
// bus logger.
type slogDiagnostics struct {
	logger *slog.Logger
}

func (d *slogDiagnostics) CallbackError(event string, err error) {
	d.logger.Error("callback failed", "event", event, "error", err)
}

func (d *slogDiagnostics) AsyncNotAwaited(event string) {
	d.logger.Warn("async callback invoked without await", "event", event)
}

// NopDiagnostics discards all notices.
type NopDiagnostics struct{}

func (NopDiagnostics) CallbackError(string, error) {}

func (NopDiagnostics) AsyncNotAwaited(string) {}
