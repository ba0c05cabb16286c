package raiser

import (
	"sync"
	"time"
)

// TestBus creates a new bus configured for testing: metrics and tracing
// disabled. Pass additional options to override.
//
// Example:
//
//	rec := raiser.NewRecordingDiagnostics()
//	bus := raiser.TestBus(raiser.WithDiagnostics(rec))
func TestBus(opts ...Option) *Bus {
	base := []Option{
		WithMetrics(false),
		WithTracing(false),
	}
	return New("test-bus", append(base, opts...)...)
}

// CallbackFault records one callback-error notice observed during a test.
type CallbackFault struct {
	Event string
	Err   error
	Time  time.Time
}

// RecordingDiagnostics is a Diagnostics sink that captures every notice for
// assertions in tests.
type RecordingDiagnostics struct {
	mu         sync.Mutex
	faults     []CallbackFault
	notAwaited []string
}

// NewRecordingDiagnostics creates a recording sink.
func NewRecordingDiagnostics() *RecordingDiagnostics {
	return &RecordingDiagnostics{}
}

// CallbackError records the fault.
func (r *RecordingDiagnostics) CallbackError(event string, err error) {
	r.mu.Lock()
	r.faults = append(r.faults, CallbackFault{Event: event, Err: err, Time: time.Now()})
	r.mu.Unlock()
}

// AsyncNotAwaited records the warning.
func (r *RecordingDiagnostics) AsyncNotAwaited(event string) {
	r.mu.Lock()
	r.notAwaited = append(r.notAwaited, event)
	r.mu.Unlock()
}

// Faults returns a copy of all recorded callback faults.
func (r *RecordingDiagnostics) Faults() []CallbackFault {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CallbackFault, len(r.faults))
	copy(out, r.faults)
	return out
}

// FaultsFor returns recorded faults for a specific event.
func (r *RecordingDiagnostics) FaultsFor(event string) []CallbackFault {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []CallbackFault
	for _, f := range r.faults {
		if f.Event == event {
			out = append(out, f)
		}
	}
	return out
}

// NotAwaited returns a copy of the event names of all recorded "not
// awaited" warnings.
func (r *RecordingDiagnostics) NotAwaited() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.notAwaited))
	copy(out, r.notAwaited)
	return out
}

// Reset discards all recorded notices.
func (r *RecordingDiagnostics) Reset() {
	r.mu.Lock()
	r.faults = nil
	r.notAwaited = nil
	r.mu.Unlock()
}
