package raiser

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rbaliyan/raiser/spec"
)

// DefaultBusName is used when New is called with an empty name.
var DefaultBusName = "raiser"

var idCounter uint64

// NewID generates a new unique ID
func NewID() string {
	u, err := uuid.NewRandom()
	if err == nil {
		return u.String()
	}
	return strconv.FormatUint(atomic.AddUint64(&idCounter, 1), 10)
}

// Bus is the event registry and dispatcher. It maps event names to ordered
// callback lists; insertion order defines delivery order. All registry
// mutations are serialized, so a Bus is safe for concurrent use.
//
// Lifecycle: construct with New, use, Clear to reset, drop. Nothing is
// persisted.
type Bus struct {
	id              string
	name            string
	logger          *slog.Logger
	diag            Diagnostics
	tracingEnabled  bool
	metricsEnabled  bool
	recoveryEnabled bool

	mu      sync.RWMutex
	entries map[string][]Subscription
}

var defaultBus = New(DefaultBusName)

// Default returns the package-level default bus. It exists for ergonomics;
// nothing in the package requires it and callers are free to construct and
// pass their own Bus.
func Default() *Bus {
	return defaultBus
}

// New creates a new event bus.
func New(name string, opts ...Option) *Bus {
	o := newConfig(opts...)

	if name == "" {
		name = DefaultBusName
	}

	b := &Bus{
		id:              NewID(),
		name:            name,
		logger:          o.logger.With("component", "bus>"+name),
		diag:            o.diag,
		tracingEnabled:  o.tracingEnabled,
		metricsEnabled:  o.metricsEnabled,
		recoveryEnabled: o.recoveryEnabled,
		entries:         make(map[string][]Subscription),
	}
	if b.diag == nil {
		b.diag = &slogDiagnostics{logger: b.logger}
	}
	return b
}

// ID returns the bus ID
func (b *Bus) ID() string {
	return b.id
}

// Name returns the bus name
func (b *Bus) Name() string {
	return b.name
}

// Logger returns the bus logger
func (b *Bus) Logger() *slog.Logger {
	return b.logger
}

// Subscribe appends cb to the ordered callback list for event, creating the
// list if absent, and returns cb unchanged so it can be used as a wrapper
// without altering the original value. Registering the same callback twice
// produces two entries; both are invoked.
func (b *Bus) Subscribe(event string, cb Callback) Callback {
	if cb == nil {
		return nil
	}
	b.append(event, Subscription{
		ID:         NewID(),
		Registered: time.Now(),
		sync:       cb,
	})
	return cb
}

// SubscribeAsync appends an asynchronous-capable callback to the ordered
// list for event and returns cb unchanged. Delivery order is shared with
// synchronous callbacks: one list per event, registration order.
func (b *Bus) SubscribeAsync(event string, cb AsyncCallback) AsyncCallback {
	if cb == nil {
		return nil
	}
	b.append(event, Subscription{
		ID:         NewID(),
		Async:      true,
		Registered: time.Now(),
		async:      cb,
	})
	return cb
}

func (b *Bus) append(event string, sub Subscription) {
	b.mu.Lock()
	b.entries[event] = append(b.entries[event], sub)
	b.mu.Unlock()

	b.count(context.Background(), metricSubscribed, event)
	b.logger.Debug("callback registered", "event", event, "subscription", sub.ID, "async", sub.Async)
}

// Lookup returns a copy of the current ordered callback list for event.
// Unknown names yield an empty list, never an error.
func (b *Bus) Lookup(event string) []Subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()
	subs := b.entries[event]
	if len(subs) == 0 {
		return nil
	}
	out := make([]Subscription, len(subs))
	copy(out, subs)
	return out
}

// Subscribers returns the number of callbacks registered for event.
func (b *Bus) Subscribers(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries[event])
}

// Clear removes all entries for all event names, returning the bus to its
// initial empty state. Used primarily to reset state between independent
// test runs.
func (b *Bus) Clear() {
	b.mu.Lock()
	b.entries = make(map[string][]Subscription)
	b.mu.Unlock()

	b.logger.Debug("registry cleared")
}

// Snapshot returns a read-only copy of the full registry mapping for
// diagnostics and tests.
func (b *Bus) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(Snapshot, len(b.entries))
	for name, subs := range b.entries {
		cp := make([]Subscription, len(subs))
		copy(cp, subs)
		out[name] = cp
	}
	return out
}

// Subscribe registers cb on the default bus.
func Subscribe(event string, cb Callback) Callback {
	return defaultBus.Subscribe(event, cb)
}

// SubscribeAsync registers cb on the default bus.
func SubscribeAsync(event string, cb AsyncCallback) AsyncCallback {
	return defaultBus.SubscribeAsync(event, cb)
}

// Raise dispatches synchronously on the default bus.
func Raise(ctx context.Context, event string, args ...any) {
	defaultBus.Raise(ctx, event, args...)
}

// RaiseAsync dispatches asynchronously on the default bus.
func RaiseAsync(ctx context.Context, event string, args ...any) {
	defaultBus.RaiseAsync(ctx, event, args...)
}

// Clear wipes the default bus registry.
func Clear() {
	defaultBus.Clear()
}

// Generate produces bindings for s on the default bus.
func Generate(s spec.Spec) Bindings {
	return defaultBus.Generate(s)
}
