package raiser

import (
	"context"
	"time"
)

// Args is the positional argument list delivered to every callback of one
// raise invocation. Callbacks own their own argument handling; the bus
// passes the slice through untouched.
type Args []any

// Callback is a synchronous callback. A non-nil error is reported to the
// bus diagnostics sink and never propagated to the raiser's caller.
type Callback func(ctx context.Context, args Args) error

// AsyncCallback is an asynchronous-capable callback. The function call
// itself is the synchronous entry point; the returned channel is the
// asynchronous continuation and resolves exactly once when the callback
// completes. A nil channel is treated as immediate successful completion.
//
// Raise invokes the entry point without receiving from the channel.
// RaiseAsync receives from it before invoking the next callback.
type AsyncCallback func(ctx context.Context, args Args) <-chan error

// Subscription describes one registered callback. The zero value is not
// useful; subscriptions are created by Subscribe and SubscribeAsync.
type Subscription struct {
	ID         string    `json:"id"`
	Async      bool      `json:"async"`
	Registered time.Time `json:"registered_at"`

	sync  Callback
	async AsyncCallback
}

// Snapshot is a read-only copy of the full registry mapping, keyed by event
// name. Mutating it has no effect on the bus.
type Snapshot map[string][]Subscription

// Events returns the event names present in the snapshot.
func (s Snapshot) Events() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Count returns the number of callbacks registered for event.
func (s Snapshot) Count(event string) int {
	return len(s[event])
}
