package raiser

import (
	"context"
	"fmt"
)

// Handler is a compile-time-typed synchronous callback for a single-value
// event.
type Handler[T any] func(ctx context.Context, v T) error

// AsyncHandler is a compile-time-typed asynchronous-capable callback for a
// single-value event.
type AsyncHandler[T any] func(ctx context.Context, v T) <-chan error

// Event is a compile-time-typed view over one event name on a bus. It
// covers the common case of an event carrying a single value; events with
// multiple parameters use the untyped Args surface or generated bindings.
type Event[T any] struct {
	bus  *Bus
	name string
}

// Of returns a typed view of event name on bus b. A nil bus selects the
// package default.
func Of[T any](b *Bus, name string) Event[T] {
	if b == nil {
		b = Default()
	}
	return Event[T]{bus: b, name: name}
}

// Name returns the event name.
func (e Event[T]) Name() string {
	return e.name
}

// Subscribe registers fn and returns it unchanged. A raise whose argument
// is not a T reaches the diagnostics sink as a callback fault wrapping
// ErrArgumentMismatch; fn is not invoked for it.
func (e Event[T]) Subscribe(fn Handler[T]) Handler[T] {
	if fn == nil {
		return nil
	}
	e.bus.Subscribe(e.name, func(ctx context.Context, args Args) error {
		v, err := argValue[T](e.name, args)
		if err != nil {
			return err
		}
		return fn(ctx, v)
	})
	return fn
}

// SubscribeAsync registers fn and returns it unchanged.
func (e Event[T]) SubscribeAsync(fn AsyncHandler[T]) AsyncHandler[T] {
	if fn == nil {
		return nil
	}
	e.bus.SubscribeAsync(e.name, func(ctx context.Context, args Args) <-chan error {
		v, err := argValue[T](e.name, args)
		if err != nil {
			return asyncFault(err)
		}
		return fn(ctx, v)
	})
	return fn
}

// Raise dispatches v synchronously.
func (e Event[T]) Raise(ctx context.Context, v T) {
	e.bus.Raise(ctx, e.name, v)
}

// RaiseAsync dispatches v, awaiting each asynchronous callback in turn.
func (e Event[T]) RaiseAsync(ctx context.Context, v T) {
	e.bus.RaiseAsync(ctx, e.name, v)
}

func argValue[T any](event string, args Args) (T, error) {
	var zero T
	if len(args) != 1 {
		return zero, fmt.Errorf("%w: event %q: got %d arguments, want 1", ErrArgumentMismatch, event, len(args))
	}
	v, ok := args[0].(T)
	if !ok {
		return zero, fmt.Errorf("%w: event %q: argument is %T", ErrArgumentMismatch, event, args[0])
	}
	return v, nil
}
