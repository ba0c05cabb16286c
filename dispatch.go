package raiser

import (
	"context"
	"runtime/debug"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	spanKeyEventName = "event.name"
	spanKeyEventBus  = "event.bus"
	spanKeyRaiseID   = "raise.id"
)

const (
	metricSubscribed = "event.subscribed"
	metricRaised     = "event.raised"
	metricDelivered  = "event.delivered"
	metricErrors     = "event.callback_errors"
	metricNotAwaited = "event.async_not_awaited"
)

// Raise invokes every callback registered for event in registration order
// with the same arguments, on the caller's goroutine. Per-callback failures
// are isolated: a returned error or recovered panic produces one diagnostic
// notice and iteration continues. Asynchronous callbacks have only their
// synchronous entry point invoked; their continuation is not awaited and a
// "not awaited" warning is emitted for each.
//
// Dispatching an event name with no registered callbacks is a no-op. Raise
// never returns or propagates an error to the caller.
func (b *Bus) Raise(ctx context.Context, event string, args ...any) {
	b.dispatch(ctx, event, Args(args), false)
}

// RaiseAsync invokes every callback registered for event in registration
// order. Asynchronous callbacks are awaited: the dispatch receives from the
// completion channel before invoking the next callback, so no two callbacks
// of one invocation ever run concurrently with each other. Failure isolation
// matches Raise. A hanging asynchronous callback stalls the dispatch
// indefinitely; the core has no timeouts.
func (b *Bus) RaiseAsync(ctx context.Context, event string, args ...any) {
	b.dispatch(ctx, event, Args(args), true)
}

func (b *Bus) dispatch(ctx context.Context, event string, args Args, await bool) {
	// Copy at dispatch start so a callback registering another callback for
	// the same event cannot affect the in-flight iteration.
	subs := b.Lookup(event)
	if len(subs) == 0 {
		return
	}

	raiseID := NewID()
	ctx = withDispatch(ctx, event, raiseID, b.id)

	b.count(ctx, metricRaised, event)

	if b.tracingEnabled {
		tracer := otel.Tracer(b.name)
		spanName := event + ".raise"
		if await {
			spanName = event + ".raise.async"
		}
		var span trace.Span
		ctx, span = tracer.Start(ctx, spanName,
			trace.WithAttributes(
				attribute.String(spanKeyEventName, event),
				attribute.String(spanKeyEventBus, b.name),
				attribute.String(spanKeyRaiseID, raiseID)),
			trace.WithSpanKind(trace.SpanKindProducer))
		defer span.End()
	}

	for i := range subs {
		b.invoke(ctx, event, &subs[i], args, await)
	}
}

// invoke runs one callback with failure isolation.
func (b *Bus) invoke(ctx context.Context, event string, sub *Subscription, args Args, await bool) {
	if b.recoveryEnabled {
		defer func() {
			if v := recover(); v != nil {
				b.fault(ctx, event, &PanicError{Value: v, Stack: debug.Stack()})
			}
		}()
	}

	if sub.async != nil {
		done := sub.async(ctx, args)
		if !await {
			b.diag.AsyncNotAwaited(event)
			b.count(ctx, metricNotAwaited, event)
			return
		}
		if done != nil {
			if err := <-done; err != nil {
				b.fault(ctx, event, err)
				return
			}
		}
	} else {
		if err := sub.sync(ctx, args); err != nil {
			b.fault(ctx, event, err)
			return
		}
	}

	b.count(ctx, metricDelivered, event)
}

func (b *Bus) fault(ctx context.Context, event string, err error) {
	b.diag.CallbackError(event, err)
	b.count(ctx, metricErrors, event)
}

func (b *Bus) count(ctx context.Context, name, event string) {
	if !b.metricsEnabled {
		return
	}
	meter := otel.Meter(b.name)
	counter, err := meter.Int64Counter(name,
		metric.WithDescription(metricDescription(name)))
	if err != nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("event", event)))
}

func metricDescription(name string) string {
	switch name {
	case metricSubscribed:
		return "Total callbacks registered"
	case metricRaised:
		return "Total raise invocations"
	case metricDelivered:
		return "Total callbacks invoked to completion"
	case metricErrors:
		return "Total callback faults"
	case metricNotAwaited:
		return "Total async callbacks invoked without await"
	default:
		return ""
	}
}

func asyncFault(err error) <-chan error {
	done := make(chan error, 1)
	done <- err
	close(done)
	return done
}
