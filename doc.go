// Package raiser generates matched subscribe/raise function pairs from a
// declarative event specification, backed by an in-process event bus.
//
// The core is the Bus: an ordered-list-per-event-name registry of callbacks
// with two dispatch protocols. Raise invokes every callback for an event in
// registration order on the caller's goroutine. RaiseAsync does the same but
// waits for each asynchronous callback to complete before invoking the next.
// A faulting callback never stops delivery to the rest: its error (or
// recovered panic) is reported through the bus diagnostics sink and
// iteration continues.
//
// Basic example:
//
//	bus := raiser.New("sensors")
//
//	bus.Subscribe("on_temp", func(ctx context.Context, args raiser.Args) error {
//	    fmt.Println("temperature:", args[0])
//	    return nil
//	})
//
//	bus.Raise(ctx, "on_temp", 25.5)
//
// Generated bindings from a specification:
//
//	s := spec.Spec{
//	    spec.Event("on_temp", spec.P("temperature", reflect.TypeOf(float64(0)))),
//	}
//	bindings := bus.Generate(s)
//
//	onTemp := bindings["on_temp"]
//	onTemp.Subscribe(record)
//	onTemp.Raise(ctx, 25.5)
//
// Bindings.MergeInto writes the generated functions into a caller-supplied
// string-keyed namespace under "<name>", "raise_<name>" and
// "raise_<name>_async"; regenerating overwrites prior entries and never
// touches registered callbacks.
//
// Type safety:
// Of[T] provides a compile-time-typed view over a single-value event:
//
//	temp := raiser.Of[float64](bus, "on_temp")
//	temp.Subscribe(func(ctx context.Context, v float64) error {
//	    fmt.Println("temperature:", v)
//	    return nil
//	})
//	temp.Raise(ctx, 25.5)
//
// Sync/async interoperability:
// An AsyncCallback invoked through Raise runs its synchronous entry point
// only; the completion channel is not received from and one "not awaited"
// warning is emitted. RaiseAsync receives from the completion channel before
// moving on, so two async callbacks for one raise never run concurrently
// with each other.
//
// Bus Options:
//   - WithLogger: set logger for the bus.
//   - WithDiagnostics: set the notice sink. Default writes through the bus logger.
//   - WithTracing: enable/disable OpenTelemetry tracing. Default is true.
//   - WithMetrics: enable/disable OpenTelemetry metrics. Default is true.
//   - WithRecovery: enable/disable panic recovery in callbacks. Default is true.
//
// The registry lives from construction until Clear or drop; nothing is
// persisted. Dispatching an event name nobody registered for is a no-op,
// never an error.
package raiser
