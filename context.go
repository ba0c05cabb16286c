package raiser

import "context"

type contextKey int

const dispatchContextKey contextKey = iota

type dispatchContextData struct {
	event   string
	raiseID string
	source  string
}

// withDispatch stamps ctx with the identity of the current raise invocation
// before callbacks run.
func withDispatch(ctx context.Context, event, raiseID, source string) context.Context {
	return context.WithValue(ctx, dispatchContextKey, &dispatchContextData{
		event:   event,
		raiseID: raiseID,
		source:  source,
	})
}

// ContextEventName returns the event name of the raise invocation that
// delivered the current callback, or "" outside of dispatch.
func ContextEventName(ctx context.Context) string {
	if d, ok := ctx.Value(dispatchContextKey).(*dispatchContextData); ok {
		return d.event
	}
	return ""
}

// ContextRaiseID returns the unique ID of the current raise invocation, or
// "" outside of dispatch. All callbacks of one invocation observe the same
// ID.
func ContextRaiseID(ctx context.Context) string {
	if d, ok := ctx.Value(dispatchContextKey).(*dispatchContextData); ok {
		return d.raiseID
	}
	return ""
}

// ContextSource returns the ID of the bus that raised the current event, or
// "" outside of dispatch.
func ContextSource(ctx context.Context) string {
	if d, ok := ctx.Value(dispatchContextKey).(*dispatchContextData); ok {
		return d.source
	}
	return ""
}
