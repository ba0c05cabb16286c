package raiser

import (
	"context"
	"fmt"
	"reflect"

	"github.com/rbaliyan/raiser/spec"
)

// Binding is the generated function set for one event: a matched pair of
// registration entry points and two raise entry points, all bound to the
// event name and the bus that generated them.
type Binding struct {
	// Event is the event name the binding is bound to.
	Event string

	// Params are the declared parameter descriptors, carried for
	// introspection. Raise and RaiseAsync check arguments against them and
	// report mismatches as advisory notices; dispatch proceeds regardless.
	Params []spec.Param

	// Subscribe registers a synchronous callback and returns it unchanged.
	Subscribe func(Callback) Callback

	// SubscribeAsync registers an asynchronous-capable callback and returns
	// it unchanged.
	SubscribeAsync func(AsyncCallback) AsyncCallback

	// Raise is the synchronous dispatch entry point.
	Raise func(ctx context.Context, args ...any)

	// RaiseAsync is the asynchronous dispatch entry point. It returns after
	// every callback, including asynchronous ones, has completed.
	RaiseAsync func(ctx context.Context, args ...any)
}

// Bindings maps event names to their generated function sets.
type Bindings map[string]Binding

// Binding name forms used by Funcs and MergeInto.
const (
	raisePrefix = "raise_"
	asyncSuffix = "_async"
)

// Generate synthesizes a Binding for every event definition in s, in order.
// Duplicate names resolve last-definition-wins. Generation only produces
// functions: registry state is never touched, so regenerating for an event
// accumulates no duplicate registrations.
func (b *Bus) Generate(s spec.Spec) Bindings {
	out := make(Bindings, len(s))
	for _, def := range s {
		out[def.Name] = b.bind(def)
	}
	return out
}

func (b *Bus) bind(def spec.EventDef) Binding {
	event := def.Name
	params := make([]spec.Param, len(def.Params))
	copy(params, def.Params)

	return Binding{
		Event:  event,
		Params: params,
		Subscribe: func(cb Callback) Callback {
			return b.Subscribe(event, cb)
		},
		SubscribeAsync: func(cb AsyncCallback) AsyncCallback {
			return b.SubscribeAsync(event, cb)
		},
		Raise: func(ctx context.Context, args ...any) {
			b.checkArgs(ctx, event, params, args)
			b.Raise(ctx, event, args...)
		},
		RaiseAsync: func(ctx context.Context, args ...any) {
			b.checkArgs(ctx, event, params, args)
			b.RaiseAsync(ctx, event, args...)
		},
	}
}

// checkArgs validates args against the declared descriptors. The
// descriptors are documentation, so a mismatch is an advisory notice, not a
// fault: one notice per raise call, and the caller's arguments still go out
// as given.
func (b *Bus) checkArgs(ctx context.Context, event string, params []spec.Param, args []any) {
	if err := matchArgs(params, args); err != nil {
		b.fault(ctx, event, err)
	}
}

func matchArgs(params []spec.Param, args []any) error {
	if len(args) != len(params) {
		return fmt.Errorf("%w: got %d arguments, declared %d", ErrArgumentMismatch, len(args), len(params))
	}
	for i, p := range params {
		if p.Type == nil || args[i] == nil {
			continue
		}
		if t := reflect.TypeOf(args[i]); !t.AssignableTo(p.Type) {
			return fmt.Errorf("%w: argument %q is %s, declared %s", ErrArgumentMismatch, p.Name, t, p.Type)
		}
	}
	return nil
}

// Funcs returns the generated functions keyed by binding name:
// "<name>" for Subscribe, "raise_<name>" for Raise and "raise_<name>_async"
// for RaiseAsync.
func (bs Bindings) Funcs() map[string]any {
	out := make(map[string]any, len(bs)*3)
	for name, b := range bs {
		out[name] = b.Subscribe
		out[raisePrefix+name] = b.Raise
		out[raisePrefix+name+asyncSuffix] = b.RaiseAsync
	}
	return out
}

// MergeInto writes the generated functions into the caller-supplied
// namespace, overwriting any prior entries with the same names. The caller
// owns ns; the generator never reaches into caller state on its own.
func (bs Bindings) MergeInto(ns map[string]any) {
	for k, v := range bs.Funcs() {
		ns[k] = v
	}
}
