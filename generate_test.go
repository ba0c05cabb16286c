package raiser

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rbaliyan/raiser/spec"
)

var (
	floatType  = reflect.TypeOf(float64(0))
	stringType = reflect.TypeOf("")
)

func tempSpec() spec.Spec {
	return spec.Spec{
		spec.Event("on_temp", spec.P("temperature", floatType)),
		spec.Event("on_login", spec.P("user", stringType), spec.P("attempts", reflect.TypeOf(int(0)))),
		spec.Event("on_shutdown"),
	}
}

func TestGenerate(t *testing.T) {
	rec := NewRecordingDiagnostics()
	bus := TestBus(WithDiagnostics(rec))
	ctx := context.Background()

	bindings := bus.Generate(tempSpec())
	if len(bindings) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(bindings))
	}

	onTemp, ok := bindings["on_temp"]
	if !ok {
		t.Fatal("missing on_temp binding")
	}
	if onTemp.Event != "on_temp" {
		t.Errorf("binding event = %q", onTemp.Event)
	}
	if len(onTemp.Params) != 1 || onTemp.Params[0].Name != "temperature" || onTemp.Params[0].Type != floatType {
		t.Errorf("binding params wrong: %+v", onTemp.Params)
	}

	t.Run("subscribe returns callback unchanged", func(t *testing.T) {
		cb := Callback(func(ctx context.Context, args Args) error { return nil })
		ret := onTemp.Subscribe(cb)
		if reflect.ValueOf(ret).Pointer() != reflect.ValueOf(cb).Pointer() {
			t.Error("generated Subscribe did not return the callback unchanged")
		}
	})

	t.Run("raise dispatches", func(t *testing.T) {
		var got []float64
		onTemp.Subscribe(func(ctx context.Context, args Args) error {
			got = append(got, args[0].(float64))
			return nil
		})
		onTemp.Raise(ctx, 25.5)
		onTemp.RaiseAsync(ctx, 26.0)
		if !cmp.Equal(got, []float64{25.5, 26.0}) {
			t.Errorf("raise values wrong: %v", got)
		}
		if len(rec.Faults()) != 0 {
			t.Errorf("valid raises produced notices: %v", rec.Faults())
		}
	})

	t.Run("generation does not touch the registry", func(t *testing.T) {
		before := bus.Subscribers("on_temp")
		bus.Generate(tempSpec())
		if got := bus.Subscribers("on_temp"); got != before {
			t.Errorf("regeneration changed registry state: %d -> %d", before, got)
		}
	})
}

func TestGenerateDuplicateLastWins(t *testing.T) {
	bus := TestBus()

	s := spec.Spec{
		spec.Event("dup", spec.P("a", stringType)),
		spec.Event("dup", spec.P("b", floatType)),
	}
	bindings := bus.Generate(s)
	if len(bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(bindings))
	}
	if p := bindings["dup"].Params; len(p) != 1 || p[0].Name != "b" {
		t.Errorf("expected last definition to win, got params %+v", p)
	}
}

func TestArgumentMismatchIsAdvisory(t *testing.T) {
	rec := NewRecordingDiagnostics()
	bus := TestBus(WithDiagnostics(rec))
	ctx := context.Background()

	onTemp := bus.Generate(tempSpec())["on_temp"]

	invocations := 0
	onTemp.Subscribe(func(ctx context.Context, args Args) error {
		invocations++
		return nil
	})

	t.Run("arity mismatch", func(t *testing.T) {
		rec.Reset()
		onTemp.Raise(ctx, 25.5, "extra")
		if invocations != 1 {
			t.Errorf("dispatch suppressed on mismatch: %d invocations", invocations)
		}
		faults := rec.FaultsFor("on_temp")
		if len(faults) != 1 || !errors.Is(faults[0].Err, ErrArgumentMismatch) {
			t.Errorf("expected one ErrArgumentMismatch notice, got %v", faults)
		}
	})

	t.Run("type mismatch", func(t *testing.T) {
		rec.Reset()
		onTemp.Raise(ctx, "not a float")
		faults := rec.FaultsFor("on_temp")
		if len(faults) != 1 || !errors.Is(faults[0].Err, ErrArgumentMismatch) {
			t.Errorf("expected one ErrArgumentMismatch notice, got %v", faults)
		}
	})

	t.Run("nil argument is unchecked", func(t *testing.T) {
		rec.Reset()
		onTemp.Raise(ctx, nil)
		if len(rec.FaultsFor("on_temp")) != 0 {
			t.Errorf("nil argument reported as mismatch: %v", rec.Faults())
		}
	})
}

func TestFuncs(t *testing.T) {
	bus := TestBus()

	funcs := bus.Generate(tempSpec()).Funcs()
	for _, key := range []string{
		"on_temp", "raise_on_temp", "raise_on_temp_async",
		"on_login", "raise_on_login", "raise_on_login_async",
		"on_shutdown", "raise_on_shutdown", "raise_on_shutdown_async",
	} {
		if _, ok := funcs[key]; !ok {
			t.Errorf("missing binding name %q", key)
		}
	}
	if len(funcs) != 9 {
		t.Errorf("expected 9 entries, got %d", len(funcs))
	}

	if _, ok := funcs["on_temp"].(func(Callback) Callback); !ok {
		t.Errorf("on_temp has wrong shape: %T", funcs["on_temp"])
	}
	if _, ok := funcs["raise_on_temp"].(func(context.Context, ...any)); !ok {
		t.Errorf("raise_on_temp has wrong shape: %T", funcs["raise_on_temp"])
	}
}

func TestMergeIntoOverwrites(t *testing.T) {
	bus := TestBus()
	ctx := context.Background()

	ns := map[string]any{
		"raise_on_temp": "stale",
		"unrelated":     42,
	}
	bus.Generate(tempSpec()).MergeInto(ns)

	if _, stale := ns["raise_on_temp"].(string); stale {
		t.Error("MergeInto did not overwrite prior binding")
	}
	if ns["unrelated"] != 42 {
		t.Error("MergeInto touched unrelated namespace entries")
	}

	// Merged functions stay bound to the generating bus.
	called := false
	bus.Subscribe("on_shutdown", func(ctx context.Context, args Args) error {
		called = true
		return nil
	})
	ns["raise_on_shutdown"].(func(context.Context, ...any))(ctx)
	if !called {
		t.Error("merged raise function did not dispatch")
	}
}
