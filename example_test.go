package raiser_test

import (
	"context"
	"fmt"
	"reflect"

	"github.com/rbaliyan/raiser"
	"github.com/rbaliyan/raiser/spec"
)

func Example() {
	bus := raiser.TestBus(raiser.WithDiagnostics(raiser.NopDiagnostics{}))
	ctx := context.Background()

	s := spec.Spec{
		spec.Event("on_temp", spec.P("temperature", reflect.TypeOf(float64(0)))),
	}
	onTemp := bus.Generate(s)["on_temp"]

	onTemp.Subscribe(func(ctx context.Context, args raiser.Args) error {
		fmt.Println("temperature:", args[0])
		return nil
	})

	onTemp.Raise(ctx, 25.5)
	// Output:
	// temperature: 25.5
}

func ExampleBindings_MergeInto() {
	bus := raiser.TestBus()
	ctx := context.Background()

	s := spec.Spec{spec.Event("on_shutdown")}

	ns := make(map[string]any)
	bus.Generate(s).MergeInto(ns)

	ns["on_shutdown"].(func(raiser.Callback) raiser.Callback)(
		func(ctx context.Context, args raiser.Args) error {
			fmt.Println("shutting down")
			return nil
		})
	ns["raise_on_shutdown"].(func(context.Context, ...any))(ctx)
	// Output:
	// shutting down
}

func ExampleOf() {
	bus := raiser.TestBus()
	ctx := context.Background()

	temp := raiser.Of[float64](bus, "on_temp")
	temp.Subscribe(func(ctx context.Context, v float64) error {
		fmt.Printf("%.1f degrees\n", v)
		return nil
	})

	temp.Raise(ctx, 25.5)
	// Output:
	// 25.5 degrees
}
