// Package spec defines the declarative event specification consumed by the
// raiser generator: an ordered list of event definitions, each with an
// ordered list of named, typed parameters.
//
// Specifications are immutable inputs. They can be declared in Go:
//
//	s := spec.Spec{
//	    spec.Event("on_temp", spec.P("temperature", reflect.TypeOf(float64(0)))),
//	    spec.Event("on_shutdown"),
//	}
//
// or loaded from the YAML artifact form with ParseYAML.
package spec

import (
	"reflect"
	"time"
)

// Param describes one declared event parameter. A nil Type means the
// parameter is unchecked.
type Param struct {
	Name string
	Type reflect.Type
}

// EventDef declares one event: its unique name and its ordered parameter
// descriptors. The descriptors define the call signature every callback and
// raise function for the event is expected to honor; the core treats them
// as documentation and introspection data.
type EventDef struct {
	Name   string
	Params []Param
}

// Spec is an ordered list of event definitions. Order is preserved through
// parsing and generation. Duplicate names resolve last-definition-wins, the
// same way regenerating into an already-populated namespace does.
type Spec []EventDef

// Event constructs an event definition.
func Event(name string, params ...Param) EventDef {
	return EventDef{Name: name, Params: params}
}

// P constructs a parameter descriptor.
func P(name string, t reflect.Type) Param {
	return Param{Name: name, Type: t}
}

// TypeOf maps a specification type tag to its Go type. Unknown or empty
// tags return nil, which parses as an unchecked parameter.
func TypeOf(tag string) reflect.Type {
	switch tag {
	case "string":
		return reflect.TypeOf("")
	case "int":
		return reflect.TypeOf(int(0))
	case "int32":
		return reflect.TypeOf(int32(0))
	case "int64":
		return reflect.TypeOf(int64(0))
	case "uint":
		return reflect.TypeOf(uint(0))
	case "uint64":
		return reflect.TypeOf(uint64(0))
	case "float32":
		return reflect.TypeOf(float32(0))
	case "float64", "float":
		return reflect.TypeOf(float64(0))
	case "bool":
		return reflect.TypeOf(false)
	case "bytes":
		return reflect.TypeOf([]byte(nil))
	case "time":
		return reflect.TypeOf(time.Time{})
	case "duration":
		return reflect.TypeOf(time.Duration(0))
	default:
		return nil
	}
}
