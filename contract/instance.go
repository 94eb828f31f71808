package contract

import (
	"fmt"
	"maps"
	"slices"

	"interface-caster/method"
)

// Value is an object typed as an interface.
type Value interface {
	method.Responder
	Descriptor() *Interface
}

// Instance is a free-standing implementation of an interface: a dispatch
// table of overrides on top of the interface's own declarations.
type Instance struct {
	iface     *Interface
	overrides map[string]method.Func
}

var _ Value = (*Instance)(nil)

// Instantiate builds an instance of i. Each override is a constant, returned
// verbatim on every call, or a function called with the call's arguments.
// Keys must name abstract or optional methods of i.
func (i *Interface) Instantiate(overrides map[string]any) (*Instance, error) {
	inst := &Instance{
		iface:     i,
		overrides: make(map[string]method.Func, len(overrides)),
	}

	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		if !i.Declares(name) {
			return nil, fmt.Errorf("%w: attempted to assign value to method %q which is not an abstract or optional method of %s",
				ErrNotAMember, name, i.name)
		}

		inst.overrides[name] = method.Bind(overrides[name])
	}

	return inst, nil
}

// New returns an instance of i without overrides.
func (i *Interface) New() *Instance {
	return &Instance{iface: i, overrides: map[string]method.Func{}}
}

func (in *Instance) Descriptor() *Interface { return in.iface }

// Call dispatches name: instance overrides first, then the closest
// declaration up the interface chain. Unimplemented optional methods return
// nil without error.
func (in *Instance) Call(name string, args ...any) (any, error) {
	if fn, ok := in.overrides[name]; ok {
		return fn(args...)
	}

	fn, kind := in.iface.member(name)
	switch kind {
	default:
		return nil, fmt.Errorf("%w: %s has no method %q", ErrNoMethod, in.iface.name, name)
	case memberConcrete:
		return fn(args...)
	case memberAbstract:
		return nil, &AbstractMethodInvokedError{Interface: in.iface.name, Method: name}
	case memberOptional:
		return nil, nil
	}
}

// RespondsTo reports whether name resolves to an override, a concrete body
// or an abstract stub.
func (in *Instance) RespondsTo(name string) bool {
	if _, ok := in.overrides[name]; ok {
		return true
	}

	_, kind := in.iface.member(name)

	return kind == memberConcrete || kind == memberAbstract
}

func (in *Instance) String() string {
	return "#<" + in.iface.name + ">"
}
