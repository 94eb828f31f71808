package typed

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"interface-caster/cast"
	"interface-caster/contract"
)

var (
	ErrUnknownField = fmt.Errorf("%w: unknown typed field", contract.ErrInterface)
	ErrNoInterface  = fmt.Errorf("%w: typed field has no interface", contract.ErrInterface)
)

// assign casts v to iface and stores the result in dst. Nil values are stored
// as they are. On a failed cast dst is left untouched.
func assign(iface *contract.Interface, dst *any, v any) error {
	if isNil(v) {
		*dst = v
		return nil
	}

	if iface == nil {
		return ErrNoInterface
	}

	res, err := cast.To(v, iface)
	if err != nil {
		return err
	}

	*dst = res

	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return false
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
}

// Slot is a single field whose non-nil values always conform to an interface.
type Slot struct {
	iface *contract.Interface
	value any
}

func NewSlot(iface *contract.Interface) *Slot {
	return &Slot{iface: iface}
}

func (s *Slot) Interface() *contract.Interface { return s.iface }

// Get returns the stored value: an adapter, a value already of the
// interface, or nil.
func (s *Slot) Get() any { return s.value }

// Set casts v to the slot's interface and stores the result.
func (s *Slot) Set(v any) error { return assign(s.iface, &s.value, v) }

// Accessors is a set of named typed fields with both read and write access.
type Accessors struct {
	slots map[string]*Slot
}

// Define declares typed fields, each bound to the interface its values are
// cast to on write.
func Define(fields map[string]*contract.Interface) *Accessors {
	a := &Accessors{slots: make(map[string]*Slot, len(fields))}
	for name, iface := range fields {
		a.slots[name] = NewSlot(iface)
	}

	return a
}

func (a *Accessors) Names() []string { return slices.Sorted(maps.Keys(a.slots)) }

func (a *Accessors) Get(name string) (any, error) {
	s, ok := a.slots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return s.Get(), nil
}

func (a *Accessors) Set(name string, v any) error {
	s, ok := a.slots[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return s.Set(v)
}

// Binding ties a write-only field to the variable holding its value.
type Binding struct {
	Interface *contract.Interface
	Dst       *any
}

// Writers is a set of named write-only typed fields. Values land in the
// variables of their bindings, which only the declaring container reads.
type Writers struct {
	bindings map[string]Binding
}

func DefineWriteOnly(fields map[string]Binding) *Writers {
	return &Writers{bindings: maps.Clone(fields)}
}

func (w *Writers) Set(name string, v any) error {
	b, ok := w.bindings[name]
	if !ok || b.Dst == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	return assign(b.Interface, b.Dst, v)
}
