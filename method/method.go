package method

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrBadCall      = errors.New("operation called with incompatible arguments")
	ErrNotAFunction = errors.New("provided value is not a function")
)

// Func is the uniform shape of every operation: any arguments in, a single
// (possibly nil) result and an error out.
type Func func(args ...any) (any, error)

// Responder is implemented by dynamic objects that resolve operations by name
// at call time instead of through their Go method set.
type Responder interface {
	RespondsTo(name string) bool
	Call(name string, args ...any) (any, error)
}

// Bind turns v into a Func. Functions of any signature are called
// reflectively with the call's arguments, everything else becomes a constant
// operation that ignores its arguments.
func Bind(v any) Func {
	switch fn := v.(type) {
	case Func:
		return fn
	case func(args ...any) (any, error):
		return fn
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func && !rv.IsNil() {
		fn, err := FromValue(rv)
		if err == nil {
			return fn
		}
	}

	return Constant(v)
}

// Constant returns an operation yielding v on every call.
func Constant(v any) Func {
	return func(...any) (any, error) { return v, nil }
}

// FromValue wraps a reflected function (or bound method) into a Func.
func FromValue(fn reflect.Value) (Func, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, ErrNotAFunction
	}

	sig, err := ParseSignature(fn.Type())
	if err != nil {
		return nil, err
	}

	return func(args ...any) (any, error) {
		in, err := sig.adapt(args)
		if err != nil {
			return nil, err
		}

		return sig.collect(fn.Call(in))
	}, nil
}

// Of resolves the operation called name on subject. Responders are asked
// first; names they do not answer are searched through the exported method
// set, like any other value.
func Of(subject any, name string) (Func, bool) {
	if subject == nil || name == "" {
		return nil, false
	}

	if r, ok := subject.(Responder); ok && r.RespondsTo(name) {
		return func(args ...any) (any, error) {
			return r.Call(name, args...)
		}, true
	}

	m := reflect.ValueOf(subject).MethodByName(name)
	if !m.IsValid() {
		return nil, false
	}

	fn, err := FromValue(m)
	if err != nil {
		return nil, false
	}

	return fn, true
}

// RespondsTo reports whether subject exposes an operation called name.
func RespondsTo(subject any, name string) bool {
	_, ok := Of(subject, name)
	return ok
}

func adaptArg(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(t) {
		return v, nil
	}

	if isNumber(v.Kind()) && isNumber(t.Kind()) && v.CanConvert(t) {
		return v.Convert(t), nil
	}

	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", v.Type(), t)
}

func isNumber(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	default:
		return false
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
}
