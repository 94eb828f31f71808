package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInterface is the root of the error taxonomy: every error produced by
// defining, instantiating or casting to an interface matches it with errors.Is.
var ErrInterface = errors.New("interface error")

var (
	ErrDefinition = fmt.Errorf("%w: invalid definition", ErrInterface)
	ErrNotAType   = fmt.Errorf("%w: not a class/type", ErrInterface)
	ErrNotAMember = fmt.Errorf("%w: assignment to non-abstract/non-optional member", ErrInterface)
	ErrNoMethod   = fmt.Errorf("%w: undefined method", ErrInterface)
)

// AbstractMethodInvokedError is returned when an abstract method is called on
// an instance that never received an implementation for it.
type AbstractMethodInvokedError struct {
	Interface string
	Method    string
}

func (e *AbstractMethodInvokedError) Error() string {
	return fmt.Sprintf("abstract method %s of %s called", e.Method, e.Interface)
}

func (e *AbstractMethodInvokedError) Is(target error) bool { return target == ErrInterface }

// NonConformingObjectError is returned when a subject lacks required methods
// of the interface it is cast to.
type NonConformingObjectError struct {
	Subject   string
	Interface string
	Missing   []string
}

func (e *NonConformingObjectError) Error() string {
	return fmt.Sprintf("%s does not conform to interface %s: expected methods not implemented: %s",
		e.Subject, e.Interface, strings.Join(e.Missing, ", "))
}

func (e *NonConformingObjectError) Is(target error) bool { return target == ErrInterface }

// NonConvertableObjectError is returned when a subject cannot be converted to
// a plain type, either because no conversion is registered for the type or the
// subject lacks the conversion operation. Err holds the failure of the
// conversion operation itself, if it ran.
type NonConvertableObjectError struct {
	Subject string
	Target  string
	Err     error
}

func (e *NonConvertableObjectError) Error() string {
	msg := fmt.Sprintf("don't know how to convert %s to %s", e.Subject, e.Target)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *NonConvertableObjectError) Unwrap() error { return e.Err }

func (e *NonConvertableObjectError) Is(target error) bool { return target == ErrInterface }

// Describe returns the display form of v used in error messages.
func Describe(v any) string {
	if v == nil {
		return "<nil>"
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprintf("%T(nil)", v)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	if rv.Kind() == reflect.Pointer {
		return fmt.Sprintf("%T@%p", v, v)
	}

	return fmt.Sprintf("%#v", v)
}
