package cast

import (
	"fmt"
	"reflect"

	"interface-caster/contract"
	"interface-caster/convert"
	"interface-caster/method"
)

// To casts subject to target, which must be a *contract.Interface or a
// reflect.Type.
//
// Values already of the target type are returned unchanged. For an interface
// target the result is an *Adapter delegating to subject, cached on subjects
// embedding a Cache. For any other type the conversion table decides which
// operation of subject produces the result.
func To(subject any, target any) (any, error) {
	switch t := target.(type) {
	case *contract.Interface:
		if t != nil {
			return toInterface(subject, t)
		}
	case reflect.Type:
		return toType(subject, t)
	}

	return nil, fmt.Errorf("%w: %v", contract.ErrNotAType, target)
}

// As casts subject to an interface.
func As(subject any, iface *contract.Interface) (contract.Value, error) {
	if iface == nil {
		return nil, fmt.Errorf("%w: nil interface", contract.ErrNotAType)
	}

	res, err := toInterface(subject, iface)
	if err != nil {
		return nil, err
	}

	return res.(contract.Value), nil
}

// Conforms returns the abstract methods of iface that subject is missing,
// nil when a cast would succeed.
func Conforms(subject any, iface *contract.Interface) []string {
	if isA(subject, iface) {
		return nil
	}

	var missing []string
	for _, name := range iface.AbstractMethods() {
		if !method.RespondsTo(subject, name) {
			missing = append(missing, name)
		}
	}

	return missing
}

func isA(subject any, iface *contract.Interface) bool {
	v, ok := subject.(contract.Value)
	return ok && v.Descriptor().IsA(iface)
}

func toInterface(subject any, iface *contract.Interface) (any, error) {
	if isA(subject, iface) {
		return subject, nil
	}

	build := func() (*Adapter, error) { return adapt(subject, iface) }

	var (
		a   *Adapter
		err error
	)
	if c, ok := subject.(Cacheable); ok && !isNilPointer(subject) {
		a, err = c.AdapterCache().load(iface, build)
	} else {
		a, err = build()
	}

	if err != nil {
		return nil, err
	}

	return a, nil
}

func toType(subject any, target reflect.Type) (any, error) {
	if subject != nil {
		st := reflect.TypeOf(subject)
		if st == target || (target.Kind() == reflect.Interface && st.Implements(target)) {
			return subject, nil
		}
	}

	op, ok := convert.Lookup(target)
	if !ok {
		return nil, nonConvertable(subject, target, nil)
	}

	fn, ok := method.Of(subject, op)
	if !ok {
		fn, ok = convert.Builtin(op, subject)
	}

	if !ok {
		return nil, nonConvertable(subject, target, nil)
	}

	res, err := fn()
	if err != nil {
		return nil, nonConvertable(subject, target, err)
	}

	return res, nil
}

func nonConvertable(subject any, target reflect.Type, err error) error {
	return &contract.NonConvertableObjectError{
		Subject: contract.Describe(subject),
		Target:  target.String(),
		Err:     err,
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
