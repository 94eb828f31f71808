package method

import (
	"fmt"
	"reflect"
)

// Signature describes how a function is called and how its results fold into
// a single value.
type Signature struct {
	In       []reflect.Type
	Variadic bool
	Results  int  // results besides the trailing error
	HasErr   bool // last result implements error
}

// ParseSignature inspects a function type.
//
// Supports shapes:
//   - func(...)
//   - func(...) T
//   - func(...) error
//   - func(...) (T, error)
//   - func(...) (T1, T2, ..., error)
func ParseSignature(fnType reflect.Type) (Signature, error) {
	if fnType == nil || fnType.Kind() != reflect.Func {
		return Signature{}, ErrNotAFunction
	}

	sig := Signature{
		In:       make([]reflect.Type, fnType.NumIn()),
		Variadic: fnType.IsVariadic(),
		Results:  fnType.NumOut(),
	}

	for i := range sig.In {
		sig.In[i] = fnType.In(i)
	}

	if n := fnType.NumOut(); n > 0 && isError(fnType.Out(n-1)) {
		sig.HasErr = true
		sig.Results--
	}

	return sig, nil
}

func (s Signature) paramType(i int) reflect.Type {
	if s.Variadic && i >= len(s.In)-1 {
		return s.In[len(s.In)-1].Elem()
	}

	return s.In[i]
}

func (s Signature) adapt(args []any) ([]reflect.Value, error) {
	switch n := len(s.In); {
	case s.Variadic && len(args) < n-1:
		return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrBadCall, n-1, len(args))
	case !s.Variadic && len(args) != n:
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrBadCall, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		v, err := adaptArg(arg, s.paramType(i))
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %v", ErrBadCall, i, err)
		}

		in[i] = v
	}

	return in, nil
}

func (s Signature) collect(out []reflect.Value) (any, error) {
	var err error
	if s.HasErr {
		last := out[len(out)-1]
		out = out[:len(out)-1]

		if !isNilValue(last) {
			err = last.Interface().(error)
		}
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		res := make([]any, len(out))
		for i, v := range out {
			res[i] = v.Interface()
		}

		return res, err
	}
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
