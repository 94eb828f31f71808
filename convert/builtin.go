package convert

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"interface-caster/method"
	"interface-caster/utils"
)

// builtin conversions of plain Go values, keyed by operation name
var builtins = map[string]func(v reflect.Value) (method.Func, bool){
	OpSequence: toSequence,
	OpText:     toText,
	OpSymbol:   toSymbol,
	OpInteger:  toInteger,
	OpFloat:    toFloat,
	OpMapping:  toMapping,
}

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+(_\d+)*`)
	leadingFloat = regexp.MustCompile(`^[+-]?\d+(_\d+)*(\.\d+(_\d+)*)?([eE][+-]?\d+)?`)
)

// Builtin returns the operation op as natively supported by a plain Go value
// (strings, numbers, slices, maps...), and false when the value's kind has no
// such operation.
func Builtin(op string, subject any) (method.Func, bool) {
	if subject == nil {
		return nil, false
	}

	conv, ok := builtins[op]
	if !ok {
		return nil, false
	}

	return conv(reflect.ValueOf(subject))
}

func result(v any) (method.Func, bool) {
	return method.Constant(v), true
}

func failure(format string, args ...any) (method.Func, bool) {
	err := fmt.Errorf(format, args...)
	return func(...any) (any, error) { return nil, err }, true
}

func toText(v reflect.Value) (method.Func, bool) {
	if err, ok := v.Interface().(error); ok {
		return result(err.Error())
	}

	switch v.Kind() {
	default:
		return nil, false
	case reflect.String:
		return result(v.String())
	case reflect.Bool:
		return result(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return result(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return result(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		return result(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		return result(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			return nil, false
		}

		return result(string(v.Bytes()))
	}
}

func toSymbol(v reflect.Value) (method.Func, bool) {
	if v.Kind() != reflect.String {
		return nil, false
	}

	return result(Symbol(v.String()))
}

func toInteger(v reflect.Value) (method.Func, bool) {
	switch v.Kind() {
	default:
		return nil, false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return result(int(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > math.MaxInt {
			return failure("%d overflows int", v.Uint())
		}

		return result(int(v.Uint()))
	case reflect.Float32, reflect.Float64:
		f := math.Trunc(v.Float())
		// NaN is never in range
		if math.IsNaN(f) || !utils.IsInRange(float64(math.MinInt), f, math.Nextafter(float64(math.MaxInt), 0)) {
			return failure("%v overflows int", v.Float())
		}

		return result(int(f))
	case reflect.String:
		digits := leadingInt.FindString(strings.TrimLeft(v.String(), " \t\n\r"))
		if digits == "" {
			return result(0)
		}

		n, err := strconv.Atoi(strings.ReplaceAll(digits, "_", ""))
		if err != nil {
			return failure("%q: %w", v.String(), err)
		}

		return result(n)
	}
}

func toFloat(v reflect.Value) (method.Func, bool) {
	switch v.Kind() {
	default:
		return nil, false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return result(float64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return result(float64(v.Uint()))
	case reflect.Float32, reflect.Float64:
		return result(v.Float())
	case reflect.String:
		digits := leadingFloat.FindString(strings.TrimLeft(v.String(), " \t\n\r"))
		if digits == "" {
			return result(0.0)
		}

		f, err := strconv.ParseFloat(strings.ReplaceAll(digits, "_", ""), 64)
		if err != nil {
			return failure("%q: %w", v.String(), err)
		}

		return result(f)
	}
}

func toSequence(v reflect.Value) (method.Func, bool) {
	switch v.Kind() {
	default:
		return nil, false
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}

		return result(out)
	case reflect.Map:
		return result(sortedPairs(v))
	}
}

// sortedPairs orders map entries by the printed form of their keys.
func sortedPairs(v reflect.Value) []any {
	type entry struct {
		sortKey string
		pair    Pair
	}

	entries := make([]entry, 0, v.Len())
	for iter := v.MapRange(); iter.Next(); {
		k, val := iter.Key().Interface(), iter.Value().Interface()
		entries = append(entries, entry{sortKey: fmt.Sprint(k), pair: Pair{Key: k, Value: val}})
	}

	slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.sortKey, b.sortKey) })

	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.pair
	}

	return out
}

func toMapping(v reflect.Value) (method.Func, bool) {
	switch v.Kind() {
	default:
		return nil, false
	case reflect.Map:
		out := make(map[any]any, v.Len())
		for iter := v.MapRange(); iter.Next(); {
			out[iter.Key().Interface()] = iter.Value().Interface()
		}

		return result(out)
	case reflect.Slice, reflect.Array:
		out := make(map[any]any, v.Len())
		for i := range v.Len() {
			k, val, ok := pairOf(v.Index(i).Interface())
			if !ok {
				return failure("wrong element type %T at %d (expected pair)", v.Index(i).Interface(), i)
			}

			if k != nil && !reflect.TypeOf(k).Comparable() {
				return failure("unhashable key %T at %d", k, i)
			}

			out[k] = val
		}

		return result(out)
	}
}

func pairOf(elem any) (key, value any, ok bool) {
	switch p := elem.(type) {
	case Pair:
		return p.Key, p.Value, true
	case []any:
		if len(p) != 2 {
			return nil, nil, false
		}

		return p[0], p[1], true
	case [2]any:
		return p[0], p[1], true
	}

	return nil, nil, false
}
