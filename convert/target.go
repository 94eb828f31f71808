package convert

import "reflect"

//go:generate go tool stringer -type=TargetEnum -output=target_string.go

type TargetEnum int

const (
	_ TargetEnum = iota // skip zero value, use it as a default (invalid) value for TargetEnum

	TargetSequence
	TargetText
	TargetSymbol
	TargetInteger
	TargetFloat
	TargetMapping

	// TargetTotal is a constant that represents the total number of targets defined
	TargetTotal = int(iota)
)

// Symbol is an interned-style name, the conversion target of ToSymbol.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Pair is one key/value entry of a mapping turned into a sequence.
type Pair struct {
	Key   any
	Value any
}

// Built-in conversion targets.
var (
	Sequence   = reflect.TypeFor[[]any]()
	Text       = reflect.TypeFor[string]()
	SymbolType = reflect.TypeFor[Symbol]()
	Integer    = reflect.TypeFor[int]()
	Float      = reflect.TypeFor[float64]()
	Mapping    = reflect.TypeFor[map[any]any]()
)

// Names of the source operations producing each target.
const (
	OpSequence = "ToSlice"
	OpText     = "String"
	OpSymbol   = "ToSymbol"
	OpInteger  = "ToInt"
	OpFloat    = "ToFloat"
	OpMapping  = "ToMap"
)

var table = [...]struct {
	rtype reflect.Type
	op    string
}{
	TargetSequence: {Sequence, OpSequence},
	TargetText:     {Text, OpText},
	TargetSymbol:   {SymbolType, OpSymbol},
	TargetInteger:  {Integer, OpInteger},
	TargetFloat:    {Float, OpFloat},
	TargetMapping:  {Mapping, OpMapping},
}

func (k TargetEnum) IsValid() bool {
	return k > 0 && int(k) < TargetTotal
}

// Type returns the Go type of the target, nil for an invalid target.
func (k TargetEnum) Type() reflect.Type {
	if !k.IsValid() {
		return nil
	}

	return table[k].rtype
}

// Operation returns the name of the source operation producing the target.
func (k TargetEnum) Operation() string {
	if !k.IsValid() {
		return ""
	}

	return table[k].op
}

func FromReflectType(rtype reflect.Type) TargetEnum {
	if rtype == nil {
		return 0
	}

	for k := TargetSequence; int(k) < TargetTotal; k++ {
		if table[k].rtype == rtype {
			return k
		}
	}

	return 0
}

// Lookup returns the operation a subject must expose to be converted to
// rtype, and false when no conversion is registered for it.
func Lookup(rtype reflect.Type) (string, bool) {
	k := FromReflectType(rtype)

	return k.Operation(), k.IsValid()
}
