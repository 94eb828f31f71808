package convert

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		rtype reflect.Type
		op    string
		ok    bool
	}{
		{Sequence, OpSequence, true},
		{Text, OpText, true},
		{SymbolType, OpSymbol, true},
		{Integer, OpInteger, true},
		{Float, OpFloat, true},
		{Mapping, OpMapping, true},
		{reflect.TypeFor[time.Duration](), "", false},
		{reflect.TypeFor[int64](), "", false},
		{nil, "", false},
	}

	for _, tt := range tests {
		op, ok := Lookup(tt.rtype)
		assert.Equal(t, tt.ok, ok, "%v", tt.rtype)
		assert.Equal(t, tt.op, op, "%v", tt.rtype)
	}
}

func TestTargetEnum(t *testing.T) {
	assert.Equal(t, 7, TargetTotal)
	assert.Equal(t, "TargetInteger", TargetInteger.String())
	assert.Equal(t, "TargetEnum(0)", TargetEnum(0).String())
	assert.False(t, TargetEnum(0).IsValid())
	assert.Nil(t, TargetEnum(99).Type())
	assert.Equal(t, TargetMapping, FromReflectType(Mapping))
}

func call(t *testing.T, op string, subject any) any {
	t.Helper()

	fn, ok := Builtin(op, subject)
	require.True(t, ok, "%s on %T", op, subject)

	res, err := fn()
	require.NoError(t, err)

	return res
}

func TestBuiltin_Text(t *testing.T) {
	assert.Equal(t, "sym", call(t, OpText, Symbol("sym")))
	assert.Equal(t, "42", call(t, OpText, 42))
	assert.Equal(t, "7", call(t, OpText, uint8(7)))
	assert.Equal(t, "1.5", call(t, OpText, 1.5))
	assert.Equal(t, "true", call(t, OpText, true))
	assert.Equal(t, "raw", call(t, OpText, []byte("raw")))
	assert.Equal(t, "boom", call(t, OpText, errors.New("boom")))

	_, ok := Builtin(OpText, struct{}{})
	assert.False(t, ok)
}

func TestBuiltin_Symbol(t *testing.T) {
	assert.Equal(t, Symbol("name"), call(t, OpSymbol, "name"))
	assert.Equal(t, Symbol("name"), call(t, OpSymbol, Symbol("name")))

	_, ok := Builtin(OpSymbol, 1)
	assert.False(t, ok)
}

func TestBuiltin_Integer(t *testing.T) {
	tests := []struct {
		subject  any
		expected int
	}{
		{"1", 1},
		{"  -12abc", -12},
		{"1_000", 1000},
		{"abc", 0},
		{"", 0},
		{int8(-3), -3},
		{uint16(9), 9},
		{3.99, 3},
		{-3.99, -3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, call(t, OpInteger, tt.subject), "%#v", tt.subject)
	}

	fn, ok := Builtin(OpInteger, 1e300)
	require.True(t, ok)

	_, err := fn()
	assert.Error(t, err)

	fn, ok = Builtin(OpInteger, math.NaN())
	require.True(t, ok)

	_, err = fn()
	assert.Error(t, err)

	_, ok = Builtin(OpInteger, true)
	assert.False(t, ok)
}

func TestBuiltin_Float(t *testing.T) {
	assert.Equal(t, 1.5, call(t, OpFloat, "1.5kg"))
	assert.Equal(t, 100000.0, call(t, OpFloat, "1e5"))
	assert.Equal(t, 0.0, call(t, OpFloat, "kg"))
	assert.Equal(t, 2.0, call(t, OpFloat, 2))
	assert.Equal(t, float64(float32(0.25)), call(t, OpFloat, float32(0.25)))
}

func TestBuiltin_Sequence(t *testing.T) {
	assert.Equal(t, []any{Pair{Key: "a", Value: 1}}, call(t, OpSequence, map[string]int{"a": 1}))
	assert.Equal(t,
		[]any{Pair{Key: "a", Value: 1}, Pair{Key: "b", Value: 2}, Pair{Key: "c", Value: 3}},
		call(t, OpSequence, map[string]int{"c": 3, "a": 1, "b": 2}))
	assert.Equal(t, []any{1, 2}, call(t, OpSequence, []int{1, 2}))
	assert.Equal(t, []any{"x"}, call(t, OpSequence, [1]string{"x"}))

	_, ok := Builtin(OpSequence, "text")
	assert.False(t, ok)
}

func TestBuiltin_Mapping(t *testing.T) {
	assert.Equal(t, map[any]any{"a": 1}, call(t, OpMapping, map[string]int{"a": 1}))
	assert.Equal(t, map[any]any{"a": 1, "b": 2},
		call(t, OpMapping, []any{Pair{Key: "a", Value: 1}, []any{"b", 2}}))

	fn, ok := Builtin(OpMapping, []int{1, 2})
	require.True(t, ok)

	_, err := fn()
	assert.EqualError(t, err, "wrong element type int at 0 (expected pair)")

	fn, ok = Builtin(OpMapping, []any{[]any{[]int{1}, 2}})
	require.True(t, ok)

	_, err = fn()
	assert.Error(t, err)
}

func TestBuiltin_Unknown(t *testing.T) {
	_, ok := Builtin("ToDuration", "1s")
	assert.False(t, ok)

	_, ok = Builtin(OpText, nil)
	assert.False(t, ok)
}
