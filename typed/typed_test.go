package typed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interface-caster/cast"
	"interface-caster/contract"
	"interface-caster/internal/fixtures"
	"interface-caster/typed"
)

func TestAccessors_ConvertsOnWrite(t *testing.T) {
	w := fixtures.NewWithTypedAttributes()

	require.NoError(t, w.Set("Field1", &fixtures.Conforming{}))

	got, err := w.Get("Field1")
	require.NoError(t, err)

	v, ok := got.(contract.Value)
	require.True(t, ok)
	assert.True(t, v.Descriptor().IsA(fixtures.TestInterface))
	assert.IsType(t, &cast.Adapter{}, got)
}

func TestAccessors_KeepsInterfaceValues(t *testing.T) {
	w := fixtures.NewWithTypedAttributes()
	full := fixtures.FullyImplemented.New()

	require.NoError(t, w.Set("Field1", full))

	got, err := w.Get("Field1")
	require.NoError(t, err)
	assert.Same(t, full, got)
}

func TestAccessors_NonConformingLeavesValue(t *testing.T) {
	w := fixtures.NewWithTypedAttributes()
	require.NoError(t, w.Set("Field1", &fixtures.Conforming{}))

	before, err := w.Get("Field1")
	require.NoError(t, err)

	err = w.Set("Field1", &fixtures.NonConforming{})
	assert.ErrorAs(t, err, new(*contract.NonConformingObjectError))

	after, err := w.Get("Field1")
	require.NoError(t, err)
	assert.Same(t, before, after)
}

func TestAccessors_Nil(t *testing.T) {
	w := fixtures.NewWithTypedAttributes()
	require.NoError(t, w.Set("Field1", &fixtures.Conforming{}))

	require.NoError(t, w.Set("Field1", nil))

	got, err := w.Get("Field1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// typed nil pointers are stored without casting as well
	var missing *fixtures.NonConforming
	require.NoError(t, w.Set("Field1", missing))

	got, err = w.Get("Field1")
	require.NoError(t, err)
	assert.Equal(t, missing, got)
}

func TestAccessors_UnknownField(t *testing.T) {
	w := fixtures.NewWithTypedAttributes()

	_, err := w.Get("Field9")
	assert.ErrorIs(t, err, typed.ErrUnknownField)

	err = w.Set("Field9", 1)
	assert.ErrorIs(t, err, typed.ErrUnknownField)
	assert.ErrorIs(t, err, contract.ErrInterface)

	assert.Equal(t, []string{"Field1"}, w.Names())
}

func TestWriters(t *testing.T) {
	w := fixtures.NewWithTypedAttributes()

	require.NoError(t, w.Writers.Set("Field2", &fixtures.Conforming{}))
	assert.IsType(t, &cast.Adapter{}, w.Field2())

	stored := w.Field2()
	err := w.Writers.Set("Field2", &fixtures.NonConforming{})
	assert.ErrorAs(t, err, new(*contract.NonConformingObjectError))
	assert.Same(t, stored, w.Field2())

	require.NoError(t, w.Writers.Set("Field2", nil))
	assert.Nil(t, w.Field2())

	err = w.Writers.Set("Field1", &fixtures.Conforming{})
	assert.ErrorIs(t, err, typed.ErrUnknownField)
}

func TestSlot(t *testing.T) {
	s := typed.NewSlot(fixtures.TestInterface)
	assert.Same(t, fixtures.TestInterface, s.Interface())
	assert.Nil(t, s.Get())

	subject := &fixtures.Conforming{}
	require.NoError(t, s.Set(subject))

	// the subject's cache hands out one adapter per interface
	first := s.Get()
	require.NoError(t, s.Set(subject))
	assert.Same(t, first, s.Get())

	var zero typed.Slot
	assert.ErrorIs(t, zero.Set(subject), typed.ErrNoInterface)
	assert.ErrorIs(t, zero.Set(subject), contract.ErrInterface)
	assert.NoError(t, zero.Set(nil))
}
