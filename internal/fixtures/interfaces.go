package fixtures

import (
	"interface-caster/cast"
	"interface-caster/contract"
	"interface-caster/typed"
)

var (
	TestInterface = contract.MustDefine("TestInterface",
		contract.Abstract("Method1", "Method2"),
		contract.Abstract("Method3"),
	)

	TestSubInterface = contract.MustDefine("TestSubInterface",
		contract.Extends(TestInterface),
		contract.Abstract("Method4"),
	)

	TestSubInterfaceWithOverride = contract.MustDefine("TestSubInterfaceWithOverride",
		contract.Extends(TestInterface),
		contract.Abstract("Method4"),
		contract.Implement("Method3", func(x int) int { return x * 2 }),
	)

	FullyImplemented = contract.MustDefine("FullyImplemented",
		contract.Extends(TestInterface),
		contract.Implement("Method1", func() {}),
		contract.Implement("Method2", func() {}),
		contract.Implement("Method3", func() {}),
	)

	WithExtra = contract.MustDefine("WithExtra",
		contract.Extends(TestInterface),
		contract.Optional("Extra"),
	)
)

// Conforming implements TestInterface structurally and caches its adapters.
type Conforming struct {
	cast.Cache
}

func (*Conforming) Method1() int      { return 1 }
func (*Conforming) Method2() int      { return 2 }
func (*Conforming) Method3(x int) int { return x * 4 }
func (*Conforming) String() string    { return "#<Conforming>" }

// ConformingWithExtra also implements the optional Extra.
type ConformingWithExtra struct {
	Conforming
}

func (*ConformingWithExtra) Extra() string { return "extra" }

// Uncached implements TestInterface without an adapter cache.
type Uncached struct{}

func (Uncached) Method1() int      { return 1 }
func (Uncached) Method2() int      { return 2 }
func (Uncached) Method3(x int) int { return x * 4 }

// NonConforming lacks Method3.
type NonConforming struct{}

func (*NonConforming) Method1() int   { return 1 }
func (*NonConforming) Method2() int   { return 2 }
func (*NonConforming) String() string { return "#<NonConforming>" }

// WithTypedAttributes declares Field1 readable and writable, and Field2
// write-only.
type WithTypedAttributes struct {
	*typed.Accessors
	Writers *typed.Writers

	field2 any
}

func NewWithTypedAttributes() *WithTypedAttributes {
	w := &WithTypedAttributes{
		Accessors: typed.Define(map[string]*contract.Interface{"Field1": TestInterface}),
	}

	w.Writers = typed.DefineWriteOnly(map[string]typed.Binding{
		"Field2": {Interface: TestInterface, Dst: &w.field2},
	})

	return w
}

// Field2 exposes the write-only field to tests in this module.
func (w *WithTypedAttributes) Field2() any { return w.field2 }
