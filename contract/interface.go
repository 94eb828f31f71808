package contract

import (
	"fmt"
	"maps"
	"slices"

	"interface-caster/method"
)

// Interface describes a contract: the names a conforming subject must
// implement (abstract), the names it may implement (optional) and concrete
// bodies this contract supplies itself. Interfaces form a single inheritance
// chain rooted at Root and never change after Define returns.
type Interface struct {
	name   string
	parent *Interface

	abstract map[string]struct{}
	optional map[string]struct{}
	concrete map[string]method.Func

	// resolved across the whole chain at definition time
	abstractMethods []string
	optionalMethods []string

	err error
}

// Root is the ancestor of every interface; it declares nothing.
var Root = &Interface{name: "Interface"}

// Option configures an interface while it is being defined.
type Option func(*Interface)

// Extends sets the parent interface. Without it the parent is Root.
func Extends(parent *Interface) Option {
	return func(i *Interface) {
		if parent == nil {
			i.fail(fmt.Errorf("%w: %s extends a nil interface", ErrDefinition, i.name))
			return
		}

		i.parent = parent
	}
}

// Abstract declares methods a conforming subject must implement. Calling one
// on an instance without an implementation yields AbstractMethodInvokedError.
func Abstract(names ...string) Option {
	return func(i *Interface) {
		for _, name := range names {
			if i.checkName(name) {
				i.abstract[name] = struct{}{}
			}
		}
	}
}

// Optional declares methods a conforming subject may implement.
func Optional(names ...string) Option {
	return func(i *Interface) {
		for _, name := range names {
			if i.checkName(name) {
				i.optional[name] = struct{}{}
			}
		}
	}
}

// Implement supplies a concrete body for name. The body is either a function,
// called with the call's arguments, or a constant returned on every call.
// Implementing an inherited abstract method removes it from the abstract set.
func Implement(name string, body any) Option {
	return func(i *Interface) {
		if i.checkName(name) {
			i.concrete[name] = method.Bind(body)
		}
	}
}

// Define declares a new interface.
func Define(name string, opts ...Option) (*Interface, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: interface name is empty", ErrDefinition)
	}

	i := &Interface{
		name:     name,
		parent:   Root,
		abstract: make(map[string]struct{}),
		optional: make(map[string]struct{}),
		concrete: make(map[string]method.Func),
	}

	for _, opt := range opts {
		opt(i)
	}

	if i.err != nil {
		return nil, i.err
	}

	i.resolve()

	return i, nil
}

// MustDefine is like Define but panics on error. It is meant for
// package-level interface declarations.
func MustDefine(name string, opts ...Option) *Interface {
	i, err := Define(name, opts...)
	if err != nil {
		panic(err)
	}

	return i
}

func (i *Interface) fail(err error) {
	if i.err == nil {
		i.err = err
	}
}

func (i *Interface) checkName(name string) bool {
	if name == "" {
		i.fail(fmt.Errorf("%w: %s declares an empty method name", ErrDefinition, i.name))
		return false
	}

	return true
}

func (i *Interface) resolve() {
	abstract := maps.Clone(i.abstract)
	for _, name := range i.parent.abstractMethods {
		if _, overridden := i.concrete[name]; !overridden {
			abstract[name] = struct{}{}
		}
	}

	optional := maps.Clone(i.optional)
	for _, name := range i.parent.optionalMethods {
		optional[name] = struct{}{}
	}

	i.abstractMethods = slices.Sorted(maps.Keys(abstract))
	i.optionalMethods = slices.Sorted(maps.Keys(optional))
}

func (i *Interface) Name() string { return i.name }

func (i *Interface) String() string { return i.name }

// Parent returns the parent interface, nil for Root.
func (i *Interface) Parent() *Interface { return i.parent }

// AbstractMethods returns the sorted names a conforming subject must implement.
func (i *Interface) AbstractMethods() []string { return slices.Clone(i.abstractMethods) }

// OptionalMethods returns the sorted names a conforming subject may implement.
func (i *Interface) OptionalMethods() []string { return slices.Clone(i.optionalMethods) }

// IsAbstract reports whether any abstract method is left unimplemented.
func (i *Interface) IsAbstract() bool { return len(i.abstractMethods) > 0 }

// IsA reports whether i is other or inherits from it.
func (i *Interface) IsA(other *Interface) bool {
	for cur := i; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}

	return false
}

// Declares reports whether name is an abstract or optional method of i.
func (i *Interface) Declares(name string) bool {
	_, abstract := slices.BinarySearch(i.abstractMethods, name)
	_, optional := slices.BinarySearch(i.optionalMethods, name)

	return abstract || optional
}

type memberKind int

const (
	memberNone memberKind = iota
	memberConcrete
	memberAbstract
	memberOptional
)

// member finds the closest declaration of name walking up the chain.
func (i *Interface) member(name string) (method.Func, memberKind) {
	for cur := i; cur != nil; cur = cur.parent {
		if fn, ok := cur.concrete[name]; ok {
			return fn, memberConcrete
		}

		if _, ok := cur.abstract[name]; ok {
			return nil, memberAbstract
		}

		if _, ok := cur.optional[name]; ok {
			return nil, memberOptional
		}
	}

	return nil, memberNone
}
