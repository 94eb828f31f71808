package cast

import (
	"interface-caster/contract"
	"interface-caster/method"
)

// Adapter exposes the surface of an interface and forwards every abstract
// method, and every optional method the subject implements, to the subject.
type Adapter struct {
	*contract.Instance
	subject any
}

var _ contract.Value = (*Adapter)(nil)

func (a *Adapter) String() string {
	return "#<" + a.Descriptor().Name() + " adapter for " + contract.Describe(a.subject) + ">"
}

func adapt(subject any, iface *contract.Interface) (*Adapter, error) {
	overrides := make(map[string]any)

	var missing []string
	for _, name := range iface.AbstractMethods() {
		fn, ok := method.Of(subject, name)
		if !ok {
			missing = append(missing, name)
			continue
		}

		overrides[name] = fn
	}

	if len(missing) > 0 {
		return nil, &contract.NonConformingObjectError{
			Subject:   contract.Describe(subject),
			Interface: iface.Name(),
			Missing:   missing,
		}
	}

	for _, name := range iface.OptionalMethods() {
		if _, taken := overrides[name]; taken {
			continue
		}

		if fn, ok := method.Of(subject, name); ok {
			overrides[name] = fn
		}
	}

	inst, err := iface.Instantiate(overrides)
	if err != nil {
		return nil, err
	}

	return &Adapter{Instance: inst, subject: subject}, nil
}
