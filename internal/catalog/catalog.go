package catalog

import (
	"fmt"
	"maps"
	"slices"

	"interface-caster/contract"
)

// Catalog holds the interfaces built from a File.
type Catalog struct {
	interfaces map[string]*contract.Interface
}

// Build validates f and defines every interface in it, parents first.
func Build(f *File) (*Catalog, error) {
	if diags := Validate(f); !diags.IsValid() {
		return nil, fmt.Errorf("invalid catalog: %w", diags.Error())
	}

	c := &Catalog{interfaces: make(map[string]*contract.Interface, len(f.Interfaces))}
	for i := range f.Interfaces {
		if _, err := c.define(f, &f.Interfaces[i]); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) define(f *File, def *Definition) (*contract.Interface, error) {
	if iface, ok := c.interfaces[def.Name]; ok {
		return iface, nil
	}

	parent := contract.Root
	if def.Extends != "" {
		var err error

		// Validate already rejected cycles and unknown parents
		parent, err = c.define(f, f.Find(def.Extends))
		if err != nil {
			return nil, err
		}
	}

	opts := []contract.Option{
		contract.Extends(parent),
		contract.Abstract(def.Abstract...),
		contract.Optional(def.Optional...),
	}

	for _, name := range slices.Sorted(maps.Keys(def.Defaults)) {
		opts = append(opts, contract.Implement(name, def.Defaults[name]))
	}

	iface, err := contract.Define(def.Name, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to define interface %s: %w", def.Name, err)
	}

	c.interfaces[def.Name] = iface

	return iface, nil
}

// Lookup returns the interface called name.
func (c *Catalog) Lookup(name string) (*contract.Interface, bool) {
	iface, ok := c.interfaces[name]
	return iface, ok
}

// Names returns the sorted names of all interfaces.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.interfaces))
}
