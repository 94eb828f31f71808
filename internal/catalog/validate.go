package catalog

import (
	"fmt"
	"maps"
	"slices"

	"interface-caster/internal/diagnostic"
	"interface-caster/internal/suggest"
)

// Validate checks a catalog for structural problems: unsupported versions,
// empty or duplicate names, unknown parents, inheritance cycles and defaults
// for methods that are neither declared nor inherited.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("catalog_is_nil", "catalog is nil", "", "")
		return res
	}

	if f.Version != SupportedVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported catalog version %q", f.Version), "", "")
	}

	seen := map[string]struct{}{}
	for i := range f.Interfaces {
		def := &f.Interfaces[i]
		if def.Name == "" {
			res.AddError("empty_interface_name", fmt.Sprintf("interface #%d has no name", i), "", "")
			continue
		}

		if _, ok := seen[def.Name]; ok {
			res.AddError("duplicate_interface", fmt.Sprintf("duplicate interface %q", def.Name), def.Name, "")
			continue
		}

		seen[def.Name] = struct{}{}

		for _, name := range append(slices.Clone(def.Abstract), def.Optional...) {
			if name == "" {
				res.AddError("empty_method_name", "empty method name", def.Name, "")
			}
		}
	}

	for i := range f.Interfaces {
		def := &f.Interfaces[i]
		if def.Name == "" {
			continue
		}

		if def.Extends != "" && f.Find(def.Extends) == nil {
			msg := fmt.Sprintf("parent %q is not defined", def.Extends)
			if hint, ok := suggest.Closest(def.Extends, slices.Sorted(maps.Keys(seen)), suggest.DefaultThreshold); ok {
				msg += fmt.Sprintf(", did you mean %q?", hint)
			}

			res.AddError("unknown_parent", msg, def.Name, "")

			continue
		}

		chain, state := ancestry(f, def)
		switch state {
		case chainCycle:
			res.AddError("inheritance_cycle", fmt.Sprintf("inheritance cycle through %q", def.Name), def.Name, "")
			continue
		case chainBroken:
			// reported as unknown_parent on the ancestor naming it
			continue
		}

		for name := range def.Defaults {
			if !declaredIn(chain, name) {
				res.AddError("unknown_default",
					fmt.Sprintf("default for %q which is neither declared nor inherited", name), def.Name, name)
			}
		}
	}

	return res
}

type chainState int

const (
	chainComplete chainState = iota
	chainCycle
	chainBroken              // some ancestor extends an undefined parent
)

// ancestry returns def followed by its ancestors. The chain is only returned
// when it is complete.
func ancestry(f *File, def *Definition) ([]*Definition, chainState) {
	var chain []*Definition

	visited := map[string]struct{}{}
	for cur := def; cur != nil; {
		if _, ok := visited[cur.Name]; ok {
			return nil, chainCycle
		}

		visited[cur.Name] = struct{}{}
		chain = append(chain, cur)

		if cur.Extends == "" {
			return chain, chainComplete
		}

		cur = f.Find(cur.Extends)
	}

	return nil, chainBroken
}

func declaredIn(chain []*Definition, name string) bool {
	for _, def := range chain {
		if slices.Contains(def.Abstract, name) || slices.Contains(def.Optional, name) {
			return true
		}
	}

	return false
}
