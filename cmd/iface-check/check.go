package main

import (
	"fmt"
	"strings"

	"interface-caster/internal/analyze"
	"interface-caster/internal/catalog"
	"interface-caster/internal/diagnostic"
	"interface-caster/internal/suggest"
	"interface-caster/utils"
)

// checkOptions narrows a check to one interface and/or one type.
type checkOptions struct {
	Interface string
	Type      string // "Name", "pkg.Name" or "import/path.Name"
}

// check reports, for every analyzed type, which catalog interfaces its value
// or pointer method set satisfies.
func check(graph *analyze.TypeGraph, cat *catalog.Catalog, opts checkOptions) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	names := cat.Names()
	if opts.Interface != "" {
		if _, ok := cat.Lookup(opts.Interface); !ok {
			diags.AddError("unknown_interface",
				"interface is not declared in the catalog", opts.Interface, "")

			return diags
		}

		names = []string{opts.Interface}
	}

	matched := 0
	for _, info := range graph.Sorted() {
		if !matchesType(info.ID, opts.Type) || info.Kind == analyze.TypeKindInterface {
			continue
		}

		matched++

		for _, name := range names {
			iface, _ := cat.Lookup(name)
			required := iface.AbstractMethods()

			switch missing := info.Missing(required, true); {
			case len(info.Missing(required, false)) == 0:
				diags.AddInfo("conforms", "conforms to "+name, info.ID.Short(), "")
			case len(missing) == 0:
				diags.AddInfo("conforms", "conforms to "+name+" through its pointer", "*"+info.ID.Short(), "")
			default:
				diags.AddWarning("not_conforming",
					fmt.Sprintf("does not conform to %s: missing %s", name, strings.Join(missing, ", ")),
					info.ID.Short(), "")

				for _, m := range missing {
					if hint, ok := suggest.Closest(m, info.PointerMethods, suggest.DefaultThreshold); ok {
						diags.AddInfo("did_you_mean", hint+" looks like a misspelling", info.ID.Short(), m)
					}
				}
			}
		}
	}

	if matched == 0 {
		diags.AddError("no_types", "no named types matched", opts.Type, "")
	}

	return diags
}

func matchesType(id analyze.TypeID, want string) bool {
	if want == "" {
		return true
	}

	pkg, name := utils.CutLast(want, ".")
	if name != id.Name {
		return false
	}

	return pkg == "" || pkg == id.PkgPath || pkg == strings.TrimSuffix(id.Short(), "."+id.Name)
}
