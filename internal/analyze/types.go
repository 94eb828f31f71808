package analyze

import (
	"go/types"
	"slices"
	"strings"

	"interface-caster/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "interface-caster/examples/shapes"
	Name    string // e.g., "Square"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the type name qualified by the package alias only.
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// TypeKind represents the kind of the underlying type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindInterface          // Go interface type
	TypeKindFunc               // function type
	TypeKindContainer          // slice, array, map, chan or pointer
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindFunc:
		return "func"
	case TypeKindContainer:
		return "container"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named type and the methods it exposes.
type TypeInfo struct {
	ID             TypeID
	Kind           TypeKind
	Methods        []string   // exported methods of T, sorted
	PointerMethods []string   // exported methods of *T, sorted
	GoType         types.Type // The original go/types.Type
}

// MethodSet returns the value or pointer method set.
func (t *TypeInfo) MethodSet(pointer bool) []string {
	if pointer {
		return t.PointerMethods
	}

	return t.Methods
}

// HasMethod reports whether the chosen method set contains name.
func (t *TypeInfo) HasMethod(name string, pointer bool) bool {
	_, ok := slices.BinarySearch(t.MethodSet(pointer), name)
	return ok
}

// Missing returns the required names absent from the chosen method set.
func (t *TypeInfo) Missing(required []string, pointer bool) []string {
	var missing []string
	for _, name := range required {
		if !t.HasMethod(name, pointer) {
			missing = append(missing, name)
		}
	}

	return missing
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Sorted returns all types ordered by their TypeID string.
func (g *TypeGraph) Sorted() []*TypeInfo {
	out := make([]*TypeInfo, 0, len(g.Types))
	for _, info := range g.Types {
		out = append(out, info)
	}

	slices.SortFunc(out, func(a, b *TypeInfo) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
