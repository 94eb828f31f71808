package analyze

import (
	"context"
	"fmt"
	"go/types"
	"slices"

	"github.com/go-logr/logr"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph  *TypeGraph
	logger logr.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used to report loaded packages at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{graph: NewTypeGraph(), logger: logr.Discard()}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/shapes").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			// generic types have no method set until instantiated
			continue
		}

		typeID := TypeID{PkgPath: pkg.PkgPath, Name: name}
		a.graph.Types[typeID] = analyzeNamed(typeID, named)
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
	a.logger.V(1).Info("package analyzed", "package", pkg.PkgPath, "types", len(pkgInfo.Types))
}

func analyzeNamed(id TypeID, named *types.Named) *TypeInfo {
	info := &TypeInfo{
		ID:      id,
		Kind:    kindOf(named.Underlying()),
		Methods: methodNames(named),
		GoType:  named,
	}

	if info.Kind == TypeKindInterface {
		// *I has no methods, callers holding an I use the interface's own set
		info.PointerMethods = info.Methods
	} else {
		info.PointerMethods = methodNames(types.NewPointer(named))
	}

	return info
}

func kindOf(t types.Type) TypeKind {
	switch t.(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Interface:
		return TypeKindInterface
	case *types.Signature:
		return TypeKindFunc
	case *types.Slice, *types.Array, *types.Map, *types.Chan, *types.Pointer:
		return TypeKindContainer
	default:
		return TypeKindUnknown
	}
}

func methodNames(t types.Type) []string {
	ms := types.NewMethodSet(t)

	names := make([]string, 0, ms.Len())
	for i := range ms.Len() {
		if obj := ms.At(i).Obj(); obj.Exported() {
			names = append(names, obj.Name())
		}
	}

	slices.Sort(names)

	return names
}
