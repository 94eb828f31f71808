package analyze

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapesPkg = "interface-caster/examples/shapes"

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer(WithLogger(testr.New(t)))
	graph, err := analyzer.LoadPackages(t.Context(), shapesPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)
	assert.Same(t, graph, analyzer.Graph())

	require.Contains(t, graph.Packages, shapesPkg)
	assert.Equal(t, "shapes", graph.Packages[shapesPkg].Name)

	for _, name := range []string{"Square", "Circle", "Blob", "Ellipse"} {
		assert.Contains(t, graph.Types, TypeID{PkgPath: shapesPkg, Name: name})
	}

	// unexported types are skipped
	assert.NotContains(t, graph.Types, TypeID{PkgPath: shapesPkg, Name: "unexported"})
}

func TestAnalyzer_MethodSets(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(t.Context(), shapesPkg)
	require.NoError(t, err)

	square := graph.GetType(TypeID{PkgPath: shapesPkg, Name: "Square"})
	require.NotNil(t, square)
	assert.Equal(t, TypeKindStruct, square.Kind)
	assert.Equal(t, []string{"Area", "Name", "Perimeter", "Sides"}, square.Methods)
	assert.Equal(t, square.Methods, square.PointerMethods)

	circle := graph.GetType(TypeID{PkgPath: shapesPkg, Name: "Circle"})
	require.NotNil(t, circle)
	assert.Empty(t, circle.Methods)
	assert.Equal(t, []string{"Area", "Perimeter"}, circle.PointerMethods)

	assert.Equal(t, []string{"Area", "Perimeter"}, circle.Missing([]string{"Area", "Perimeter"}, false))
	assert.Empty(t, circle.Missing([]string{"Area", "Perimeter"}, true))

	blob := graph.GetType(TypeID{PkgPath: shapesPkg, Name: "Blob"})
	require.NotNil(t, blob)
	assert.Equal(t, []string{"Perimeter"}, blob.Missing([]string{"Area", "Perimeter"}, true))
}

func TestAnalyzer_LoadPackagesError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages(t.Context(), "interface-caster/examples/does-not-exist")
	assert.Error(t, err)
}

func TestTypeGraph_Sorted(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(t.Context(), shapesPkg)
	require.NoError(t, err)

	var names []string
	for _, info := range graph.Sorted() {
		names = append(names, info.ID.Short())
	}

	assert.Equal(t, []string{"shapes.Blob", "shapes.Circle", "shapes.Ellipse", "shapes.Square"}, names)
}

func TestTypeID(t *testing.T) {
	id := TypeID{PkgPath: shapesPkg, Name: "Square"}
	assert.Equal(t, "interface-caster/examples/shapes.Square", id.String())
	assert.Equal(t, "shapes.Square", id.Short())
	assert.Equal(t, "int", TypeID{Name: "int"}.String())
	assert.Equal(t, "int", TypeID{Name: "int"}.Short())
	assert.Equal(t, "interface", TypeKindInterface.String())
	assert.Equal(t, "unknown", TypeKind(42).String())
}
