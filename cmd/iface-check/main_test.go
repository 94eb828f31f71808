package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interface-caster/internal/analyze"
	"interface-caster/internal/catalog"
)

const (
	shapesPkg     = "interface-caster/examples/shapes"
	shapesCatalog = "../../examples/shapes/interfaces.yaml"
)

func loadShapes(t *testing.T) (*analyze.TypeGraph, *catalog.Catalog) {
	t.Helper()

	file, err := catalog.LoadFile(shapesCatalog)
	require.NoError(t, err)

	cat, err := catalog.Build(file)
	require.NoError(t, err)

	graph, err := analyze.NewAnalyzer().LoadPackages(t.Context(), shapesPkg)
	require.NoError(t, err)

	return graph, cat
}

func TestCheck(t *testing.T) {
	graph, cat := loadShapes(t)

	diags := check(graph, cat, checkOptions{})
	require.True(t, diags.IsValid())

	var infos []string
	for _, d := range diags.Infos {
		infos = append(infos, d.String())
	}

	assert.Contains(t, infos, "[shapes.Square]: [conforms] conforms to Polygon")
	assert.Contains(t, infos, "[shapes.Square]: [conforms] conforms to Shape")
	assert.Contains(t, infos, "[*shapes.Circle]: [conforms] conforms to Shape through its pointer")
	assert.Contains(t, infos, "[shapes.Blob]: [conforms] conforms to Measurable")
	assert.Contains(t, infos, "[shapes.Ellipse] Perimeter: [did_you_mean] Perimiter looks like a misspelling")

	var warnings []string
	for _, d := range diags.Warnings {
		warnings = append(warnings, d.String())
	}

	assert.Contains(t, warnings, "[shapes.Blob]: [not_conforming] does not conform to Shape: missing Perimeter")
	assert.Contains(t, warnings, "[shapes.Circle]: [not_conforming] does not conform to Polygon: missing Sides")
}

func TestCheck_Filters(t *testing.T) {
	graph, cat := loadShapes(t)

	diags := check(graph, cat, checkOptions{Interface: "Polygon", Type: "shapes.Square"})
	require.True(t, diags.IsValid())
	require.Len(t, diags.Infos, 1)
	assert.Empty(t, diags.Warnings)

	diags = check(graph, cat, checkOptions{Interface: "Drawable"})
	assert.False(t, diags.IsValid())
	assert.Equal(t, "unknown_interface", diags.Errors[0].Code)

	diags = check(graph, cat, checkOptions{Type: "Octagon"})
	assert.False(t, diags.IsValid())
	assert.Equal(t, "no_types", diags.Errors[0].Code)
}

func TestMatchesType(t *testing.T) {
	id := analyze.TypeID{PkgPath: shapesPkg, Name: "Square"}

	assert.True(t, matchesType(id, ""))
	assert.True(t, matchesType(id, "Square"))
	assert.True(t, matchesType(id, "shapes.Square"))
	assert.True(t, matchesType(id, shapesPkg+".Square"))
	assert.False(t, matchesType(id, "other.Square"))
	assert.False(t, matchesType(id, "Circle"))
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(t.Context(), []string{"--catalog", shapesCatalog, "-i", "Shape", shapesPkg}, &stdout, &stderr)
	assert.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "info: [shapes.Square]: [conforms] conforms to Shape")
	assert.Contains(t, stdout.String(), "warning: [shapes.Blob]: [not_conforming]")
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(t.Context(), nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "--catalog is required")
	assert.Contains(t, stderr.String(), "usage: iface-check --catalog file.yaml")
	assert.Contains(t, stderr.String(), "path to the YAML interface catalog")
	assert.Equal(t, exitUsage, run(t.Context(), []string{"--catalog", shapesCatalog}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run(t.Context(), []string{"--no-such-flag"}, &stdout, &stderr))
	assert.Equal(t, exitFailure, run(t.Context(), []string{"-c", "missing.yaml", shapesPkg}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "load catalog:")
}

func TestRun_Dump(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(t.Context(), []string{"-c", shapesCatalog, "--dump", "-v", "--type", "Square", shapesPkg}, &stdout, &stderr)
	assert.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "(*catalog.File)")
	assert.Contains(t, stderr.String(), "check finished")
}
