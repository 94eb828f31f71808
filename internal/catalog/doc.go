// Package catalog provides the YAML format for declaring interfaces outside
// of Go code, its validation, and the construction of the declared
// descriptors.
//
// # Schema Overview
//
//	version: "1"
//	interfaces:
//	  - name: Shape
//	    abstract: [Area, Perimeter]
//	    optional: [Name]
//	  - name: Polygon
//	    extends: Shape          # parent interface, Root when omitted
//	    abstract: [Sides]
//	    defaults:               # concrete bodies returning constants
//	      Perimeter: 0
//
// Interfaces may be listed in any order; parents are always built first.
// A default implements an abstract method and removes it from the abstract
// set of the interface and its descendants.
package catalog
