// Package analyze provides package loading and method set extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to record, for every
// exported named type, the exported methods of its value and pointer method
// sets. These are checked against interface descriptors by name, the same
// way the cast package checks live values.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind and method sets of a named type
//   - TypeGraph: all analyzed types of the loaded packages
package analyze
