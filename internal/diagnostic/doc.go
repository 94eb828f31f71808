// Package diagnostic provides structured errors, warnings and notes
// produced while validating interface catalogs and checking conformance.
//
// Key capabilities:
//   - Catalog validation errors (duplicates, unknown parents, cycles)
//   - Missing-method warnings for non-conforming types
//   - Conformance notes
package diagnostic
