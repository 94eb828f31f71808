// Package suggest finds near-miss identifiers for "did you mean" hints.
//
// Names are compared after normalization (CamelCase and separators folded
// away, lowercased) by a Levenshtein-based similarity score:
//   - 1.0: identical after normalization
//   - 0.0: nothing in common
package suggest
