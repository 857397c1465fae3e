// Package analyze provides the recursive structural analyzer.
//
// It classifies a value, summarises each stream of children with the
// detectors from internal/detect and recurses into representative children
// until the depth bound, producing an immutable node.Node tree.
//
// Key types:
//   - Analyzer: one analysis run with its diagnostics
//   - Path: a readable location of a value inside the input, e.g. "$[2]['name']"
package analyze
