// Package source decodes JSON and YAML documents into values the analyzer
// understands.
//
// JSON objects and YAML mappings both become *node.OrderedMap so summaries
// follow document order. JSON numbers become int or float64, matching what
// the YAML decoder produces.
// YAML aliases resolve to the anchored value itself, so a self-referencing
// document shows up as a cyclic reference instead of being expanded.
package source
