// Package render turns an analysed node.Node tree into indented text.
//
// The first line describes the root; every further line is indented three
// spaces per level and starts with the connector "└─ ". A branch ends at the
// first node without representative children (a leaf, an empty container or
// a truncated one). Rendering is deterministic.
package render
