// Package detect provides the pattern detectors run over a container's children.
//
// Every detector is a pure function over a full, non-empty stream of children:
//   - Shapes: shape consistency of sibling numeric arrays
//   - Homogeneity: whether siblings share one kind, with representatives otherwise
//   - Sizes: whether sibling containers share one element count
//   - KeySequence: whether mapping keys form a contiguous integer run
//
// Calling a detector with an empty stream is a programming error and panics.
package detect
