// Package ndarray provides a dense multi-dimensional numeric array and the
// array adapter through which such arrays are classified as numeric arrays.
//
// Any value implementing Array is recognised by Adapter, so third-party
// array types only need Shape and DType methods to be summarised by shape
// instead of element by element.
package ndarray
