package ndarray

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrShapeMismatch = errors.New("shape does not match data length")
	ErrIndex         = errors.New("index out of range")
)

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array is implemented by multi-dimensional arrays with a fixed shape and a
// single element type.
type Array interface {
	Shape() []int
	DType() string
}

// Dense is a row-major numeric array.
type Dense[T number] struct {
	shape []int
	data  []T
}

// New creates an array over data with the given shape. Without a shape the
// array is 1-dimensional.
func New[T number](data []T, shape ...int) (*Dense[T], error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}

	size := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("negative dimension %d in shape %v: %w", d, shape, ErrShapeMismatch)
		}
		size *= d
	}

	if size != len(data) {
		return nil, fmt.Errorf("shape %v holds %d elements, data has %d: %w", shape, size, len(data), ErrShapeMismatch)
	}

	return &Dense[T]{shape: slices.Clone(shape), data: data}, nil
}

// MustNew is like New but panics on error.
func MustNew[T number](data []T, shape ...int) *Dense[T] {
	d, err := New(data, shape...)
	if err != nil {
		panic(err)
	}

	return d
}

// Vector creates a 1-dimensional array.
func Vector[T number](data ...T) *Dense[T] {
	return &Dense[T]{shape: []int{len(data)}, data: data}
}

// Zeros creates a zero-filled array of the given shape.
func Zeros[T number](shape ...int) *Dense[T] {
	size := 1
	for _, d := range shape {
		size *= max(d, 0)
	}

	return MustNew(make([]T, size), shape...)
}

// Shape returns a copy of the array's shape.
func (d *Dense[T]) Shape() []int {
	return slices.Clone(d.shape)
}

// Ndim returns the number of dimensions.
func (d *Dense[T]) Ndim() int {
	return len(d.shape)
}

// Size returns the number of elements.
func (d *Dense[T]) Size() int {
	return len(d.data)
}

// Data returns the underlying row-major storage.
func (d *Dense[T]) Data() []T {
	return d.data
}

// DType returns the element type name.
func (d *Dense[T]) DType() string {
	return DTypeOf[T]()
}

// At returns the element at the given multi-dimensional index.
func (d *Dense[T]) At(index ...int) (T, error) {
	var zero T
	if len(index) != len(d.shape) {
		return zero, fmt.Errorf("%d indices for %d dimensions: %w", len(index), len(d.shape), ErrIndex)
	}

	offset := 0
	for i, idx := range index {
		if idx < 0 || idx >= d.shape[i] {
			return zero, fmt.Errorf("index %d out of [0, %d) in dimension %d: %w", idx, d.shape[i], i, ErrIndex)
		}
		offset = offset*d.shape[i] + idx
	}

	return d.data[offset], nil
}

// DTypeOf returns the dtype name of an element type.
func DTypeOf[T number]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "int"
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint:
		return "uint"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	default:
		return fmt.Sprintf("%T", zero)
	}
}
