package node

// Sequence is implemented by values exposing ordered integer-indexed access.
type Sequence interface {
	Len() int
	At(i int) any
}

// Mapping is implemented by values exposing key lookup and key iteration.
// Keys returns the keys in iteration order.
type Mapping interface {
	Len() int
	Keys() []any
	Lookup(key any) (any, bool)
}

// Entry is a single key/value pair of a mapping.
type Entry struct {
	Key   any
	Value any
}

// EntryLister is an optional Mapping capability listing pairs in iteration
// order, so that values can be read without a lookup per key.
type EntryLister interface {
	Entries() []Entry
}

// Identifiable containers report an identity that is stable for as long as the
// container is alive. It is used to notice a container revisiting itself.
type Identifiable interface {
	Identity() uintptr
}

// Identity tells live containers apart. Sequences sharing backing storage
// are told apart by their length.
type Identity struct {
	Addr uintptr
	Len  int
}

// IsZero reports whether the container has no usable identity.
func (id Identity) IsZero() bool {
	return id.Addr == 0
}

// Named values report the type name shown in summaries ("list", "dict", "tuple").
type Named interface {
	TypeName() string
}

// ArrayInfo describes a multi-dimensional numeric array.
type ArrayInfo struct {
	Shape []int
	DType string
}

// Size returns the element count, the product of the shape.
func (a ArrayInfo) Size() int {
	size := 1
	for _, d := range a.Shape {
		size *= d
	}

	return size
}

// ArrayAdapter recognises numeric arrays. Values are only classified as
// CategoryNumericArray through a registered adapter.
type ArrayAdapter interface {
	Inspect(v any) (ArrayInfo, bool)
}

// ArrayAdapterFunc lets an ordinary function act as an ArrayAdapter.
type ArrayAdapterFunc func(v any) (ArrayInfo, bool)

func (f ArrayAdapterFunc) Inspect(v any) (ArrayInfo, bool) {
	return f(v)
}
