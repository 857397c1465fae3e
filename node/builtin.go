package node

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"unsafe"
)

const (
	ListTypeName  = "list"
	TupleTypeName = "tuple"
	DictTypeName  = "dict"
)

// Tuple marks a fixed group of values; it summarises as "tuple" instead of "list".
type Tuple []any

type slice[T any] struct {
	items []T
	name  string
}

// SliceOf wraps a typed slice as a Sequence named "list".
func SliceOf[T any](items []T) Sequence {
	return slice[T]{items: items, name: ListTypeName}
}

func (s slice[T]) Len() int         { return len(s.items) }
func (s slice[T]) At(i int) any     { return s.items[i] }
func (s slice[T]) TypeName() string { return s.name }

func (s slice[T]) Identity() uintptr {
	if len(s.items) == 0 {
		return 0
	}

	return uintptr(unsafe.Pointer(unsafe.SliceData(s.items)))
}

type goMap[K cmp.Ordered, V any] struct {
	m map[K]V
}

// MapOf wraps a Go map with ordered keys as a Mapping named "dict".
// Keys are iterated in ascending order.
func MapOf[K cmp.Ordered, V any](m map[K]V) Mapping {
	return goMap[K, V]{m: m}
}

func (g goMap[K, V]) Len() int         { return len(g.m) }
func (g goMap[K, V]) TypeName() string { return DictTypeName }

func (g goMap[K, V]) Keys() []any {
	keys := slices.Sorted(maps.Keys(g.m))
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k
	}

	return out
}

func (g goMap[K, V]) Lookup(key any) (any, bool) {
	k, ok := key.(K)
	if !ok {
		return nil, false
	}

	v, ok := g.m[k]
	return v, ok
}

func (g goMap[K, V]) Identity() uintptr {
	return mapIdentity(g.m)
}

type anyMap map[any]any

func (m anyMap) Len() int         { return len(m) }
func (m anyMap) TypeName() string { return DictTypeName }

func (m anyMap) Keys() []any {
	keys := slices.Collect(maps.Keys(m))
	SortKeys(keys)
	return keys
}

// Entries lists the pairs in key order. Ranging over the map reaches values
// that no lookup can, such as those stored under NaN keys.
func (m anyMap) Entries() []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Value: v})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := compareKeys(a.Key, b.Key); c != 0 {
			return c
		}
		// keys that tie (several NaNs) fall back to their values
		return cmp.Compare(fmt.Sprint(a.Value), fmt.Sprint(b.Value))
	})

	return entries
}

func (m anyMap) Lookup(key any) (v any, ok bool) {
	defer func() {
		// non-comparable keys cannot be present in the map
		if recover() != nil {
			v, ok = nil, false
		}
	}()

	v, ok = m[key]
	return v, ok
}

func (m anyMap) Identity() uintptr {
	return mapIdentity(map[any]any(m))
}

// mapIdentity returns the address of the map header. Maps carry no other
// stable identity, so this is the one place reflection is used.
func mapIdentity(m any) uintptr {
	return reflect.ValueOf(m).Pointer()
}

// OrderedMap is a Mapping that keeps insertion order, as decoded documents do.
// Keys are not deduplicated; Set appends.
type OrderedMap struct {
	entries []Entry
}

// NewOrderedMap creates an OrderedMap with room for n entries.
func NewOrderedMap(n int) *OrderedMap {
	return &OrderedMap{entries: make([]Entry, 0, n)}
}

// Set appends a key/value pair.
func (m *OrderedMap) Set(key, value any) {
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

func (m *OrderedMap) Len() int         { return len(m.entries) }
func (m *OrderedMap) TypeName() string { return DictTypeName }
func (m *OrderedMap) Entries() []Entry { return m.entries }

func (m *OrderedMap) Keys() []any {
	keys := make([]any, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}

	return keys
}

func (m *OrderedMap) Lookup(key any) (any, bool) {
	for _, e := range m.entries {
		if sameKey(e.Key, key) {
			return e.Value, true
		}
	}

	return nil, false
}

func (m *OrderedMap) Identity() uintptr {
	return uintptr(unsafe.Pointer(m))
}

func sameKey(a, b any) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()

	return a == b
}

// builtin maps the concrete container types produced by decoders and common
// Go code onto the capability interfaces. Only the types listed here, and
// their nesting through one another, are recognised without an adapter.
func builtin(v any) (Sequence, Mapping) {
	if seq := builtinSequence(v); seq != nil {
		return seq, nil
	}

	return nil, builtinMapping(v)
}

func builtinSequence(v any) Sequence {
	switch x := v.(type) {
	case []any:
		return SliceOf(x)
	case Tuple:
		return slice[any]{items: x, name: TupleTypeName}
	case []string:
		return SliceOf(x)
	case []int:
		return SliceOf(x)
	case []int32:
		return SliceOf(x)
	case []int64:
		return SliceOf(x)
	case []float32:
		return SliceOf(x)
	case []float64:
		return SliceOf(x)
	case []bool:
		return SliceOf(x)

	// nested lists
	case [][]any:
		return SliceOf(x)
	case [][]string:
		return SliceOf(x)
	case [][]int:
		return SliceOf(x)
	case [][]int64:
		return SliceOf(x)
	case [][]float32:
		return SliceOf(x)
	case [][]float64:
		return SliceOf(x)
	case [][]bool:
		return SliceOf(x)

	// records
	case []map[string]any:
		return SliceOf(x)
	case []map[string]string:
		return SliceOf(x)
	case []map[string]int:
		return SliceOf(x)
	case []map[string]float64:
		return SliceOf(x)
	case []map[string]bool:
		return SliceOf(x)
	}

	return nil
}

func builtinMapping(v any) Mapping {
	switch x := v.(type) {
	case map[string]any:
		return MapOf(x)
	case map[string]string:
		return MapOf(x)
	case map[string]int:
		return MapOf(x)
	case map[string]int64:
		return MapOf(x)
	case map[string]float64:
		return MapOf(x)
	case map[string]bool:
		return MapOf(x)

	// columns
	case map[string][]any:
		return MapOf(x)
	case map[string][]string:
		return MapOf(x)
	case map[string][]int:
		return MapOf(x)
	case map[string][]int64:
		return MapOf(x)
	case map[string][]float64:
		return MapOf(x)
	case map[string]map[string]any:
		return MapOf(x)
	case map[string]map[string]string:
		return MapOf(x)

	case map[int]any:
		return MapOf(x)
	case map[int]string:
		return MapOf(x)
	case map[int]float64:
		return MapOf(x)
	case map[int][]float64:
		return MapOf(x)
	case map[int64]any:
		return MapOf(x)
	case map[any]any:
		return anyMap(x)
	}

	return nil
}
