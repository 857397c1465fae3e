package node

import (
	"fmt"

	"littleeye/scalar"
)

// Value is the outcome of classifying a raw value: its category together with
// the capability through which it is read.
type Value struct {
	Category Category
	Raw      any
	TypeName string
	Count    int             // element count for containers
	Scalar   scalar.KindEnum // for CategoryScalar
	Seq      Sequence        // for CategorySequence
	Map      Mapping         // for CategoryMapping
	Array    ArrayInfo       // for CategoryNumericArray
}

// Key returns the kind key used to compare siblings.
func (v Value) Key() KindKey {
	switch v.Category {
	case CategoryScalar:
		return KindKey{Category: v.Category, Scalar: v.Scalar}
	case CategoryNumericArray, CategoryCyclic:
		return KindKey{Category: v.Category}
	case CategorySequence, CategoryMapping:
		return KindKey{Category: v.Category, TypeName: v.TypeName, Empty: v.Count == 0}
	default:
		return KindKey{Category: v.Category, TypeName: v.TypeName}
	}
}

// Identity returns the container identity, or zero when it has none.
func (v Value) Identity() Identity {
	switch v.Category {
	case CategorySequence:
		if id, ok := v.Seq.(Identifiable); ok {
			return Identity{Addr: id.Identity(), Len: v.Count}
		}
	case CategoryMapping:
		if id, ok := v.Map.(Identifiable); ok {
			return Identity{Addr: id.Identity()}
		}
	}

	return Identity{}
}

// Classify maps a value onto its structural category. It never panics.
func Classify(v any, adapters ...ArrayAdapter) Category {
	return Inspect(v, adapters...).Category
}

// Inspect classifies v, testing in priority order for an array registered
// through adapters, the Mapping capability, the Sequence capability, the
// built-in container types and finally the scalar kinds. Anything else is
// opaque. A panic raised by a capability method degrades v to opaque.
func Inspect(v any, adapters ...ArrayAdapter) (out Value) {
	defer func() {
		if recover() != nil {
			out = Value{Category: CategoryOpaque, Raw: v, TypeName: fmt.Sprintf("%T", v)}
		}
	}()

	for _, adapter := range adapters {
		if info, ok := adapter.Inspect(v); ok {
			return Value{
				Category: CategoryNumericArray,
				Raw:      v,
				TypeName: TypeNameOf(v),
				Count:    info.Size(),
				Array:    info,
			}
		}
	}

	if m, ok := v.(Mapping); ok {
		return mappingValue(v, m)
	}

	if s, ok := v.(Sequence); ok {
		return sequenceValue(v, s)
	}

	seq, m := builtin(v)
	switch {
	case m != nil:
		return mappingValue(v, m)
	case seq != nil:
		return sequenceValue(v, seq)
	}

	if kind := scalar.FromValue(v); kind != 0 {
		return Value{Category: CategoryScalar, Raw: v, TypeName: kind.Name(), Scalar: kind}
	}

	return Value{Category: CategoryOpaque, Raw: v, TypeName: TypeNameOf(v)}
}

func mappingValue(raw any, m Mapping) Value {
	return Value{
		Category: CategoryMapping,
		Raw:      raw,
		TypeName: nameOf(m, DictTypeName),
		Count:    checkedLen(m.Len()),
		Map:      m,
	}
}

func sequenceValue(raw any, s Sequence) Value {
	return Value{
		Category: CategorySequence,
		Raw:      raw,
		TypeName: nameOf(s, ListTypeName),
		Count:    checkedLen(s.Len()),
		Seq:      s,
	}
}

func checkedLen(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("container reports negative length %d", n))
	}

	return n
}

func nameOf(v any, fallback string) string {
	if named, ok := v.(Named); ok {
		if name := named.TypeName(); name != "" {
			return name
		}
	}

	return fallback
}

// TypeNameOf returns the display name of an arbitrary value.
func TypeNameOf(v any) string {
	if named, ok := v.(Named); ok {
		return named.TypeName()
	}

	if v == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", v)
}
