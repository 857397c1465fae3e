package node

import (
	"strconv"
	"strings"

	"littleeye/scalar"
)

// KindKey identifies a kind of sibling: the category refined by the scalar kind
// for scalars and by the type name for containers and opaque values. Empty
// containers form kinds of their own.
type KindKey struct {
	Category Category
	Scalar   scalar.KindEnum
	TypeName string
	Empty    bool
}

// Label returns the singular name of the kind, e.g. "int", "list",
// "empty dict" or "array".
func (k KindKey) Label() string {
	if k.Empty {
		return "empty " + k.containerLabel()
	}

	switch k.Category {
	case CategoryScalar:
		return k.Scalar.Name()
	case CategoryNumericArray:
		return "array"
	case CategoryCyclic:
		return "cyclic reference"
	default:
		return k.containerLabel()
	}
}

func (k KindKey) containerLabel() string {
	if k.TypeName == "" {
		return strings.ToLower(k.Category.String())
	}

	return k.TypeName
}

// KindCount is one entry of a kind histogram.
type KindCount struct {
	Key   KindKey
	Count int
	First int // index of the first child of this kind
}

// ShapeKind is the verdict of the shape consistency check over sibling arrays.
type ShapeKind int

const (
	ShapeIdentical ShapeKind = iota
	ShapeVariableRank1
	ShapeVariableGeneral
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeIdentical:
		return "Identical"
	case ShapeVariableRank1:
		return "VariableRank1"
	case ShapeVariableGeneral:
		return "VariableGeneral"
	default:
		return "ShapeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ShapeVerdict reports how the shapes of sibling arrays relate.
type ShapeVerdict struct {
	Kind ShapeKind
	// Shape is the common shape (ShapeIdentical).
	Shape []int
	// MinLen and MaxLen bound the lengths of 1-d arrays (ShapeVariableRank1).
	MinLen, MaxLen int
	// MinShape and MaxShape are the lexicographic extremes (ShapeVariableGeneral).
	MinShape, MaxShape []int
}

func (v ShapeVerdict) String() string {
	switch v.Kind {
	case ShapeIdentical:
		return "Identical(" + FormatShape(v.Shape) + ")"
	case ShapeVariableRank1:
		return "VariableRank1(" + strconv.Itoa(v.MinLen) + ", " + strconv.Itoa(v.MaxLen) + ")"
	default:
		return "VariableGeneral(" + FormatShape(v.MinShape) + ", " + FormatShape(v.MaxShape) + ")"
	}
}

// FormatShape renders a shape the way summaries show it: "(3,)" for 1-d
// arrays and "(128x64)" otherwise.
func FormatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}

	if len(shape) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, "x") + ")"
}

// SizeVerdict reports how the element counts of sibling containers relate.
type SizeVerdict struct {
	Identical bool
	Size      int // common size when Identical
	Min, Max  int
}

func (v SizeVerdict) String() string {
	if v.Identical {
		return "Identical(" + strconv.Itoa(v.Size) + ")"
	}

	return "VariableSize(" + strconv.Itoa(v.Min) + ", " + strconv.Itoa(v.Max) + ")"
}

// KeyKind is the verdict of the numeric sequence check over mapping keys.
type KeyKind int

const (
	KeysNonNumeric KeyKind = iota
	KeysSequentialRange
	KeysRange
)

func (k KeyKind) String() string {
	switch k {
	case KeysNonNumeric:
		return "NonNumeric"
	case KeysSequentialRange:
		return "SequentialRange"
	case KeysRange:
		return "Range"
	default:
		return "KeyKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// KeyVerdict reports whether mapping keys form a numeric run.
// Start and End hold the smallest and largest key for the numeric kinds.
type KeyVerdict struct {
	Kind       KeyKind
	Start, End scalar.Number
}

func (v KeyVerdict) String() string {
	if v.Kind == KeysNonNumeric {
		return v.Kind.String()
	}

	return v.Kind.String() + "(" + v.Start.String() + ", " + v.End.String() + ")"
}

// Stream summarises one stream of children (sequence elements, mapping keys or
// mapping values). Every statistic covers the full stream.
type Stream struct {
	Pattern Pattern
	// Kinds is the histogram of child kinds, most frequent first, ties broken
	// by first occurrence.
	Kinds []KindCount
	// Representatives holds the indices of the children chosen to stand for
	// the stream: the first child, or the first child of each kind up to the
	// mixed cap.
	Representatives []int
	// Shapes is set when every child is a numeric array.
	Shapes *ShapeVerdict
	// Sizes is set when every child is a container of the same category.
	Sizes *SizeVerdict
	// DType is set when every child is a numeric array of the same dtype.
	DType string
}

// KeySummary describes the keys of a mapping.
type KeySummary struct {
	Sequence KeyVerdict
	Stream   Stream
	// Names holds the leading keys of a string-keyed mapping.
	Names []string
}
