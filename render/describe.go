package render

import (
	"fmt"
	"strconv"
	"strings"

	"littleeye/internal/common"
	"littleeye/node"
	"littleeye/scalar"
)

// Headline describes a node on its own: its category, count and type.
func Headline(n *node.Node) string {
	switch n.Category {
	case node.CategoryScalar:
		return scalarHeadline(n)
	case node.CategoryNumericArray:
		return "array of shape " + node.FormatShape(n.Shape()) + dtypeSuffix(n.DType())
	case node.CategorySequence, node.CategoryMapping:
		return containerHeadline(n)
	case node.CategoryCyclic:
		return "cyclic reference to " + n.TypeName
	default:
		return n.TypeName + " object"
	}
}

func scalarHeadline(n *node.Node) string {
	switch n.Scalar {
	case scalar.KindNil:
		return "nil"
	case scalar.KindString:
		if n.Literal == "" {
			length, _ := n.Extra.Get(node.AttrLength)
			return fmt.Sprintf("string of length %v", length)
		}
	}

	return n.Scalar.Name() + ": " + n.Literal
}

func containerHeadline(n *node.Node) string {
	if n.Count == 0 && !n.Truncated {
		return "empty " + n.TypeName
	}

	text := fmt.Sprintf("%s with %d %s", n.TypeName, n.Count, pluralize(n.Count, "element"))
	if n.Truncated {
		text += maxDepthSuffix
	}

	return text
}

const maxDepthSuffix = " (max depth reached)"

// StreamDescription describes a stream of children as a group.
// With mostly set, a mixed stream where all children but one (and at least
// two) share a kind is described as "mostly X with 1 Y".
func StreamDescription(s *node.Stream, mostly bool) string {
	if s.Pattern.Kind == node.PatternMixed {
		return mixedDescription(s, mostly)
	}

	first, ok := common.First(s.Kinds)
	if !ok {
		return ""
	}

	kind := first.Key
	switch kind.Category {
	case node.CategoryNumericArray:
		return arraysDescription(s)
	case node.CategorySequence, node.CategoryMapping:
		noun := plural(kind)
		if s.Sizes == nil || kind.Empty {
			return noun
		}
		if s.Sizes.Identical {
			return fmt.Sprintf("%s of size %d each", noun, s.Sizes.Size)
		}
		return fmt.Sprintf("%s of variable size, from %d to %d", noun, s.Sizes.Min, s.Sizes.Max)
	default:
		return plural(kind)
	}
}

func arraysDescription(s *node.Stream) string {
	dtype := dtypeSuffix(s.DType)
	if s.Shapes == nil {
		return "arrays" + dtype
	}

	switch s.Shapes.Kind {
	case node.ShapeIdentical:
		return "arrays of shape " + node.FormatShape(s.Shapes.Shape) + " each" + dtype
	case node.ShapeVariableRank1:
		return fmt.Sprintf("arrays of variable shape 1-d, from (%d,) to (%d,)%s", s.Shapes.MinLen, s.Shapes.MaxLen, dtype)
	default:
		return "arrays of variable shapes, from " + node.FormatShape(s.Shapes.MinShape) +
			" to " + node.FormatShape(s.Shapes.MaxShape) + dtype
	}
}

func mixedDescription(s *node.Stream, mostly bool) string {
	total := 0
	for _, kc := range s.Kinds {
		total += kc.Count
	}

	if mostly && len(s.Kinds) == 2 && s.Kinds[0].Count > 1 && s.Kinds[0].Count == total-1 {
		return fmt.Sprintf("mostly %s with 1 %s", plural(s.Kinds[0].Key), s.Kinds[1].Key.Label())
	}

	parts := make([]string, len(s.Kinds))
	for i, kc := range s.Kinds {
		parts[i] = strconv.Itoa(kc.Count) + " " + kc.Key.Label()
	}

	return "mixed types: " + strings.Join(parts, ", ")
}

// KeysDescription describes the keys of a mapping with count entries.
func KeysDescription(count int, keys *node.KeySummary) string {
	seq := keys.Sequence
	switch seq.Kind {
	case node.KeysSequentialRange:
		if seq.Start.Compare(seq.End) == 0 {
			if keyKind(keys.Stream).IsFloat() {
				return "single float key " + seq.Start.String()
			}
			return "single integer key " + seq.Start.String()
		}
		return "sequential range " + seq.Start.String() + " to " + seq.End.String()
	case node.KeysRange:
		noun := "numeric"
		if keyKind(keys.Stream).IsInteger() {
			noun = "integer"
		}
		return noun + " range " + seq.Start.String() + " to " + seq.End.String()
	}

	if len(keys.Names) > 0 {
		if count <= len(keys.Names) {
			return "string keys: " + quoteAll(keys.Names)
		}
		return "string keys (showing first 3): " + quoteAll(keys.Names[:min(3, len(keys.Names))]) + ", ..."
	}

	if keys.Stream.Pattern.Kind == node.PatternHomogeneous && len(keys.Stream.Kinds) > 0 {
		return keys.Stream.Kinds[0].Key.Label() + " keys"
	}

	return "mixed key types"
}

// keyKind is the scalar kind shared by every key, or the zero kind when the
// keys are mixed.
func keyKind(s node.Stream) scalar.KindEnum {
	if s.Pattern.Kind != node.PatternHomogeneous || s.Kinds[0].Key.Category != node.CategoryScalar {
		return 0
	}

	return s.Kinds[0].Key.Scalar
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}

	return strings.Join(quoted, ", ")
}

// plural names a group of children of one kind: "lists" or "empty dicts" for
// containers, "int objects" for everything else.
func plural(k node.KindKey) string {
	switch k.Category {
	case node.CategorySequence, node.CategoryMapping, node.CategoryNumericArray:
		return k.Label() + "s"
	case node.CategoryCyclic:
		return "cyclic references"
	default:
		return k.Label() + " objects"
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}

func dtypeSuffix(dtype string) string {
	if dtype == "" {
		return ""
	}

	return " dtype " + dtype
}
