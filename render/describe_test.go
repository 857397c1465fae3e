package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"littleeye/node"
	"littleeye/scalar"
)

var (
	intKey  = node.KindKey{Category: node.CategoryScalar, Scalar: scalar.KindInt}
	strKey  = node.KindKey{Category: node.CategoryScalar, Scalar: scalar.KindString}
	listKey = node.KindKey{Category: node.CategorySequence, TypeName: node.ListTypeName}
)

func TestStreamDescription_Mostly(t *testing.T) {
	s := &node.Stream{
		Pattern: node.Mixed(),
		Kinds:   []node.KindCount{{Key: intKey, Count: 4}, {Key: strKey, Count: 1, First: 2}},
	}
	assert.Equal(t, "mostly int objects with 1 string", StreamDescription(s, true))
	assert.Equal(t, "mixed types: 4 int, 1 string", StreamDescription(s, false))

	even := &node.Stream{
		Pattern: node.Mixed(),
		Kinds:   []node.KindCount{{Key: intKey, Count: 1}, {Key: strKey, Count: 1, First: 1}},
	}
	assert.Equal(t, "mixed types: 1 int, 1 string", StreamDescription(even, true))
}

func TestStreamDescription_Containers(t *testing.T) {
	s := &node.Stream{
		Pattern: node.Homogeneous("list"),
		Kinds:   []node.KindCount{{Key: listKey, Count: 2}},
	}
	assert.Equal(t, "lists", StreamDescription(s, true))

	s.Sizes = &node.SizeVerdict{Identical: true, Size: 3, Min: 3, Max: 3}
	assert.Equal(t, "lists of size 3 each", StreamDescription(s, true))

	assert.Empty(t, StreamDescription(&node.Stream{}, true))
}

func TestKeysDescription(t *testing.T) {
	stringStream := node.Stream{Pattern: node.Homogeneous("string"), Kinds: []node.KindCount{{Key: strKey, Count: 2}}}

	assert.Equal(t, "sequential range 1 to 3", KeysDescription(3, &node.KeySummary{
		Sequence: node.KeyVerdict{Kind: node.KeysSequentialRange, Start: scalar.Int(1), End: scalar.Int(3)},
	}))
	assert.Equal(t, "string keys: 'a', 'b'", KeysDescription(2, &node.KeySummary{
		Stream: stringStream,
		Names:  []string{"a", "b"},
	}))
	assert.Equal(t, "string keys", KeysDescription(2, &node.KeySummary{Stream: stringStream}))
	assert.Equal(t, "mixed key types", KeysDescription(2, &node.KeySummary{Stream: node.Stream{Pattern: node.Mixed()}}))
}
