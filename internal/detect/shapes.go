package detect

import (
	"slices"

	"littleeye/internal/common"
	"littleeye/node"
)

// Shapes compares the shapes of sibling arrays. Lengths of 1-d arrays and the
// lexicographic extremes are taken over the full set.
func Shapes(shapes [][]int) node.ShapeVerdict {
	if common.IsEmpty(shapes) {
		panic("detect: shape consistency needs at least one array shape")
	}

	if common.AllEqual(shapes, slices.Equal[[]int, int]) {
		return node.ShapeVerdict{Kind: node.ShapeIdentical, Shape: slices.Clone(shapes[0])}
	}

	allRank1 := true
	lo, hi := shapes[0], shapes[0]
	for _, shape := range shapes {
		allRank1 = allRank1 && len(shape) == 1
		if slices.Compare(shape, lo) < 0 {
			lo = shape
		}
		if slices.Compare(shape, hi) > 0 {
			hi = shape
		}
	}

	if allRank1 {
		lengths := make([]int, len(shapes))
		for i, shape := range shapes {
			lengths[i] = shape[0]
		}
		minLen, maxLen := common.MinMax(lengths)

		return node.ShapeVerdict{Kind: node.ShapeVariableRank1, MinLen: minLen, MaxLen: maxLen}
	}

	return node.ShapeVerdict{
		Kind:     node.ShapeVariableGeneral,
		MinShape: slices.Clone(lo),
		MaxShape: slices.Clone(hi),
	}
}
