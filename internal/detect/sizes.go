package detect

import (
	"littleeye/internal/common"
	"littleeye/node"
)

// Sizes compares the element counts of sibling containers.
func Sizes(sizes []int) node.SizeVerdict {
	if common.IsEmpty(sizes) {
		panic("detect: size pattern needs at least one size")
	}

	lo, hi := common.MinMax(sizes)
	if lo == hi {
		return node.SizeVerdict{Identical: true, Size: lo, Min: lo, Max: hi}
	}

	return node.SizeVerdict{Min: lo, Max: hi}
}
