package detect

import (
	"slices"

	"littleeye/internal/common"
	"littleeye/node"
	"littleeye/scalar"
)

// KeySequence checks whether mapping keys, once sorted, form a contiguous run
// of integers. Keys may come in any order; a single numeric key always forms
// a run of its own.
func KeySequence(keys []any) node.KeyVerdict {
	if common.IsEmpty(keys) {
		panic("detect: key sequence needs at least one key")
	}

	numbers := make([]scalar.Number, len(keys))
	for i, key := range keys {
		n, ok := scalar.NumberOf(key)
		if !ok {
			return node.KeyVerdict{Kind: node.KeysNonNumeric}
		}
		numbers[i] = n
	}

	slices.SortFunc(numbers, scalar.Number.Compare)
	verdict := node.KeyVerdict{
		Kind:  node.KeysSequentialRange,
		Start: numbers[0],
		End:   numbers[len(numbers)-1],
	}

	if common.IsSingle(numbers) {
		return verdict
	}

	if !numbers[0].IsInteger() {
		verdict.Kind = node.KeysRange
		return verdict
	}

	for i := 1; i < len(numbers); i++ {
		if !numbers[i].Succeeds(numbers[i-1]) {
			verdict.Kind = node.KeysRange
			break
		}
	}

	return verdict
}
