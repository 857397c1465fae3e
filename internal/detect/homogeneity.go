package detect

import (
	"cmp"
	"fmt"
	"slices"

	"littleeye/internal/common"
	"littleeye/node"
)

// Representative is the first child of a distinct kind.
type Representative struct {
	Key   node.KindKey
	Index int
}

// Verdict is the outcome of the homogeneity check.
type Verdict struct {
	Pattern node.PatternKind // PatternHomogeneous or PatternMixed
	// Counts is the full kind histogram, most frequent first.
	Counts []node.KindCount
	// Representatives holds the first occurrence of each distinct kind in
	// iteration order, capped at the limit passed to Homogeneity.
	Representatives []Representative
}

// Key returns the shared kind of a homogeneous stream.
func (v Verdict) Key() node.KindKey {
	return v.Counts[0].Key
}

// Homogeneity checks whether every child has the same kind. For a mixed
// stream at most limit representatives are reported.
func Homogeneity(keys []node.KindKey, limit int) Verdict {
	if len(keys) == 0 {
		panic("detect: homogeneity needs at least one child")
	}
	if limit < 1 {
		panic(fmt.Sprintf("detect: representative limit must be positive, got %d", limit))
	}

	var counts []node.KindCount
	position := make(map[node.KindKey]int)
	for i, key := range keys {
		if at, ok := position[key]; ok {
			counts[at].Count++
			continue
		}

		position[key] = len(counts)
		counts = append(counts, node.KindCount{Key: key, Count: 1, First: i})
	}

	reps := make([]Representative, 0, min(len(counts), limit))
	for _, c := range counts[:min(len(counts), limit)] {
		reps = append(reps, Representative{Key: c.Key, Index: c.First})
	}

	slices.SortStableFunc(counts, func(a, b node.KindCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	pattern := node.PatternMixed
	if common.IsSingle(counts) {
		pattern = node.PatternHomogeneous
	}

	return Verdict{Pattern: pattern, Counts: counts, Representatives: reps}
}
