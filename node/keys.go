package node

import (
	"cmp"
	"fmt"
	"slices"

	"littleeye/scalar"
)

// SortKeys orders mapping keys deterministically: numbers ascending, then
// strings, then booleans, then everything else by its printed form.
func SortKeys(keys []any) {
	slices.SortStableFunc(keys, compareKeys)
}

func keyRank(k any) int {
	if _, ok := scalar.NumberOf(k); ok {
		return 0
	}

	switch k.(type) {
	case string:
		return 1
	case bool:
		return 2
	default:
		return 3
	}
}

func compareKeys(a, b any) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case 0:
		na, _ := scalar.NumberOf(a)
		nb, _ := scalar.NumberOf(b)
		return na.Compare(nb)
	case 1:
		return cmp.Compare(a.(string), b.(string))
	case 2:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}
