package common

import "cmp"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// AllEqual reports whether every element equals the first one according to eq.
// An empty slice is trivially all-equal.
func AllEqual[S ~[]E, E any](s S, eq func(a, b E) bool) bool {
	for i := 1; i < len(s); i++ {
		if !eq(s[0], s[i]) {
			return false
		}
	}

	return true
}

// MinMax returns the smallest and largest element of a non-empty slice.
func MinMax[S ~[]E, E cmp.Ordered](s S) (lo, hi E) {
	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return lo, hi
}

// Take returns at most n leading elements of s.
func Take[S ~[]E, E any](s S, n int) S {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
