package aggregate

import (
	"cmp"
	"slices"
)

// DefaultTopN is how many groups the compare views keep.
const DefaultTopN = 8

// TopN sorts values descending and keeps the first n. Equal values are
// ordered by key ascending so the cut at the boundary is deterministic.
func TopN[K cmp.Ordered](values []Value[K], n int) []Value[K] {
	sorted := slices.Clone(values)
	slices.SortStableFunc(sorted, func(a, b Value[K]) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
