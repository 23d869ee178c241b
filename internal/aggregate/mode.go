package aggregate

// Modal is a group key with its most frequent category.
type Modal[K comparable] struct {
	Key      K
	Category string
	Count    int
}

// Mode returns the most frequent category per group. When several categories
// are equally frequent the lexicographically smallest one wins.
func Mode[K comparable, T any](groups []Group[K, T], category func(T) string) []Modal[K] {
	out := make([]Modal[K], len(groups))
	for i, g := range groups {
		counts := make(map[string]int)
		for _, row := range g.Rows {
			counts[category(row)]++
		}
		best := Modal[K]{Key: g.Key}
		first := true
		for c, n := range counts {
			if first || n > best.Count || (n == best.Count && c < best.Category) {
				best.Category = c
				best.Count = n
				first = false
			}
		}
		out[i] = best
	}
	return out
}
