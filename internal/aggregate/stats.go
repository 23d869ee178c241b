package aggregate

import "github.com/aclements/go-moremath/stats"

// Total returns the sum of xs; zero for an empty slice.
func Total(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stats.Sample{Xs: xs}.Sum()
}

// Average returns the mean of xs. ok is false for an empty slice, where the
// mean is undefined.
func Average(xs []float64) (mean float64, ok bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return stats.Mean(xs), true
}

// Pluck extracts one numeric field from every row.
func Pluck[T any](rows []T, field func(T) float64) []float64 {
	xs := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = field(row)
	}
	return xs
}
