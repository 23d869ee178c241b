package aggregate

// Group is one partition of rows sharing a key.
type Group[K comparable, T any] struct {
	Key  K
	Rows []T
}

// By partitions rows by key, keeping groups in the order their keys are
// first seen. Rows for which key reports false are dropped.
func By[K comparable, T any](rows []T, key func(T) (K, bool)) []Group[K, T] {
	index := make(map[K]int)
	var groups []Group[K, T]
	for _, row := range rows {
		k, ok := key(row)
		if !ok {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// Value is a group key with its reduced value.
type Value[K comparable] struct {
	Key   K
	Value float64
}

// Reduction selects how a group is reduced to a single number.
type Reduction int

const (
	ReduceCount Reduction = iota
	ReduceSum
	ReduceMean
)

func (r Reduction) String() string {
	switch r {
	case ReduceCount:
		return "count"
	case ReduceSum:
		return "sum"
	case ReduceMean:
		return "mean"
	default:
		return "unknown"
	}
}

// Reduce applies r to every group. field is ignored for ReduceCount.
func Reduce[K comparable, T any](groups []Group[K, T], r Reduction, field func(T) float64) []Value[K] {
	switch r {
	case ReduceSum:
		return Sum(groups, field)
	case ReduceMean:
		return Mean(groups, field)
	default:
		return Count(groups)
	}
}

// Count returns the number of rows per group.
func Count[K comparable, T any](groups []Group[K, T]) []Value[K] {
	out := make([]Value[K], len(groups))
	for i, g := range groups {
		out[i] = Value[K]{Key: g.Key, Value: float64(len(g.Rows))}
	}
	return out
}

// Sum returns the sum of field per group.
func Sum[K comparable, T any](groups []Group[K, T], field func(T) float64) []Value[K] {
	out := make([]Value[K], len(groups))
	for i, g := range groups {
		out[i] = Value[K]{Key: g.Key, Value: Total(Pluck(g.Rows, field))}
	}
	return out
}

// Mean returns the mean of field per group. Groups built by By are never
// empty, so every mean is defined.
func Mean[K comparable, T any](groups []Group[K, T], field func(T) float64) []Value[K] {
	out := make([]Value[K], len(groups))
	for i, g := range groups {
		mean, _ := Average(Pluck(g.Rows, field))
		out[i] = Value[K]{Key: g.Key, Value: mean}
	}
	return out
}
