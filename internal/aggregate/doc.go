// Package aggregate implements the grouped reductions behind the dashboard's
// charts and maps: partitioning rows by a key, reducing each partition to a
// count, sum, mean or modal category, and ranking the results.
//
// Groups preserve discovery order so every result is deterministic for a
// given input. Where a reduction must break ties (modal values, top-N
// boundaries) the tie-break is explicit and documented on the function.
package aggregate
