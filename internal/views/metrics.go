package views

import (
	"sort"

	"taxidash.io/internal/aggregate"
	"taxidash.io/internal/trips"
)

// Metric is a numeric trip column that a view can aggregate.
type Metric struct {
	Name  string
	Field func(trips.Trip) float64
}

var mapMetrics = map[string]Metric{
	"fare":     {Name: "fare", Field: func(t trips.Trip) float64 { return t.Fare }},
	"tip":      {Name: "tip", Field: func(t trips.Trip) float64 { return t.Tip }},
	"total":    {Name: "total", Field: func(t trips.Trip) float64 { return t.Total }},
	"miles":    {Name: "miles", Field: func(t trips.Trip) float64 { return t.Miles }},
	"duration": {Name: "duration", Field: func(t trips.Trip) float64 { return float64(t.Seconds) }},
}

// LookupMapMetric returns the named per-trip metric used by the map views.
func LookupMapMetric(name string) (Metric, bool) {
	m, ok := mapMetrics[name]
	return m, ok
}

// MapMetricNames lists the names accepted by LookupMapMetric.
func MapMetricNames() []string {
	return sortedKeys(mapMetrics)
}

// CompanyMetric is how the company comparison ranks companies.
type CompanyMetric struct {
	Name      string
	Reduction aggregate.Reduction
	Field     func(trips.Trip) float64
}

var companyMetrics = map[string]CompanyMetric{
	"trips":    {Name: "trips", Reduction: aggregate.ReduceCount},
	"amount":   {Name: "amount", Reduction: aggregate.ReduceSum, Field: mapMetrics["total"].Field},
	"fare":     {Name: "fare", Reduction: aggregate.ReduceMean, Field: mapMetrics["fare"].Field},
	"tip":      {Name: "tip", Reduction: aggregate.ReduceMean, Field: mapMetrics["tip"].Field},
	"miles":    {Name: "miles", Reduction: aggregate.ReduceMean, Field: mapMetrics["miles"].Field},
	"duration": {Name: "duration", Reduction: aggregate.ReduceMean, Field: mapMetrics["duration"].Field},
}

// LookupCompanyMetric returns the named company ranking metric.
func LookupCompanyMetric(name string) (CompanyMetric, bool) {
	m, ok := companyMetrics[name]
	return m, ok
}

// CompanyMetricNames lists the names accepted by LookupCompanyMetric.
func CompanyMetricNames() []string {
	return sortedKeys(companyMetrics)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
