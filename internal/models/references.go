package models

import "taxidash.io/internal/trips"

// SelectionModel is the filter a response was computed for.
type SelectionModel struct {
	Company string `json:"company"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// ReferencesModel carries the context shared by every row of a response.
type ReferencesModel struct {
	Selection SelectionModel `json:"selection"`
	// Source is the data source the rows were loaded from.
	Source string `json:"source,omitempty"`
	Metric string `json:"metric,omitempty"`
}

// NewEmptyReferences creates references with no selection.
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{}
}

// NewReferences describes sel, loaded from source.
func NewReferences(sel trips.Selection, source string) ReferencesModel {
	return ReferencesModel{
		Selection: SelectionModel{
			Company: sel.Company,
			Start:   sel.Start.Format(trips.DateLayout),
			End:     sel.End.Format(trips.DateLayout),
		},
		Source: source,
	}
}

// WithMetric returns a copy of r naming the metric the rows carry.
func (r ReferencesModel) WithMetric(metric string) ReferencesModel {
	r.Metric = metric
	return r
}
