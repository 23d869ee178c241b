package models

import "time"

// DatasetStatus describes the currently loaded trip table.
type DatasetStatus struct {
	Source    string    `json:"source"`
	Rows      int       `json:"rows"`
	Skipped   int       `json:"skipped"`
	Companies int       `json:"companies"`
	LoadedAt  time.Time `json:"loadedAt"`
}

// CompanyList is the set of canonical company names a selection may use.
type CompanyList struct {
	Companies []string `json:"companies"`
	// Default is the company preselected by the dashboard; empty when the
	// table has no companies.
	Default string `json:"default"`
}

// NewCompanyList builds the selector options. The first company is the
// default selection.
func NewCompanyList(companies []string) CompanyList {
	list := CompanyList{Companies: companies}
	if list.Companies == nil {
		list.Companies = []string{}
	}
	if len(list.Companies) > 0 {
		list.Default = list.Companies[0]
	}
	return list
}
