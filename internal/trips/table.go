package trips

import "sort"

// Table is the loaded, normalized trip table. It is immutable once built and
// safe for concurrent readers.
type Table struct {
	rows      []Trip
	companies []string
}

// NewTable builds a Table over rows. The caller must not modify rows afterwards.
func NewTable(rows []Trip) *Table {
	seen := make(map[string]bool)
	var companies []string
	for _, row := range rows {
		if row.Company == "" || seen[row.Company] {
			continue
		}
		seen[row.Company] = true
		companies = append(companies, row.Company)
	}
	sort.Strings(companies)

	return &Table{rows: rows, companies: companies}
}

// Rows returns every trip in file order. The returned slice is shared and
// must be treated as read-only.
func (t *Table) Rows() []Trip {
	return t.rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Companies returns the canonical company names, sorted.
func (t *Table) Companies() []string {
	out := make([]string, len(t.companies))
	copy(out, t.companies)
	return out
}

// HasCompany reports whether name is one of the table's canonical companies.
func (t *Table) HasCompany(name string) bool {
	i := sort.SearchStrings(t.companies, name)
	return i < len(t.companies) && t.companies[i] == name
}

// Filter returns the trips matching sel. The result is a new slice; an empty
// selection result is valid.
func (t *Table) Filter(sel Selection) []Trip {
	return Filter(t.rows, sel)
}
