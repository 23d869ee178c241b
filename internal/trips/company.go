package trips

import "strings"

// companyAliases collapses known spellings of the same company into one
// canonical name. Canonical names must never appear as keys.
var companyAliases = map[string]string{
	"Taxicab Insurance Agency Llc":         "Taxicab Insurance Agency, LLC",
	"Taxicab Insurance Agency LLC":         "Taxicab Insurance Agency, LLC",
	"Blue Ribbon Taxi Association Inc.":    "Blue Ribbon Taxi Association",
	"Choice Taxi Association Inc":          "Choice Taxi Association",
	"Star North Management LLC":            "Star North Taxi Management Llc",
	"Chicago Independents Taxi Associatio": "Chicago Independents",
}

// NormalizeCompany returns the canonical name for a raw company string.
// It is idempotent.
func NormalizeCompany(raw string) string {
	name := strings.Join(strings.Fields(raw), " ")
	if canonical, ok := companyAliases[name]; ok {
		return canonical
	}
	return name
}
