package trips

import (
	"fmt"
	"time"
)

// DateLayout is the layout of selection dates.
const DateLayout = "2006-01-02"

var (
	DefaultStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultEnd   = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
)

// Selection is the user's current filter: an optional company and an
// inclusive range of calendar dates.
type Selection struct {
	// Company is a canonical company name; empty selects every company.
	Company string
	Start   time.Time
	End     time.Time
}

// DefaultSelection selects every company over the default date range.
func DefaultSelection() Selection {
	return Selection{Start: DefaultStart, End: DefaultEnd}
}

// Matches reports whether trip falls inside the selection. Dates are compared
// as calendar dates, both ends inclusive.
func (s Selection) Matches(trip Trip) bool {
	return s.MatchesCompany(trip) && s.MatchesDates(trip)
}

func (s Selection) MatchesCompany(trip Trip) bool {
	return s.Company == "" || trip.Company == s.Company
}

func (s Selection) MatchesDates(trip Trip) bool {
	day := trip.StartDate()
	return !day.Before(dateOf(s.Start)) && !day.After(dateOf(s.End))
}

// Key identifies the selection in caches.
func (s Selection) Key() string {
	return fmt.Sprintf("%s|%s|%s", s.Company, dateOf(s.Start).Format(DateLayout), dateOf(s.End).Format(DateLayout))
}

// Filter returns the rows matching sel.
func Filter(rows []Trip, sel Selection) []Trip {
	out := make([]Trip, 0)
	for _, row := range rows {
		if sel.Matches(row) {
			out = append(out, row)
		}
	}
	return out
}

// FilterCompany keeps the rows of one company; an empty name keeps all rows.
func FilterCompany(rows []Trip, company string) []Trip {
	return Filter(rows, Selection{Company: company, Start: time.Time{}, End: maxDate})
}

// FilterDates keeps the rows that started within [start, end].
func FilterDates(rows []Trip, start, end time.Time) []Trip {
	return Filter(rows, Selection{Start: start, End: end})
}

var maxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
