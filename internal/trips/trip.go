package trips

import "time"

// Coordinates is a pickup centroid. The source publishes community-area
// centroids, so many trips share the exact same pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Trip is one normalized row of the trip table.
type Trip struct {
	Company     string
	Pickup      *Coordinates
	PaymentType string
	Fare        float64
	Tip         float64
	Total       float64
	Miles       float64
	Seconds     int64
	StartTime   time.Time
	Weekday     time.Weekday
}

// HasPickup reports whether the trip carries pickup coordinates.
func (t Trip) HasPickup() bool {
	return t.Pickup != nil
}

// StartDate returns the calendar date the trip started on, at midnight UTC.
func (t Trip) StartDate() time.Time {
	return dateOf(t.StartTime)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
