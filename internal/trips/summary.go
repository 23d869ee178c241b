package trips

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"taxidash.io/internal/aggregate"
)

// NoData is displayed in place of an average over zero trips.
const NoData = "no data"

// Average is a mean that may be undefined because there were no rows.
type Average struct {
	Value float64
	Valid bool
}

func newAverage(xs []float64) Average {
	v, ok := aggregate.Average(xs)
	return Average{Value: v, Valid: ok}
}

// Summary holds the headline metrics for a set of trips.
type Summary struct {
	Trips          int
	TotalAmount    float64
	AverageFare    Average
	AverageTip     Average
	AverageMiles   Average
	AverageSeconds Average
}

// Summarize computes the headline metrics over rows. An empty input yields
// zero counts and invalid averages.
func Summarize(rows []Trip) Summary {
	return Summary{
		Trips:          len(rows),
		TotalAmount:    aggregate.Total(aggregate.Pluck(rows, func(t Trip) float64 { return t.Total })),
		AverageFare:    newAverage(aggregate.Pluck(rows, func(t Trip) float64 { return t.Fare })),
		AverageTip:     newAverage(aggregate.Pluck(rows, func(t Trip) float64 { return t.Tip })),
		AverageMiles:   newAverage(aggregate.Pluck(rows, func(t Trip) float64 { return t.Miles })),
		AverageSeconds: newAverage(aggregate.Pluck(rows, func(t Trip) float64 { return float64(t.Seconds) })),
	}
}

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount as dollars with two decimals and thousands
// separators, e.g. "$1,234.50".
func FormatMoney(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

// FormatMoneyAverage renders a money average, or NoData.
func FormatMoneyAverage(avg Average) string {
	if !avg.Valid {
		return NoData
	}
	return FormatMoney(avg.Value)
}

// FormatMiles renders a distance average, or NoData.
func FormatMiles(avg Average) string {
	if !avg.Valid {
		return NoData
	}
	return fmt.Sprintf("%.2f mi", avg.Value)
}

// Duration is a trip duration split for display. Hours are folded away:
// minutes are taken from the seconds modulo one hour.
type Duration struct {
	Minutes int64
	Seconds int64
}

// SplitDuration splits a number of seconds into minutes and seconds after
// reducing it modulo 3600.
func SplitDuration(seconds float64) Duration {
	s := int64(seconds)
	if s < 0 {
		s = 0
	}
	return Duration{
		Minutes: (s % 3600) / 60,
		Seconds: s % 60,
	}
}

func (d Duration) String() string {
	return fmt.Sprintf("%dm %02ds", d.Minutes, d.Seconds)
}

// FormatDuration renders a duration average, or NoData.
func FormatDuration(avg Average) string {
	if !avg.Valid {
		return NoData
	}
	return SplitDuration(avg.Value).String()
}

// FormatCount renders a count with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
