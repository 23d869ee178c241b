package views

import (
	"time"

	"github.com/mmcloughlin/geohash"

	"taxidash.io/internal/aggregate"
	"taxidash.io/internal/palette"
	"taxidash.io/internal/trips"
)

// MaxColumnHeight is the rendered height, in meters, of the tallest column.
const MaxColumnHeight = 3000.0

// MaxGeohashPrecision is the longest geohash the heatmap accepts.
const MaxGeohashPrecision = 12

// Summary builds the headline metrics panel.
func Summary(rows []trips.Trip) SummaryView {
	s := trips.Summarize(rows)

	var v SummaryView
	v.Trips = s.Trips
	v.TotalAmount = s.TotalAmount
	v.AverageFare = averagePtr(s.AverageFare)
	v.AverageTip = averagePtr(s.AverageTip)
	v.AverageMiles = averagePtr(s.AverageMiles)
	v.AverageSeconds = averagePtr(s.AverageSeconds)

	v.Display.Trips = trips.FormatCount(s.Trips)
	v.Display.TotalAmount = trips.FormatMoney(s.TotalAmount)
	v.Display.AverageFare = trips.FormatMoneyAverage(s.AverageFare)
	v.Display.AverageTip = trips.FormatMoneyAverage(s.AverageTip)
	v.Display.AverageMiles = trips.FormatMiles(s.AverageMiles)
	v.Display.AverageSeconds = trips.FormatDuration(s.AverageSeconds)
	return v
}

func averagePtr(avg trips.Average) *float64 {
	if !avg.Valid {
		return nil
	}
	v := avg.Value
	return &v
}

type location struct {
	lat, lon float64
}

// pickupKey groups trips by pickup point. With a non-zero precision, points
// are bucketed into geohash cells and keyed by the cell center.
func pickupKey(precision uint) func(trips.Trip) (location, bool) {
	return func(t trips.Trip) (location, bool) {
		if !t.HasPickup() {
			return location{}, false
		}
		if precision == 0 {
			return location{t.Pickup.Latitude, t.Pickup.Longitude}, true
		}
		hash := geohash.EncodeWithPrecision(t.Pickup.Latitude, t.Pickup.Longitude, precision)
		lat, lon := geohash.DecodeCenter(hash)
		return location{lat, lon}, true
	}
}

// Heatmap counts trips per pickup location. Trips without coordinates are
// left out.
func Heatmap(rows []trips.Trip, precision uint) []HeatmapCell {
	groups := aggregate.By(rows, pickupKey(precision))
	out := make([]HeatmapCell, 0, len(groups))
	for _, c := range aggregate.Count(groups) {
		out = append(out, HeatmapCell{
			Latitude:  c.Key.lat,
			Longitude: c.Key.lon,
			Size:      int(c.Value),
		})
	}
	return out
}

// PointMap averages metric per pickup location and colors each point by the
// most common payment type there.
func PointMap(rows []trips.Trip, metric Metric) []PointCell {
	groups := aggregate.By(rows, pickupKey(0))
	means := aggregate.Mean(groups, metric.Field)
	modes := aggregate.Mode(groups, func(t trips.Trip) string { return t.PaymentType })

	out := make([]PointCell, 0, len(groups))
	for i := range groups {
		out = append(out, PointCell{
			Latitude:  means[i].Key.lat,
			Longitude: means[i].Key.lon,
			Metric:    metric.Name,
			Value:     means[i].Value,
			Color:     palette.ForPaymentLabel(modes[i].Category),
			Category:  modes[i].Category,
		})
	}
	return out
}

// ColumnMapOf averages metric per pickup location and scales column heights
// so the largest value reaches MaxColumnHeight.
func ColumnMapOf(rows []trips.Trip, metric Metric) ColumnMap {
	groups := aggregate.By(rows, pickupKey(0))
	cells := make([]ColumnCell, 0, len(groups))
	peak := 0.0
	for _, v := range aggregate.Mean(groups, metric.Field) {
		if v.Value > peak {
			peak = v.Value
		}
		cells = append(cells, ColumnCell{
			Latitude:  v.Key.lat,
			Longitude: v.Key.lon,
			Metric:    metric.Name,
			Value:     v.Value,
		})
	}

	scale := 1.0
	if peak > 0 {
		scale = MaxColumnHeight / peak
	}
	return ColumnMap{Metric: metric.Name, ElevationScale: scale, Cells: cells}
}

// PaymentTypes counts trips per payment type, most used first.
func PaymentTypes(rows []trips.Trip) BarChart {
	groups := aggregate.By(rows, func(t trips.Trip) (string, bool) { return t.PaymentType, t.PaymentType != "" })
	counts := aggregate.Count(groups)
	ranked := aggregate.TopN(counts, len(counts))

	chart := BarChart{Dimension: "payment_type", Bars: make([]BarEntry, 0, len(ranked))}
	for _, v := range ranked {
		chart.Bars = append(chart.Bars, BarEntry{
			Dimension: chart.Dimension,
			Category:  v.Key,
			Size:      v.Value,
			Color:     palette.ForPaymentLabel(v.Key),
		})
	}
	return chart
}

var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// Weekdays counts trips per day of the week, Monday first. Days without
// trips are omitted.
func Weekdays(rows []trips.Trip) BarChart {
	groups := aggregate.By(rows, func(t trips.Trip) (time.Weekday, bool) { return t.Weekday, true })
	byDay := make(map[time.Weekday]float64)
	for _, c := range aggregate.Count(groups) {
		byDay[c.Key] = c.Value
	}

	chart := BarChart{Dimension: "weekday", Bars: make([]BarEntry, 0, len(byDay))}
	for _, d := range weekOrder {
		n, ok := byDay[d]
		if !ok {
			continue
		}
		chart.Bars = append(chart.Bars, BarEntry{
			Dimension: chart.Dimension,
			Category:  d.String(),
			Size:      n,
			Color:     palette.WeekdayColor(d),
		})
	}
	return chart
}

// TopCompanies ranks companies by metric and keeps the first n.
func TopCompanies(rows []trips.Trip, metric CompanyMetric, n int) BarChart {
	groups := aggregate.By(rows, func(t trips.Trip) (string, bool) { return t.Company, t.Company != "" })
	ranked := aggregate.TopN(aggregate.Reduce(groups, metric.Reduction, metric.Field), n)

	chart := BarChart{Dimension: "company", Bars: make([]BarEntry, 0, len(ranked))}
	for i, v := range ranked {
		chart.Bars = append(chart.Bars, BarEntry{
			Dimension: chart.Dimension,
			Category:  v.Key,
			Size:      v.Value,
			Color:     palette.Series(i),
		})
	}
	return chart
}
