package trips

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Source column names.
const (
	ColumnCompany     = "Company"
	ColumnPickupLat   = "Pickup Centroid Latitude"
	ColumnPickupLon   = "Pickup Centroid Longitude"
	ColumnPaymentType = "Payment Type"
	ColumnFare        = "Fare"
	ColumnTips        = "Tips"
	ColumnTripTotal   = "Trip Total"
	ColumnTripMiles   = "Trip Miles"
	ColumnTripSeconds = "Trip Seconds"
	ColumnStartTime   = "Trip Start Timestamp"

	// The pickup columns are renamed once loaded.
	ColumnLatitude  = "latitude"
	ColumnLongitude = "longitude"
)

// ErrMissingColumn is returned when the CSV lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{
	ColumnCompany,
	ColumnPickupLat,
	ColumnPickupLon,
	ColumnPaymentType,
	ColumnFare,
	ColumnTips,
	ColumnTripTotal,
	ColumnTripMiles,
	ColumnTripSeconds,
	ColumnStartTime,
}

// LoadReport describes the outcome of a load.
type LoadReport struct {
	Rows    int
	Skipped int
	// FirstError is the first row-level parse error, if any rows were skipped.
	FirstError error
}

// ErrEmptyCSV is returned when the CSV has no header row.
var ErrEmptyCSV = errors.New("trip CSV is empty")

// Load reads a trip CSV and returns the normalized table. Rows with a
// malformed start timestamp are skipped and counted in the report. A CSV
// with a header and no rows yields an empty table.
func Load(r io.Reader, logger *slog.Logger) (*Table, LoadReport, error) {
	var report LoadReport

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, report, fmt.Errorf("error reading trip CSV: %w", err)
	}

	hasRows, err := checkHeader(data)
	if err != nil {
		return nil, report, err
	}
	if !hasRows {
		return NewTable(nil), report, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"", "NA", "NaN", "N/A"}),
	)
	if df.Err != nil {
		return nil, report, fmt.Errorf("error reading trip CSV: %w", df.Err)
	}

	df = df.Rename(ColumnLatitude, ColumnPickupLat).Rename(ColumnLongitude, ColumnPickupLon)
	if df.Err != nil {
		return nil, report, fmt.Errorf("error renaming pickup columns: %w", df.Err)
	}

	cols := make(map[string]column)
	for _, name := range []string{
		ColumnCompany, ColumnLatitude, ColumnLongitude, ColumnPaymentType, ColumnFare,
		ColumnTips, ColumnTripTotal, ColumnTripMiles, ColumnTripSeconds, ColumnStartTime,
	} {
		s := df.Col(name)
		if s.Err != nil {
			return nil, report, fmt.Errorf("error reading column %q: %w", name, s.Err)
		}
		cols[name] = column{values: s.Records(), nan: s.IsNaN()}
	}

	n := df.Nrow()
	rows := make([]Trip, 0, n)
	for i := 0; i < n; i++ {
		raw := cols[ColumnStartTime].get(i)
		start, err := ParseStartTimestamp(raw)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Row = i + 2 // header is line 1
			}
			if report.FirstError == nil {
				report.FirstError = err
			}
			report.Skipped++
			continue
		}

		trip := Trip{
			Company:     NormalizeCompany(cols[ColumnCompany].get(i)),
			PaymentType: strings.TrimSpace(cols[ColumnPaymentType].get(i)),
			Fare:        parseAmount(cols[ColumnFare].get(i)),
			Tip:         parseAmount(cols[ColumnTips].get(i)),
			Total:       parseAmount(cols[ColumnTripTotal].get(i)),
			Miles:       parseAmount(cols[ColumnTripMiles].get(i)),
			Seconds:     int64(parseAmount(cols[ColumnTripSeconds].get(i))),
			StartTime:   start,
			Weekday:     start.Weekday(),
		}

		lat, latOK := parseCoordinate(cols[ColumnLatitude].get(i))
		lon, lonOK := parseCoordinate(cols[ColumnLongitude].get(i))
		if latOK && lonOK {
			trip.Pickup = &Coordinates{Latitude: lat, Longitude: lon}
		}

		rows = append(rows, trip)
	}
	report.Rows = len(rows)

	if report.Skipped > 0 && logger != nil {
		logger.Warn("skipped trips with invalid start timestamp",
			slog.Int("skipped", report.Skipped),
			slog.String("first_error", report.FirstError.Error()),
			slog.String("component", "trip_loader"))
	}

	return NewTable(rows), report, nil
}

// checkHeader verifies the required columns and reports whether any data row
// follows the header. gota refuses a header-only CSV, so that case is caught
// here.
func checkHeader(data []byte) (bool, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return false, ErrEmptyCSV
	}
	if err != nil {
		return false, fmt.Errorf("error reading trip CSV header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, name := range requiredColumns {
		if !present[name] {
			return false, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	if _, err := reader.Read(); errors.Is(err, io.EOF) {
		return false, nil
	}
	return true, nil
}

type column struct {
	values []string
	nan    []bool
}

func (c column) get(i int) string {
	if i < len(c.nan) && c.nan[i] {
		return ""
	}
	return c.values[i]
}

// parseAmount parses a numeric cell, tolerating "$" prefixes and thousands
// separators. Empty, malformed or non-finite cells count as zero.
func parseAmount(value string) float64 {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "$")
	value = strings.ReplaceAll(value, ",", "")
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || !isFinite(f) {
		return 0
	}
	return f
}

func parseCoordinate(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

// isFinite rejects the "nan" and "inf" spellings ParseFloat accepts.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
