package tripdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"taxidash.io/internal/logging"
	"taxidash.io/internal/trips"
)

// ImportTrips replaces the rows stored for source with table, in one
// transaction.
func (c *Client) ImportTrips(ctx context.Context, source string, table *trips.Table) (err error) {
	start := time.Now()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "import_trips")

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM trips WHERE source_id IN (SELECT id FROM sources WHERE source = ?)`, source); err != nil {
		return fmt.Errorf("error clearing previous import: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sources WHERE source = ?`, source); err != nil {
		return fmt.Errorf("error clearing previous import: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sources (source, loaded_at, row_count) VALUES (?, ?, ?)`,
		source, start.UTC().Format(time.RFC3339), table.Len())
	if err != nil {
		return fmt.Errorf("error recording source: %w", err)
	}
	sourceID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading source id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (
			source_id, company, pickup_latitude, pickup_longitude, payment_type,
			fare, tip, total, miles, seconds, start_time, weekday
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer logging.HandleDeferredError(&err, stmt.Close, c.logger, "close_insert_statement")

	for _, trip := range table.Rows() {
		var lat, lon sql.NullFloat64
		if trip.HasPickup() {
			lat = sql.NullFloat64{Float64: trip.Pickup.Latitude, Valid: true}
			lon = sql.NullFloat64{Float64: trip.Pickup.Longitude, Valid: true}
		}

		_, err := stmt.ExecContext(ctx,
			sourceID, trip.Company, lat, lon, trip.PaymentType,
			trip.Fare, trip.Tip, trip.Total, trip.Miles, trip.Seconds,
			trip.StartTime.Format(time.RFC3339), trip.Weekday.String(),
		)
		if err != nil {
			return fmt.Errorf("error inserting trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	logging.LogOperation(c.logger, "trips_mirrored",
		slog.String("source", source),
		slog.Int("rows", table.Len()),
		slog.Duration("duration", time.Since(start)))

	return nil
}
