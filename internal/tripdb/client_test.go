package tripdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxidash.io/internal/appconf"
	"taxidash.io/internal/trips"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(NewConfig(MemoryPath, appconf.Test), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func loadFixture(t *testing.T) *trips.Table {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "..", "testdata", "trips.csv"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	table, _, err := trips.Load(f, nil)
	require.NoError(t, err)
	return table
}

func TestFileDatabaseRejectedInTests(t *testing.T) {
	_, err := NewClient(NewConfig(filepath.Join(t.TempDir(), "trips.db"), appconf.Test), nil)
	assert.ErrorIs(t, err, ErrFileDatabaseInTest)
}

func TestMemoryDatabaseUsesOneConnection(t *testing.T) {
	client := newTestClient(t)
	assert.Equal(t, 1, client.DB.Stats().MaxOpenConnections)
}

func TestImportTrips(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	table := loadFixture(t)

	require.NoError(t, client.ImportTrips(ctx, "trips.csv", table))

	counts, err := client.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["sources"])
	assert.Equal(t, 7, counts["trips"])

	var nullPickups int
	require.NoError(t, client.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM trips WHERE pickup_latitude IS NULL`).Scan(&nullPickups))
	assert.Equal(t, 1, nullPickups)

	companies, err := client.CompanyCounts(ctx, "trips.csv")
	require.NoError(t, err)
	assert.Equal(t, []CompanyCount{
		{Company: "Flash Cab", Trips: 2},
		{Company: "Sun Taxi", Trips: 2},
		{Company: "Taxicab Insurance Agency, LLC", Trips: 2},
		{Company: "Blue Ribbon Taxi Association", Trips: 1},
	}, companies)
}

func TestImportTripsReplacesPreviousImport(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.ImportTrips(ctx, "trips.csv", loadFixture(t)))

	smaller := trips.NewTable([]trips.Trip{{
		Company:     "Flash Cab",
		PaymentType: "Cash",
		StartTime:   time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC),
		Weekday:     time.Monday,
	}})
	require.NoError(t, client.ImportTrips(ctx, "trips.csv", smaller))
	require.NoError(t, client.ImportTrips(ctx, "other.csv", smaller))

	counts, err := client.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["sources"])
	assert.Equal(t, 2, counts["trips"])
}

func TestImportTripsHonorsCancellation(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.ImportTrips(ctx, "trips.csv", loadFixture(t))
	assert.Error(t, err)

	counts, err := client.TableCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, counts["trips"])
}
