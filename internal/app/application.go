package app

import (
	"log/slog"

	"taxidash.io/internal/appconf"
	"taxidash.io/internal/dataset"
	"taxidash.io/internal/tripdb"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Dataset *dataset.Manager
	// TripDB is nil unless the SQLite mirror is enabled.
	TripDB *tripdb.Client
}

// Shutdown stops background work and closes the mirror.
func (app *Application) Shutdown() {
	if app.Dataset != nil {
		app.Dataset.Shutdown()
	}
	if app.TripDB != nil {
		if err := app.TripDB.Close(); err != nil && app.Logger != nil {
			app.Logger.Error("failed to close trip database", "error", err)
		}
	}
}
