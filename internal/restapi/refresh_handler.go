package restapi

import (
	"log/slog"
	"net/http"

	"taxidash.io/internal/logging"
	"taxidash.io/internal/models"
)

// refreshHandler drops the memoized table and re-reads the data source.
func (api *RestAPI) refreshHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, err := api.Dataset.Refresh(r.Context())
	if err != nil {
		api.dataErrorResponse(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("dataset refreshed",
		slog.String("source", snapshot.Source),
		slog.Int("rows", snapshot.Table.Len()))

	status := models.DatasetStatus{
		Source:    snapshot.Source,
		Rows:      snapshot.Table.Len(),
		Skipped:   snapshot.Report.Skipped,
		Companies: len(snapshot.Table.Companies()),
		LoadedAt:  snapshot.LoadedAt,
	}
	api.sendResponse(w, r, models.NewEntryResponse(status, models.NewEmptyReferences()))
}
