package restapi

import (
	"net/http"

	"taxidash.io/internal/dataset"
	"taxidash.io/internal/models"
	"taxidash.io/internal/trips"
	"taxidash.io/internal/views"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	snapshot, sel, ok := api.selectionRequest(w, r)
	if !ok {
		return
	}

	summary, err := api.memoized(snapshot, sel, dataset.ViewKey("summary", sel), func(rows []trips.Trip) any {
		return views.Summary(rows)
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(summary, references(snapshot, sel)))
}
